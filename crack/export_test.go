package crack

import "github.com/sirupsen/logrus"

var DefaultLogger = defaultLogger

func (c *Cracker) Logger() *logrus.Logger { return c.log }
