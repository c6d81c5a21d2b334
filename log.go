package materialcolors

import "github.com/sirupsen/logrus"

func (g *Generator) logf(format string, args ...interface{}) {
	if g.EnableLog {
		logrus.Printf(format, args...)
	}
}
