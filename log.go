package gotalib

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var current atomic.Pointer[logrus.Entry]

func defaultLogger() *logrus.Entry {
	return logrus.WithField("component", "gotalib")
}

func logger() *logrus.Entry {
	if l := current.Load(); l != nil {
		return l
	}
	return defaultLogger()
}

// SetLogger replaces the entry the library logs to. The library only logs at
// debug level. A nil entry restores the default.
func SetLogger(entry *logrus.Entry) {
	current.Store(entry)
}
