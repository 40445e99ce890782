package backend

import (
	"io"
	"log"
	"sync/atomic"
)

var logger atomic.Pointer[log.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger replaces the package logger. Passing nil silences it again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "backend: ", log.LstdFlags)
	}
	logger.Store(l)
}
