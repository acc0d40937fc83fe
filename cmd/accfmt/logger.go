package main

import (
	"io"
	"log"
)

// stderrLogger implements calculation.Logger on top of the standard logger.
type stderrLogger struct {
	l *log.Logger
}

func newStderrLogger(w io.Writer) *stderrLogger {
	return &stderrLogger{l: log.New(w, "accfmt ", log.LstdFlags)}
}

func (s *stderrLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s *stderrLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s *stderrLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s *stderrLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }
