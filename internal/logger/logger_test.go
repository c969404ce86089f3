package logger

import "testing"

func TestGetInitializesLogger(t *testing.T) {
	log := Get()
	if log == nil {
		t.Fatal("expected a logger")
	}
	// Init after Get is a no-op and must not replace the logger.
	Init("production")
	if Get() != log {
		t.Error("expected the same logger instance after a second Init")
	}
	Sync()
}
