package queueing

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	logMu  sync.RWMutex
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLogOutput redirects all component logs. Pass io.Discard to silence them.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = log.New(w, "", log.LstdFlags)
}

// InfoLog logs informational messages with timestamps
func InfoLog(format string, v ...interface{}) {
	logMu.RLock()
	defer logMu.RUnlock()
	logger.Printf(format, v...)
}

// WarnLog logs advisory conditions that do not stop a run
func WarnLog(format string, v ...interface{}) {
	logMu.RLock()
	defer logMu.RUnlock()
	logger.Printf("[WARN] "+format, v...)
}

// ErrorLog logs error messages with timestamps
func ErrorLog(format string, v ...interface{}) {
	logMu.RLock()
	defer logMu.RUnlock()
	logger.Printf("[ERROR] "+format, v...)
}
