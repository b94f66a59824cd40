package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFile is the log file used when none is configured
const DefaultFile = "tuiselect.log"

// Setup sends the standard logger to a rotating file. The terminal belongs
// to the UI, so nothing is ever logged to stdout or stderr. The returned
// closer flushes and closes the file.
func Setup(path string) io.Closer {
	if path == "" {
		path = DefaultFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Could not create log directory: %v", err)
		}
	}

	logFile := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}

// Discard silences the standard logger
func Discard() {
	log.SetOutput(io.Discard)
}
