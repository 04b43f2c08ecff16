// package log provides a simple logger with leveled log messages.
//
//   - DebugLevel (highest verbosity)
//   - InfoLevel
//   - WarningLevel
//   - ErrorLevel
//   - FatalLevel (lowest verbosity)
//
// Output is written to the default logger.  The level is process-wide,
// and is normally set once at program start, either from the
// environment (SetLevelFromEnv) or from a command line option
// (SetLevelFromString).
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

type level int32

const (
	DebugLevel   level = iota // DebugLevel logs all messages
	InfoLevel                 // InfoLevel logs info messages and and above
	WarningLevel              // WarningLevel logs warning messages and above
	ErrorLevel                // ErrorLevel logs error messages and above
	FatalLevel                // FatalLevel only logs fatal messages
)

const (
	tagDebug   = "DEBU"
	tagInfo    = "INFO"
	tagWarning = "WARN"
	tagError   = "ERRO"
	tagFatal   = "FATA"
)

// Environment variable consulted by SetLevelFromEnv when called with
// an empty name.
const DefaultEnv = "SIGN_LOG"

var currentLevel int32

func init() {
	currentLevel = int32(InfoLevel)
}

// SetLevel sets the logging level.  Available options: DebugLevel, InfoLevel,
// WarningLevel, ErrorLevel, FatalLevel.
func SetLevel(lv level) {
	atomic.StoreInt32(&currentLevel, int32(lv))
}

func SetLevelFromString(levelName string) error {
	switch levelName {
	case "debug":
		SetLevel(DebugLevel)
	case "info":
		SetLevel(InfoLevel)
	case "warning":
		SetLevel(WarningLevel)
	case "error":
		SetLevel(ErrorLevel)
	case "fatal":
		SetLevel(FatalLevel)
	default:
		return fmt.Errorf("invalid logging level %s", levelName)
	}
	return nil
}

// SetLevelFromEnv sets the level from the named environment variable.
// An unset or empty variable leaves the level unchanged.
func SetLevelFromEnv(name string) error {
	if name == "" {
		name = DefaultEnv
	}
	value := os.Getenv(name)
	if value == "" {
		return nil
	}
	if err := SetLevelFromString(value); err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	return nil
}

// SetOutput redirects all log output, e.g., to a buffer in tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func isEnabled(lv level) bool {
	return level(atomic.LoadInt32(&currentLevel)) <= lv
}

func Debug(format string, v ...interface{}) {
	if isEnabled(DebugLevel) {
		log.Printf("["+tagDebug+"] "+format, v...)
	}
}

func Info(format string, v ...interface{}) {
	if isEnabled(InfoLevel) {
		log.Printf("["+tagInfo+"] "+format, v...)
	}
}

func Warning(format string, v ...interface{}) {
	if isEnabled(WarningLevel) {
		log.Printf("["+tagWarning+"] "+format, v...)
	}
}

func Error(format string, v ...interface{}) {
	if isEnabled(ErrorLevel) {
		log.Printf("["+tagError+"] "+format, v...)
	}
}

func Fatal(format string, v ...interface{}) {
	log.Fatalf("["+tagFatal+"] "+format, v...)
}
