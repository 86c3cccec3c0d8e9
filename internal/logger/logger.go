package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/laughmeter/internal/constants"
)

// Logger is the process-wide journal logger. Nil until Init or InitWriter.
var Logger *log.Logger

// Config selects where the journal log lives and how chatty it is.
type Config struct {
	Debug     bool
	ConfigDir string
}

// LogPath returns the log file location for a config directory.
func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init sends journal activity to a rotating file next to the journal.
// With Debug set the same lines are mirrored to stderr with caller info.
func Init(cfg Config) error {
	path := LogPath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var out io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}
	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
		out = io.MultiWriter(os.Stderr, out)
	}

	Logger = newLogger(out, level, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
	})
	return nil
}

// InitWriter points the global logger at w without timestamps.
func InitWriter(w io.Writer, level log.Level) {
	Logger = newLogger(w, level, log.Options{})
}

func newLogger(w io.Writer, level log.Level, opts log.Options) *log.Logger {
	opts.Level = level
	opts.Prefix = constants.AppName
	return log.NewWithOptions(w, opts)
}

func logAt(level log.Level, msg string, keyvals []interface{}) {
	if Logger == nil {
		return
	}
	Logger.Log(level, msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) { logAt(log.DebugLevel, msg, keyvals) }

func Info(msg string, keyvals ...interface{}) { logAt(log.InfoLevel, msg, keyvals) }

func Warn(msg string, keyvals ...interface{}) { logAt(log.WarnLevel, msg, keyvals) }

func Error(msg string, keyvals ...interface{}) { logAt(log.ErrorLevel, msg, keyvals) }
