package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging configuration.
func NewConfig() Config {
	return Config{
		Level:        slog.LevelInfo,
		AddSource:    true,
		AttrReplacer: NormalizeSourceAttrReplacer(),
		StdFormat:    "text",
		StdWriter:    os.Stderr,
		Path:         "",
		MaxSize:      30,
		MaxAge:       0,
		MaxBackups:   0,
		Compress:     false,
	}
}

// Config describes how log records are formatted and where they go.
type Config struct {
	// Level is the minimum record level, LevelInfo by default.
	Level slog.Level
	// AddSource appends the source file and line of the log statement.
	AddSource bool
	// AttrReplacer rewrites attributes before they are emitted,
	// NormalizeSourceAttrReplacer by default.
	AttrReplacer AttrReplacer

	// StdFormat is the console output format, one of ["text", "json"].
	StdFormat string
	// StdWriter is the console output writer, os.Stderr by default.
	StdWriter io.Writer

	// Path is the log file path. Empty disables file output.
	Path string
	// MaxSize is the maximum size of a single log file in MB before it is
	// rotated, 30 MB by default.
	MaxSize int
	// MaxAge is the maximum number of days to retain rotated files,
	// unlimited by default.
	MaxAge int
	// MaxBackups is the maximum number of rotated files to retain,
	// unlimited by default.
	MaxBackups int
	// Compress enables compression of rotated files.
	Compress bool
}

// BuildHandler creates a new slog.Handler with config. The returned
// handler implements LeveledHandler so its level can be changed after
// construction.
func (c *Config) BuildHandler() slog.Handler {
	if c.StdFormat == "json" {
		writer := c.StdWriter
		if fw := c.buildFileWriter(); fw != nil {
			writer = io.MultiWriter(c.StdWriter, fw)
		}
		return c.buildLeveledHandler(JSONHandlerCreator, writer)
	}

	// console output format as "text"
	handlers := []slog.Handler{
		c.buildLeveledHandler(TextHandlerCreator, c.StdWriter),
	}
	if fw := c.buildFileWriter(); fw != nil {
		// the file always receives JSON records
		handlers = append(handlers, c.buildLeveledHandler(JSONHandlerCreator, fw))
	}
	if len(handlers) == 1 {
		return handlers[0]
	}
	return MultiHandler(handlers...)
}

func (c *Config) buildLeveledHandler(create HandlerCreator, w io.Writer) slog.Handler {
	lvl := NewLevelVar(c.Level)
	opts := c.buildHandlerOptions()
	opts.Level = lvl
	return &leveledHandler{handler: create(w, opts), level: lvl}
}

func (c *Config) buildFileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

func (c *Config) buildHandlerOptions() *slog.HandlerOptions {
	opts := &slog.HandlerOptions{
		AddSource: c.AddSource,
		Level:     c.Level,
	}
	if c.AttrReplacer != nil {
		opts.ReplaceAttr = c.AttrReplacer
	}
	return opts
}
