package logger

import (
	"context"
	"io"
)

// Logger is the printf-style logging interface shared by every package.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

// Options configures a Logger.
type Options struct {
	Level  string
	Format string // "text" or "json"
	File   string // optional rotating log file
	// Output defaults to stdout.
	Output io.Writer
}
