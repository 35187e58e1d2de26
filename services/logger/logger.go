package logger

import (
	"io"
	"log"
	"os"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng log package
type DefaultLogger struct {
	level Level
	out   *log.Logger
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(level, os.Stderr)
}

// NewLogger ghi log ra w
func NewLogger(level Level, w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(w, "", log.LstdFlags),
	}
}

// ParseLevel đọc mức log từ biến môi trường, mặc định là info
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.out.Printf("[INFO] "+format, v...)
	}
}

func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	if l.level <= WarnLevel {
		l.out.Printf("[WARN] "+format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.out.Printf("[ERROR] "+format, v...)
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.out.Printf("[DEBUG] "+format, v...)
	}
}
