package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "INFO"
	}
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	Message   string `json:"message"`
}

// Logger writes colored lines to a terminal writer and, when a log file is
// configured, JSON lines to the file.
type Logger struct {
	mu   sync.Mutex
	out  io.Writer
	file *os.File
}

func New() *Logger {
	return &Logger{out: os.Stdout}
}

// NewWithFile also appends JSON entries to the given file path.
func NewWithFile(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Logger{out: os.Stdout, file: file}, nil
}

func (l *Logger) log(level Level, category, message string) {
	e := entry{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Level:     level.String(),
		Category:  strings.ToUpper(category),
		Message:   message,
	}

	var levelColor *color.Color
	switch level {
	case DEBUG:
		levelColor = color.New(color.FgCyan)
	case WARN:
		levelColor = color.New(color.FgYellow)
	case ERROR, FATAL:
		levelColor = color.New(color.FgRed)
	default:
		levelColor = color.New(color.FgGreen)
	}

	line := fmt.Sprintf("%s %s [%s] %s\n",
		color.New(color.FgBlue).Sprint(e.Timestamp[11:19]),
		levelColor.Sprintf("%-5s", e.Level),
		levelColor.Add(color.Bold).Sprint(e.Category),
		e.Message,
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, line)
	if l.file != nil {
		if raw, err := json.Marshal(e); err == nil {
			l.file.Write(append(raw, '\n'))
		}
	}
}

func (l *Logger) Debug(category, message string) { l.log(DEBUG, category, message) }
func (l *Logger) Info(category, message string)  { l.log(INFO, category, message) }
func (l *Logger) Warn(category, message string)  { l.log(WARN, category, message) }
func (l *Logger) Error(category, message string) { l.log(ERROR, category, message) }

func (l *Logger) Fatal(category, message string) {
	l.log(FATAL, category, message)
	os.Exit(1)
}

func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}
