package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ConsoleOutput formats logs for human readability.
type ConsoleOutput struct {
	mu     sync.Mutex
	writer io.Writer
	color  bool // Whether to use ANSI color codes
}

type ConsoleOutputOption func(*ConsoleOutput)

func WithColor(enabled bool) ConsoleOutputOption {
	return func(c *ConsoleOutput) {
		c.color = enabled
	}
}

func NewConsoleOutput(useStderr bool, opts ...ConsoleOutputOption) *ConsoleOutput {
	// Choose the appropriate writer based on useStderr flag
	writer := os.Stdout
	if useStderr {
		writer = os.Stderr
	}

	c := &ConsoleOutput{
		writer: writer,
		color:  true, // Enable colors by default
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Helper function to get ANSI color codes for different severity levels.
func getSeverityColor(s Severity) string {
	switch s {
	case DEBUG:
		return "\033[37m" // Gray
	case INFO:
		return "\033[32m" // Green
	case WARN:
		return "\033[33m" // Yellow
	case ERROR:
		return "\033[31m" // Red
	case FATAL:
		return "\033[35m" // Magenta
	default:
		return ""
	}
}

func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}

	var result string
	for k, v := range fields {
		result += fmt.Sprintf("%s=%v ", k, v)
	}

	return result
}

func (o *ConsoleOutput) Write(e LogEntry) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	timestamp := time.Unix(0, e.Time).Format("2006-01-02 15:04:05.000")

	var levelColor, resetColor string
	if o.color {
		levelColor = getSeverityColor(e.Severity)
		resetColor = "\033[0m"
	}

	// Format for easy reading
	basic := fmt.Sprintf("%s %s%-5s%s [%s:%d] %s",
		timestamp,
		levelColor,
		e.Severity,
		resetColor,
		e.File,
		e.Line,
		e.Message,
	)

	// Add solver-specific information if present
	if e.Generation >= 0 {
		basic += fmt.Sprintf(" [gen=%d]", e.Generation)
	}

	if e.SearchInfo != nil {
		basic += fmt.Sprintf(" [best=%.4f mode=%s]", e.SearchInfo.BestCost, e.SearchInfo.Mode)
	}
	// Add structured fields if any exist
	if len(e.Fields) > 0 {
		fields := formatFields(e.Fields)
		basic += " " + fields
	}

	_, err := fmt.Fprintln(o.writer, basic)

	return err
}

func (c *ConsoleOutput) Sync() error {
	if syncer, ok := c.writer.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Close cleans up any resources.
func (c *ConsoleOutput) Close() error {
	if closer, ok := c.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// FileOutput appends plain-text entries to a log file with buffering and
// optional size-based rotation.
type FileOutput struct {
	mu       sync.Mutex
	path     string
	file     *os.File
	buf      *bufio.Writer
	size     int64
	maxBytes int64
}

type FileOutputOption func(*FileOutput)

// WithRotateBytes sets the size threshold after which the current file is
// rotated to path+".1". Zero disables rotation.
func WithRotateBytes(n int64) FileOutputOption {
	return func(o *FileOutput) {
		o.maxBytes = n
	}
}

func NewFileOutput(path string, opts ...FileOutputOption) (*FileOutput, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	o := &FileOutput{
		path: path,
		file: f,
		buf:  bufio.NewWriter(f),
		size: info.Size(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

func (o *FileOutput) Write(e LogEntry) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	timestamp := time.Unix(0, e.Time).Format(time.RFC3339Nano)
	line := fmt.Sprintf("%s %-5s [%s:%d] %s", timestamp, e.Severity, e.File, e.Line, e.Message)
	if e.Generation >= 0 {
		line += fmt.Sprintf(" gen=%d", e.Generation)
	}
	if e.SearchInfo != nil {
		line += fmt.Sprintf(" best=%.6f improvement=%.6f mode=%s",
			e.SearchInfo.BestCost, e.SearchInfo.Improvement, e.SearchInfo.Mode)
	}
	if len(e.Fields) > 0 {
		line += " " + formatFields(e.Fields)
	}

	n, err := fmt.Fprintln(o.buf, line)
	if err != nil {
		return err
	}
	o.size += int64(n)

	if o.maxBytes > 0 && o.size >= o.maxBytes {
		return o.rotate()
	}
	return nil
}

// rotate moves the current file to path+".1" (replacing any previous
// rotation) and starts a fresh file. Caller holds the lock.
func (o *FileOutput) rotate() error {
	if err := o.buf.Flush(); err != nil {
		return err
	}
	if err := o.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(o.path, o.path+".1"); err != nil {
		return err
	}

	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	o.file = f
	o.buf = bufio.NewWriter(f)
	o.size = 0
	return nil
}

func (o *FileOutput) Sync() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.buf.Flush(); err != nil {
		return err
	}
	return o.file.Sync()
}

func (o *FileOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.buf.Flush(); err != nil {
		return err
	}
	return o.file.Close()
}
