package curlart

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger with timestamps that filters below level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Timer logs how long a phase took once it is done.
type Timer struct {
	logger *log.Logger
	start  time.Time
}

// StartTimer starts timing a phase.
func StartTimer(l *log.Logger) *Timer {
	return &Timer{logger: l, start: time.Now()}
}

// Done logs msg at debug level along with the elapsed time.
func (t *Timer) Done(msg string) {
	t.logger.Debug(msg, "elapsed", time.Since(t.start).Round(time.Millisecond))
}
