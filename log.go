package csstidy

import (
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// Level classifies a telemetry record.
type Level int

// Levels.
const (
	Information Level = iota
	Warning
)

func (l Level) String() string {
	switch l {
	case Information:
		return "Information"
	case Warning:
		return "Warning"
	}
	return "Invalid(" + strconv.Itoa(int(l)) + ")"
}

// Logger receives one record per applied rewrite. It never influences the optimisation.
type Logger interface {
	Log(msg string, level Level)
}

// NopLogger discards all records.
type NopLogger struct{}

// Log implements Logger.
func (NopLogger) Log(string, Level) {}

// Record is a single telemetry record.
type Record struct {
	Message string
	Level   Level
}

// Recorder keeps all records in memory, it is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// Log implements Logger.
func (r *Recorder) Log(msg string, level Level) {
	r.mu.Lock()
	r.records = append(r.records, Record{msg, level})
	r.mu.Unlock()
}

// Records returns a copy of the records so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record{}, r.records...)
}

// Reset discards all records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = r.records[:0]
	r.mu.Unlock()
}

// ZapLogger forwards records to a zap logger, Information at info level and Warning at warn level.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger returns a Logger writing to log, a nil log discards everything.
func NewZapLogger(log *zap.Logger) *ZapLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapLogger{log: log.Named("optimise")}
}

// Log implements Logger.
func (z *ZapLogger) Log(msg string, level Level) {
	if level == Warning {
		z.log.Warn(msg, zap.Stringer("level", level))
		return
	}
	z.log.Info(msg, zap.Stringer("level", level))
}
