/*
Package zerologadapter implements tracing with zerolog.

Trace output is written as structured log events. Parameters given by P(…)
become event fields:

	tracer.P("state", 17).Debugf("following failure link")

results in

	{"level":"debug","state":17,"time":"…","message":"following failure link"}

Register the adapter before tracing is configured:

	tracing.RegisterTraceAdapter("zerolog", zerologadapter.GetAdapter(), false)
*/
package zerologadapter

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rs/zerolog"
)

// Tracer is a tracing.Trace on top of a zerolog.Logger.
type Tracer struct {
	log   zerolog.Logger
	level tracing.TraceLevel
}

var _ tracing.Trace = &Tracer{}

// New creates a tracer writing JSON events to stderr at level Error.
func New() tracing.Trace {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a tracer writing JSON events to w at level Error.
func NewWithWriter(w io.Writer) *Tracer {
	return &Tracer{
		log:   zerolog.New(w).With().Timestamp().Logger(),
		level: tracing.LevelError,
	}
}

// NewConsole creates a tracer writing human readable output to stderr.
func NewConsole() tracing.Trace {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr})
}

// GetAdapter returns an adapter producing JSON tracers.
func GetAdapter() tracing.Adapter {
	return New
}

// GetConsoleAdapter returns an adapter producing console tracers.
func GetConsoleAdapter() tracing.Adapter {
	return NewConsole
}

// P returns a tracer which adds field key to every event.
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &entry{tracer: t, ctx: t.log.With().Interface(key, val)}
}

// Debugf traces a debug message.
func (t *Tracer) Debugf(s string, args ...interface{}) {
	t.output(t.log, tracing.LevelDebug, s, args...)
}

// Infof traces an informational message.
func (t *Tracer) Infof(s string, args ...interface{}) {
	t.output(t.log, tracing.LevelInfo, s, args...)
}

// Errorf traces an error message.
func (t *Tracer) Errorf(s string, args ...interface{}) {
	t.output(t.log, tracing.LevelError, s, args...)
}

// SetTraceLevel sets the minimum level of events to output.
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level = l
}

// GetTraceLevel returns the current trace level.
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	return t.level
}

// SetOutput redirects events to writer.
func (t *Tracer) SetOutput(writer io.Writer) {
	t.log = t.log.Output(writer)
}

func (t *Tracer) output(log zerolog.Logger, l tracing.TraceLevel, s string, args ...interface{}) {
	if t.level < l {
		return
	}
	var ev *zerolog.Event
	switch l {
	case tracing.LevelDebug:
		ev = log.Debug()
	case tracing.LevelInfo:
		ev = log.Info()
	default:
		ev = log.Error()
	}
	ev.Msg(fmt.Sprintf(s, args...))
}

// entry carries fields added by P.
type entry struct {
	tracer *Tracer
	ctx    zerolog.Context
}

func (e *entry) P(key string, val interface{}) tracing.Trace {
	return &entry{tracer: e.tracer, ctx: e.ctx.Interface(key, val)}
}

func (e *entry) Debugf(s string, args ...interface{}) {
	e.tracer.output(e.ctx.Logger(), tracing.LevelDebug, s, args...)
}

func (e *entry) Infof(s string, args ...interface{}) {
	e.tracer.output(e.ctx.Logger(), tracing.LevelInfo, s, args...)
}

func (e *entry) Errorf(s string, args ...interface{}) {
	e.tracer.output(e.ctx.Logger(), tracing.LevelError, s, args...)
}

func (e *entry) SetTraceLevel(tracing.TraceLevel)  {}
func (e *entry) GetTraceLevel() tracing.TraceLevel { return e.tracer.GetTraceLevel() }
func (e *entry) SetOutput(io.Writer)               {}
