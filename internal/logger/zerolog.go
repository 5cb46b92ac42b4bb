package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const componentField = "component"

type ZerologAdapter struct {
	logger zerolog.Logger
}

var _ Logger = (*ZerologAdapter)(nil)

func NewZerolog(writer io.Writer, level LogLevel) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level.zerolog()).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger writes human readable events to stderr so they never mix
// with the output of CLI subcommands.
func NewConsoleLogger(level LogLevel) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return NewZerolog(consoleWriter, level)
}

// NewNop discards everything.
func NewNop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.event(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.event(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.event(z.logger.Warn(), component, fields).Msg(message)
}

// Error uses the error text as the message so console output stays on one
// readable line.
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	z.event(z.logger.Error().Err(err), component, fields).Msg(msg)
}

// event tags e with the component and the caller's fields, written in key
// order.
func (z *ZerologAdapter) event(e *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	e = e.Str(componentField, component)
	if len(fields) > 0 {
		e = e.Fields(fields)
	}
	return e
}
