package canmsg

import (
	"context"
	"io"
	"log/slog"
)

// LogOption is a bitmask for selecting which operations to log.
type LogOption uint8

const (
	LogNone  LogOption = 0
	LogRead  LogOption = 1 << iota
	LogWrite
	LogAll = LogRead | LogWrite
)

// LoggedBus is a Bus decorator that logs Send and Receive using a
// slog.Logger. Close is forwarded to the inner Bus when it is an
// io.Closer.
type LoggedBus struct {
	inner  Bus
	logger *slog.Logger
	level  slog.Level
	opts   LogOption
	filter Filter
}

// NewLoggedBus wraps inner and logs the selected operations at level.
func NewLoggedBus(inner Bus, logger *slog.Logger, level slog.Level, opts LogOption) *LoggedBus {
	return NewLoggedBusWithFilter(inner, logger, level, opts, nil)
}

// NewLoggedBusWithFilter is like NewLoggedBus but only logs messages that
// satisfy filter. A nil filter logs every message. Errors are always
// logged for the selected operations.
func NewLoggedBusWithFilter(inner Bus, logger *slog.Logger, level slog.Level, opts LogOption, filter Filter) *LoggedBus {
	return &LoggedBus{
		inner:  inner,
		logger: logger,
		level:  level,
		opts:   opts,
		filter: filter,
	}
}

// Send logs the message and the result when write logging is enabled.
func (l *LoggedBus) Send(m Message) error {
	if l.opts&LogWrite != 0 && (l.filter == nil || l.filter(m)) {
		l.logger.Log(context.Background(), l.level, "canmsg send", messageAttrs(m)...)
	}
	err := l.inner.Send(m)
	if l.opts&LogWrite != 0 && err != nil {
		l.logger.Log(context.Background(), slog.LevelError, "canmsg send error",
			"id", m.id.String(),
			"error", err,
		)
	}
	return err
}

// Receive logs the received message or error when read logging is
// enabled.
func (l *LoggedBus) Receive() (Message, error) {
	m, err := l.inner.Receive()
	if l.opts&LogRead == 0 {
		return m, err
	}
	if err != nil {
		l.logger.Log(context.Background(), slog.LevelError, "canmsg receive error",
			"error", err,
		)
	} else if l.filter == nil || l.filter(m) {
		l.logger.Log(context.Background(), l.level, "canmsg receive", messageAttrs(m)...)
	}
	return m, err
}

// Close forwards to the inner Bus without logging.
func (l *LoggedBus) Close() error {
	if c, ok := l.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func messageAttrs(m Message) []any {
	return []any{
		"id", m.id.String(),
		"extended", m.id.IsExtended(),
		"len", int(m.length),
		"data", m.Data(),
		"string", m.String(),
	}
}
