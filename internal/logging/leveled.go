package logging

import "github.com/rs/zerolog"

// Leveled adapts a Logger to the key/value LeveledLogger interface of
// hashicorp/go-retryablehttp.
type Leveled struct {
	l *Logger
}

// NewLeveled wraps l. A nil logger discards.
func NewLeveled(l *Logger) *Leveled {
	if l == nil {
		l = Nop()
	}
	return &Leveled{l: l}
}

func (r *Leveled) Error(msg string, keysAndValues ...interface{}) {
	withFields(r.l.Error(), keysAndValues).Msg(msg)
}

func (r *Leveled) Warn(msg string, keysAndValues ...interface{}) {
	withFields(r.l.Warn(), keysAndValues).Msg(msg)
}

// Info is demoted to debug; the transport chatters on every request.
func (r *Leveled) Info(msg string, keysAndValues ...interface{}) {
	withFields(r.l.Debug(), keysAndValues).Msg(msg)
}

func (r *Leveled) Debug(msg string, keysAndValues ...interface{}) {
	withFields(r.l.Debug(), keysAndValues).Msg(msg)
}

func withFields(e *zerolog.Event, kv []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	return e
}
