// Package zerolog is a minimal copy of the zerolog API used by the analyzer testdata.
package zerolog

type Logger struct{}

type Event struct{}

func (l Logger) Info() *Event  { return &Event{} }
func (l Logger) Error() *Event { return &Event{} }
func (l Logger) Debug() *Event { return &Event{} }

func (e *Event) Err(err error) *Event           { return e }
func (e *Event) Str(key, val string) *Event     { return e }
func (e *Event) Int(key string, val int) *Event { return e }
func (e *Event) Msg(msg string)                 {}
func (e *Event) Send()                          {}
