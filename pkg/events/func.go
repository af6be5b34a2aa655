package events

// Func adapts a plain function into a Handler.
type Func func(event Event)

func (f Func) Handle(event Event) {
	f(event)
}

// Discard returns a Handler that drops every event.
func Discard() Handler {
	return Func(func(Event) {})
}
