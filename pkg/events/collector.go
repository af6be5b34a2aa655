package events

func NewCollector(handler Handler) *Collector {
	if handler == nil {
		handler = Discard()
	}
	return &Collector{
		Events:  make([]Event, 0),
		handler: handler,
	}
}

// Collector records every event it sees before forwarding to the wrapped
// handler. Not safe for concurrent use; the pipeline is sequential.
type Collector struct {
	Events  []Event
	handler Handler
}

func (c *Collector) Handle(event Event) {
	c.Events = append(c.Events, event)
	c.handler.Handle(event)
}

func (c *Collector) AtLevel(level Level) []Event {
	out := make([]Event, 0)
	for _, event := range c.Events {
		if event.Level >= level {
			out = append(out, event)
		}
	}
	return out
}

func (c *Collector) HasLevel(level Level) bool {
	for _, event := range c.Events {
		if event.Level == level {
			return true
		}
	}

	return false
}

func (c *Collector) MaxLevel() Level {
	max := Level(0)
	for _, event := range c.Events {
		if event.Level > max {
			max = event.Level
		}
	}
	return max
}
