package events

type Level uint8

const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single diagnostic emitted by a pipeline phase.
type Event struct {
	Level   Level
	Phase   string
	Message string
	Err     error
}

type Handler interface {
	Handle(event Event)
}
