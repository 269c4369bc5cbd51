package domain

// UsernameWidth is the width of the ut_user field in a utmpx record.
const UsernameWidth = 32

type EventType int

const (
	EventOther EventType = iota
	EventSessionStart
	EventSessionEnd
)

func (t EventType) String() string {
	switch t {
	case EventSessionStart:
		return "session_start"
	case EventSessionEnd:
		return "session_end"
	default:
		return "other"
	}
}

type SessionEvent struct {
	Username  string
	Type      EventType
	Timestamp int64

	// Line, Host and PID are kept for diagnostics only.
	Line string
	Host string
	PID  int32
}

// NormalizeUsername cuts name to UsernameWidth bytes, the way the log stores it.
func NormalizeUsername(name string) string {
	if len(name) <= UsernameWidth {
		return name
	}

	return name[:UsernameWidth]
}
