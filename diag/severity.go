package diag

// Severity ranks a diagnostic's impact, ordered from most to least severe
// so that sorting by Severity puts the worst problems first.
type Severity uint8

const (
	Fatal Severity = iota
	Error
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// IsFailure reports whether a diagnostic at this severity should make the
// document invalid (fatal or error).
func (s Severity) IsFailure() bool {
	return s <= Error
}

// IsMoreSevereThan reports whether s ranks above other.
func (s Severity) IsMoreSevereThan(other Severity) bool {
	return s < other
}
