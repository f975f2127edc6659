package model

// Severity is the single-letter level code attached to every logcat record.
type Severity string

// The five level codes logcat emits, least to most important.
const (
	SeverityVerbose Severity = "V"
	SeverityDebug   Severity = "D"
	SeverityInfo    Severity = "I"
	SeverityWarn    Severity = "W"
	SeverityError   Severity = "E"
)

// Known reports whether s is one of the five recognized level codes.
// The parser accepts any uppercase letter; rendering rejects the rest.
func (s Severity) Known() bool {
	switch s {
	case SeverityVerbose, SeverityDebug, SeverityInfo, SeverityWarn, SeverityError:
		return true
	}
	return false
}

// Record represents a single parsed logcat line.
type Record struct {
	Line        int      // 1-based line number, assigned by the driver
	Severity    Severity // single-letter level code, may be unrecognized
	Tag         string   // emitting component, whitespace-trimmed
	PID         string   // owning process id, whitespace-trimmed
	Timestamp   string   // verbatim timestamp text, empty in brief format
	Timestamped bool     // true once the stream is in time format
	Message     string   // remainder of the line, possibly empty
}
