// Package warning defines the structured diagnostic emitted by field and
// record parsing: a value attached to the field it concerns, never an
// aborting error.
package warning

// Severity orders diagnostics by seriousness.
type Severity int

const (
	// Info marks a recoverable formatting artifact.
	Info Severity = iota
	// Warn marks a per-field parse failure; a default value was substituted.
	Warn
	// Critical marks a record that cannot be reliably represented.
	Critical
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warn:
		return "Warning"
	case Critical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Warning is a single structured diagnostic against one field of one line.
type Warning struct {
	FieldName   string
	FieldTitle  string
	Source      string
	Severity    Severity
	Description string
}

// IsCritical reports whether w has Critical severity.
func (w Warning) IsCritical() bool {
	return w.Severity == Critical
}

// New builds a Warning with the given severity and a formatted description.
func New(fieldName, fieldTitle, source string, sev Severity, description string) Warning {
	return Warning{
		FieldName:   fieldName,
		FieldTitle:  fieldTitle,
		Source:      source,
		Severity:    sev,
		Description: description,
	}
}
