package diag

// Severity ranks a diagnostic. The analyzer's observable contract knows two
// levels: resolution and indexing violations are errors, advisory findings
// are warnings. There is no informational level; a finding either affects
// the design or is not reported.
type Severity uint8

const (
	SevWarning Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
