package diag

import (
	"govhdl/internal/source"
)

// Note attaches secondary context to a diagnostic, e.g. the span of an
// earlier conflicting declaration.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Error builds an error diagnostic at the given span.
func Error(code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: SevError, Code: code, Message: msg, Primary: primary}
}

// Warning builds a warning diagnostic at the given span.
func Warning(code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: SevWarning, Code: code, Message: msg, Primary: primary}
}

// WithNote returns a copy of the diagnostic with an extra note appended.
func (d Diagnostic) WithNote(span source.Span, msg string) Diagnostic {
	notes := make([]Note, 0, len(d.Notes)+1)
	notes = append(notes, d.Notes...)
	notes = append(notes, Note{Span: span, Msg: msg})
	d.Notes = notes
	return d
}
