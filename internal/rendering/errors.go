// Package rendering provides the two presentation targets of the resume
// pipeline: an interactive preview tree and a standalone HTML document used
// for PDF export. Both targets consume the same resolved layout blocks so
// that preview and export never drift apart.
package rendering

import "fmt"

// UnknownTemplateError indicates a template id that is not registered.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("template %q not found", e.ID)
}

// TemplateError represents an error parsing or executing an HTML template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
