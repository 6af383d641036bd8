// Package export turns a document snapshot into a downloadable PDF by
// rendering the static HTML target in a headless browser.
package export

import "fmt"

// RenderServiceError indicates the headless browser pipeline failed. Callers
// can fall back to serving the static HTML for client-side printing.
type RenderServiceError struct {
	Message string
	Cause   error
}

func (e *RenderServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render service error: %s", e.Message)
}

func (e *RenderServiceError) Unwrap() error {
	return e.Cause
}
