// Package rendering implements the DocumentRenderer collaborator: it takes
// an assembled document and produces PDF bytes. Two engines are provided,
// a headless-Chromium renderer and a native PDF writer.
package rendering

import "fmt"

// RenderError represents a renderer failure. Renderer failures are
// ordinary returned results; the composing pipeline never invokes a
// renderer itself and callers decide whether to retry.
type RenderError struct {
	Engine  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error (%s): %s: %v", e.Engine, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error (%s): %s", e.Engine, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// OptionsError represents invalid renderer options.
type OptionsError struct {
	Message string
	Cause   error
}

func (e *OptionsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid renderer options: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid renderer options: %s", e.Message)
}

func (e *OptionsError) Unwrap() error {
	return e.Cause
}
