package core

import "fmt"

// StorageError represents a pattern document storage failure.
type StorageError struct {
	Operation string
	Path      string
	Err       error
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// RenderError represents a document rendering failure.
type RenderError struct {
	Document string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Document, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
