// jpoffice - a word-processor engine and PDF export pipeline

package pdfobj

import "errors"

// Error is a plain sentinel error type for simple, static PDF object-model
// error conditions, following the teacher library's convention of small
// named error values rather than a single generic error.
type Error string

func (e Error) Error() string { return string(e) }

var (
	// ErrDuplicateRef is returned by a writer when a reference is written
	// twice.
	ErrDuplicateRef = errors.New("object already written")

	// ErrUnreservedRef is returned when an object is filled in for a
	// reference that was never reserved via Alloc.
	ErrUnreservedRef = errors.New("reference was not reserved")
)
