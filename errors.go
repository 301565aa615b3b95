package relay

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Close when the session has already been closed.
var ErrClosed = errors.New("relay: session already closed")

// InitialLoadError indicates the loader failed during construction. No
// session is created when this error is returned.
type InitialLoadError struct {
	Err error
}

// Error returns the error message.
func (e *InitialLoadError) Error() string {
	return fmt.Sprintf("initial load failed: %v", e.Err)
}

// Unwrap returns the underlying loader error.
func (e *InitialLoadError) Unwrap() error { return e.Err }

// ReloadError indicates a background reload failed. The previously held
// value is untouched. Delivered to the error handler, never returned.
type ReloadError struct {
	Err error
}

// Error returns the error message.
func (e *ReloadError) Error() string {
	return fmt.Sprintf("reload failed: %v", e.Err)
}

// Unwrap returns the underlying loader error.
func (e *ReloadError) Unwrap() error { return e.Err }

// SourceError indicates a watch source failed to set up or encountered an
// error while watching. The session itself is unaffected; the held value
// remains the latest successful load.
type SourceError struct {
	Err error
}

// Error returns the error message.
func (e *SourceError) Error() string {
	return fmt.Sprintf("watch source failed: %v", e.Err)
}

// Unwrap returns the underlying source error.
func (e *SourceError) Unwrap() error { return e.Err }

// SubscriberPanicError indicates a subscriber callback panicked during a
// notification pass. The panic is recovered and the pass continues with the
// remaining subscribers.
type SubscriberPanicError struct {
	Value any
}

// Error returns the error message.
func (e *SubscriberPanicError) Error() string {
	return fmt.Sprintf("subscriber panicked: %v", e.Value)
}

// Unwrap returns the panic value if it was an error, nil otherwise.
func (e *SubscriberPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
