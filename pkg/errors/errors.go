package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for common conditions
var (
	ErrTrackNotFound = errors.New("track not found")
	ErrUnknownScreen = errors.New("unknown screen")
	ErrEmptyAlbum    = errors.New("album has no tracks")
)

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrapf annotates err with a formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// PlayerError wraps errors with additional context
type PlayerError struct {
	Op      string // Operation that failed
	TrackID int    // Track id if applicable, 0 otherwise
	Err     error  // Underlying error
}

func (e *PlayerError) Error() string {
	if e.TrackID != 0 {
		return fmt.Sprintf("%s failed for track %d: %v", e.Op, e.TrackID, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PlayerError) Unwrap() error {
	return e.Err
}

// NewPlayerError creates a new PlayerError
func NewPlayerError(op string, trackID int, err error) *PlayerError {
	return &PlayerError{Op: op, TrackID: trackID, Err: err}
}
