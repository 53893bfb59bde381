package quizdata

import (
	"errors"
	"fmt"
)

// ErrDataDirNotFound is returned by CheckDataDir when the configured
// fixture directory does not exist.
var ErrDataDirNotFound = errors.New("quizdata: data directory not found")

// ErrFixture indicates a fixture file exists but is unreadable or fails
// its schema.
type ErrFixture struct {
	File string
	Err  error
}

func (e *ErrFixture) Error() string {
	return fmt.Sprintf("quizdata: fixture %s: %v", e.File, e.Err)
}

func (e *ErrFixture) Unwrap() error { return e.Err }

// ErrMalformedResponse indicates a response map key that is not a numeric
// question ID.
type ErrMalformedResponse struct {
	QuestionID string
	Err        error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("quizdata: malformed question id %q: %v", e.QuestionID, e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }
