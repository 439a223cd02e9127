package encode

import (
	"errors"
	"fmt"
)

// ErrMismatchedSubprocesses reports run information whose NPRUP does
// not match the length of XSECUP, XERRUP, XMAXUP or LPRUP.
var ErrMismatchedSubprocesses = errors.New(
	"mismatch between NPRUP and the length of at least one of XSECUP, XERRUP, XMAXUP, LPRUP")

// ErrMismatchedParticles reports an event whose NUP does not match
// the length of IDUP, ISTUP, MOTHUP, ICOLUP, PUP, VTIMUP or SPINUP.
var ErrMismatchedParticles = errors.New(
	"mismatch between NUP and the length of at least one of IDUP, ISTUP, MOTHUP, ICOLUP, PUP, VTIMUP, SPINUP")

// ErrWriterFailed reports a write on a writer whose stream already
// failed. The requested output was written, but the stream may be
// incomplete or corrupt.
var ErrWriterFailed = errors.New(
	"writer is in the Failed state; output was written but the stream may be broken")

// StateError reports a write call that is not legal in the writer's
// current state. Nothing is written and the state does not change.
type StateError struct {
	State State
	Op    string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("writer is in state %s, cannot write %s", e.State, e.Op)
}
