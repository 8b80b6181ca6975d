package commands

import (
	"errors"
	"fmt"
)

// ErrExit signals the read-eval loop to stop cleanly. It is neither a
// user error nor a collaborator failure; the loop checks for it with
// errors.Is and shuts the session down with exit code 0.
var ErrExit = errors.New("exit")

// ParamError is a user mistake: an unknown command, a bad argument value,
// a machine that does not exist. The loop prints the message on the error
// stream and keeps prompting. Everything else returned by a command body
// propagates and terminates the session.
type ParamError struct {
	msg string
}

// NewParamError builds a ParamError from a format string.
func NewParamError(format string, args ...interface{}) *ParamError {
	return &ParamError{msg: fmt.Sprintf(format, args...)}
}

func (e *ParamError) Error() string {
	return e.msg
}
