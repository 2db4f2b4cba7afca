package service

import "errors"

var (
	ErrWorkspaceNotFound   = errors.New("workspace not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrUserAlreadyAssigned = errors.New("user already assigned to workspace")
)

// isClientError reports whether err is an expected outcome rather than a failure
// worth logging at error level.
func isClientError(err error) bool {
	return errors.Is(err, ErrWorkspaceNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrUserAlreadyAssigned)
}
