package lib

import (
	"fmt"
)

type wrappedError struct {
	parent error
	child  error
}

// WrapError joins two errors so that both of them are matched by errors.Is/errors.As.
// Parent is usually a package level sentinel error, child is the cause
func WrapError(parent error, child error) error {
	return &wrappedError{parent: parent, child: child}
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.parent, e.child)
}

func (e *wrappedError) Unwrap() []error {
	return []error{e.parent, e.child}
}
