package domain

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is the sentinel for upstream fetch failures.
// Use errors.Is to test for it regardless of wrapping depth.
var ErrFetchFailed = errors.New("fetch failed")

// FetchError reports an upstream fetch failure for a single resource.
// ID is zero for collection-level resources such as the user list.
type FetchError struct {
	Resource string
	ID       int
	Err      error
}

func (e *FetchError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("fetch %s %d: %v", e.Resource, e.ID, e.Err)
	}

	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes every FetchError match ErrFetchFailed.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
