package search

import "github.com/pkg/errors"

var (
	// ErrConfiguration is returned when the search credentials cannot be loaded.
	ErrConfiguration = errors.New("search is not configured")
	// ErrAuthentication is returned when the search credentials are blank.
	ErrAuthentication = errors.New("search credentials are empty")
	// ErrUnavailable marks a failure of the query itself. Clients report it
	// through their failure hook and answer with an empty result list.
	ErrUnavailable = errors.New("search unavailable")
)

type unavailableError struct {
	cause error
}

func (e *unavailableError) Error() string {
	return ErrUnavailable.Error() + ": " + e.cause.Error()
}

func (e *unavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *unavailableError) Unwrap() error {
	return e.cause
}

// Unavailable marks err as a query-time failure. The returned error matches
// ErrUnavailable with errors.Is and still unwraps to err.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}

	return &unavailableError{cause: err}
}
