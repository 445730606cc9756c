package chain

import (
	"errors"
	"fmt"
)

// CodeNotProduced is the status code the node answers with for a height it
// has not produced or does not keep.
const CodeNotProduced = 3

var ErrMalformedResponse = errors.New("malformed response")

// StatusError is a non-success answer from the node.
type StatusError struct {
	HTTPStatus int
	Code       int64
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chain: http %d code %d: %s", e.HTTPStatus, e.Code, e.Message)
}

// IsNotProduced reports whether err means the requested height has no block.
func IsNotProduced(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == CodeNotProduced
}
