package election

import "errors"

var (
	ErrUnknownEndpoint = errors.New("endpoint is not part of the ring")

	ErrNoActiveNode = errors.New("no active node left to run the election")
)
