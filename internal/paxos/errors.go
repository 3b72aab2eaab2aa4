package paxos

import (
	"errors"
	"fmt"
)

var (
	ErrQuorumNotReached = errors.New("quorum not reached")

	ErrInvalidRecord = errors.New("invalid record")

	ErrInvalidIdentity = errors.New("invalid replica identity")

	ErrReplicaInactive = errors.New("replica inactive")
)

// QuorumError reports a phase that collected fewer than Needed affirmative votes.
type QuorumError struct {
	Phase  Phase
	Votes  int
	Needed int
}

func (e *QuorumError) Error() string {
	return fmt.Sprintf("%s: %d of %d votes", e.Phase, e.Votes, e.Needed)
}

func (e *QuorumError) Unwrap() error {
	return ErrQuorumNotReached
}
