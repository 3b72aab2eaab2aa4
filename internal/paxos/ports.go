package paxos

import "context"

// Replica is the consensus surface one replica exposes to proposers.
// A returned error means the call did not complete; a refusal is reported
// through the result, never as an error.
type Replica interface {
	RequestPromise(ctx context.Context, id ProposalID, rec Record) (Promise, error)
	Propose(ctx context.Context, id, prior ProposalID, rec Record) (bool, error)
	Commit(ctx context.Context, rec Record) error
}

type Directory interface {
	Endpoints() []string
	Resolve(ctx context.Context, endpoint string) (Replica, error)
}

type History interface {
	Put(rec Record)
}
