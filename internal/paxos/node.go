package paxos

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type Config struct {
	// Identity is this replica's "host:port" endpoint.
	Identity  string
	Injection FailureInjection

	// PromiseDelay is applied to every RequestPromise answer, rejections included.
	PromiseDelay time.Duration
	// AcceptDelay separates a successful prepare phase from the accept phase.
	AcceptDelay time.Duration
	// CommitDelay separates a successful accept phase from the commit broadcast.
	CommitDelay time.Duration

	Adoption AdoptionPolicy
	Clock    func() time.Time
}

// Node hosts the proposer, acceptor and learner roles of one replica.
type Node struct {
	identity string

	acceptor *Acceptor
	crash    *CrashInjector
	learner  *Learner
	proposer *Proposer

	promiseDelay time.Duration
}

var _ Replica = (*Node)(nil)

func NewNode(cfg Config, dir Directory, history History) (*Node, error) {
	ids, err := NewIDGenerator(cfg.Identity, cfg.Clock)
	if err != nil {
		return nil, err
	}

	acceptor := NewAcceptor()
	n := &Node{
		identity: cfg.Identity,
		acceptor: acceptor,
		crash:    NewCrashInjector(cfg.Identity, cfg.Injection),
		learner:  NewLearner(history, acceptor),
		proposer: &Proposer{
			ids:         ids,
			dir:         dir,
			adoption:    cfg.Adoption,
			acceptDelay: cfg.AcceptDelay,
			commitDelay: cfg.CommitDelay,
		},
		promiseDelay: cfg.PromiseDelay,
	}

	slog.Info("paxos node created",
		"identity", cfg.Identity,
		"crash_mode", cfg.Injection.Mode,
		"crash_victim", n.crash.victim,
		"adoption", cfg.Adoption,
	)
	return n, nil
}

func (n *Node) Liveness() Liveness {
	return n.crash.State()
}

// Health fails while crash injection holds the replica down.
func (n *Node) Health() error {
	if l := n.Liveness(); l != Active {
		return fmt.Errorf("%w: %s is %s", ErrReplicaInactive, n.identity, l)
	}
	return nil
}

// CreateRecord runs a full round for rec with this replica as proposer.
func (n *Node) CreateRecord(ctx context.Context, rec Record) (Record, error) {
	return n.proposer.Run(ctx, rec)
}

func (n *Node) RequestPromise(ctx context.Context, id ProposalID, rec Record) (Promise, error) {
	if err := rec.Validate(); err != nil {
		return Promise{}, err
	}

	promise := Promise{ProposalID: id}
	if n.crash.OnPrepare() {
		promise = n.acceptor.Prepare(id, rec)
	}

	if err := sleep(ctx, n.promiseDelay); err != nil {
		return Promise{}, err
	}
	return promise, nil
}

func (n *Node) Propose(_ context.Context, id, prior ProposalID, rec Record) (bool, error) {
	if err := rec.Validate(); err != nil {
		return false, err
	}
	if !n.crash.OnAccept() {
		return false, nil
	}

	ok := n.acceptor.Accept(id, rec)
	slog.Debug("proposal handled", "key", rec.Key, "proposal_id", id, "prior_id", prior, "accepted", ok)
	return ok, nil
}

func (n *Node) Commit(_ context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	n.learner.Learn(rec)
	return nil
}
