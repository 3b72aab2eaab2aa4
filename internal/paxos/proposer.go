package paxos

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"paxosbot/internal/metrics"
)

const (
	ReplicaCount = 5
	Majority     = ReplicaCount/2 + 1
)

type Phase int

const (
	PhasePrepare Phase = iota + 1
	PhaseAccept
	PhaseCommit
)

func (p Phase) String() string {
	switch p {
	case PhasePrepare:
		return "prepare"
	case PhaseAccept:
		return "accept"
	case PhaseCommit:
		return "commit"
	default:
		return "unknown"
	}
}

// AdoptionPolicy picks the piggybacked value a proposer carries into the
// accept phase when several promises report one.
type AdoptionPolicy int

const (
	// AdoptLastResponder takes the last piggybacked value in directory order.
	AdoptLastResponder AdoptionPolicy = iota
	// AdoptHighestProposal takes the value accepted under the highest proposal id.
	AdoptHighestProposal
)

func (a AdoptionPolicy) String() string {
	if a == AdoptHighestProposal {
		return "highest-proposal"
	}
	return "last-responder"
}

func ParseAdoptionPolicy(s string) (AdoptionPolicy, error) {
	switch strings.ToLower(s) {
	case "", "last-responder":
		return AdoptLastResponder, nil
	case "highest-proposal":
		return AdoptHighestProposal, nil
	default:
		return AdoptLastResponder, fmt.Errorf("unknown adoption policy %q", s)
	}
}

type Proposer struct {
	ids      *IDGenerator
	dir      Directory
	adoption AdoptionPolicy

	acceptDelay time.Duration
	commitDelay time.Duration
}

// Run drives one round for rec and returns the record that was committed,
// which is a piggybacked value rather than rec when one was adopted.
func (p *Proposer) Run(ctx context.Context, rec Record) (Record, error) {
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}

	start := time.Now()
	id := p.ids.Next()
	endpoints := p.dir.Endpoints()
	log := slog.With("proposal_id", id, "key", rec.Key)

	promises, votes := p.prepare(ctx, endpoints, id, rec)
	log.Info("prepare phase complete", "votes", votes)
	if votes < Majority {
		return Record{}, p.abandon(log, PhasePrepare, votes)
	}

	value, prior := rec, ProposalID(0)
	if adopted := p.adopt(promises); adopted != nil {
		value, prior = adopted.Record, adopted.ProposalID
		metrics.AdoptionsTotal.Inc()
		log.Info("adopting piggybacked value", "prior_id", prior, "value", value.Value())
	}

	if err := sleep(ctx, p.acceptDelay); err != nil {
		return Record{}, err
	}

	votes = p.accept(ctx, endpoints, id, prior, value)
	log.Info("accept phase complete", "votes", votes)
	if votes < Majority {
		return Record{}, p.abandon(log, PhaseAccept, votes)
	}

	if err := sleep(ctx, p.commitDelay); err != nil {
		return Record{}, err
	}

	p.commit(ctx, endpoints, value)

	metrics.RoundsTotal.WithLabelValues("success").Inc()
	metrics.RoundDuration.Observe(time.Since(start).Seconds())
	log.Info("round decided", "value", value.Value())
	return value, nil
}

func (p *Proposer) abandon(log *slog.Logger, phase Phase, votes int) error {
	metrics.RoundsTotal.WithLabelValues("failure").Inc()
	log.Warn("round abandoned", "phase", phase, "votes", votes, "needed", Majority)
	return &QuorumError{Phase: phase, Votes: votes, Needed: Majority}
}

func (p *Proposer) prepare(ctx context.Context, endpoints []string, id ProposalID, rec Record) ([]Promise, int) {
	promises := make([]Promise, len(endpoints))
	votes := p.broadcast(ctx, PhasePrepare, endpoints, func(ctx context.Context, i int, r Replica) (bool, error) {
		promise, err := r.RequestPromise(ctx, id, rec)
		if err != nil {
			return false, err
		}
		slog.Debug("promise reply", "from", endpoints[i], "reply", promise.Encode())
		promises[i] = promise
		return promise.Granted, nil
	})
	return promises, votes
}

func (p *Proposer) accept(ctx context.Context, endpoints []string, id, prior ProposalID, rec Record) int {
	return p.broadcast(ctx, PhaseAccept, endpoints, func(ctx context.Context, _ int, r Replica) (bool, error) {
		return r.Propose(ctx, id, prior, rec)
	})
}

func (p *Proposer) adopt(promises []Promise) *Accepted {
	var chosen *Accepted
	for _, promise := range promises {
		if !promise.Granted || promise.Prior == nil {
			continue
		}
		if p.adoption == AdoptHighestProposal && chosen != nil && promise.Prior.ProposalID <= chosen.ProposalID {
			continue
		}
		chosen = promise.Prior
	}
	return chosen
}

// broadcast calls fn on every endpoint in parallel and counts affirmative
// answers. It stops waiting as soon as a majority is out of reach; otherwise
// every answer is in before it returns.
func (p *Proposer) broadcast(
	ctx context.Context,
	phase Phase,
	endpoints []string,
	fn func(ctx context.Context, i int, r Replica) (bool, error),
) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	answers := make(chan bool, len(endpoints))
	for i, endpoint := range endpoints {
		go func() {
			answers <- p.call(ctx, phase, i, endpoint, fn)
		}()
	}

	granted, failed := 0, 0
	tolerable := len(endpoints) - Majority
	for range endpoints {
		if <-answers {
			granted++
			continue
		}
		failed++
		if failed > tolerable {
			slog.Debug("majority out of reach", "phase", phase, "failed", failed)
			break
		}
	}

	metrics.PhaseVotes.WithLabelValues(phase.String()).Observe(float64(granted))
	return granted
}

func (p *Proposer) call(
	ctx context.Context,
	phase Phase,
	i int,
	endpoint string,
	fn func(ctx context.Context, i int, r Replica) (bool, error),
) bool {
	r, err := p.dir.Resolve(ctx, endpoint)
	if err != nil {
		slog.Warn("replica lookup failed", "phase", phase, "endpoint", endpoint, "error", err)
		return false
	}

	ok, err := fn(ctx, i, r)
	if err != nil {
		slog.Warn("replica call failed", "phase", phase, "endpoint", endpoint, "error", err)
		return false
	}
	return ok
}

// commit is best effort. Delivery failures are logged and do not change the
// outcome of the round.
func (p *Proposer) commit(ctx context.Context, endpoints []string, rec Record) {
	var wg sync.WaitGroup
	for _, endpoint := range endpoints {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.call(ctx, PhaseCommit, 0, endpoint, func(ctx context.Context, _ int, r Replica) (bool, error) {
				err := r.Commit(ctx, rec)
				if err != nil {
					metrics.CommitBroadcastFailures.Inc()
				}
				return err == nil, err
			})
		}()
	}
	wg.Wait()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
