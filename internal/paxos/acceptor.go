package paxos

import (
	"log/slog"
	"sync"

	"paxosbot/internal/metrics"
)

type acceptorSlot struct {
	mu         sync.Mutex
	promised   ProposalID
	hasPromise bool
	accepted   *Accepted
}

// Acceptor keeps promise and accept state per RoundKey. Calls for the same key
// are serialized on that key's slot; different keys never contend.
type Acceptor struct {
	mu    sync.Mutex
	slots map[RoundKey]*acceptorSlot
}

func NewAcceptor() *Acceptor {
	return &Acceptor{slots: make(map[RoundKey]*acceptorSlot)}
}

func (a *Acceptor) slot(key RoundKey) *acceptorSlot {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.slots[key]
	if !ok {
		s = &acceptorSlot{}
		a.slots[key] = s
	}
	return s
}

// Prepare promises id for rec.Key unless an equal or higher id was already
// promised. The granted promise carries the previously accepted value, if any.
func (a *Acceptor) Prepare(id ProposalID, rec Record) Promise {
	s := a.slot(rec.Key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasPromise && id <= s.promised {
		slog.Debug("promise rejected", "key", rec.Key, "proposal_id", id, "promised", s.promised)
		metrics.PromisesTotal.WithLabelValues("stale").Inc()
		return Promise{ProposalID: id}
	}

	s.promised = id
	s.hasPromise = true
	metrics.PromisesTotal.WithLabelValues("granted").Inc()

	p := Promise{Granted: true, ProposalID: id}
	if s.accepted != nil {
		prior := *s.accepted
		p.Prior = &prior
	}
	return p
}

// Accept stores (id, rec) when no promise exists for the key or id is exactly
// the promised id.
func (a *Acceptor) Accept(id ProposalID, rec Record) bool {
	s := a.slot(rec.Key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasPromise && id != s.promised {
		slog.Debug("proposal rejected", "key", rec.Key, "proposal_id", id, "promised", s.promised)
		metrics.ProposalsTotal.WithLabelValues("stale").Inc()
		return false
	}

	s.accepted = &Accepted{ProposalID: id, Record: rec}
	metrics.ProposalsTotal.WithLabelValues("accepted").Inc()
	return true
}

// Reset returns a committed key to a fresh round: the promise drops to
// NoProposal and the accepted value is forgotten.
func (a *Acceptor) Reset(key RoundKey) {
	s := a.slot(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.promised = NoProposal
	s.hasPromise = true
	s.accepted = nil
}

// State reports the promise and accepted value held for key.
func (a *Acceptor) State(key RoundKey) (ProposalID, *Accepted, bool) {
	a.mu.Lock()
	s, ok := a.slots[key]
	a.mu.Unlock()
	if !ok {
		return 0, nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accepted == nil {
		return s.promised, nil, s.hasPromise
	}
	acc := *s.accepted
	return s.promised, &acc, s.hasPromise
}
