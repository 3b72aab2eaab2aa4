package election

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"paxosbot/internal/metrics"
)

type State int

const (
	Active State = iota
	Inactive
)

func (s State) String() string {
	if s == Inactive {
		return "inactive"
	}
	return "active"
}

// Node is one ring member. ID is its election priority.
type Node struct {
	ID       int
	Endpoint string
	State    State
}

// Hop is one message passed between ring neighbours. During the election walk
// CarriedID is the highest id seen so far; during the announcement it is the
// leader's id.
type Hop struct {
	From      Node
	To        Node
	CarriedID int
}

type Result struct {
	Initiator        Node
	Leader           Node
	ElectionHops     []Hop
	AnnouncementHops []Hop
}

type Ring struct {
	nodes []Node
	rand  *rand.Rand
}

type Option func(*Ring)

func WithRand(r *rand.Rand) Option {
	return func(ring *Ring) {
		ring.rand = r
	}
}

// NewRing builds a ring in endpoint order; a node's id is its position.
func NewRing(endpoints []string, opts ...Option) *Ring {
	r := &Ring{nodes: make([]Node, len(endpoints))}
	for i, endpoint := range endpoints {
		r.nodes[i] = Node{ID: i, Endpoint: endpoint, State: Active}
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rand == nil {
		r.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return r
}

func (r *Ring) MarkFailed(endpoint string) error {
	for i := range r.nodes {
		if r.nodes[i].Endpoint == endpoint {
			r.nodes[i].State = Inactive
			slog.Info("node marked failed", "endpoint", endpoint, "id", r.nodes[i].ID)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownEndpoint, endpoint)
}

// Run elects the active node with the highest id. A random active node starts
// the election message around the ring; the winner then circulates the
// leader announcement. Inactive nodes are skipped by both walks.
func (r *Ring) Run() (Result, error) {
	active := r.activeIndexes()
	if len(active) == 0 {
		return Result{}, ErrNoActiveNode
	}
	metrics.ElectionsTotal.Inc()

	initiator := active[r.rand.IntN(len(active))]
	leader := r.leaderIndex()
	res := Result{
		Initiator: r.nodes[initiator],
		Leader:    r.nodes[leader],
	}
	slog.Info("election initiated", "initiator", res.Initiator.Endpoint)

	maxSeen := r.nodes[initiator].ID
	res.ElectionHops = r.walk(initiator, func(from, to Node) int {
		carried := maxSeen
		maxSeen = max(maxSeen, to.ID)
		slog.Info("election id passed", "from", from.Endpoint, "to", to.Endpoint, "election_id", carried)
		return carried
	})

	slog.Info("leader elected", "leader", res.Leader.Endpoint, "id", res.Leader.ID)

	res.AnnouncementHops = r.walk(leader, func(from, to Node) int {
		slog.Info("leader announced", "from", from.Endpoint, "to", to.Endpoint, "leader_id", res.Leader.ID)
		return res.Leader.ID
	})

	slog.Info("election complete, clients can reconnect", "endpoint", res.Leader.Endpoint)
	return res, nil
}

// walk passes one message per active neighbour, starting at start and
// stopping once the message would come back to it.
func (r *Ring) walk(start int, pass func(from, to Node) int) []Hop {
	var hops []Hop
	prev := start
	for next := r.succ(start); next != start; next = r.succ(next) {
		if r.nodes[next].State != Active {
			continue
		}
		carried := pass(r.nodes[prev], r.nodes[next])
		hops = append(hops, Hop{From: r.nodes[prev], To: r.nodes[next], CarriedID: carried})
		prev = next
	}
	return hops
}

func (r *Ring) succ(i int) int {
	return (i + 1) % len(r.nodes)
}

func (r *Ring) activeIndexes() []int {
	var idx []int
	for i, n := range r.nodes {
		if n.State == Active {
			idx = append(idx, i)
		}
	}
	return idx
}

func (r *Ring) leaderIndex() int {
	leader := -1
	for i, n := range r.nodes {
		if n.State == Active && (leader < 0 || n.ID > r.nodes[leader].ID) {
			leader = i
		}
	}
	return leader
}

// Elect marks failed as down on a fresh ring over endpoints and runs one
// election.
func Elect(endpoints []string, failed string, opts ...Option) (Result, error) {
	ring := NewRing(endpoints, opts...)
	if err := ring.MarkFailed(failed); err != nil {
		return Result{}, err
	}
	return ring.Run()
}
