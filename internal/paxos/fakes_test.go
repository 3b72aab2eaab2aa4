package paxos

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errUnreachable = errors.New("unreachable")

var testEndpoints = []string{
	"127.0.0.1:5001",
	"127.0.0.1:5002",
	"127.0.0.1:5003",
	"127.0.0.1:5004",
	"127.0.0.1:5005",
}

type memHistory struct {
	mu   sync.Mutex
	data map[RoundKey]Record
}

func newMemHistory() *memHistory {
	return &memHistory{data: make(map[RoundKey]Record)}
}

func (h *memHistory) Put(rec Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.data[rec.Key] = rec
}

func (h *memHistory) Get(key RoundKey) (Record, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec, ok := h.data[key]
	return rec, ok
}

func (h *memHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.data)
}

type staticDirectory struct {
	endpoints []string

	mu       sync.RWMutex
	replicas map[string]Replica
}

func (d *staticDirectory) Endpoints() []string {
	return d.endpoints
}

func (d *staticDirectory) Resolve(_ context.Context, endpoint string) (Replica, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, ok := d.replicas[endpoint]
	if !ok {
		return nil, errUnreachable
	}
	return r, nil
}

func (d *staticDirectory) set(endpoint string, r Replica) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r == nil {
		delete(d.replicas, endpoint)
		return
	}
	d.replicas[endpoint] = r
}

// countingReplica records how each call on the wrapped replica was answered.
type countingReplica struct {
	Replica

	mu        sync.Mutex
	granted   int
	rejected  int
	accepted  int
	refused   int
	committed int
}

func (c *countingReplica) RequestPromise(ctx context.Context, id ProposalID, rec Record) (Promise, error) {
	p, err := c.Replica.RequestPromise(ctx, id, rec)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil && p.Granted {
		c.granted++
	} else {
		c.rejected++
	}
	return p, err
}

func (c *countingReplica) Propose(ctx context.Context, id, prior ProposalID, rec Record) (bool, error) {
	ok, err := c.Replica.Propose(ctx, id, prior, rec)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil && ok {
		c.accepted++
	} else {
		c.refused++
	}
	return ok, err
}

func (c *countingReplica) Commit(ctx context.Context, rec Record) error {
	err := c.Replica.Commit(ctx, rec)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		c.committed++
	}
	return err
}

// blockingReplica never answers a promise request before ctx is done.
type blockingReplica struct {
	Replica
}

func (blockingReplica) RequestPromise(ctx context.Context, _ ProposalID, _ Record) (Promise, error) {
	<-ctx.Done()
	return Promise{}, ctx.Err()
}

// prepareGate holds every Propose until the expected number of promise
// requests has been answered, so concurrent rounds fully overlap.
type prepareGate struct {
	mu      sync.Mutex
	pending int
	open    chan struct{}
}

func newPrepareGate(expected int) *prepareGate {
	return &prepareGate{pending: expected, open: make(chan struct{})}
}

func (g *prepareGate) answered() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending--
	if g.pending == 0 {
		close(g.open)
	}
}

type gatedReplica struct {
	Replica
	gate *prepareGate
}

func (r gatedReplica) RequestPromise(ctx context.Context, id ProposalID, rec Record) (Promise, error) {
	defer r.gate.answered()
	return r.Replica.RequestPromise(ctx, id, rec)
}

func (r gatedReplica) Propose(ctx context.Context, id, prior ProposalID, rec Record) (bool, error) {
	select {
	case <-r.gate.open:
	case <-ctx.Done():
		return false, ctx.Err()
	}
	return r.Replica.Propose(ctx, id, prior, rec)
}

type testCluster struct {
	dir       *staticDirectory
	nodes     []*Node
	counters  []*countingReplica
	histories []*memHistory
}

type clusterOption func(*Config)

func withInjection(mode CrashMode, victims ...int) clusterOption {
	return func(cfg *Config) {
		cfg.Injection = FailureInjection{
			Mode:    mode,
			Victims: [2]string{testEndpoints[victims[0]-1], testEndpoints[victims[1]-1]},
		}
	}
}

func withPromiseDelay(d time.Duration) clusterOption {
	return func(cfg *Config) {
		cfg.PromiseDelay = d
	}
}

func withAdoption(policy AdoptionPolicy) clusterOption {
	return func(cfg *Config) {
		cfg.Adoption = policy
	}
}

func newTestCluster(t *testing.T, opts ...clusterOption) *testCluster {
	t.Helper()

	c := &testCluster{
		dir: &staticDirectory{endpoints: testEndpoints, replicas: make(map[string]Replica)},
	}

	for _, endpoint := range testEndpoints {
		cfg := Config{Identity: endpoint}
		for _, opt := range opts {
			opt(&cfg)
		}

		history := newMemHistory()
		node, err := NewNode(cfg, c.dir, history)
		require.NoError(t, err)

		counter := &countingReplica{Replica: node}
		c.dir.set(endpoint, counter)

		c.nodes = append(c.nodes, node)
		c.counters = append(c.counters, counter)
		c.histories = append(c.histories, history)
	}
	return c
}

// node returns replica i, counting from 1.
func (c *testCluster) node(i int) *Node {
	return c.nodes[i-1]
}

// gate routes every replica through one prepareGate expecting a promise
// request from each of the given number of proposers.
func (c *testCluster) gate(proposers int) {
	g := newPrepareGate(proposers * len(testEndpoints))
	for i, endpoint := range testEndpoints {
		c.dir.set(endpoint, gatedReplica{Replica: c.counters[i], gate: g})
	}
}

func (c *testCluster) takeDown(replicas ...int) {
	for _, i := range replicas {
		c.dir.set(testEndpoints[i-1], nil)
	}
}
