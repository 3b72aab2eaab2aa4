package transport

import (
	"context"
	"net"
	"paxosbot/internal/configuration"
	"paxosbot/internal/directory"
	"paxosbot/internal/history"
	"paxosbot/internal/paxos"
	"paxosbot/internal/transport/gen/replicapb"
	"paxosbot/internal/transport/handler"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testTransport = &configuration.TransportProperties{
	Network:     "tcp",
	Address:     "127.0.0.1",
	Timeout:     10,
	CallTimeout: 2000,
}

type testReplica struct {
	endpoint string
	node     *paxos.Node
	history  *history.Service
	service  *Service
}

type testCluster struct {
	t         *testing.T
	endpoints []string
	replicas  []*testReplica
}

type clusterOptions struct {
	crash paxos.CrashMode
	// victims and down hold 1-based replica indexes.
	victims [2]int
	down    []int
}

// startCluster runs five replicas on loopback listeners. Replicas listed in
// down never serve, so calls to them fail.
func startCluster(t *testing.T, opts clusterOptions) *testCluster {
	t.Helper()

	listeners := make([]net.Listener, paxos.ReplicaCount)
	endpoints := make([]string, paxos.ReplicaCount)
	for i := range listeners {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		listeners[i] = lis
		endpoints[i] = lis.Addr().String()
	}

	var injection paxos.FailureInjection
	if opts.crash != paxos.CrashNone {
		injection = paxos.FailureInjection{
			Mode:    opts.crash,
			Victims: [2]string{endpoints[opts.victims[0]-1], endpoints[opts.victims[1]-1]},
		}
	}

	c := &testCluster{t: t, endpoints: endpoints}
	for i, lis := range listeners {
		if slices.Contains(opts.down, i+1) {
			require.NoError(t, lis.Close())
			c.replicas = append(c.replicas, nil)
			continue
		}

		dir, err := directory.New(endpoints, Dialer(testTransport))
		require.NoError(t, err)

		hist := history.NewService()
		node, err := paxos.NewNode(paxos.Config{
			Identity:  endpoints[i],
			Injection: injection,
		}, dir, hist)
		require.NoError(t, err)
		require.NoError(t, dir.Register(endpoints[i], node))

		svc := NewService(testTransport, node, hist, dir)
		svc.Serve(lis)

		t.Cleanup(func() {
			svc.Stop()
			_ = dir.Close()
		})

		c.replicas = append(c.replicas, &testReplica{
			endpoint: endpoints[i],
			node:     node,
			history:  hist,
			service:  svc,
		})
	}
	return c
}

func (c *testCluster) client(i int) *PeerClient {
	c.t.Helper()
	client, err := Dial(c.endpoints[i-1], testTransport)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { _ = client.Close() })
	return client
}

func (c *testCluster) requireCommittedEverywhere(rec paxos.Record) {
	c.t.Helper()
	for _, r := range c.replicas {
		if r == nil {
			continue
		}
		got, ok := r.history.Get(rec.Key)
		require.True(c.t, ok, "replica %s has no entry for %d", r.endpoint, rec.Key)
		assert.Equal(c.t, rec, got)
	}
}

func roundContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestCluster_HealthyRound(t *testing.T) {
	c := startCluster(t, clusterOptions{})
	rec := paxos.Record{Key: 1000, Ticker: "AAPL", Price: "150"}

	outcome, decided, err := c.client(1).CreateRecord(roundContext(t), rec)
	require.NoError(t, err)
	assert.Equal(t, handler.StatusSuccess, outcome)
	assert.Equal(t, rec, decided)

	c.requireCommittedEverywhere(rec)
}

func TestCluster_CrashInPhase1StillReachesQuorum(t *testing.T) {
	c := startCluster(t, clusterOptions{crash: paxos.CrashInPhase1, victims: [2]int{2, 3}})
	rec := paxos.Record{Key: 2000, Ticker: "MSFT", Price: "410"}

	outcome, _, err := c.client(1).CreateRecord(roundContext(t), rec)
	require.NoError(t, err)
	assert.Equal(t, handler.StatusSuccess, outcome)

	c.requireCommittedEverywhere(rec)
	assert.Equal(t, paxos.Active, c.replicas[1].node.Liveness(), "victim recovers on the accept phase")
}

func TestCluster_ThreeReplicasDown(t *testing.T) {
	c := startCluster(t, clusterOptions{down: []int{2, 3, 4}})
	rec := paxos.Record{Key: 3000, Ticker: "TSLA", Price: "240"}

	outcome, _, err := c.client(1).CreateRecord(roundContext(t), rec)
	require.NoError(t, err)
	assert.Equal(t, handler.StatusFailure, outcome)

	_, ok := c.replicas[0].history.Get(rec.Key)
	assert.False(t, ok)
	_, ok = c.replicas[4].history.Get(rec.Key)
	assert.False(t, ok)
}

func TestCluster_TwoReplicasDownStillCommits(t *testing.T) {
	c := startCluster(t, clusterOptions{down: []int{4, 5}})
	rec := paxos.Record{Key: 4000, Ticker: "AAPL", Price: "151"}

	outcome, _, err := c.client(2).CreateRecord(roundContext(t), rec)
	require.NoError(t, err)
	assert.Equal(t, handler.StatusSuccess, outcome)

	c.requireCommittedEverywhere(rec)
}

func TestCluster_ListReplicasAndHistory(t *testing.T) {
	c := startCluster(t, clusterOptions{})
	client := c.client(3)
	ctx := roundContext(t)

	replicas, err := client.ListReplicas(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.endpoints, replicas)

	for _, rec := range []paxos.Record{
		{Key: 2, Ticker: "MSFT", Price: "1"},
		{Key: 1, Ticker: "AAPL", Price: "2"},
	} {
		outcome, _, err := client.CreateRecord(ctx, rec)
		require.NoError(t, err)
		require.Equal(t, handler.StatusSuccess, outcome)
	}

	entries, err := c.client(5).ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, paxos.RoundKey(1), entries[0].Key)
	assert.Equal(t, paxos.RoundKey(2), entries[1].Key)
}

func TestCluster_InvalidRecordRejected(t *testing.T) {
	c := startCluster(t, clusterOptions{})
	client := c.client(1)

	_, _, err := client.CreateRecord(roundContext(t), paxos.Record{Key: 1, Ticker: "AA PL", Price: "1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.rpc.Commit(roundContext(t), &replicapb.CommitRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCluster_PeerDownIsTransportError(t *testing.T) {
	c := startCluster(t, clusterOptions{down: []int{2}})

	client, err := Dial(c.endpoints[1], testTransport)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.RequestPromise(roundContext(t), 1, paxos.Record{Key: 1, Ticker: "AAPL", Price: "1"})
	assert.Error(t, err)
}
