package handler

import (
	"context"
	"fmt"
	"paxosbot/internal/paxos"
	"paxosbot/internal/transport/gen/replicapb"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeEngine struct {
	decided   paxos.Record
	createErr error
	promise   paxos.Promise
	accepted  bool
	callErr   error

	committed []paxos.Record
	lastPrior paxos.ProposalID
}

func (f *fakeEngine) CreateRecord(_ context.Context, rec paxos.Record) (paxos.Record, error) {
	if f.createErr != nil {
		return paxos.Record{}, f.createErr
	}
	if f.decided == (paxos.Record{}) {
		return rec, nil
	}
	return f.decided, nil
}

func (f *fakeEngine) RequestPromise(context.Context, paxos.ProposalID, paxos.Record) (paxos.Promise, error) {
	return f.promise, f.callErr
}

func (f *fakeEngine) Propose(_ context.Context, _, prior paxos.ProposalID, _ paxos.Record) (bool, error) {
	f.lastPrior = prior
	return f.accepted, f.callErr
}

func (f *fakeEngine) Commit(_ context.Context, rec paxos.Record) error {
	if f.callErr != nil {
		return f.callErr
	}
	f.committed = append(f.committed, rec)
	return nil
}

type fakeHistory []byte

func (f fakeHistory) Snapshot() []byte { return f }

type fakeTopology []string

func (f fakeTopology) Endpoints() []string { return f }

var pbRecord = &replicapb.Record{Key: 1000, Ticker: "AAPL", Price: "150"}

func newHandler(engine *fakeEngine) *ReplicaHandler {
	return NewReplicaHandler(engine, fakeHistory("snap"), fakeTopology{"127.0.0.1:5001"})
}

func TestCreateRecord_Success(t *testing.T) {
	h := newHandler(&fakeEngine{decided: paxos.Record{Key: 1000, Ticker: "MSFT", Price: "410"}})

	resp, err := h.CreateRecord(context.Background(), &replicapb.CreateRecordRequest{Record: pbRecord})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, resp.GetStatus())
	assert.Equal(t, "MSFT", resp.GetDecided().GetTicker())
}

func TestCreateRecord_QuorumLostIsFailureStatus(t *testing.T) {
	quorumErr := &paxos.QuorumError{Phase: paxos.PhasePrepare, Votes: 2, Needed: paxos.Majority}
	h := newHandler(&fakeEngine{createErr: fmt.Errorf("round: %w", quorumErr)})

	resp, err := h.CreateRecord(context.Background(), &replicapb.CreateRecordRequest{Record: pbRecord})
	require.NoError(t, err)
	assert.Equal(t, StatusFailure, resp.GetStatus())
	assert.Nil(t, resp.GetDecided())
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{paxos.ErrInvalidRecord, codes.InvalidArgument},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
		{fmt.Errorf("disk on fire"), codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.code.String(), func(t *testing.T) {
			h := newHandler(&fakeEngine{createErr: tc.err})
			_, err := h.CreateRecord(context.Background(), &replicapb.CreateRecordRequest{Record: pbRecord})
			assert.Equal(t, tc.code, status.Code(err))
		})
	}
}

func TestMissingRecordIsInvalidArgument(t *testing.T) {
	h := newHandler(&fakeEngine{})
	ctx := context.Background()

	_, err := h.CreateRecord(ctx, &replicapb.CreateRecordRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = h.RequestPromise(ctx, &replicapb.PromiseRequest{ProposalId: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = h.Proposal(ctx, &replicapb.ProposalRequest{ProposalId: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = h.Commit(ctx, &replicapb.CommitRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRequestPromise_Piggyback(t *testing.T) {
	engine := &fakeEngine{promise: paxos.Promise{
		Granted:    true,
		ProposalID: 20,
		Prior:      &paxos.Accepted{ProposalID: 10, Record: paxos.Record{Key: 1000, Ticker: "TSLA", Price: "240"}},
	}}
	h := newHandler(engine)

	resp, err := h.RequestPromise(context.Background(), &replicapb.PromiseRequest{ProposalId: 20, Record: pbRecord})
	require.NoError(t, err)
	assert.True(t, resp.GetGranted())
	assert.Equal(t, int64(10), resp.GetPriorProposalId())
	assert.Equal(t, "TSLA", resp.GetPrior().GetTicker())
}

func TestProposalAndCommit(t *testing.T) {
	engine := &fakeEngine{accepted: true}
	h := newHandler(engine)
	ctx := context.Background()

	resp, err := h.Proposal(ctx, &replicapb.ProposalRequest{ProposalId: 20, PriorProposalId: 10, Record: pbRecord})
	require.NoError(t, err)
	assert.True(t, resp.GetAccepted())
	assert.Equal(t, paxos.ProposalID(10), engine.lastPrior)

	_, err = h.Commit(ctx, &replicapb.CommitRequest{Record: pbRecord})
	require.NoError(t, err)
	require.Len(t, engine.committed, 1)
	assert.Equal(t, "AAPL 150", engine.committed[0].Value())
}

func TestListReplicasAndHistory(t *testing.T) {
	h := newHandler(&fakeEngine{})

	replicas, err := h.ListReplicas(context.Background(), &replicapb.ListReplicasRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1:5001"}, replicas.GetEndpoints())

	hist, err := h.ListHistory(context.Background(), &replicapb.ListHistoryRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("snap"), hist.GetSnapshot())
}
