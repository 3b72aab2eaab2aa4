package transport

import (
	"context"
	"fmt"
	"paxosbot/internal/configuration"
	"paxosbot/internal/directory"
	"paxosbot/internal/history"
	"paxosbot/internal/paxos"
	"paxosbot/internal/transport/gen/replicapb"
	"paxosbot/internal/types"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// PeerClient is a replica reached over gRPC.
type PeerClient struct {
	conn        *grpc.ClientConn
	rpc         replicapb.ReplicaServiceClient
	callTimeout time.Duration
}

var _ paxos.Replica = (*PeerClient)(nil)

// Dial creates a client for endpoint. The connection is established lazily,
// so a peer that is down only shows up as errors on its calls.
func Dial(endpoint string, cfg *configuration.TransportProperties) (*PeerClient, error) {
	if cfg == nil {
		cfg = &configuration.TransportProperties{}
	}

	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                cfg.Keepalive(),
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("dial replica %s: %w", endpoint, err)
	}

	return &PeerClient{
		conn:        conn,
		rpc:         replicapb.NewReplicaServiceClient(conn),
		callTimeout: cfg.PeerCallTimeout(),
	}, nil
}

// Dialer adapts Dial for the replica directory.
func Dialer(cfg *configuration.TransportProperties) directory.Dialer {
	return func(endpoint string) (paxos.Replica, error) {
		return Dial(endpoint, cfg)
	}
}

func (c *PeerClient) Close() error {
	return c.conn.Close()
}

func (c *PeerClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.callTimeout)
}

func (c *PeerClient) RequestPromise(ctx context.Context, id paxos.ProposalID, rec paxos.Record) (paxos.Promise, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.rpc.RequestPromise(ctx, &replicapb.PromiseRequest{
		ProposalId: int64(id),
		Record:     types.RecordToProto(rec),
	})
	if err != nil {
		return paxos.Promise{}, err
	}
	return types.PromiseFromProto(resp), nil
}

func (c *PeerClient) Propose(ctx context.Context, id, prior paxos.ProposalID, rec paxos.Record) (bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.rpc.Proposal(ctx, &replicapb.ProposalRequest{
		ProposalId:      int64(id),
		PriorProposalId: int64(prior),
		Record:          types.RecordToProto(rec),
	})
	if err != nil {
		return false, err
	}
	return resp.GetAccepted(), nil
}

func (c *PeerClient) Commit(ctx context.Context, rec paxos.Record) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.rpc.Commit(ctx, &replicapb.CommitRequest{Record: types.RecordToProto(rec)})
	return err
}

// CreateRecord asks the replica to run a full round. It is not bounded by the
// peer call timeout since a round spans several delayed phases.
func (c *PeerClient) CreateRecord(ctx context.Context, rec paxos.Record) (string, paxos.Record, error) {
	resp, err := c.rpc.CreateRecord(ctx, &replicapb.CreateRecordRequest{Record: types.RecordToProto(rec)})
	if err != nil {
		return "", paxos.Record{}, err
	}
	decided, _ := types.RecordFromProto(resp.GetDecided())
	return resp.GetStatus(), decided, nil
}

func (c *PeerClient) ListReplicas(ctx context.Context) ([]string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.rpc.ListReplicas(ctx, &replicapb.ListReplicasRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetEndpoints(), nil
}

func (c *PeerClient) ListHistory(ctx context.Context) ([]paxos.Record, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.rpc.ListHistory(ctx, &replicapb.ListHistoryRequest{})
	if err != nil {
		return nil, err
	}
	return history.DecodeSnapshot(resp.GetSnapshot())
}
