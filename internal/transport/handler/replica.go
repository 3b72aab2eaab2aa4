package handler

import (
	"context"
	"errors"
	"log/slog"
	"paxosbot/internal/paxos"
	"paxosbot/internal/transport/gen/replicapb"
	"paxosbot/internal/types"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

type Engine interface {
	paxos.Replica
	CreateRecord(ctx context.Context, rec paxos.Record) (paxos.Record, error)
}

type HistoryReader interface {
	Snapshot() []byte
}

type Topology interface {
	Endpoints() []string
}

type ReplicaHandler struct {
	replicapb.UnimplementedReplicaServiceServer
	engine   Engine
	history  HistoryReader
	topology Topology
}

func NewReplicaHandler(engine Engine, history HistoryReader, topology Topology) *ReplicaHandler {
	return &ReplicaHandler{engine: engine, history: history, topology: topology}
}

// CreateRecord reports a lost quorum as a "failure" status, not as an RPC error.
func (h *ReplicaHandler) CreateRecord(
	ctx context.Context,
	req *replicapb.CreateRecordRequest,
) (*replicapb.CreateRecordResponse, error) {
	rec, ok := types.RecordFromProto(req.GetRecord())
	if !ok {
		return nil, toGRPCError(ErrMissingRecord)
	}
	slog.Debug("create record", "key", rec.Key, "ticker", rec.Ticker)

	decided, err := h.engine.CreateRecord(ctx, rec)
	if err != nil {
		if errors.Is(err, paxos.ErrQuorumNotReached) {
			slog.Info("round failed", "key", rec.Key, "error", err)
			return &replicapb.CreateRecordResponse{Status: StatusFailure}, nil
		}
		slog.Error("create record failed", "key", rec.Key, "error", err)
		return nil, toGRPCError(err)
	}

	return &replicapb.CreateRecordResponse{
		Status:  StatusSuccess,
		Decided: types.RecordToProto(decided),
	}, nil
}

func (h *ReplicaHandler) RequestPromise(
	ctx context.Context,
	req *replicapb.PromiseRequest,
) (*replicapb.PromiseResponse, error) {
	rec, ok := types.RecordFromProto(req.GetRecord())
	if !ok {
		return nil, toGRPCError(ErrMissingRecord)
	}

	promise, err := h.engine.RequestPromise(ctx, paxos.ProposalID(req.GetProposalId()), rec)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return types.PromiseToProto(promise), nil
}

func (h *ReplicaHandler) Proposal(
	ctx context.Context,
	req *replicapb.ProposalRequest,
) (*replicapb.ProposalResponse, error) {
	rec, ok := types.RecordFromProto(req.GetRecord())
	if !ok {
		return nil, toGRPCError(ErrMissingRecord)
	}

	accepted, err := h.engine.Propose(ctx,
		paxos.ProposalID(req.GetProposalId()),
		paxos.ProposalID(req.GetPriorProposalId()),
		rec,
	)
	if err != nil {
		return nil, toGRPCError(err)
	}
	return &replicapb.ProposalResponse{Accepted: accepted}, nil
}

func (h *ReplicaHandler) Commit(
	ctx context.Context,
	req *replicapb.CommitRequest,
) (*replicapb.CommitResponse, error) {
	rec, ok := types.RecordFromProto(req.GetRecord())
	if !ok {
		return nil, toGRPCError(ErrMissingRecord)
	}

	if err := h.engine.Commit(ctx, rec); err != nil {
		return nil, toGRPCError(err)
	}
	return &replicapb.CommitResponse{}, nil
}

func (h *ReplicaHandler) ListReplicas(
	_ context.Context,
	_ *replicapb.ListReplicasRequest,
) (*replicapb.ListReplicasResponse, error) {
	return &replicapb.ListReplicasResponse{Endpoints: h.topology.Endpoints()}, nil
}

func (h *ReplicaHandler) ListHistory(
	_ context.Context,
	_ *replicapb.ListHistoryRequest,
) (*replicapb.ListHistoryResponse, error) {
	return &replicapb.ListHistoryResponse{Snapshot: h.history.Snapshot()}, nil
}
