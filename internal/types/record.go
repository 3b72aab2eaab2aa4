package types

import (
	"paxosbot/internal/paxos"
	"paxosbot/internal/transport/gen/replicapb"
)

func RecordToProto(r paxos.Record) *replicapb.Record {
	return &replicapb.Record{
		Key:    int64(r.Key),
		Ticker: r.Ticker,
		Price:  r.Price,
	}
}

// RecordFromProto reports false when the message carried no record.
func RecordFromProto(r *replicapb.Record) (paxos.Record, bool) {
	if r == nil {
		return paxos.Record{}, false
	}
	return paxos.Record{
		Key:    paxos.RoundKey(r.GetKey()),
		Ticker: r.GetTicker(),
		Price:  r.GetPrice(),
	}, true
}

func PromiseToProto(p paxos.Promise) *replicapb.PromiseResponse {
	out := &replicapb.PromiseResponse{
		Granted:    p.Granted,
		ProposalId: int64(p.ProposalID),
	}
	if p.Prior != nil {
		out.PriorProposalId = int64(p.Prior.ProposalID)
		out.Prior = RecordToProto(p.Prior.Record)
	}
	return out
}

func PromiseFromProto(resp *replicapb.PromiseResponse) paxos.Promise {
	p := paxos.Promise{
		Granted:    resp.GetGranted(),
		ProposalID: paxos.ProposalID(resp.GetProposalId()),
	}
	if rec, ok := RecordFromProto(resp.GetPrior()); ok {
		p.Prior = &paxos.Accepted{
			ProposalID: paxos.ProposalID(resp.GetPriorProposalId()),
			Record:     rec,
		}
	}
	return p
}

func RecordsToProto(recs []paxos.Record) []*replicapb.Record {
	out := make([]*replicapb.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecordToProto(r))
	}
	return out
}

func RecordsFromProto(recs []*replicapb.Record) []paxos.Record {
	out := make([]paxos.Record, 0, len(recs))
	for _, r := range recs {
		if rec, ok := RecordFromProto(r); ok {
			out = append(out, rec)
		}
	}
	return out
}
