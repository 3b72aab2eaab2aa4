package history

import (
	"errors"
	"paxosbot/internal/metrics"
	"paxosbot/internal/paxos"
	"paxosbot/internal/transport/gen/replicapb"
	"paxosbot/internal/types"
	"slices"

	"go.etcd.io/etcd/pkg/v3/pbutil"
	"google.golang.org/protobuf/proto"
)

var ErrCorruptSnapshot = errors.New("corrupt history snapshot")

// Service is the replicated chat history: one committed record per round key.
type Service struct {
	store *Store
}

func NewService() *Service {
	return &Service{store: NewStore()}
}

// Put overwrites whatever the key held before.
func (s *Service) Put(rec paxos.Record) {
	metrics.HistoryOperationsTotal.WithLabelValues("put").Inc()
	s.store.Put(rec)
	metrics.HistoryEntries.Set(float64(s.store.Len()))
}

func (s *Service) Get(key paxos.RoundKey) (paxos.Record, bool) {
	metrics.HistoryOperationsTotal.WithLabelValues("get").Inc()
	return s.store.Get(key)
}

func (s *Service) Len() int {
	return s.store.Len()
}

// Entries returns the committed records ordered by round key.
func (s *Service) Entries() []paxos.Record {
	data := s.store.Data()

	out := make([]paxos.Record, 0, len(data))
	for _, rec := range data {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b paxos.Record) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return out
}

func (s *Service) Snapshot() []byte {
	metrics.HistoryOperationsTotal.WithLabelValues("snapshot").Inc()

	snap := &replicapb.HistorySnapshot{Entries: types.RecordsToProto(s.Entries())}
	return pbutil.MustMarshal(snapshotMessage{snap})
}

// DecodeSnapshot turns Snapshot output back into records, in snapshot order.
func DecodeSnapshot(data []byte) ([]paxos.Record, error) {
	snap := &replicapb.HistorySnapshot{}
	if !pbutil.MaybeUnmarshal(snapshotMessage{snap}, data) {
		return nil, ErrCorruptSnapshot
	}

	return types.RecordsFromProto(snap.GetEntries()), nil
}

// snapshotMessage gives the generated message the Marshal/Unmarshal pair pbutil expects.
type snapshotMessage struct {
	*replicapb.HistorySnapshot
}

func (m snapshotMessage) Marshal() ([]byte, error) {
	return proto.Marshal(m.HistorySnapshot)
}

func (m snapshotMessage) Unmarshal(data []byte) error {
	return proto.Unmarshal(data, m.HistorySnapshot)
}
