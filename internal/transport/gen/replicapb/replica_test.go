package replicapb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestReplicaProto_ServiceRegistered(t *testing.T) {
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName(ServiceName)
	require.NoError(t, err)

	svc, ok := desc.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, len(ReplicaService_ServiceDesc.Methods), svc.Methods().Len())

	for _, m := range ReplicaService_ServiceDesc.Methods {
		method := svc.Methods().ByName(protoreflect.Name(m.MethodName))
		require.NotNil(t, method, m.MethodName)
	}
	assert.Equal(t, protoreflect.FullName("paxosbot.replica.PromiseResponse"),
		svc.Methods().ByName("RequestPromise").Output().FullName())
}

func TestReplicaProto_PromiseResponseWithPrior(t *testing.T) {
	in := &PromiseResponse{
		Granted:         true,
		ProposalId:      172_000_000_000_005_002,
		PriorProposalId: 171_000_000_000_005_001,
		Prior:           &Record{Key: 1000, Ticker: "AAPL", Price: "150.25"},
	}

	data, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &PromiseResponse{}
	require.NoError(t, proto.Unmarshal(data, out))
	assert.True(t, proto.Equal(in, out))
}

func TestReplicaProto_AbsentRecordStaysNil(t *testing.T) {
	data, err := proto.Marshal(&PromiseResponse{Granted: true, ProposalId: 7})
	require.NoError(t, err)

	out := &PromiseResponse{}
	require.NoError(t, proto.Unmarshal(data, out))
	assert.Nil(t, out.GetPrior())
	assert.Equal(t, int64(7), out.GetProposalId())
}

func TestReplicaProto_NegativeProposalID(t *testing.T) {
	in := &ProposalRequest{ProposalId: 42, PriorProposalId: -1, Record: &Record{Key: 1}}
	data, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &ProposalRequest{}
	require.NoError(t, proto.Unmarshal(data, out))
	assert.Equal(t, int64(-1), out.GetPriorProposalId())
	assert.Equal(t, int64(1), out.GetRecord().GetKey())
}

func TestReplicaProto_RepeatedFields(t *testing.T) {
	snap := &HistorySnapshot{Entries: []*Record{
		{Key: 1000, Ticker: "MSFT", Price: "410"},
		{Key: 2000, Ticker: "TSLA", Price: "240"},
	}}
	data, err := proto.Marshal(snap)
	require.NoError(t, err)

	got := &HistorySnapshot{}
	require.NoError(t, proto.Unmarshal(data, got))
	require.Len(t, got.GetEntries(), 2)
	assert.Equal(t, "TSLA", got.GetEntries()[1].GetTicker())
}

func TestReplicaProto_KeepsUnknownFields(t *testing.T) {
	data, err := proto.Marshal(&ProposalResponse{Accepted: true})
	require.NoError(t, err)
	data = protowire.AppendTag(data, 9, protowire.BytesType)
	data = protowire.AppendString(data, "future")

	out := &ProposalResponse{}
	require.NoError(t, proto.Unmarshal(data, out))
	assert.True(t, out.GetAccepted())
	assert.NotEmpty(t, out.ProtoReflect().GetUnknown())
}
