package replicapb

import (
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"

	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Record struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           int64                  `protobuf:"varint,1,opt,name=key,proto3" json:"key,omitempty"`
	Ticker        string                 `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Price         string                 `protobuf:"bytes,3,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Record) Reset() {
	*x = Record{}
	mi := &file_replica_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Record) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Record) ProtoMessage() {}

func (x *Record) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Record.ProtoReflect.Descriptor instead.
func (*Record) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{0}
}

func (x *Record) GetKey() int64 {
	if x != nil {
		return x.Key
	}
	return 0
}

func (x *Record) GetTicker() string {
	if x != nil {
		return x.Ticker
	}
	return ""
}

func (x *Record) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

type CreateRecordRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *Record                `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRecordRequest) Reset() {
	*x = CreateRecordRequest{}
	mi := &file_replica_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRecordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRecordRequest) ProtoMessage() {}

func (x *CreateRecordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRecordRequest.ProtoReflect.Descriptor instead.
func (*CreateRecordRequest) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{1}
}

func (x *CreateRecordRequest) GetRecord() *Record {
	if x != nil {
		return x.Record
	}
	return nil
}

type CreateRecordResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Decided       *Record                `protobuf:"bytes,2,opt,name=decided,proto3" json:"decided,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRecordResponse) Reset() {
	*x = CreateRecordResponse{}
	mi := &file_replica_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRecordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRecordResponse) ProtoMessage() {}

func (x *CreateRecordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRecordResponse.ProtoReflect.Descriptor instead.
func (*CreateRecordResponse) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{2}
}

func (x *CreateRecordResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *CreateRecordResponse) GetDecided() *Record {
	if x != nil {
		return x.Decided
	}
	return nil
}

type PromiseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    int64                  `protobuf:"varint,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	Record        *Record                `protobuf:"bytes,2,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromiseRequest) Reset() {
	*x = PromiseRequest{}
	mi := &file_replica_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromiseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromiseRequest) ProtoMessage() {}

func (x *PromiseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromiseRequest.ProtoReflect.Descriptor instead.
func (*PromiseRequest) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{3}
}

func (x *PromiseRequest) GetProposalId() int64 {
	if x != nil {
		return x.ProposalId
	}
	return 0
}

func (x *PromiseRequest) GetRecord() *Record {
	if x != nil {
		return x.Record
	}
	return nil
}

type PromiseResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Granted         bool                   `protobuf:"varint,1,opt,name=granted,proto3" json:"granted,omitempty"`
	ProposalId      int64                  `protobuf:"varint,2,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	PriorProposalId int64                  `protobuf:"varint,3,opt,name=prior_proposal_id,json=priorProposalId,proto3" json:"prior_proposal_id,omitempty"`
	Prior           *Record                `protobuf:"bytes,4,opt,name=prior,proto3" json:"prior,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PromiseResponse) Reset() {
	*x = PromiseResponse{}
	mi := &file_replica_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromiseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromiseResponse) ProtoMessage() {}

func (x *PromiseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromiseResponse.ProtoReflect.Descriptor instead.
func (*PromiseResponse) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{4}
}

func (x *PromiseResponse) GetGranted() bool {
	if x != nil {
		return x.Granted
	}
	return false
}

func (x *PromiseResponse) GetProposalId() int64 {
	if x != nil {
		return x.ProposalId
	}
	return 0
}

func (x *PromiseResponse) GetPriorProposalId() int64 {
	if x != nil {
		return x.PriorProposalId
	}
	return 0
}

func (x *PromiseResponse) GetPrior() *Record {
	if x != nil {
		return x.Prior
	}
	return nil
}

type ProposalRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ProposalId      int64                  `protobuf:"varint,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	PriorProposalId int64                  `protobuf:"varint,2,opt,name=prior_proposal_id,json=priorProposalId,proto3" json:"prior_proposal_id,omitempty"`
	Record          *Record                `protobuf:"bytes,3,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ProposalRequest) Reset() {
	*x = ProposalRequest{}
	mi := &file_replica_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProposalRequest) ProtoMessage() {}

func (x *ProposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProposalRequest.ProtoReflect.Descriptor instead.
func (*ProposalRequest) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{5}
}

func (x *ProposalRequest) GetProposalId() int64 {
	if x != nil {
		return x.ProposalId
	}
	return 0
}

func (x *ProposalRequest) GetPriorProposalId() int64 {
	if x != nil {
		return x.PriorProposalId
	}
	return 0
}

func (x *ProposalRequest) GetRecord() *Record {
	if x != nil {
		return x.Record
	}
	return nil
}

type ProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProposalResponse) Reset() {
	*x = ProposalResponse{}
	mi := &file_replica_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProposalResponse) ProtoMessage() {}

func (x *ProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProposalResponse.ProtoReflect.Descriptor instead.
func (*ProposalResponse) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{6}
}

func (x *ProposalResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type CommitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *Record                `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitRequest) Reset() {
	*x = CommitRequest{}
	mi := &file_replica_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitRequest) ProtoMessage() {}

func (x *CommitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitRequest.ProtoReflect.Descriptor instead.
func (*CommitRequest) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{7}
}

func (x *CommitRequest) GetRecord() *Record {
	if x != nil {
		return x.Record
	}
	return nil
}

type CommitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommitResponse) Reset() {
	*x = CommitResponse{}
	mi := &file_replica_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitResponse) ProtoMessage() {}

func (x *CommitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitResponse.ProtoReflect.Descriptor instead.
func (*CommitResponse) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{8}
}

type ListReplicasRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReplicasRequest) Reset() {
	*x = ListReplicasRequest{}
	mi := &file_replica_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReplicasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReplicasRequest) ProtoMessage() {}

func (x *ListReplicasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReplicasRequest.ProtoReflect.Descriptor instead.
func (*ListReplicasRequest) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{9}
}

type ListReplicasResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Endpoints     []string               `protobuf:"bytes,1,rep,name=endpoints,proto3" json:"endpoints,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReplicasResponse) Reset() {
	*x = ListReplicasResponse{}
	mi := &file_replica_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReplicasResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReplicasResponse) ProtoMessage() {}

func (x *ListReplicasResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReplicasResponse.ProtoReflect.Descriptor instead.
func (*ListReplicasResponse) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{10}
}

func (x *ListReplicasResponse) GetEndpoints() []string {
	if x != nil {
		return x.Endpoints
	}
	return nil
}

type ListHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHistoryRequest) Reset() {
	*x = ListHistoryRequest{}
	mi := &file_replica_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHistoryRequest) ProtoMessage() {}

func (x *ListHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHistoryRequest.ProtoReflect.Descriptor instead.
func (*ListHistoryRequest) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{11}
}

type ListHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Snapshot      []byte                 `protobuf:"bytes,1,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHistoryResponse) Reset() {
	*x = ListHistoryResponse{}
	mi := &file_replica_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHistoryResponse) ProtoMessage() {}

func (x *ListHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHistoryResponse.ProtoReflect.Descriptor instead.
func (*ListHistoryResponse) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{12}
}

func (x *ListHistoryResponse) GetSnapshot() []byte {
	if x != nil {
		return x.Snapshot
	}
	return nil
}

type HistorySnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*Record              `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HistorySnapshot) Reset() {
	*x = HistorySnapshot{}
	mi := &file_replica_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HistorySnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HistorySnapshot) ProtoMessage() {}

func (x *HistorySnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_replica_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HistorySnapshot.ProtoReflect.Descriptor instead.
func (*HistorySnapshot) Descriptor() ([]byte, []int) {
	return file_replica_proto_rawDescGZIP(), []int{13}
}

func (x *HistorySnapshot) GetEntries() []*Record {
	if x != nil {
		return x.Entries
	}
	return nil
}

var File_replica_proto protoreflect.FileDescriptor

const file_replica_proto_rawDesc = "" +
	"\n" +
	"\rreplica.proto\x12\x10paxosbot.replica\"H\n" +
	"\x06Record\x12\x10\n" +
	"\x03key\x18\x01 \x01(\x03R\x03key\x12\x16\n" +
	"\x06ticker\x18\x02 \x01(\tR\x06ticker\x12\x14\n" +
	"\x05price\x18\x03 \x01(\tR\x05price\"G\n" +
	"\x13CreateRecordRequest\x120\n" +
	"\x06record\x18\x01 \x01(\v2\x18.paxosbot.replica.RecordR\x06record\"b\n" +
	"\x14CreateRecordResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x122\n" +
	"\adecided\x18\x02 \x01(\v2\x18.paxosbot.replica.RecordR\adecided\"c\n" +
	"\x0ePromiseRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\x03R\n" +
	"proposalId\x120\n" +
	"\x06record\x18\x02 \x01(\v2\x18.paxosbot.replica.RecordR\x06record\"\xa8\x01\n" +
	"\x0fPromiseResponse\x12\x18\n" +
	"\agranted\x18\x01 \x01(\bR\agranted\x12\x1f\n" +
	"\vproposal_id\x18\x02 \x01(\x03R\n" +
	"proposalId\x12*\n" +
	"\x11prior_proposal_id\x18\x03 \x01(\x03R\x0fpriorProposalId\x12.\n" +
	"\x05prior\x18\x04 \x01(\v2\x18.paxosbot.replica.RecordR\x05prior\"\x90\x01\n" +
	"\x0fProposalRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\x03R\n" +
	"proposalId\x12*\n" +
	"\x11prior_proposal_id\x18\x02 \x01(\x03R\x0fpriorProposalId\x120\n" +
	"\x06record\x18\x03 \x01(\v2\x18.paxosbot.replica.RecordR\x06record\".\n" +
	"\x10ProposalResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\"A\n" +
	"\rCommitRequest\x120\n" +
	"\x06record\x18\x01 \x01(\v2\x18.paxosbot.replica.RecordR\x06record\"\x10\n" +
	"\x0eCommitResponse\"\x15\n" +
	"\x13ListReplicasRequest\"4\n" +
	"\x14ListReplicasResponse\x12\x1c\n" +
	"\tendpoints\x18\x01 \x03(\tR\tendpoints\"\x14\n" +
	"\x12ListHistoryRequest\"1\n" +
	"\x13ListHistoryResponse\x12\x1a\n" +
	"\bsnapshot\x18\x01 \x01(\fR\bsnapshot\"E\n" +
	"\x0fHistorySnapshot\x122\n" +
	"\aentries\x18\x01 \x03(\v2\x18.paxosbot.replica.RecordR\aentries2\xa1\x04\n" +
	"\x0eReplicaService\x12]\n" +
	"\fCreateRecord\x12%.paxosbot.replica.CreateRecordRequest\x1a&.paxosbot.replica.CreateRecordResponse\x12U\n" +
	"\x0eRequestPromise\x12 .paxosbot.replica.PromiseRequest\x1a!.paxosbot.replica.PromiseResponse\x12Q\n" +
	"\bProposal\x12!.paxosbot.replica.ProposalRequest\x1a\".paxosbot.replica.ProposalResponse\x12K\n" +
	"\x06Commit\x12\x1f.paxosbot.replica.CommitRequest\x1a .paxosbot.replica.CommitResponse\x12]\n" +
	"\fListReplicas\x12%.paxosbot.replica.ListReplicasRequest\x1a&.paxosbot.replica.ListReplicasResponse\x12Z\n" +
	"\vListHistory\x12$.paxosbot.replica.ListHistoryRequest\x1a%.paxosbot.replica.ListHistoryResponseB+Z)paxosbot/internal/transport/gen/replicapbb\x06proto3"

var (
	file_replica_proto_rawDescOnce sync.Once
	file_replica_proto_rawDescData []byte
)

func file_replica_proto_rawDescGZIP() []byte {
	file_replica_proto_rawDescOnce.Do(func() {
		file_replica_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_replica_proto_rawDesc), len(file_replica_proto_rawDesc)))
	})
	return file_replica_proto_rawDescData
}

var file_replica_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_replica_proto_goTypes = []any{
	(*Record)(nil),               // paxosbot.replica.Record
	(*CreateRecordRequest)(nil),  // paxosbot.replica.CreateRecordRequest
	(*CreateRecordResponse)(nil), // paxosbot.replica.CreateRecordResponse
	(*PromiseRequest)(nil),       // paxosbot.replica.PromiseRequest
	(*PromiseResponse)(nil),      // paxosbot.replica.PromiseResponse
	(*ProposalRequest)(nil),      // paxosbot.replica.ProposalRequest
	(*ProposalResponse)(nil),     // paxosbot.replica.ProposalResponse
	(*CommitRequest)(nil),        // paxosbot.replica.CommitRequest
	(*CommitResponse)(nil),       // paxosbot.replica.CommitResponse
	(*ListReplicasRequest)(nil),  // paxosbot.replica.ListReplicasRequest
	(*ListReplicasResponse)(nil), // paxosbot.replica.ListReplicasResponse
	(*ListHistoryRequest)(nil),   // paxosbot.replica.ListHistoryRequest
	(*ListHistoryResponse)(nil),  // paxosbot.replica.ListHistoryResponse
	(*HistorySnapshot)(nil),      // paxosbot.replica.HistorySnapshot
}
var file_replica_proto_depIdxs = []int32{
	0,  // 0: paxosbot.replica.CreateRecordRequest.record:type_name -> paxosbot.replica.Record
	0,  // 1: paxosbot.replica.CreateRecordResponse.decided:type_name -> paxosbot.replica.Record
	0,  // 2: paxosbot.replica.PromiseRequest.record:type_name -> paxosbot.replica.Record
	0,  // 3: paxosbot.replica.PromiseResponse.prior:type_name -> paxosbot.replica.Record
	0,  // 4: paxosbot.replica.ProposalRequest.record:type_name -> paxosbot.replica.Record
	0,  // 5: paxosbot.replica.CommitRequest.record:type_name -> paxosbot.replica.Record
	0,  // 6: paxosbot.replica.HistorySnapshot.entries:type_name -> paxosbot.replica.Record
	1,  // 7: paxosbot.replica.ReplicaService.CreateRecord:input_type -> paxosbot.replica.CreateRecordRequest
	3,  // 8: paxosbot.replica.ReplicaService.RequestPromise:input_type -> paxosbot.replica.PromiseRequest
	5,  // 9: paxosbot.replica.ReplicaService.Proposal:input_type -> paxosbot.replica.ProposalRequest
	7,  // 10: paxosbot.replica.ReplicaService.Commit:input_type -> paxosbot.replica.CommitRequest
	9,  // 11: paxosbot.replica.ReplicaService.ListReplicas:input_type -> paxosbot.replica.ListReplicasRequest
	11, // 12: paxosbot.replica.ReplicaService.ListHistory:input_type -> paxosbot.replica.ListHistoryRequest
	2,  // 13: paxosbot.replica.ReplicaService.CreateRecord:output_type -> paxosbot.replica.CreateRecordResponse
	4,  // 14: paxosbot.replica.ReplicaService.RequestPromise:output_type -> paxosbot.replica.PromiseResponse
	6,  // 15: paxosbot.replica.ReplicaService.Proposal:output_type -> paxosbot.replica.ProposalResponse
	8,  // 16: paxosbot.replica.ReplicaService.Commit:output_type -> paxosbot.replica.CommitResponse
	10, // 17: paxosbot.replica.ReplicaService.ListReplicas:output_type -> paxosbot.replica.ListReplicasResponse
	12, // 18: paxosbot.replica.ReplicaService.ListHistory:output_type -> paxosbot.replica.ListHistoryResponse
	13, // [13:19] is the sub-list for method output_type
	7,  // [7:13] is the sub-list for method input_type
	19, // [19:19] is the sub-list for extension type_name
	19, // [19:19] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_replica_proto_init() }
func file_replica_proto_init() {
	if File_replica_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_replica_proto_rawDesc), len(file_replica_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_replica_proto_goTypes,
		DependencyIndexes: file_replica_proto_depIdxs,
		MessageInfos:      file_replica_proto_msgTypes,
	}.Build()
	File_replica_proto = out.File
	file_replica_proto_goTypes = nil
	file_replica_proto_depIdxs = nil
}
