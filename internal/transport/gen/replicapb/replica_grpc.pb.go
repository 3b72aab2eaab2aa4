package replicapb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const ServiceName = "paxosbot.replica.ReplicaService"

const (
	ReplicaService_CreateRecord_FullMethodName   = "/" + ServiceName + "/CreateRecord"
	ReplicaService_RequestPromise_FullMethodName = "/" + ServiceName + "/RequestPromise"
	ReplicaService_Proposal_FullMethodName       = "/" + ServiceName + "/Proposal"
	ReplicaService_Commit_FullMethodName         = "/" + ServiceName + "/Commit"
	ReplicaService_ListReplicas_FullMethodName   = "/" + ServiceName + "/ListReplicas"
	ReplicaService_ListHistory_FullMethodName    = "/" + ServiceName + "/ListHistory"
)

type ReplicaServiceClient interface {
	CreateRecord(ctx context.Context, in *CreateRecordRequest, opts ...grpc.CallOption) (*CreateRecordResponse, error)
	RequestPromise(ctx context.Context, in *PromiseRequest, opts ...grpc.CallOption) (*PromiseResponse, error)
	Proposal(ctx context.Context, in *ProposalRequest, opts ...grpc.CallOption) (*ProposalResponse, error)
	Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*CommitResponse, error)
	ListReplicas(ctx context.Context, in *ListReplicasRequest, opts ...grpc.CallOption) (*ListReplicasResponse, error)
	ListHistory(ctx context.Context, in *ListHistoryRequest, opts ...grpc.CallOption) (*ListHistoryResponse, error)
}

type replicaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReplicaServiceClient(cc grpc.ClientConnInterface) ReplicaServiceClient {
	return &replicaServiceClient{cc: cc}
}

func (c *replicaServiceClient) CreateRecord(ctx context.Context, in *CreateRecordRequest, opts ...grpc.CallOption) (*CreateRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateRecordResponse)
	err := c.cc.Invoke(ctx, ReplicaService_CreateRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replicaServiceClient) RequestPromise(ctx context.Context, in *PromiseRequest, opts ...grpc.CallOption) (*PromiseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PromiseResponse)
	err := c.cc.Invoke(ctx, ReplicaService_RequestPromise_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replicaServiceClient) Proposal(ctx context.Context, in *ProposalRequest, opts ...grpc.CallOption) (*ProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProposalResponse)
	err := c.cc.Invoke(ctx, ReplicaService_Proposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replicaServiceClient) Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*CommitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitResponse)
	err := c.cc.Invoke(ctx, ReplicaService_Commit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replicaServiceClient) ListReplicas(ctx context.Context, in *ListReplicasRequest, opts ...grpc.CallOption) (*ListReplicasResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReplicasResponse)
	err := c.cc.Invoke(ctx, ReplicaService_ListReplicas_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replicaServiceClient) ListHistory(ctx context.Context, in *ListHistoryRequest, opts ...grpc.CallOption) (*ListHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListHistoryResponse)
	err := c.cc.Invoke(ctx, ReplicaService_ListHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type ReplicaServiceServer interface {
	CreateRecord(context.Context, *CreateRecordRequest) (*CreateRecordResponse, error)
	RequestPromise(context.Context, *PromiseRequest) (*PromiseResponse, error)
	Proposal(context.Context, *ProposalRequest) (*ProposalResponse, error)
	Commit(context.Context, *CommitRequest) (*CommitResponse, error)
	ListReplicas(context.Context, *ListReplicasRequest) (*ListReplicasResponse, error)
	ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error)
	mustEmbedUnimplementedReplicaServiceServer()
}

type UnimplementedReplicaServiceServer struct{}

func (UnimplementedReplicaServiceServer) CreateRecord(context.Context, *CreateRecordRequest) (*CreateRecordResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRecord not implemented")
}

func (UnimplementedReplicaServiceServer) RequestPromise(context.Context, *PromiseRequest) (*PromiseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestPromise not implemented")
}

func (UnimplementedReplicaServiceServer) Proposal(context.Context, *ProposalRequest) (*ProposalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Proposal not implemented")
}

func (UnimplementedReplicaServiceServer) Commit(context.Context, *CommitRequest) (*CommitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Commit not implemented")
}

func (UnimplementedReplicaServiceServer) ListReplicas(context.Context, *ListReplicasRequest) (*ListReplicasResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListReplicas not implemented")
}

func (UnimplementedReplicaServiceServer) ListHistory(context.Context, *ListHistoryRequest) (*ListHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListHistory not implemented")
}

func (UnimplementedReplicaServiceServer) mustEmbedUnimplementedReplicaServiceServer() {}

func RegisterReplicaServiceServer(s grpc.ServiceRegistrar, srv ReplicaServiceServer) {
	s.RegisterService(&ReplicaService_ServiceDesc, srv)
}

func _ReplicaService_CreateRecord_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicaServiceServer).CreateRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReplicaService_CreateRecord_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicaServiceServer).CreateRecord(ctx, req.(*CreateRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReplicaService_RequestPromise_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PromiseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicaServiceServer).RequestPromise(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReplicaService_RequestPromise_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicaServiceServer).RequestPromise(ctx, req.(*PromiseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReplicaService_Proposal_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicaServiceServer).Proposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReplicaService_Proposal_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicaServiceServer).Proposal(ctx, req.(*ProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReplicaService_Commit_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CommitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicaServiceServer).Commit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReplicaService_Commit_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicaServiceServer).Commit(ctx, req.(*CommitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReplicaService_ListReplicas_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListReplicasRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicaServiceServer).ListReplicas(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReplicaService_ListReplicas_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicaServiceServer).ListReplicas(ctx, req.(*ListReplicasRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReplicaService_ListHistory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplicaServiceServer).ListHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReplicaService_ListHistory_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReplicaServiceServer).ListHistory(ctx, req.(*ListHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ReplicaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReplicaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateRecord", Handler: _ReplicaService_CreateRecord_Handler},
		{MethodName: "RequestPromise", Handler: _ReplicaService_RequestPromise_Handler},
		{MethodName: "Proposal", Handler: _ReplicaService_Proposal_Handler},
		{MethodName: "Commit", Handler: _ReplicaService_Commit_Handler},
		{MethodName: "ListReplicas", Handler: _ReplicaService_ListReplicas_Handler},
		{MethodName: "ListHistory", Handler: _ReplicaService_ListHistory_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "replica.proto",
}
