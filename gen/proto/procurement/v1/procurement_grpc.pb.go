// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: procurement/v1/procurement.proto

package procurementv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	IngestionService_IngestFile_FullMethodName      = "/procurement.v1.IngestionService/IngestFile"
	IngestionService_IngestDirectory_FullMethodName = "/procurement.v1.IngestionService/IngestDirectory"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type IngestionServiceClient interface {
	IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
type IngestionServiceServer interface {
	IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error)
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestFile not implemented")
}
func (UnimplementedIngestionServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_IngestFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestFile(ctx, req.(*IngestFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "procurement.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestFile",
			Handler:    _IngestionService_IngestFile_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _IngestionService_IngestDirectory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "procurement/v1/procurement.proto",
}

const (
	ContractsService_ListContracts_FullMethodName = "/procurement.v1.ContractsService/ListContracts"
	ContractsService_GetContract_FullMethodName   = "/procurement.v1.ContractsService/GetContract"
	ContractsService_ImportParsed_FullMethodName  = "/procurement.v1.ContractsService/ImportParsed"
	ContractsService_ParsePreview_FullMethodName  = "/procurement.v1.ContractsService/ParsePreview"
)

// ContractsServiceClient is the client API for ContractsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ContractsServiceClient interface {
	ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error)
	// GetContract returns the full record with every satellite block.
	GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error)
	// ImportParsed validates a parsed-fields document against the contract
	// JSON schema and upserts it (the preview -> save path).
	ImportParsed(ctx context.Context, in *ImportParsedRequest, opts ...grpc.CallOption) (*ImportParsedResponse, error)
	// ParsePreview extracts a document without saving anything.
	ParsePreview(ctx context.Context, in *ParsePreviewRequest, opts ...grpc.CallOption) (*ParsePreviewResponse, error)
}

type contractsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContractsServiceClient(cc grpc.ClientConnInterface) ContractsServiceClient {
	return &contractsServiceClient{cc}
}

func (c *contractsServiceClient) ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListContractsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ListContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetContractResponse)
	err := c.cc.Invoke(ctx, ContractsService_GetContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ImportParsed(ctx context.Context, in *ImportParsedRequest, opts ...grpc.CallOption) (*ImportParsedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportParsedResponse)
	err := c.cc.Invoke(ctx, ContractsService_ImportParsed_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ParsePreview(ctx context.Context, in *ParsePreviewRequest, opts ...grpc.CallOption) (*ParsePreviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParsePreviewResponse)
	err := c.cc.Invoke(ctx, ContractsService_ParsePreview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContractsServiceServer is the server API for ContractsService service.
// All implementations must embed UnimplementedContractsServiceServer
// for forward compatibility.
type ContractsServiceServer interface {
	ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error)
	// GetContract returns the full record with every satellite block.
	GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error)
	// ImportParsed validates a parsed-fields document against the contract
	// JSON schema and upserts it (the preview -> save path).
	ImportParsed(context.Context, *ImportParsedRequest) (*ImportParsedResponse, error)
	// ParsePreview extracts a document without saving anything.
	ParsePreview(context.Context, *ParsePreviewRequest) (*ParsePreviewResponse, error)
	mustEmbedUnimplementedContractsServiceServer()
}

// UnimplementedContractsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedContractsServiceServer struct{}

func (UnimplementedContractsServiceServer) ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListContracts not implemented")
}
func (UnimplementedContractsServiceServer) GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContract not implemented")
}
func (UnimplementedContractsServiceServer) ImportParsed(context.Context, *ImportParsedRequest) (*ImportParsedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportParsed not implemented")
}
func (UnimplementedContractsServiceServer) ParsePreview(context.Context, *ParsePreviewRequest) (*ParsePreviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParsePreview not implemented")
}
func (UnimplementedContractsServiceServer) mustEmbedUnimplementedContractsServiceServer() {}
func (UnimplementedContractsServiceServer) testEmbeddedByValue()                          {}

// UnsafeContractsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ContractsServiceServer will
// result in compilation errors.
type UnsafeContractsServiceServer interface {
	mustEmbedUnimplementedContractsServiceServer()
}

func RegisterContractsServiceServer(s grpc.ServiceRegistrar, srv ContractsServiceServer) {
	// If the following call pancis, it indicates UnimplementedContractsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ContractsService_ServiceDesc, srv)
}

func _ContractsService_ListContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ListContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ListContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ListContracts(ctx, req.(*ListContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_GetContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).GetContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_GetContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).GetContract(ctx, req.(*GetContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ImportParsed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportParsedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ImportParsed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ImportParsed_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ImportParsed(ctx, req.(*ImportParsedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ParsePreview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParsePreviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ParsePreview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ParsePreview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ParsePreview(ctx, req.(*ParsePreviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ContractsService_ServiceDesc is the grpc.ServiceDesc for ContractsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ContractsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "procurement.v1.ContractsService",
	HandlerType: (*ContractsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListContracts",
			Handler:    _ContractsService_ListContracts_Handler,
		},
		{
			MethodName: "GetContract",
			Handler:    _ContractsService_GetContract_Handler,
		},
		{
			MethodName: "ImportParsed",
			Handler:    _ContractsService_ImportParsed_Handler,
		},
		{
			MethodName: "ParsePreview",
			Handler:    _ContractsService_ParsePreview_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "procurement/v1/procurement.proto",
}

const (
	BidsService_ListBids_FullMethodName     = "/procurement.v1.BidsService/ListBids"
	BidsService_GetBid_FullMethodName       = "/procurement.v1.BidsService/GetBid"
	BidsService_ImportParsed_FullMethodName = "/procurement.v1.BidsService/ImportParsed"
	BidsService_ParsePreview_FullMethodName = "/procurement.v1.BidsService/ParsePreview"
)

// BidsServiceClient is the client API for BidsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BidsServiceClient interface {
	ListBids(ctx context.Context, in *ListBidsRequest, opts ...grpc.CallOption) (*ListBidsResponse, error)
	GetBid(ctx context.Context, in *GetBidRequest, opts ...grpc.CallOption) (*GetBidResponse, error)
	ImportParsed(ctx context.Context, in *ImportParsedRequest, opts ...grpc.CallOption) (*ImportParsedResponse, error)
	ParsePreview(ctx context.Context, in *ParsePreviewRequest, opts ...grpc.CallOption) (*ParsePreviewResponse, error)
}

type bidsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBidsServiceClient(cc grpc.ClientConnInterface) BidsServiceClient {
	return &bidsServiceClient{cc}
}

func (c *bidsServiceClient) ListBids(ctx context.Context, in *ListBidsRequest, opts ...grpc.CallOption) (*ListBidsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBidsResponse)
	err := c.cc.Invoke(ctx, BidsService_ListBids_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bidsServiceClient) GetBid(ctx context.Context, in *GetBidRequest, opts ...grpc.CallOption) (*GetBidResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBidResponse)
	err := c.cc.Invoke(ctx, BidsService_GetBid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bidsServiceClient) ImportParsed(ctx context.Context, in *ImportParsedRequest, opts ...grpc.CallOption) (*ImportParsedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportParsedResponse)
	err := c.cc.Invoke(ctx, BidsService_ImportParsed_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bidsServiceClient) ParsePreview(ctx context.Context, in *ParsePreviewRequest, opts ...grpc.CallOption) (*ParsePreviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParsePreviewResponse)
	err := c.cc.Invoke(ctx, BidsService_ParsePreview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BidsServiceServer is the server API for BidsService service.
// All implementations must embed UnimplementedBidsServiceServer
// for forward compatibility.
type BidsServiceServer interface {
	ListBids(context.Context, *ListBidsRequest) (*ListBidsResponse, error)
	GetBid(context.Context, *GetBidRequest) (*GetBidResponse, error)
	ImportParsed(context.Context, *ImportParsedRequest) (*ImportParsedResponse, error)
	ParsePreview(context.Context, *ParsePreviewRequest) (*ParsePreviewResponse, error)
	mustEmbedUnimplementedBidsServiceServer()
}

// UnimplementedBidsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBidsServiceServer struct{}

func (UnimplementedBidsServiceServer) ListBids(context.Context, *ListBidsRequest) (*ListBidsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBids not implemented")
}
func (UnimplementedBidsServiceServer) GetBid(context.Context, *GetBidRequest) (*GetBidResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBid not implemented")
}
func (UnimplementedBidsServiceServer) ImportParsed(context.Context, *ImportParsedRequest) (*ImportParsedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportParsed not implemented")
}
func (UnimplementedBidsServiceServer) ParsePreview(context.Context, *ParsePreviewRequest) (*ParsePreviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParsePreview not implemented")
}
func (UnimplementedBidsServiceServer) mustEmbedUnimplementedBidsServiceServer() {}
func (UnimplementedBidsServiceServer) testEmbeddedByValue()                     {}

// UnsafeBidsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BidsServiceServer will
// result in compilation errors.
type UnsafeBidsServiceServer interface {
	mustEmbedUnimplementedBidsServiceServer()
}

func RegisterBidsServiceServer(s grpc.ServiceRegistrar, srv BidsServiceServer) {
	// If the following call pancis, it indicates UnimplementedBidsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BidsService_ServiceDesc, srv)
}

func _BidsService_ListBids_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBidsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BidsServiceServer).ListBids(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BidsService_ListBids_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BidsServiceServer).ListBids(ctx, req.(*ListBidsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BidsService_GetBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BidsServiceServer).GetBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BidsService_GetBid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BidsServiceServer).GetBid(ctx, req.(*GetBidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BidsService_ImportParsed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportParsedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BidsServiceServer).ImportParsed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BidsService_ImportParsed_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BidsServiceServer).ImportParsed(ctx, req.(*ImportParsedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BidsService_ParsePreview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParsePreviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BidsServiceServer).ParsePreview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BidsService_ParsePreview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BidsServiceServer).ParsePreview(ctx, req.(*ParsePreviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BidsService_ServiceDesc is the grpc.ServiceDesc for BidsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BidsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "procurement.v1.BidsService",
	HandlerType: (*BidsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListBids",
			Handler:    _BidsService_ListBids_Handler,
		},
		{
			MethodName: "GetBid",
			Handler:    _BidsService_GetBid_Handler,
		},
		{
			MethodName: "ImportParsed",
			Handler:    _BidsService_ImportParsed_Handler,
		},
		{
			MethodName: "ParsePreview",
			Handler:    _BidsService_ParsePreview_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "procurement/v1/procurement.proto",
}

const (
	SearchService_KeywordSearch_FullMethodName  = "/procurement.v1.SearchService/KeywordSearch"
	SearchService_SemanticSearch_FullMethodName = "/procurement.v1.SearchService/SemanticSearch"
)

// SearchServiceClient is the client API for SearchService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SearchServiceClient interface {
	KeywordSearch(ctx context.Context, in *KeywordSearchRequest, opts ...grpc.CallOption) (*KeywordSearchResponse, error)
	SemanticSearch(ctx context.Context, in *SemanticSearchRequest, opts ...grpc.CallOption) (*SemanticSearchResponse, error)
}

type searchServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSearchServiceClient(cc grpc.ClientConnInterface) SearchServiceClient {
	return &searchServiceClient{cc}
}

func (c *searchServiceClient) KeywordSearch(ctx context.Context, in *KeywordSearchRequest, opts ...grpc.CallOption) (*KeywordSearchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(KeywordSearchResponse)
	err := c.cc.Invoke(ctx, SearchService_KeywordSearch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *searchServiceClient) SemanticSearch(ctx context.Context, in *SemanticSearchRequest, opts ...grpc.CallOption) (*SemanticSearchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SemanticSearchResponse)
	err := c.cc.Invoke(ctx, SearchService_SemanticSearch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SearchServiceServer is the server API for SearchService service.
// All implementations must embed UnimplementedSearchServiceServer
// for forward compatibility.
type SearchServiceServer interface {
	KeywordSearch(context.Context, *KeywordSearchRequest) (*KeywordSearchResponse, error)
	SemanticSearch(context.Context, *SemanticSearchRequest) (*SemanticSearchResponse, error)
	mustEmbedUnimplementedSearchServiceServer()
}

// UnimplementedSearchServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSearchServiceServer struct{}

func (UnimplementedSearchServiceServer) KeywordSearch(context.Context, *KeywordSearchRequest) (*KeywordSearchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KeywordSearch not implemented")
}
func (UnimplementedSearchServiceServer) SemanticSearch(context.Context, *SemanticSearchRequest) (*SemanticSearchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SemanticSearch not implemented")
}
func (UnimplementedSearchServiceServer) mustEmbedUnimplementedSearchServiceServer() {}
func (UnimplementedSearchServiceServer) testEmbeddedByValue()                       {}

// UnsafeSearchServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SearchServiceServer will
// result in compilation errors.
type UnsafeSearchServiceServer interface {
	mustEmbedUnimplementedSearchServiceServer()
}

func RegisterSearchServiceServer(s grpc.ServiceRegistrar, srv SearchServiceServer) {
	// If the following call pancis, it indicates UnimplementedSearchServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SearchService_ServiceDesc, srv)
}

func _SearchService_KeywordSearch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KeywordSearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SearchServiceServer).KeywordSearch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SearchService_KeywordSearch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SearchServiceServer).KeywordSearch(ctx, req.(*KeywordSearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SearchService_SemanticSearch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SemanticSearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SearchServiceServer).SemanticSearch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SearchService_SemanticSearch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SearchServiceServer).SemanticSearch(ctx, req.(*SemanticSearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SearchService_ServiceDesc is the grpc.ServiceDesc for SearchService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SearchService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "procurement.v1.SearchService",
	HandlerType: (*SearchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "KeywordSearch",
			Handler:    _SearchService_KeywordSearch_Handler,
		},
		{
			MethodName: "SemanticSearch",
			Handler:    _SearchService_SemanticSearch_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "procurement/v1/procurement.proto",
}

const (
	ExportService_ExportContract_FullMethodName       = "/procurement.v1.ExportService/ExportContract"
	ExportService_ExportContracts_FullMethodName      = "/procurement.v1.ExportService/ExportContracts"
	ExportService_ExportBid_FullMethodName            = "/procurement.v1.ExportService/ExportBid"
	ExportService_ExportBids_FullMethodName           = "/procurement.v1.ExportService/ExportBids"
	ExportService_ExportFilteredReport_FullMethodName = "/procurement.v1.ExportService/ExportFilteredReport"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportContract(ctx context.Context, in *ExportContractRequest, opts ...grpc.CallOption) (*ExportResponse, error)
	ExportContracts(ctx context.Context, in *ExportContractsRequest, opts ...grpc.CallOption) (*ExportResponse, error)
	ExportBid(ctx context.Context, in *ExportBidRequest, opts ...grpc.CallOption) (*ExportResponse, error)
	ExportBids(ctx context.Context, in *ExportBidsRequest, opts ...grpc.CallOption) (*ExportResponse, error)
	ExportFilteredReport(ctx context.Context, in *ExportFilteredReportRequest, opts ...grpc.CallOption) (*ExportResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportContract(ctx context.Context, in *ExportContractRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportContracts(ctx context.Context, in *ExportContractsRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportBid(ctx context.Context, in *ExportBidRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportBid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportBids(ctx context.Context, in *ExportBidsRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportBids_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportFilteredReport(ctx context.Context, in *ExportFilteredReportRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportFilteredReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportContract(context.Context, *ExportContractRequest) (*ExportResponse, error)
	ExportContracts(context.Context, *ExportContractsRequest) (*ExportResponse, error)
	ExportBid(context.Context, *ExportBidRequest) (*ExportResponse, error)
	ExportBids(context.Context, *ExportBidsRequest) (*ExportResponse, error)
	ExportFilteredReport(context.Context, *ExportFilteredReportRequest) (*ExportResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportContract(context.Context, *ExportContractRequest) (*ExportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportContract not implemented")
}
func (UnimplementedExportServiceServer) ExportContracts(context.Context, *ExportContractsRequest) (*ExportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportContracts not implemented")
}
func (UnimplementedExportServiceServer) ExportBid(context.Context, *ExportBidRequest) (*ExportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportBid not implemented")
}
func (UnimplementedExportServiceServer) ExportBids(context.Context, *ExportBidsRequest) (*ExportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportBids not implemented")
}
func (UnimplementedExportServiceServer) ExportFilteredReport(context.Context, *ExportFilteredReportRequest) (*ExportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportFilteredReport not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportContract(ctx, req.(*ExportContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportContracts(ctx, req.(*ExportContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportBidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportBid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportBid(ctx, req.(*ExportBidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportBids_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportBidsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportBids(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportBids_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportBids(ctx, req.(*ExportBidsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportFilteredReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportFilteredReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportFilteredReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportFilteredReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportFilteredReport(ctx, req.(*ExportFilteredReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "procurement.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportContract",
			Handler:    _ExportService_ExportContract_Handler,
		},
		{
			MethodName: "ExportContracts",
			Handler:    _ExportService_ExportContracts_Handler,
		},
		{
			MethodName: "ExportBid",
			Handler:    _ExportService_ExportBid_Handler,
		},
		{
			MethodName: "ExportBids",
			Handler:    _ExportService_ExportBids_Handler,
		},
		{
			MethodName: "ExportFilteredReport",
			Handler:    _ExportService_ExportFilteredReport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "procurement/v1/procurement.proto",
}
