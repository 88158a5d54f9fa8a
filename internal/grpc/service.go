package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CatalogServiceName is the fully qualified gRPC service name
const CatalogServiceName = "showfinder.v1.CatalogService"

const (
	searchShowsMethod = "/" + CatalogServiceName + "/SearchShows"
	getEpisodesMethod = "/" + CatalogServiceName + "/GetEpisodes"
)

// CatalogServiceServer is the server API for CatalogService.
// Requests and responses are protobuf well-known types: each list element is a
// Struct with the same fields as the JSON API.
type CatalogServiceServer interface {
	SearchShows(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetEpisodes(context.Context, *wrapperspb.Int64Value) (*structpb.ListValue, error)
}

// CatalogServiceDesc describes CatalogService for grpc.Server.RegisterService
var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchShows", Handler: searchShowsHandler},
		{MethodName: "GetEpisodes", Handler: getEpisodesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "showfinder/v1/catalog.proto",
}

// RegisterCatalogServiceServer registers srv on s
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

func searchShowsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).SearchShows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: searchShowsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).SearchShows(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func getEpisodesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetEpisodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getEpisodesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).GetEpisodes(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogServiceClient is the client API for CatalogService
type CatalogServiceClient interface {
	SearchShows(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetEpisodes(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogServiceClient creates a client for CatalogService over cc
func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func (c *catalogServiceClient) SearchShows(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, searchShowsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetEpisodes(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, getEpisodesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
