package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "perception.v1alpha1.PerceptionService"

// Full method names, used by clients and interceptors
const (
	SaveWorldMethod     = "/" + ServiceName + "/SaveWorld"
	GetWorldMethod      = "/" + ServiceName + "/GetWorld"
	DeleteWorldMethod   = "/" + ServiceName + "/DeleteWorld"
	ListWorldsMethod    = "/" + ServiceName + "/ListWorlds"
	DescribeRoomMethod  = "/" + ServiceName + "/DescribeRoom"
	NarrateActionMethod = "/" + ServiceName + "/NarrateAction"
)

// PerceptionServiceServer is the server API. Requests and responses are
// JSON shaped structs; the field names are documented on each handler.
type PerceptionServiceServer interface {
	SaveWorld(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetWorld(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteWorld(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListWorlds(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DescribeRoom(context.Context, *structpb.Struct) (*structpb.Struct, error)
	NarrateAction(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPerceptionServiceServer registers srv with the gRPC server
func RegisterPerceptionServiceServer(s grpc.ServiceRegistrar, srv PerceptionServiceServer) {
	s.RegisterService(&PerceptionServiceDesc, srv)
}

func unaryHandler(
	method string,
	call func(PerceptionServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PerceptionServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PerceptionServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PerceptionServiceDesc describes the perception service for grpc.Server
var PerceptionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PerceptionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SaveWorld",
			Handler:    unaryHandler(SaveWorldMethod, PerceptionServiceServer.SaveWorld),
		},
		{
			MethodName: "GetWorld",
			Handler:    unaryHandler(GetWorldMethod, PerceptionServiceServer.GetWorld),
		},
		{
			MethodName: "DeleteWorld",
			Handler:    unaryHandler(DeleteWorldMethod, PerceptionServiceServer.DeleteWorld),
		},
		{
			MethodName: "ListWorlds",
			Handler:    unaryHandler(ListWorldsMethod, PerceptionServiceServer.ListWorlds),
		},
		{
			MethodName: "DescribeRoom",
			Handler:    unaryHandler(DescribeRoomMethod, PerceptionServiceServer.DescribeRoom),
		},
		{
			MethodName: "NarrateAction",
			Handler:    unaryHandler(NarrateActionMethod, PerceptionServiceServer.NarrateAction),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "perception/v1alpha1/perception.proto",
}

// PerceptionServiceClient is the client API for the perception service
type PerceptionServiceClient interface {
	SaveWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListWorlds(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DescribeRoom(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	NarrateAction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type perceptionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPerceptionServiceClient creates a client on an open connection
func NewPerceptionServiceClient(cc grpc.ClientConnInterface) PerceptionServiceClient {
	return &perceptionServiceClient{cc: cc}
}

func (c *perceptionServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *perceptionServiceClient) SaveWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SaveWorldMethod, in, opts)
}

func (c *perceptionServiceClient) GetWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetWorldMethod, in, opts)
}

func (c *perceptionServiceClient) DeleteWorld(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeleteWorldMethod, in, opts)
}

func (c *perceptionServiceClient) ListWorlds(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListWorldsMethod, in, opts)
}

func (c *perceptionServiceClient) DescribeRoom(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DescribeRoomMethod, in, opts)
}

func (c *perceptionServiceClient) NarrateAction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NarrateActionMethod, in, opts)
}
