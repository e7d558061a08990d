package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pokebattle.v1alpha1.BattleService"

// Full method names
const (
	BattleFullMethod      = "/" + ServiceName + "/Battle"
	ListBattlesFullMethod = "/" + ServiceName + "/ListBattles"
)

// BattleServiceServer is the server API for the battle service. Messages are
// google.protobuf.Struct values shaped like the REST JSON bodies.
type BattleServiceServer interface {
	Battle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListBattles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBattleServiceServer registers srv with s
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleServiceDesc, srv)
}

// BattleServiceDesc describes the battle service for grpc.Server
var BattleServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Battle",
			Handler:    battleHandler,
		},
		{
			MethodName: "ListBattles",
			Handler:    listBattlesHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokebattle/v1alpha1/battle.proto",
}

func battleHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).Battle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BattleFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BattleServiceServer).Battle(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listBattlesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).ListBattles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListBattlesFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BattleServiceServer).ListBattles(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// BattleServiceClient is the client API for the battle service
type BattleServiceClient interface {
	Battle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListBattles(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type battleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client on cc
func NewBattleServiceClient(cc grpc.ClientConnInterface) BattleServiceClient {
	return &battleServiceClient{cc: cc}
}

func (c *battleServiceClient) Battle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BattleFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) ListBattles(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListBattlesFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
