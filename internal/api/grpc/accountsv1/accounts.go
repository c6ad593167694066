// Package accountsv1 describes the accounts.v1.Accounts gRPC service.
// Messages are protobuf well-known types. The file descriptor is assembled
// in descriptor.go so reflection can describe the service.
package accountsv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "accounts.v1.Accounts"

const (
	CreateUserMethod      = "/" + ServiceName + "/CreateUser"
	CreateSuperuserMethod = "/" + ServiceName + "/CreateSuperuser"
	GetUserMethod         = "/" + ServiceName + "/GetUser"
	UpdateUserMethod      = "/" + ServiceName + "/UpdateUser"
	DeleteUserMethod      = "/" + ServiceName + "/DeleteUser"
	SetActiveMethod       = "/" + ServiceName + "/SetActive"
)

// AccountsServer is the server API for the Accounts service.
type AccountsServer interface {
	CreateUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateSuperuser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetUser(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	UpdateUser(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteUser(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	SetActive(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedAccountsServer can be embedded to have forward compatible implementations.
type UnimplementedAccountsServer struct{}

func (UnimplementedAccountsServer) CreateUser(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateUser not implemented")
}
func (UnimplementedAccountsServer) CreateSuperuser(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSuperuser not implemented")
}
func (UnimplementedAccountsServer) GetUser(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedAccountsServer) UpdateUser(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateUser not implemented")
}
func (UnimplementedAccountsServer) DeleteUser(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteUser not implemented")
}
func (UnimplementedAccountsServer) SetActive(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SetActive not implemented")
}

// RegisterAccountsServer registers srv on s.
func RegisterAccountsServer(s grpc.ServiceRegistrar, srv AccountsServer) {
	s.RegisterService(&accountsServiceDesc, srv)
}

// unary builds a method handler that decodes a Req and calls call on the server.
func unary[Req any, Resp any](method string, call func(AccountsServer, context.Context, *Req) (Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountsServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var accountsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateUser", Handler: unary(CreateUserMethod, AccountsServer.CreateUser)},
		{MethodName: "CreateSuperuser", Handler: unary(CreateSuperuserMethod, AccountsServer.CreateSuperuser)},
		{MethodName: "GetUser", Handler: unary(GetUserMethod, AccountsServer.GetUser)},
		{MethodName: "UpdateUser", Handler: unary(UpdateUserMethod, AccountsServer.UpdateUser)},
		{MethodName: "DeleteUser", Handler: unary(DeleteUserMethod, AccountsServer.DeleteUser)},
		{MethodName: "SetActive", Handler: unary(SetActiveMethod, AccountsServer.SetActive)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: FileName,
}

// AccountsClient is the client API for the Accounts service.
type AccountsClient struct {
	cc grpc.ClientConnInterface
}

// NewAccountsClient creates a client bound to cc.
func NewAccountsClient(cc grpc.ClientConnInterface) *AccountsClient {
	return &AccountsClient{cc: cc}
}

func (c *AccountsClient) CreateUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CreateUserMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountsClient) CreateSuperuser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CreateSuperuserMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountsClient) GetUser(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetUserMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountsClient) UpdateUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, UpdateUserMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountsClient) DeleteUser(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, DeleteUserMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountsClient) SetActive(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SetActiveMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
