package router

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/seeseehome-users/internal/api/grpc/accountsv1"
	"github.com/dtroode/seeseehome-users/internal/password"
	"github.com/dtroode/seeseehome-users/internal/repository/memory"
	"github.com/dtroode/seeseehome-users/internal/service"
	"github.com/dtroode/seeseehome-users/internal/testutil"
)

const adminToken = "test-admin-token"

func dialRouter(t *testing.T) *grpc.ClientConn {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	hasher, err := password.NewHasher(password.Params{Time: 1, MemKiB: 1024, Par: 1})
	require.NoError(t, err)
	accounts := service.NewAccount(memory.NewUserRepository(), hasher, lg)

	s := New(accounts, adminToken, lg).Register()
	ln := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(ln) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return ln.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func authed(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+adminToken)
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	s := New(nil, adminToken, testutil.MakeNoopLogger()).Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, accountsv1.ServiceName)
	assert.Len(t, info[accountsv1.ServiceName].Methods, 6)
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	client := accountsv1.NewAccountsClient(dialRouter(t))

	_, err := client.GetUser(context.Background(), wrapperspb.String("2f1b0c8e-52e1-4a38-9a53-3c4f3c1b8f3a"))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, st.Code())

	wrong := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
	_, err = client.GetUser(wrong, wrapperspb.String("2f1b0c8e-52e1-4a38-9a53-3c4f3c1b8f3a"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRouter_ReflectionIsPublic(t *testing.T) {
	t.Parallel()

	client := reflectionpb.NewServerReflectionClient(dialRouter(t))
	stream, err := client.ServerReflectionInfo(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, accountsv1.ServiceName)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: accountsv1.ServiceName,
		},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)
	require.Nil(t, resp.GetErrorResponse(), "describe failed: %v", resp.GetErrorResponse())

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, files)

	var described bool
	for _, raw := range files {
		fdp := &descriptorpb.FileDescriptorProto{}
		require.NoError(t, proto.Unmarshal(raw, fdp))
		if fdp.GetName() != accountsv1.FileName {
			continue
		}
		described = true
		require.Len(t, fdp.GetService(), 1)
		assert.Len(t, fdp.GetService()[0].GetMethod(), 6)
	}
	assert.True(t, described, "reflection did not return %s", accountsv1.FileName)
}

func TestRouter_AccountLifecycle(t *testing.T) {
	t.Parallel()

	ctx := authed(context.Background())
	client := accountsv1.NewAccountsClient(dialRouter(t))

	req, err := structpb.NewStruct(map[string]any{
		"username": "alice_01",
		"email":    "  alice@EXAMPLE.com ",
		"password": "Passw0rd!",
	})
	require.NoError(t, err)

	created, err := client.CreateUser(ctx, req)
	require.NoError(t, err)
	fields := created.GetFields()
	id := fields["id"].GetStringValue()
	assert.Equal(t, "alice@example.com", fields["email"].GetStringValue())
	assert.Equal(t, float64(1), fields["userperm"].GetNumberValue())
	assert.NotContains(t, fields, "password")

	_, err = client.CreateUser(ctx, req)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	upd, err := structpb.NewStruct(map[string]any{"id": id, "userperm": 3})
	require.NoError(t, err)
	_, err = client.UpdateUser(ctx, upd)
	require.NoError(t, err)

	bad, err := structpb.NewStruct(map[string]any{"id": id, "userperm": 99})
	require.NoError(t, err)
	_, err = client.UpdateUser(ctx, bad)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	act, err := structpb.NewStruct(map[string]any{"id": id, "is_active": false})
	require.NoError(t, err)
	deactivated, err := client.SetActive(ctx, act)
	require.NoError(t, err)
	assert.False(t, deactivated.GetFields()["is_active"].GetBoolValue())

	got, err := client.GetUser(ctx, wrapperspb.String(id))
	require.NoError(t, err)
	assert.Equal(t, float64(3), got.GetFields()["userperm"].GetNumberValue())
	assert.False(t, got.GetFields()["is_active"].GetBoolValue())

	_, err = client.DeleteUser(ctx, wrapperspb.String(id))
	require.NoError(t, err)

	_, err = client.GetUser(ctx, wrapperspb.String(id))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.DeleteUser(ctx, wrapperspb.String(id))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRouter_CreateSuperuser(t *testing.T) {
	t.Parallel()

	ctx := authed(context.Background())
	client := accountsv1.NewAccountsClient(dialRouter(t))

	req, err := structpb.NewStruct(map[string]any{
		"username": "root",
		"email":    "root@example.com",
		"password": "R00t!pass",
	})
	require.NoError(t, err)

	created, err := client.CreateSuperuser(ctx, req)
	require.NoError(t, err)

	got, err := client.GetUser(ctx, wrapperspb.String(created.GetFields()["id"].GetStringValue()))
	require.NoError(t, err)
	assert.True(t, got.GetFields()["is_staff"].GetBoolValue())
}
