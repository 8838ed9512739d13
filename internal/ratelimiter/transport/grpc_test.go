package transport

import (
	"context"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"throttlecrab/internal/ratelimiter/telemetry"
	"throttlecrab/internal/ratelimiter/transport/throttlepb"
)

func newGRPCClient(t *testing.T) throttlepb.RateLimiterClient {
	t.Helper()

	actor := newTestActor(t)
	gt := NewGRPCTransport("127.0.0.1", 0, actor.Handle(), telemetry.New(), zerolog.Nop())

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	gt.RegisterOn(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return throttlepb.NewRateLimiterClient(conn)
}

func TestGRPCThrottle(t *testing.T) {
	client := newGRPCClient(t)

	resp, err := client.Throttle(context.Background(), &throttlepb.ThrottleRequest{
		Key:            "grpc-key",
		MaxBurst:       5,
		CountPerPeriod: 10,
		Period:         60,
		Quantity:       1,
	})
	require.NoError(t, err)
	assert.True(t, resp.GetAllowed())
	assert.Equal(t, int64(5), resp.GetLimit())
	assert.Equal(t, int64(4), resp.GetRemaining())
}

func TestGRPCThrottleQuantityDefaultsToOne(t *testing.T) {
	client := newGRPCClient(t)

	resp, err := client.Throttle(context.Background(), &throttlepb.ThrottleRequest{
		Key: "grpc-default", MaxBurst: 3, CountPerPeriod: 30, Period: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.GetRemaining())
}

func TestGRPCThrottleDenied(t *testing.T) {
	client := newGRPCClient(t)

	req := &throttlepb.ThrottleRequest{
		Key: "grpc-drain", MaxBurst: 2, CountPerPeriod: 10, Period: 60, Quantity: 1,
	}
	for i := 0; i < 2; i++ {
		resp, err := client.Throttle(context.Background(), req)
		require.NoError(t, err)
		require.True(t, resp.GetAllowed())
	}

	resp, err := client.Throttle(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.GetAllowed())
	assert.Greater(t, resp.GetRetryAfter(), int64(0))
}

func TestGRPCThrottleInvalidArguments(t *testing.T) {
	client := newGRPCClient(t)
	ctx := context.Background()

	_, err := client.Throttle(ctx, &throttlepb.ThrottleRequest{
		MaxBurst: 5, CountPerPeriod: 10, Period: 60,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err), "missing key")

	_, err = client.Throttle(ctx, &throttlepb.ThrottleRequest{
		Key: "k", MaxBurst: 0, CountPerPeriod: 10, Period: 60,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err), "invalid policy")

	_, err = client.Throttle(ctx, &throttlepb.ThrottleRequest{
		Key: "k", MaxBurst: 5, CountPerPeriod: 10, Period: 60, Quantity: -1,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err), "negative quantity")
}
