package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRedisClient es un mock del cliente Redis
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	cmd := redis.NewStringCmd(ctx, "get", key)
	if args.Error(1) != nil {
		cmd.SetErr(args.Error(1))
	} else {
		cmd.SetVal(args.String(0))
	}
	return cmd
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if args.Error(0) != nil {
		cmd.SetErr(args.Error(0))
	} else {
		cmd.SetVal("OK")
	}
	return cmd
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	cmd := redis.NewIntCmd(ctx, "del")
	if args.Error(1) != nil {
		cmd.SetErr(args.Error(1))
	} else {
		cmd.SetVal(int64(args.Int(0)))
	}
	return cmd
}

func (m *MockRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	args := m.Called(ctx)
	cmd := redis.NewStatusCmd(ctx, "ping")
	if args.Error(0) != nil {
		cmd.SetErr(args.Error(0))
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

func (m *MockRedisClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestRedisCache_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		mockValue string
		mockErr   error
		want      string
		wantErr   error
	}{
		{name: "existing key", mockValue: `{"value":5.23}`, want: `{"value":5.23}`},
		{name: "missing key maps to ErrKeyNotFound", mockErr: redis.Nil, wantErr: ErrKeyNotFound},
		{name: "connection error is propagated", mockErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockRedisClient)
			client.On("Get", ctx, "fx:spot:USD").Return(tt.mockValue, tt.mockErr)
			cache := NewRedisCacheWithClient(client, "fx:")

			got, err := cache.Get(ctx, "spot:USD")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.mockErr != nil:
				require.Error(t, err)
				assert.False(t, IsMiss(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			client.AssertExpectations(t)
		})
	}
}

func TestRedisCache_SetUsesPrefixAndNoExpiry(t *testing.T) {
	ctx := context.Background()
	client := new(MockRedisClient)
	client.On("Set", ctx, "fx:btc", "payload", time.Duration(0)).Return(nil).Twice()
	cache := NewRedisCacheWithClient(client, "fx:")

	require.NoError(t, cache.Set(ctx, "btc", "payload", 0))
	require.NoError(t, cache.Set(ctx, "btc", "payload", -time.Second))

	client.AssertExpectations(t)
}

func TestRedisCache_SetError(t *testing.T) {
	ctx := context.Background()
	client := new(MockRedisClient)
	client.On("Set", ctx, "k", "v", time.Minute).Return(errors.New("READONLY"))
	cache := NewRedisCacheWithClient(client, "")

	err := cache.Set(ctx, "k", "v", time.Minute)

	assert.EqualError(t, err, "READONLY")
}

func TestRedisCache_DeletePingClose(t *testing.T) {
	ctx := context.Background()
	client := new(MockRedisClient)
	client.On("Del", ctx, []string{"fx:k"}).Return(1, nil)
	client.On("Ping", ctx).Return(nil)
	client.On("Close").Return(nil)
	cache := NewRedisCacheWithClient(client, "fx:")

	assert.NoError(t, cache.Delete(ctx, "k"))
	assert.NoError(t, cache.Ping(ctx))
	assert.NoError(t, cache.Close())
	client.AssertExpectations(t)
}
