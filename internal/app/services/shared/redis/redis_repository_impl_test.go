package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeo-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCmdable struct {
	redis.Cmdable
	mock.Mock
}

func (m *MockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	cmd := redis.NewStringCmd(ctx, "get", key)
	if err := args.Error(1); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(args.String(0))
	}
	return cmd
}

func (m *MockCmdable) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if err := args.Error(0); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal("OK")
	}
	return cmd
}

func (m *MockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	cmd := redis.NewIntCmd(ctx, "del")
	if err := args.Error(0); err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(int64(len(keys)))
	}
	return cmd
}

func TestRedisRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("existing key", func(t *testing.T) {
		client := new(MockCmdable)
		client.On("Get", ctx, "token").Return(`"abc"`, nil)

		value, err := NewRedisRepository(client).Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, `"abc"`, value)
		client.AssertExpectations(t)
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		client := new(MockCmdable)
		client.On("Get", ctx, "token").Return("", redis.Nil)

		value, err := NewRedisRepository(client).Get(ctx, "token")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("connection failure", func(t *testing.T) {
		client := new(MockCmdable)
		client.On("Get", ctx, "token").Return("", errors.New("dial tcp: refused"))

		_, err := NewRedisRepository(client).Get(ctx, "token")
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindStorage))
	})
}

func TestRedisRepository_SetEncodesJSON(t *testing.T) {
	ctx := context.Background()
	client := new(MockCmdable)
	client.On("Set", ctx, "token", []byte(`"abc"`), time.Hour).Return(nil)

	err := NewRedisRepository(client).Set(ctx, "token", "abc", time.Hour)
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestRedisRepository_Delete(t *testing.T) {
	ctx := context.Background()
	client := new(MockCmdable)
	client.On("Del", ctx, []string{"token"}).Return(errors.New("readonly replica"))

	err := NewRedisRepository(client).Delete(ctx, "token")
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindStorage))
}
