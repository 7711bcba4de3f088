package slotlock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopAlwaysAcquires(t *testing.T) {
	var l Locker = Noop{}

	r1, err := l.Acquire(context.Background(), "slot:a")
	require.NoError(t, err)
	r2, err := l.Acquire(context.Background(), "slot:a")
	require.NoError(t, err)

	r1()
	r2()
	r1()
}

func TestNewRedisLockerDefaultsTTL(t *testing.T) {
	l := NewRedisLocker(nil, 0)
	assert.Equal(t, 5*time.Second, l.ttl)

	l = NewRedisLocker(nil, time.Second)
	assert.Equal(t, time.Second, l.ttl)
}

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}
