package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, rps float64, burst int, idleTTL time.Duration) (*KeyedRateLimiter, *time.Time) {
	t.Helper()

	krl := New(rps, burst, idleTTL)
	t.Cleanup(krl.Stop)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	krl.now = func() time.Time { return now }
	return krl, &now
}

func (krl *KeyedRateLimiter) size() int {
	krl.mu.Lock()
	defer krl.mu.Unlock()
	return len(krl.entries)
}

func TestAllow_BurstThenReject(t *testing.T) {
	krl, _ := newTestLimiter(t, 0.001, 2, time.Minute)

	assert.True(t, krl.Allow("10.0.0.1"))
	assert.True(t, krl.Allow("10.0.0.1"))
	assert.False(t, krl.Allow("10.0.0.1"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl, _ := newTestLimiter(t, 0.001, 1, time.Minute)

	assert.True(t, krl.Allow("a"))
	assert.False(t, krl.Allow("a"))
	assert.True(t, krl.Allow("b"))
}

func TestSweep_EvictsIdleKeys(t *testing.T) {
	krl, now := newTestLimiter(t, 10, 1, time.Minute)

	for i := 0; i < 1000; i++ {
		krl.Allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	require.Equal(t, 1000, krl.size())

	*now = now.Add(30 * time.Second)
	krl.Allow("10.0.0.0")
	krl.sweep()
	assert.Equal(t, 1000, krl.size())

	*now = now.Add(45 * time.Second)
	krl.sweep()
	assert.Equal(t, 1, krl.size())
}

func TestNew_IdleTTLCoversRefill(t *testing.T) {
	krl, _ := newTestLimiter(t, 0.25, 50, time.Minute)

	assert.Equal(t, 200*time.Second, krl.idleTTL)
}

func TestStop_IsIdempotent(t *testing.T) {
	krl := New(1, 1, time.Minute)

	assert.NotPanics(t, func() {
		krl.Stop()
		krl.Stop()
	})
}
