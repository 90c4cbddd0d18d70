package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_WithinBurst(t *testing.T) {
	krl := New(1, 3, time.Minute)
	defer krl.Stop()

	assert.True(t, krl.Allow("10.0.0.1"))
	assert.True(t, krl.Allow("10.0.0.1"))
	assert.True(t, krl.Allow("10.0.0.1"))
	assert.False(t, krl.Allow("10.0.0.1"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl := New(1, 1, time.Minute)
	defer krl.Stop()

	assert.True(t, krl.Allow("10.0.0.1"))
	assert.False(t, krl.Allow("10.0.0.1"))

	// A different client still has its full burst.
	assert.True(t, krl.Allow("10.0.0.2"))
}

func TestAllow_Refills(t *testing.T) {
	krl := New(100, 1, time.Minute)
	defer krl.Stop()

	assert.True(t, krl.Allow("k"))
	assert.False(t, krl.Allow("k"))

	time.Sleep(15 * time.Millisecond)
	assert.True(t, krl.Allow("k"))
}

func TestSweep_DropsIdleEntries(t *testing.T) {
	krl := New(1, 1, 10*time.Millisecond)
	defer krl.Stop()

	krl.Allow("a")
	krl.Allow("b")
	assert.Equal(t, 2, krl.Len())

	krl.sweep(time.Now().Add(time.Second))
	assert.Equal(t, 0, krl.Len())
}

func TestSweep_KeepsActiveEntries(t *testing.T) {
	krl := New(1, 1, time.Hour)
	defer krl.Stop()

	krl.Allow("a")
	krl.sweep(time.Now())

	assert.Equal(t, 1, krl.Len())
}

func TestStop_Idempotent(t *testing.T) {
	krl := New(1, 1, time.Minute)
	krl.Stop()
	krl.Stop()
}
