package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecurityState_RecordFailure(t *testing.T) {
	now := time.Now()
	state := SecurityState{}

	for i := 1; i < 5; i++ {
		locked := state.RecordFailure(now, 5, 15*time.Minute)
		assert.False(t, locked, "attempt %d should not lock", i)
		assert.Equal(t, i, state.FailedLoginAttempts)
		assert.False(t, state.IsLocked(now))
	}

	locked := state.RecordFailure(now, 5, 15*time.Minute)
	assert.True(t, locked)
	assert.True(t, state.IsLocked(now))
	assert.Equal(t, now.Add(15*time.Minute), state.LockedUntil)
}

func TestSecurityState_IsLocked(t *testing.T) {
	now := time.Now()

	t.Run("active lock", func(t *testing.T) {
		state := SecurityState{Locked: true, LockedUntil: now.Add(time.Minute)}
		assert.True(t, state.IsLocked(now))
	})

	t.Run("expired lock", func(t *testing.T) {
		state := SecurityState{Locked: true, LockedUntil: now.Add(-time.Minute)}
		assert.False(t, state.IsLocked(now))
	})

	t.Run("never locked", func(t *testing.T) {
		state := SecurityState{FailedLoginAttempts: 4}
		assert.False(t, state.IsLocked(now))
	})
}

func TestSecurityState_Reset(t *testing.T) {
	state := SecurityState{FailedLoginAttempts: 5, Locked: true, LockedUntil: time.Now().Add(time.Hour)}
	state.Reset()

	assert.Zero(t, state.FailedLoginAttempts)
	assert.False(t, state.Locked)
	assert.True(t, state.LockedUntil.IsZero())
}

func TestSecurityState_Lock(t *testing.T) {
	now := time.Now()
	state := SecurityState{}
	state.Lock(now.Add(24 * time.Hour))

	assert.True(t, state.IsLocked(now))
	assert.True(t, state.IsLocked(now.Add(23*time.Hour)))
	assert.False(t, state.IsLocked(now.Add(25*time.Hour)))
}

func TestUser_PasswordExpired(t *testing.T) {
	now := time.Now()

	t.Run("not yet expired", func(t *testing.T) {
		u := User{PasswordExpiresAt: now.Add(24 * time.Hour)}
		assert.False(t, u.PasswordExpired(now))
	})

	t.Run("expired", func(t *testing.T) {
		u := User{PasswordExpiresAt: now.Add(-time.Minute)}
		assert.True(t, u.PasswordExpired(now))
	})

	t.Run("zero expiry never expires", func(t *testing.T) {
		u := User{}
		assert.False(t, u.PasswordExpired(now))
	})
}
