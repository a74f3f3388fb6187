package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "crest/internal/domain/ticket/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Cannot upload wallpaper", "Uploads fail with a server error", vo.PriorityMedium, 10)
	require.NoError(t, err)
	return tk
}

// reconstructedTicket builds a persisted-style ticket with the given owner
// and lock state.
func reconstructedTicket(t *testing.T, ownerID *uint, isLocked bool) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	var lockedAt *time.Time
	if isLocked {
		lockedAt = &now
	}
	tk, err := ReconstructTicket(
		1, "TKT-0001",
		"Persisted ticket", "original message",
		vo.StatusPending, vo.PriorityHigh,
		ownerID, isLocked, lockedAt,
		10, // submitter
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func uintPtr(v uint) *uint {
	return &v
}

// ---------------------------------------------------------------------------
// Constructor Tests
// ---------------------------------------------------------------------------

func TestNewTicket_ValidInput(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		message string
		pri     vo.Priority
		userID  uint
	}{
		{
			name:    "all valid fields - medium",
			subject: "Profile picture missing", message: "My avatar disappeared after the update",
			pri: vo.PriorityMedium, userID: 1,
		},
		{
			name:    "all valid fields - urgent",
			subject: "Account hijacked", message: "Someone changed my email",
			pri: vo.PriorityUrgent, userID: 42,
		},
		{
			name:    "boundary subject length 200",
			subject: strings.Repeat("a", 200), message: "msg",
			pri: vo.PriorityLow, userID: 5,
		},
		{
			name:    "boundary message length 5000",
			subject: "Subject", message: strings.Repeat("m", 5000),
			pri: vo.PriorityHigh, userID: 7,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.subject, tc.message, tc.pri, tc.userID)
			require.NoError(t, err)
			require.NotNil(t, tk)

			assert.Equal(t, tc.subject, tk.Subject())
			assert.Equal(t, tc.message, tk.Message())
			assert.Equal(t, tc.pri, tk.Priority())
			assert.Equal(t, tc.userID, tk.UserID())
			assert.Equal(t, vo.StatusPending, tk.Status(), "new ticket must start pending")
			assert.Nil(t, tk.OwnerID())
			assert.False(t, tk.IsLocked())
			assert.Nil(t, tk.LockedAt())
			assert.Empty(t, tk.Number(), "number is assigned on persist")
			assert.False(t, tk.CreatedAt().IsZero())
			assert.False(t, tk.UpdatedAt().IsZero())
		})
	}
}

func TestNewTicket_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		message string
		pri     vo.Priority
		userID  uint
		errMsg  string
	}{
		{"empty subject", "", "msg", vo.PriorityLow, 1, "subject is required"},
		{"subject too long", strings.Repeat("a", 201), "msg", vo.PriorityLow, 1, "subject exceeds maximum length"},
		{"empty message", "subject", "", vo.PriorityLow, 1, "message is required"},
		{"message too long", "subject", strings.Repeat("m", 5001), vo.PriorityLow, 1, "message exceeds maximum length"},
		{"invalid priority", "subject", "msg", vo.Priority("critical"), 1, "invalid priority"},
		{"zero submitter", "subject", "msg", vo.PriorityLow, 0, "submitter ID is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.subject, tc.message, tc.pri, tc.userID)
			require.Error(t, err)
			assert.Nil(t, tk)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestReconstructTicket_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructTicket(0, "TKT-0001", "s", "m", vo.StatusPending, vo.PriorityLow, nil, false, nil, 1, now, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID cannot be zero")

	_, err = ReconstructTicket(1, "", "s", "m", vo.StatusPending, vo.PriorityLow, nil, false, nil, 1, now, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number is required")

	_, err = ReconstructTicket(1, "TKT-0001", "s", "m", vo.Status("open"), vo.PriorityLow, nil, false, nil, 1, now, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

// ---------------------------------------------------------------------------
// Identity Tests
// ---------------------------------------------------------------------------

func TestTicket_SetID(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.SetID(7))
	assert.Equal(t, uint(7), tk.ID())

	assert.Error(t, tk.SetID(8), "ID can only be set once")
	assert.Error(t, newValidTicket(t).SetID(0))
}

func TestTicket_SetNumber(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.SetNumber("TKT-0042"))
	assert.Equal(t, "TKT-0042", tk.Number())

	assert.Error(t, tk.SetNumber("TKT-0043"), "number can only be set once")
	assert.Error(t, newValidTicket(t).SetNumber(""))
}

// ---------------------------------------------------------------------------
// Access Control Tests
// ---------------------------------------------------------------------------

func TestTicket_CanBeAccessedBy(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  *uint
		isLocked bool
		userID   uint
		isAdmin  bool
		want     bool
	}{
		{"admin on locked foreign ticket", uintPtr(2), true, 99, true, true},
		{"owner on own locked ticket", uintPtr(2), true, 2, false, true},
		{"owner on own unlocked ticket", uintPtr(2), false, 2, false, true},
		{"non-owner on unlocked ticket", uintPtr(2), false, 3, false, true},
		{"non-owner on locked ticket", uintPtr(2), true, 3, false, false},
		{"anyone on unowned unlocked ticket", nil, false, 3, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := reconstructedTicket(t, tc.ownerID, tc.isLocked)
			assert.Equal(t, tc.want, tk.CanBeAccessedBy(tc.userID, tc.isAdmin))
		})
	}
}

// ---------------------------------------------------------------------------
// State Change Tests
// ---------------------------------------------------------------------------

func TestTicket_ChangeStatus(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusReviewed))
	assert.Equal(t, vo.StatusReviewed, tk.Status())

	require.NoError(t, tk.ChangeStatus(vo.StatusReviewed), "same-value change is a no-op")

	err := tk.ChangeStatus(vo.Status("archived"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
	assert.Equal(t, vo.StatusReviewed, tk.Status())
}

func TestTicket_ChangePriority(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.ChangePriority(vo.PriorityUrgent))
	assert.Equal(t, vo.PriorityUrgent, tk.Priority())

	require.NoError(t, tk.ChangePriority(vo.PriorityUrgent), "same-value change is a no-op")

	err := tk.ChangePriority(vo.Priority("critical"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid priority")
}

func TestTicket_TransferTo(t *testing.T) {
	tk := reconstructedTicket(t, nil, false)

	require.NoError(t, tk.TransferTo(5))
	require.NotNil(t, tk.OwnerID())
	assert.Equal(t, uint(5), *tk.OwnerID())

	// Transfer to the same owner keeps the owner field stable.
	require.NoError(t, tk.TransferTo(5))
	assert.Equal(t, uint(5), *tk.OwnerID())

	require.NoError(t, tk.TransferTo(9))
	assert.Equal(t, uint(9), *tk.OwnerID())

	assert.Error(t, tk.TransferTo(0))
	assert.Equal(t, uint(9), *tk.OwnerID(), "failed transfer leaves owner unchanged")
}

// ---------------------------------------------------------------------------
// Lock Tests
// ---------------------------------------------------------------------------

func TestTicket_Lock_RequiresOwner(t *testing.T) {
	tk := reconstructedTicket(t, nil, false)

	err := tk.Lock()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without an owner")
	assert.False(t, tk.IsLocked())
}

func TestTicket_Lock_Idempotent(t *testing.T) {
	tk := reconstructedTicket(t, uintPtr(2), false)

	require.NoError(t, tk.Lock())
	assert.True(t, tk.IsLocked())
	require.NotNil(t, tk.LockedAt())
	firstLockedAt := *tk.LockedAt()

	require.NoError(t, tk.Lock(), "locking an already-locked ticket is a no-op")
	assert.Equal(t, firstLockedAt, *tk.LockedAt(), "repeated lock must not refresh the timestamp")
}

func TestTicket_Unlock(t *testing.T) {
	tk := reconstructedTicket(t, uintPtr(2), true)

	tk.Unlock()
	assert.False(t, tk.IsLocked())
	assert.Nil(t, tk.LockedAt())

	// Unlocking an unlocked ticket is a no-op.
	tk.Unlock()
	assert.False(t, tk.IsLocked())
}
