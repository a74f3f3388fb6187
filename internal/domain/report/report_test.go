package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "crest/internal/domain/report/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func uintPtr(v uint) *uint {
	return &v
}

// reconstructedReport builds a persisted-style account report in the given
// status with an optional handler.
func reconstructedReport(t *testing.T, status vo.Status, handledBy *uint) *Report {
	t.Helper()
	now := time.Now().UTC()
	r, err := ReconstructReport(
		1,
		5,           // reporter
		uintPtr(20), // reported user
		nil, "",
		"harassment in profile comments",
		status,
		handledBy, nil,
		false,
		now, now,
	)
	require.NoError(t, err)
	return r
}

// ---------------------------------------------------------------------------
// Constructor Tests
// ---------------------------------------------------------------------------

func TestNewAccountReport(t *testing.T) {
	r, err := NewAccountReport(5, 20, "harassment", true)
	require.NoError(t, err)

	assert.Equal(t, uint(5), r.ReporterUserID())
	require.NotNil(t, r.ReportedUserID())
	assert.Equal(t, uint(20), *r.ReportedUserID())
	assert.Nil(t, r.ContentID())
	assert.True(t, r.IsAccountReport())
	assert.Equal(t, vo.StatusPending, r.Status())
	assert.True(t, r.Urgent())
	assert.Nil(t, r.HandledBy())
	assert.Nil(t, r.HandledAt())
}

func TestNewAccountReport_Invalid(t *testing.T) {
	_, err := NewAccountReport(0, 20, "reason", false)
	assert.Error(t, err)
	_, err = NewAccountReport(5, 0, "reason", false)
	assert.Error(t, err)
	_, err = NewAccountReport(5, 20, "", false)
	assert.Error(t, err)
}

func TestNewContentReport(t *testing.T) {
	r, err := NewContentReport(5, 77, "emote", "stolen artwork", false)
	require.NoError(t, err)

	require.NotNil(t, r.ContentID())
	assert.Equal(t, uint(77), *r.ContentID())
	assert.Equal(t, "emote", r.ContentType())
	assert.Nil(t, r.ReportedUserID())
	assert.False(t, r.IsAccountReport())
	assert.Equal(t, vo.StatusPending, r.Status())
}

func TestNewContentReport_UnknownContentType(t *testing.T) {
	r, err := NewContentReport(5, 77, "comment", "spam", false)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "unknown content type")
}

// ---------------------------------------------------------------------------
// Claim Tests
// ---------------------------------------------------------------------------

func TestReport_Claim_Pending(t *testing.T) {
	r := reconstructedReport(t, vo.StatusPending, nil)

	require.NoError(t, r.Claim(7))
	assert.Equal(t, vo.StatusInProgress, r.Status())
	require.NotNil(t, r.HandledBy())
	assert.Equal(t, uint(7), *r.HandledBy())
	assert.Nil(t, r.HandledAt(), "handled_at is stamped only on terminal transitions")
}

func TestReport_Claim_SameHandlerNoop(t *testing.T) {
	r := reconstructedReport(t, vo.StatusInProgress, uintPtr(7))

	require.NoError(t, r.Claim(7))
	assert.Equal(t, vo.StatusInProgress, r.Status())
	assert.Equal(t, uint(7), *r.HandledBy())
}

func TestReport_Claim_OtherHandlerRejected(t *testing.T) {
	r := reconstructedReport(t, vo.StatusInProgress, uintPtr(7))

	err := r.Claim(8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandledByAnother)
	assert.Equal(t, uint(7), *r.HandledBy(), "rejected claim leaves the handler unchanged")
}

func TestReport_Claim_TerminalRejected(t *testing.T) {
	for _, status := range []vo.Status{vo.StatusResolved, vo.StatusDismissed} {
		r := reconstructedReport(t, status, uintPtr(7))
		err := r.Claim(8)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrHandledByAnother, "terminal reports fail the transition check, not exclusivity")
	}
}

func TestReport_Claim_ZeroHandler(t *testing.T) {
	r := reconstructedReport(t, vo.StatusPending, nil)
	assert.Error(t, r.Claim(0))
}

// ---------------------------------------------------------------------------
// Exclusivity Tests
// ---------------------------------------------------------------------------

func TestReport_CanBeHandledBy(t *testing.T) {
	tests := []struct {
		name      string
		status    vo.Status
		handledBy *uint
		userID    uint
		isAdmin   bool
		want      bool
	}{
		{"admin on foreign in_progress", vo.StatusInProgress, uintPtr(7), 8, true, true},
		{"claiming handler", vo.StatusInProgress, uintPtr(7), 7, false, true},
		{"other staff on in_progress", vo.StatusInProgress, uintPtr(7), 8, false, false},
		{"anyone on pending", vo.StatusPending, nil, 8, false, true},
		{"anyone on resolved", vo.StatusResolved, uintPtr(7), 8, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := reconstructedReport(t, tc.status, tc.handledBy)
			assert.Equal(t, tc.want, r.CanBeHandledBy(tc.userID, tc.isAdmin))
		})
	}
}

// ---------------------------------------------------------------------------
// Terminal Transition Tests
// ---------------------------------------------------------------------------

func TestReport_Resolve(t *testing.T) {
	r := reconstructedReport(t, vo.StatusInProgress, uintPtr(7))

	require.NoError(t, r.Resolve(7))
	assert.Equal(t, vo.StatusResolved, r.Status())
	require.NotNil(t, r.HandledAt())
	assert.Equal(t, uint(7), *r.HandledBy())
}

func TestReport_Resolve_DirectFromPending(t *testing.T) {
	// An admin may resolve without claiming first.
	r := reconstructedReport(t, vo.StatusPending, nil)

	require.NoError(t, r.Resolve(3))
	assert.Equal(t, vo.StatusResolved, r.Status())
	assert.Equal(t, uint(3), *r.HandledBy())
}

func TestReport_Dismiss(t *testing.T) {
	r := reconstructedReport(t, vo.StatusPending, nil)

	require.NoError(t, r.Dismiss(7))
	assert.Equal(t, vo.StatusDismissed, r.Status())
	require.NotNil(t, r.HandledAt())
}

func TestReport_TerminalIsFinal(t *testing.T) {
	r := reconstructedReport(t, vo.StatusResolved, uintPtr(7))

	assert.Error(t, r.Resolve(7), "resolved reports cannot transition again")
	assert.Error(t, r.Dismiss(7))

	r = reconstructedReport(t, vo.StatusDismissed, uintPtr(7))
	assert.Error(t, r.Resolve(7))
}
