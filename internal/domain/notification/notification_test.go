package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_IsValid(t *testing.T) {
	valid := []Type{
		TypeNewTicket, TypeNewReport, TypeNewAppeal,
		TypeTicketUpdate, TypeWarning, TypeAccountAction, TypeContentAction,
	}
	for _, ty := range valid {
		assert.True(t, ty.IsValid(), "expected %s to be valid", ty)
	}

	assert.False(t, Type("").IsValid())
	assert.False(t, Type("broadcast").IsValid())
}

func TestNewNotification(t *testing.T) {
	n, err := NewNotification(7, TypeNewReport, "[URGENT] New report", "A report needs review",
		"/reports/3", map[string]interface{}{MetaReportID: uint(3)})
	require.NoError(t, err)

	assert.Equal(t, uint(7), n.UserID())
	assert.Equal(t, TypeNewReport, n.Type())
	assert.Equal(t, "[URGENT] New report", n.Title())
	assert.False(t, n.Read())
	assert.Equal(t, "/reports/3", n.ActionURL())
	assert.Equal(t, uint(3), n.Metadata()[MetaReportID])
}

func TestNewNotification_Invalid(t *testing.T) {
	_, err := NewNotification(0, TypeNewReport, "title", "msg", "", nil)
	assert.Error(t, err)

	_, err = NewNotification(7, Type("broadcast"), "title", "msg", "", nil)
	assert.Error(t, err)

	_, err = NewNotification(7, TypeNewReport, "", "msg", "", nil)
	assert.Error(t, err)

	_, err = NewNotification(7, TypeNewReport, "title", "", "", nil)
	assert.Error(t, err)
}

func TestNewNotification_NilMetadata(t *testing.T) {
	n, err := NewNotification(7, TypeWarning, "Warning issued", "Mind the rules", "", nil)
	require.NoError(t, err)
	assert.NotNil(t, n.Metadata())
	assert.Empty(t, n.Metadata())
}

func TestNotification_MetadataIsCopied(t *testing.T) {
	n, err := NewNotification(7, TypeNewTicket, "New ticket", "msg", "",
		map[string]interface{}{MetaTicketID: uint(9)})
	require.NoError(t, err)

	m := n.Metadata()
	m[MetaTicketID] = uint(999)
	assert.Equal(t, uint(9), n.Metadata()[MetaTicketID], "caller mutation must not leak into the entity")
}

func TestNotification_MarkAsRead(t *testing.T) {
	n, err := NewNotification(7, TypeTicketUpdate, "Reply", "Staff replied", "", nil)
	require.NoError(t, err)

	n.MarkAsRead()
	assert.True(t, n.Read())

	// Idempotent.
	n.MarkAsRead()
	assert.True(t, n.Read())
}

func TestNotification_SetID(t *testing.T) {
	n, err := NewNotification(7, TypeWarning, "t", "m", "", nil)
	require.NoError(t, err)

	require.NoError(t, n.SetID(4))
	assert.Equal(t, uint(4), n.ID())
	assert.Error(t, n.SetID(5))
}
