package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crest/internal/shared/constants"
)

func TestContentTableFor(t *testing.T) {
	tests := []struct {
		contentType string
		table       string
	}{
		{"profile", constants.TableProfiles},
		{"profile_pair", constants.TableProfilePairs},
		{"emote", constants.TableEmotes},
		{"wallpaper", constants.TableWallpapers},
		{"emoji_combo", constants.TableEmojiCombos},
	}

	for _, tc := range tests {
		table, err := ContentTableFor(tc.contentType)
		require.NoError(t, err, "content type %s", tc.contentType)
		assert.Equal(t, tc.table, table)
	}

	_, err := ContentTableFor("comment")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown content type")
}

func TestResolutionAction_Validate(t *testing.T) {
	tests := []struct {
		name   string
		action ResolutionAction
		errMsg string
	}{
		{
			name:   "valid warning",
			action: ResolutionAction{Type: ActionTypeWarning, Message: "Stop spamming", Reason: "spam"},
		},
		{
			name:   "warning without message",
			action: ResolutionAction{Type: ActionTypeWarning, Reason: "spam"},
			errMsg: "warning message is required",
		},
		{
			name:   "valid suspension",
			action: ResolutionAction{Type: ActionTypeAccount, Action: AccountActionSuspend, DurationHours: 72, Reason: "harassment"},
		},
		{
			name:   "suspension without duration",
			action: ResolutionAction{Type: ActionTypeAccount, Action: AccountActionSuspend, Reason: "harassment"},
			errMsg: "suspension duration is required",
		},
		{
			name:   "suspension with negative duration",
			action: ResolutionAction{Type: ActionTypeAccount, Action: AccountActionSuspend, DurationHours: -1, Reason: "harassment"},
			errMsg: "suspension duration is required",
		},
		{
			name:   "valid readonly",
			action: ResolutionAction{Type: ActionTypeAccount, Action: AccountActionReadonly, Reason: "repeated offenses"},
		},
		{
			name:   "valid account delete",
			action: ResolutionAction{Type: ActionTypeAccount, Action: AccountActionDelete, Reason: "bot account"},
		},
		{
			name:   "unknown account action",
			action: ResolutionAction{Type: ActionTypeAccount, Action: "ban", Reason: "x"},
			errMsg: "unknown account action",
		},
		{
			name:   "valid content delete",
			action: ResolutionAction{Type: ActionTypeContent, Action: ContentActionDelete, Reason: "stolen artwork"},
		},
		{
			name:   "unknown content action",
			action: ResolutionAction{Type: ActionTypeContent, Action: "hide", Reason: "x"},
			errMsg: "unknown content action",
		},
		{
			name:   "missing reason",
			action: ResolutionAction{Type: ActionTypeWarning, Message: "msg"},
			errMsg: "reason is required",
		},
		{
			name:   "unknown type",
			action: ResolutionAction{Type: "escalate", Reason: "x"},
			errMsg: "unknown resolution type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.action.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestResolutionAction_AuditAction(t *testing.T) {
	tests := []struct {
		action ResolutionAction
		want   string
	}{
		{ResolutionAction{Type: ActionTypeWarning}, "resolve_report_warning"},
		{ResolutionAction{Type: ActionTypeAccount, Action: AccountActionSuspend}, "resolve_report_account_suspend"},
		{ResolutionAction{Type: ActionTypeAccount, Action: AccountActionReadonly}, "resolve_report_account_readonly"},
		{ResolutionAction{Type: ActionTypeAccount, Action: AccountActionDelete}, "resolve_report_account_delete"},
		{ResolutionAction{Type: ActionTypeContent, Action: ContentActionDelete}, "resolve_report_content_delete"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.action.AuditAction())
	}
}
