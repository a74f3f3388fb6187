package report

import (
	"fmt"

	"crest/internal/shared/constants"
)

// ActionType is the category of remedy applied to a report.
type ActionType string

const (
	ActionTypeWarning ActionType = "warning"
	ActionTypeAccount ActionType = "account"
	ActionTypeContent ActionType = "content"
)

// Account sub-actions.
const (
	AccountActionSuspend  = "suspend"
	AccountActionReadonly = "readonly"
	AccountActionDelete   = "delete"
)

// Content sub-actions.
const (
	ContentActionDelete = "delete"
)

// contentTables maps a content report's content_type to its backing table.
// The set is closed; anything else is a validation failure.
var contentTables = map[string]string{
	"profile":      constants.TableProfiles,
	"profile_pair": constants.TableProfilePairs,
	"emote":        constants.TableEmotes,
	"wallpaper":    constants.TableWallpapers,
	"emoji_combo":  constants.TableEmojiCombos,
}

// ContentTableFor resolves a content type to its table name.
func ContentTableFor(contentType string) (string, error) {
	table, ok := contentTables[contentType]
	if !ok {
		return "", fmt.Errorf("unknown content type: %s", contentType)
	}
	return table, nil
}

// ResolutionAction is the moderator-chosen remedy for a report. It is a
// value object: validated up front, then carried verbatim into the audit
// log for forensic replay.
type ResolutionAction struct {
	Type          ActionType
	Action        string
	DurationHours int
	Message       string
	Reason        string
}

// Validate rejects an incomplete action before any write happens.
func (a ResolutionAction) Validate() error {
	if len(a.Reason) == 0 {
		return fmt.Errorf("resolution reason is required")
	}

	switch a.Type {
	case ActionTypeWarning:
		if len(a.Message) == 0 {
			return fmt.Errorf("warning message is required")
		}
	case ActionTypeAccount:
		switch a.Action {
		case AccountActionSuspend:
			if a.DurationHours <= 0 {
				return fmt.Errorf("suspension duration is required")
			}
		case AccountActionReadonly, AccountActionDelete:
		default:
			return fmt.Errorf("unknown account action: %s", a.Action)
		}
	case ActionTypeContent:
		if a.Action != ContentActionDelete {
			return fmt.Errorf("unknown content action: %s", a.Action)
		}
	default:
		return fmt.Errorf("unknown resolution type: %s", a.Type)
	}

	return nil
}

// AuditAction returns the canonical audit-log action name, e.g.
// "resolve_report_account_suspend" or "resolve_report_warning".
func (a ResolutionAction) AuditAction() string {
	if a.Type == ActionTypeWarning {
		return "resolve_report_warning"
	}
	return fmt.Sprintf("resolve_report_%s_%s", a.Type, a.Action)
}
