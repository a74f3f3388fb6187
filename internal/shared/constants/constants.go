package constants

// Environment names.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Roles. Admin implies every capability; moderator and staff are
// additionally gated by explicit capability grants.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleStaff     = "staff"
	RoleUser      = "user"
)

// Gin context keys.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Table names.
const (
	TableTickets              = "tickets"
	TableConversationMessages = "conversation_messages"
	TableReports              = "reports"
	TableAppeals              = "appeals"
	TableNotifications        = "notifications"
	TableUsers                = "users"
	TableAuditLogs            = "audit_logs"
)

// Content tables addressable by moderation content actions. The set is
// closed: a content report may only reference one of these.
const (
	TableProfiles     = "profiles"
	TableProfilePairs = "profile_pairs"
	TableEmotes       = "emotes"
	TableWallpapers   = "wallpapers"
	TableEmojiCombos  = "emoji_combos"
)
