package permission

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"crest/internal/shared/constants"
	"crest/internal/shared/logger"
)

// rbacModel is the standard RBAC model: subjects are either a role name or
// a "user:<id>" principal, objects are back-office resources, actions are
// verbs on them.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && r.obj == p.obj && r.act == p.act
`

// Enforcer answers capability checks for staff members. Admins bypass the
// policy entirely; everyone else needs an explicit grant, either on their
// role or on their individual principal.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}
	if err := e.seedDefaults(); err != nil {
		return nil, err
	}
	return e, nil
}

// Can reports whether the user may perform the action on the resource.
// Admin short-circuits to true; anyone else defaults to false without an
// explicit grant.
func (e *Enforcer) Can(userID uint, role, resource, action string) (bool, error) {
	if role == constants.RoleAdmin {
		return true, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	subject := principal(userID)
	allowed, err := e.enforcer.Enforce(subject, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "user_id", userID, "resource", resource, "action", action, "error", err)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	if allowed {
		return true, nil
	}

	allowed, err = e.enforcer.Enforce(role, resource, action)
	if err != nil {
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// GrantToUser adds an individual capability grant.
func (e *Enforcer) GrantToUser(userID uint, resource, action string) error {
	return e.addPolicy(principal(userID), resource, action)
}

// GrantToRole adds a role-wide capability grant.
func (e *Enforcer) GrantToRole(role, resource, action string) error {
	return e.addPolicy(role, resource, action)
}

// RevokeFromUser removes an individual capability grant.
func (e *Enforcer) RevokeFromUser(userID uint, resource, action string) error {
	return e.removePolicy(principal(userID), resource, action)
}

// RevokeFromRole removes a role-wide capability grant.
func (e *Enforcer) RevokeFromRole(role, resource, action string) error {
	return e.removePolicy(role, resource, action)
}

func (e *Enforcer) addPolicy(subject, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(subject, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "subject", subject, "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return e.enforcer.SavePolicy()
}

func (e *Enforcer) removePolicy(subject, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(subject, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "subject", subject, "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return e.enforcer.SavePolicy()
}

// seedDefaults installs the baseline grants for the non-admin staff roles.
// Re-adding an existing policy is a no-op, so seeding is idempotent.
func (e *Enforcer) seedDefaults() error {
	defaults := [][3]string{
		{constants.RoleModerator, "tickets", "manage"},
		{constants.RoleModerator, "reports", "resolve"},
		{constants.RoleModerator, "appeals", "decide"},
		{constants.RoleStaff, "tickets", "manage"},
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range defaults {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed default policy: %w", err)
		}
	}
	return e.enforcer.SavePolicy()
}

func principal(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10)
}
