package auth

import (
	"context"
	"slices"
	"time"

	"github.com/JonnyWalker81/moodtrack/backend/internal/cache"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

// Permission names an action a role may perform
type Permission string

const (
	PermMoodsReadSelf     Permission = "moods.read.self"
	PermMoodsWriteSelf    Permission = "moods.write.self"
	PermAnalyticsReadSelf Permission = "analytics.read.self"
	PermReportsRead       Permission = "reports.read"
	PermReportsGenerate   Permission = "reports.generate"
	PermPatientsRead      Permission = "patients.read"
)

var selfService = []Permission{PermMoodsReadSelf, PermMoodsWriteSelf, PermAnalyticsReadSelf}

var rolePermissions = map[models.Role][]Permission{
	models.RolePatient: selfService,
	models.RoleStaff:   append(slices.Clone(selfService), PermReportsRead, PermPatientsRead),
	models.RoleAdmin:   append(slices.Clone(selfService), PermReportsRead, PermReportsGenerate, PermPatientsRead),
}

// PermissionsFor returns the static permission set of role
func PermissionsFor(role models.Role) []Permission {
	return slices.Clone(rolePermissions[role])
}

// Grant is the resolved access of one user
type Grant struct {
	UserID      string       `json:"user_id"`
	Role        models.Role  `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// Has reports whether the grant includes p
func (g *Grant) Has(p Permission) bool {
	return g != nil && slices.Contains(g.Permissions, p)
}

const permissionKeyPrefix = "perm:"

// Resolver maps a user id to a Grant, caching results for ttl
type Resolver struct {
	users repository.UserRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewResolver creates a permission resolver
func NewResolver(users repository.UserRepository, c cache.Cache, ttl time.Duration) *Resolver {
	return &Resolver{users: users, cache: c, ttl: ttl}
}

// Resolve returns the user's grant. Inactive users resolve to an empty
// permission set. Unknown users fail with repository.ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, uid string) (*Grant, error) {
	log := logger.Ctx(ctx)
	key := permissionKeyPrefix + uid

	var cached Grant
	ok, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn("permission cache read failed", logger.Err(err))
	} else if ok {
		return &cached, nil
	}

	user, err := r.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	grant := &Grant{UserID: user.ID, Role: user.Role, Permissions: []Permission{}}
	if user.Status == models.UserStatusActive {
		grant.Permissions = PermissionsFor(user.Role)
	}

	if err := r.cache.Set(ctx, key, grant, r.ttl); err != nil {
		log.Warn("permission cache write failed", logger.Err(err))
	}
	return grant, nil
}

// Invalidate drops the cached grant of uid
func (r *Resolver) Invalidate(ctx context.Context, uid string) error {
	return r.cache.Delete(ctx, permissionKeyPrefix+uid)
}
