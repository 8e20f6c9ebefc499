package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"prodojo/internal/domain/account"

	"github.com/google/uuid"
)

// AdminStoreForSeed defines the store interface needed by SeedAdmin.
type AdminStoreForSeed interface {
	Save(ctx context.Context, a account.Admin) error
	Count(ctx context.Context) (int, error)
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AdminStore AdminStoreForSeed
	Username   string
	Password   string
}

// ExecuteSeedAdmin creates the initial admin account if none exists.
// PRE: Username and Password come from configuration
// POST: Exactly one admin exists after first run; later runs are no-ops
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps) error {
	count, err := deps.AdminStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}

	admin := account.Admin{
		ID:        uuid.New().String(),
		Username:  deps.Username,
		CreatedAt: time.Now().UTC(),
	}
	if err := admin.Validate(); err != nil {
		return err
	}
	if err := admin.SetPassword(deps.Password); err != nil {
		return err
	}
	if err := deps.AdminStore.Save(ctx, admin); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "admin_seeded", "username", admin.Username)
	return nil
}
