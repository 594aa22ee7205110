package users

import (
	"context"
	"fmt"

	"github.com/stockroomhq/stockroom-backend/pkg/config"
	"github.com/stockroomhq/stockroom-backend/pkg/db/models"
	"github.com/stockroomhq/stockroom-backend/pkg/enums"
	"github.com/stockroomhq/stockroom-backend/pkg/logger"
	"github.com/stockroomhq/stockroom-backend/pkg/security"
	"go.uber.org/multierr"
)

// DemoUser describes one seeded credential set.
type DemoUser struct {
	Email    string
	Password string
	Role     enums.UserRole
}

// DemoUsers are the accounts created by the development seeding flow.
var DemoUsers = []DemoUser{
	{Email: "admin@stockroom.dev", Password: "admin123", Role: enums.UserRoleAdmin},
	{Email: "demo@stockroom.dev", Password: "demo1234", Role: enums.UserRoleUser},
}

// SeedDemoUsers creates the demo accounts, skipping any email that already
// exists so repeated startups are idempotent. Failures are accumulated so
// one bad account does not mask the rest.
func (r *Repository) SeedDemoUsers(ctx context.Context, cfg config.PasswordConfig, logg *logger.Logger) error {
	var errs error
	for _, demo := range DemoUsers {
		exists, err := r.EmailExists(ctx, demo.Email)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("check %s: %w", demo.Email, err))
			continue
		}
		if exists {
			continue
		}

		hash, err := security.HashPassword(demo.Password, cfg)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("hash %s: %w", demo.Email, err))
			continue
		}

		if _, err := r.Create(ctx, &models.User{
			Email:        demo.Email,
			PasswordHash: hash,
			Role:         demo.Role,
		}); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("create %s: %w", demo.Email, err))
			continue
		}

		if logg != nil {
			logg.Info(logg.WithField(ctx, "email", demo.Email), "seeded demo user")
		}
	}
	return errs
}
