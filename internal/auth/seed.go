package auth

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/internal/users"
	"github.com/riwi/jobboard-backend/pkg/config"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/security"
)

// Seeder creates the initial staff accounts.
type Seeder struct {
	db     txRunner
	hasher security.Hasher
	cfg    config.SeedConfig
	logg   *logger.Logger
}

func NewSeeder(db txRunner, passwordCfg config.PasswordConfig, seedCfg config.SeedConfig, logg *logger.Logger) (*Seeder, error) {
	if db == nil {
		return nil, fmt.Errorf("database client required")
	}
	if seedCfg.Password == "" {
		return nil, fmt.Errorf("seed password required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &Seeder{db: db, hasher: security.NewHasher(passwordCfg), cfg: seedCfg, logg: logg}, nil
}

// Seed creates the admin and gestor accounts unless an admin already exists.
// It reports whether anything was created.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	hash, err := s.hasher.Hash(s.cfg.Password)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash seed password")
	}

	accounts := []models.User{
		{Name: "Administrador", Email: users.NormalizeEmail(s.cfg.AdminEmail), Role: enums.RoleAdmin},
		{Name: "Gestor de Empleabilidad", Email: users.NormalizeEmail(s.cfg.GestorEmail), Role: enums.RoleGestor},
	}

	created := 0
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := users.NewRepository(tx)
		hasAdmin, err := repo.ExistsByRole(ctx, enums.RoleAdmin)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check admin")
		}
		if hasAdmin {
			return nil
		}
		for i := range accounts {
			account := &accounts[i]
			taken, err := repo.EmailInUse(ctx, account.Email, 0)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check seed email")
			}
			if taken {
				continue
			}
			account.PasswordHash = hash
			account.Status = models.UserStatusActive
			if err := repo.Create(ctx, account); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create seed user")
			}
			created++
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if created > 0 {
		s.logg.Info(s.logg.WithField(ctx, "created", created), "auth.seeded")
	}
	return created > 0, nil
}
