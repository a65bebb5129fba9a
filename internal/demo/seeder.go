// Package demo loads a realistic data set of coders, vacancies and
// applications for local environments and demos.
package demo

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/internal/applications"
	"github.com/riwi/jobboard-backend/internal/users"
	"github.com/riwi/jobboard-backend/internal/vacancies"
	"github.com/riwi/jobboard-backend/pkg/config"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/security"
)

// maxPicksPerCoder bounds how many vacancies one demo coder tries to apply to
// on a single run.
const maxPicksPerCoder = 3

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type vacancyFinder interface {
	FindByTitle(ctx context.Context, title, company string) (*models.Vacancy, error)
}

// SeederParams wires the demo seeder. Coders and Vacancies default to the
// built-in catalog; Rand defaults to a time-seeded source.
type SeederParams struct {
	Users         userStore
	VacancyLookup vacancyFinder
	Vacancies     vacancies.Service
	Applications  applications.Service
	PasswordCfg   config.PasswordConfig
	CoderPassword string
	Coders        []Coder
	Catalog       []vacancies.CreateVacancyRequest
	Rand          *rand.Rand
	Logger        *logger.Logger
}

// Result counts what one run created.
type Result struct {
	Coders       int
	Vacancies    int
	Applications int
	Skipped      int
}

type Seeder struct {
	users         userStore
	vacancyLookup vacancyFinder
	vacancies     vacancies.Service
	applications  applications.Service
	hasher        security.Hasher
	password      string
	coders        []Coder
	catalog       []vacancies.CreateVacancyRequest
	rnd           *rand.Rand
	logg          *logger.Logger
}

func NewSeeder(params SeederParams) (*Seeder, error) {
	switch {
	case params.Users == nil:
		return nil, fmt.Errorf("user store required")
	case params.VacancyLookup == nil:
		return nil, fmt.Errorf("vacancy lookup required")
	case params.Vacancies == nil:
		return nil, fmt.Errorf("vacancy service required")
	case params.Applications == nil:
		return nil, fmt.Errorf("application service required")
	case params.CoderPassword == "":
		return nil, fmt.Errorf("coder password required")
	}

	coders := params.Coders
	if coders == nil {
		coders = DefaultCoders
	}
	catalog := params.Catalog
	if catalog == nil {
		catalog = DefaultVacancies
	}
	rnd := params.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}

	return &Seeder{
		users:         params.Users,
		vacancyLookup: params.VacancyLookup,
		vacancies:     params.Vacancies,
		applications:  params.Applications,
		hasher:        security.NewHasher(params.PasswordCfg),
		password:      params.CoderPassword,
		coders:        coders,
		catalog:       catalog,
		rnd:           rnd,
		logg:          logg,
	}, nil
}

// Seed creates the missing coders (by email) and vacancies (by title and
// company), then has every demo coder apply to one to three random
// vacancies. Applications go through the eligibility engine, so a rerun
// never pushes a coder past the active cap or a vacancy past its capacity;
// rejected attempts are counted as skipped.
func (s *Seeder) Seed(ctx context.Context) (Result, error) {
	var res Result

	coderIDs, created, err := s.ensureCoders(ctx)
	if err != nil {
		return res, err
	}
	res.Coders = created

	vacancyIDs, created, err := s.ensureVacancies(ctx)
	if err != nil {
		return res, err
	}
	res.Vacancies = created

	for _, coderID := range coderIDs {
		picks := append([]uint(nil), vacancyIDs...)
		s.rnd.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })
		n := min(s.rnd.IntN(maxPicksPerCoder)+1, len(picks))

		for _, vacancyID := range picks[:n] {
			_, err := s.applications.Apply(ctx, coderID, vacancyID)
			switch {
			case err == nil:
				res.Applications++
			case ineligible(err):
				res.Skipped++
			default:
				return res, err
			}
		}
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"coders":       res.Coders,
		"vacancies":    res.Vacancies,
		"applications": res.Applications,
		"skipped":      res.Skipped,
	}), "demo.seeded")
	return res, nil
}

func (s *Seeder) ensureCoders(ctx context.Context) ([]uint, int, error) {
	var hash string
	ids := make([]uint, 0, len(s.coders))
	created := 0
	for _, coder := range s.coders {
		email := users.NormalizeEmail(coder.Email)
		existing, err := s.users.FindByEmail(ctx, email)
		if err == nil {
			ids = append(ids, existing.ID)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup demo coder")
		}

		if hash == "" {
			if hash, err = s.hasher.Hash(s.password); err != nil {
				return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash demo password")
			}
		}
		user := &models.User{
			Name:         coder.Name,
			Email:        email,
			PasswordHash: hash,
			Role:         enums.RoleCoder,
			Status:       models.UserStatusActive,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create demo coder")
		}
		ids = append(ids, user.ID)
		created++
	}
	return ids, created, nil
}

func (s *Seeder) ensureVacancies(ctx context.Context) ([]uint, int, error) {
	ids := make([]uint, 0, len(s.catalog))
	created := 0
	for _, req := range s.catalog {
		existing, err := s.vacancyLookup.FindByTitle(ctx, req.Title, req.Company)
		if err == nil {
			ids = append(ids, existing.ID)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup demo vacancy")
		}

		out, err := s.vacancies.Create(ctx, req)
		if err != nil {
			return nil, 0, err
		}
		ids = append(ids, out.ID)
		created++
	}
	return ids, created, nil
}

func ineligible(err error) bool {
	return pkgerrors.IsCode(err, pkgerrors.CodeConflict) ||
		pkgerrors.IsCode(err, pkgerrors.CodeRuleViolation) ||
		pkgerrors.IsCode(err, pkgerrors.CodeNotFound)
}
