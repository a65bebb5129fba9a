package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/pkg/db"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/metrics"
)

// MaxActiveApplicationsPerCandidate caps the live applications one candidate
// may hold across all vacancies.
const MaxActiveApplicationsPerCandidate = 3

const (
	msgVacancyUnavailable = "Vacancy not found or inactive"
	msgAlreadyApplied     = "You have already applied to this vacancy"
	msgCandidateCap       = "You cannot apply to more than 3 active vacancies"
	msgVacancyFull        = "This vacancy has reached its maximum number of applicants"
	msgNotFound           = "Application not found"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the eligibility engine and application management.
type Service interface {
	Apply(ctx context.Context, candidateID, vacancyID uint) (*ApplicationDTO, error)
	List(ctx context.Context) ([]ApplicationDTO, error)
	ListMine(ctx context.Context, candidateID uint) ([]ApplicationDTO, error)
	ListByVacancy(ctx context.Context, vacancyID uint) ([]ApplicationDTO, error)
	Remove(ctx context.Context, id uint) error
	UpdateStatus(ctx context.Context, id uint, status string) (*ApplicationDTO, error)
}

// ServiceParams wires the engine's collaborators.
type ServiceParams struct {
	Repo    Repository
	Tx      txRunner
	Metrics *metrics.ApplicationMetrics
	Logger  *logger.Logger
	Now     func() time.Time
}

type service struct {
	repo    Repository
	tx      txRunner
	metrics *metrics.ApplicationMetrics
	logg    *logger.Logger
	now     func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("applications repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:    params.Repo,
		tx:      params.Tx,
		metrics: params.Metrics,
		logg:    logg,
		now:     now,
	}, nil
}

// Apply runs the eligibility checks and the insert in one transaction. The
// vacancy row is locked before the candidate's user row on every path, so
// concurrent applies for the same vacancy or candidate queue behind each
// other instead of both passing the counts.
func (s *service) Apply(ctx context.Context, candidateID, vacancyID uint) (*ApplicationDTO, error) {
	ctx = s.logg.WithFields(ctx, map[string]any{
		"candidate_id": candidateID,
		"vacancy_id":   vacancyID,
	})
	if candidateID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}
	if vacancyID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vacancyId is required")
	}

	var (
		created *models.Application
		outcome = metrics.OutcomeError
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		vacancy, err := repo.LockActiveVacancy(ctx, vacancyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = metrics.OutcomeVacancyUnavailable
				return pkgerrors.New(pkgerrors.CodeNotFound, msgVacancyUnavailable)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lock vacancy")
		}

		if _, err := repo.LockUser(ctx, candidateID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lock candidate")
		}

		exists, err := repo.ExistsForCandidate(ctx, candidateID, vacancyID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check existing application")
		}
		if exists {
			outcome = metrics.OutcomeDuplicate
			return pkgerrors.New(pkgerrors.CodeConflict, msgAlreadyApplied)
		}

		mine, err := repo.CountLiveByUser(ctx, candidateID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count candidate applications")
		}
		if mine >= MaxActiveApplicationsPerCandidate {
			outcome = metrics.OutcomeCandidateCap
			return pkgerrors.New(pkgerrors.CodeRuleViolation, msgCandidateCap)
		}

		taken, err := repo.CountLiveByVacancy(ctx, vacancyID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count vacancy applications")
		}
		if taken >= int64(vacancy.MaxApplicants) {
			outcome = metrics.OutcomeVacancyFull
			return pkgerrors.New(pkgerrors.CodeRuleViolation, msgVacancyFull)
		}

		app := &models.Application{
			UserID:    candidateID,
			VacancyID: vacancyID,
			Status:    enums.ApplicationStatusPending,
			AppliedAt: s.now().UTC(),
		}
		if err := repo.Create(ctx, app); err != nil {
			if db.IsUniqueViolation(err, "ux_applications_user_vacancy") {
				outcome = metrics.OutcomeDuplicate
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, msgAlreadyApplied)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create application")
		}
		created = app
		outcome = metrics.OutcomeAccepted
		return nil
	})

	s.metrics.Observe(outcome)
	if err != nil {
		ctx = s.logg.WithField(ctx, "outcome", outcome)
		if outcome == metrics.OutcomeError {
			s.logg.Error(ctx, "application.failed", err)
		} else {
			s.logg.Info(ctx, "application.rejected")
		}
		return nil, err
	}

	s.logg.Info(s.logg.WithField(ctx, "application_id", created.ID), "application.created")
	return FromModel(created), nil
}

func (s *service) List(ctx context.Context) ([]ApplicationDTO, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list applications")
	}
	return fromModels(list, true, true), nil
}

func (s *service) ListMine(ctx context.Context, candidateID uint) ([]ApplicationDTO, error) {
	list, err := s.repo.ListByUser(ctx, candidateID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list candidate applications")
	}
	return fromModels(list, false, true), nil
}

func (s *service) ListByVacancy(ctx context.Context, vacancyID uint) ([]ApplicationDTO, error) {
	list, err := s.repo.ListByVacancy(ctx, vacancyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vacancy applications")
	}
	return fromModels(list, true, false), nil
}

func (s *service) Remove(ctx context.Context, id uint) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove application")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, msgNotFound)
	}
	s.logg.Info(s.logg.WithField(ctx, "application_id", id), "application.removed")
	return nil
}

// UpdateStatus advances an application along pending, reviewing and then
// accepted or rejected. Terminal states do not move.
func (s *service) UpdateStatus(ctx context.Context, id uint, raw string) (*ApplicationDTO, error) {
	next, err := enums.ParseApplicationStatus(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "status must be one of pending, reviewing, accepted, rejected")
	}

	var from enums.ApplicationStatus
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		app, err := repo.LockByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, msgNotFound)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load application")
		}
		from = app.Status
		if !from.CanTransitionTo(next) {
			return pkgerrors.Newf(pkgerrors.CodeStateConflict, "cannot move application from %s to %s", from, next)
		}
		if err := repo.UpdateStatus(ctx, id, next); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update application status")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"application_id": id,
		"from_status":    from,
		"to_status":      next,
	}), "application.status_changed")

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload application")
	}
	return FromModel(app), nil
}
