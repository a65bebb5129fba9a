package vacancies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
)

const (
	notFoundMessage      = "Vacancy not found"
	minApplicantsMessage = "maxApplicants must be at least 1"
)

// Service manages the vacancy lifecycle.
type Service interface {
	Create(ctx context.Context, req CreateVacancyRequest) (*VacancyDTO, error)
	ListActive(ctx context.Context) ([]VacancyDTO, error)
	Get(ctx context.Context, id uint) (*VacancyDTO, error)
	Update(ctx context.Context, id uint, req UpdateVacancyRequest) (*VacancyDTO, error)
	ToggleActive(ctx context.Context, id uint) (*VacancyDTO, error)
	Delete(ctx context.Context, id uint) error
}

type vacancyRepository interface {
	Create(ctx context.Context, v *models.Vacancy) error
	FindByID(ctx context.Context, id uint) (*models.Vacancy, error)
	ListActive(ctx context.Context) ([]models.Vacancy, error)
	Update(ctx context.Context, id uint, updates map[string]any) (bool, error)
	ToggleActive(ctx context.Context, id uint) (bool, error)
	SoftDelete(ctx context.Context, id uint) (bool, error)
}

type service struct {
	repo vacancyRepository
	logg *logger.Logger
}

func NewService(repo vacancyRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vacancy repository is required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) Create(ctx context.Context, req CreateVacancyRequest) (*VacancyDTO, error) {
	if req.MaxApplicants == nil || *req.MaxApplicants < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeRuleViolation, minApplicantsMessage)
	}
	modality, err := enums.ParseModality(req.Modality)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "modality must be one of remote, office, hybrid")
	}

	text := []struct {
		column string
		value  *string
	}{
		{"title", &req.Title},
		{"description", &req.Description},
		{"technologies", &req.Technologies},
		{"seniority", &req.Seniority},
		{"location", &req.Location},
		{"salary_range", &req.SalaryRange},
		{"company", &req.Company},
	}
	for _, field := range text {
		trimmed, err := requireText(field.column, *field.value)
		if err != nil {
			return nil, err
		}
		*field.value = trimmed
	}

	v := &models.Vacancy{
		Title:         req.Title,
		Description:   req.Description,
		Technologies:  req.Technologies,
		Seniority:     req.Seniority,
		SoftSkills:    strings.TrimSpace(req.SoftSkills),
		Location:      req.Location,
		Modality:      modality,
		SalaryRange:   req.SalaryRange,
		Company:       req.Company,
		MaxApplicants: *req.MaxApplicants,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create vacancy")
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"vacancy_id":     v.ID,
		"max_applicants": v.MaxApplicants,
	}), "vacancy.created")
	return FromModel(v), nil
}

func (s *service) ListActive(ctx context.Context) ([]VacancyDTO, error) {
	list, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list vacancies")
	}
	return FromModels(list), nil
}

func (s *service) Get(ctx context.Context, id uint) (*VacancyDTO, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err)
	}
	return FromModel(v), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateVacancyRequest) (*VacancyDTO, error) {
	updates, err := req.columns()
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapLookupError(err)
	}
	if len(updates) > 0 {
		if _, err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update vacancy")
		}
	}
	return s.Get(ctx, id)
}

func (s *service) ToggleActive(ctx context.Context, id uint) (*VacancyDTO, error) {
	ok, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "toggle vacancy")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	out, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"vacancy_id": id, "is_active": out.IsActive}), "vacancy.toggled")
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete vacancy")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return nil
}

// columns turns the patch into column updates, rejecting blank required
// text and capacities below one.
func (req UpdateVacancyRequest) columns() (map[string]any, error) {
	updates := map[string]any{}
	text := []struct {
		column string
		value  *string
	}{
		{"title", req.Title},
		{"description", req.Description},
		{"technologies", req.Technologies},
		{"seniority", req.Seniority},
		{"location", req.Location},
		{"salary_range", req.SalaryRange},
		{"company", req.Company},
	}
	for _, field := range text {
		if field.value == nil {
			continue
		}
		trimmed, err := requireText(field.column, *field.value)
		if err != nil {
			return nil, err
		}
		updates[field.column] = trimmed
	}
	if req.SoftSkills != nil {
		updates["soft_skills"] = strings.TrimSpace(*req.SoftSkills)
	}
	if req.Modality != nil {
		modality, err := enums.ParseModality(*req.Modality)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "modality must be one of remote, office, hybrid")
		}
		updates["modality"] = modality
	}
	if req.MaxApplicants != nil {
		if *req.MaxApplicants < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeRuleViolation, minApplicantsMessage)
		}
		updates["max_applicants"] = *req.MaxApplicants
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	return updates, nil
}

func requireText(column, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", pkgerrors.Newf(pkgerrors.CodeValidation, "%s cannot be empty", column)
	}
	return trimmed, nil
}

func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vacancy")
}
