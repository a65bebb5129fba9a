package vacancies

import (
	"time"

	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
)

type VacancyDTO struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Technologies  string         `json:"technologies"`
	Seniority     string         `json:"seniority"`
	SoftSkills    string         `json:"softSkills"`
	Location      string         `json:"location"`
	Modality      enums.Modality `json:"modality"`
	SalaryRange   string         `json:"salaryRange"`
	Company       string         `json:"company"`
	MaxApplicants int            `json:"maxApplicants"`
	IsActive      bool           `json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// CreateVacancyRequest is the validated creation body. MaxApplicants is a
// pointer so a missing value and zero are told apart; the capacity floor is a
// business rule checked by the service.
type CreateVacancyRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Description   string `json:"description" validate:"required"`
	Technologies  string `json:"technologies" validate:"required"`
	Seniority     string `json:"seniority" validate:"required,max=60"`
	SoftSkills    string `json:"softSkills,omitempty"`
	Location      string `json:"location" validate:"required,max=120"`
	Modality      string `json:"modality" validate:"required,oneof=remote office hybrid"`
	SalaryRange   string `json:"salaryRange" validate:"required,max=120"`
	Company       string `json:"company" validate:"required,max=200"`
	MaxApplicants *int   `json:"maxApplicants" validate:"required"`
}

// UpdateVacancyRequest is a partial update; nil fields are left untouched.
type UpdateVacancyRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Technologies  *string `json:"technologies,omitempty" validate:"omitempty,min=1"`
	Seniority     *string `json:"seniority,omitempty" validate:"omitempty,min=1,max=60"`
	SoftSkills    *string `json:"softSkills,omitempty"`
	Location      *string `json:"location,omitempty" validate:"omitempty,min=1,max=120"`
	Modality      *string `json:"modality,omitempty" validate:"omitempty,oneof=remote office hybrid"`
	SalaryRange   *string `json:"salaryRange,omitempty" validate:"omitempty,min=1,max=120"`
	Company       *string `json:"company,omitempty" validate:"omitempty,min=1,max=200"`
	MaxApplicants *int    `json:"maxApplicants,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

func FromModel(v *models.Vacancy) *VacancyDTO {
	if v == nil {
		return nil
	}
	return &VacancyDTO{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		Technologies:  v.Technologies,
		Seniority:     v.Seniority,
		SoftSkills:    v.SoftSkills,
		Location:      v.Location,
		Modality:      v.Modality,
		SalaryRange:   v.SalaryRange,
		Company:       v.Company,
		MaxApplicants: v.MaxApplicants,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromModels(list []models.Vacancy) []VacancyDTO {
	out := make([]VacancyDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
