package applications

import (
	"time"

	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
)

// ApplyRequest is the body of POST /applications/apply.
type ApplyRequest struct {
	VacancyID uint `json:"vacancyId" validate:"required,gt=0"`
}

// UpdateStatusRequest is the body of PATCH /applications/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing accepted rejected"`
}

type CandidateSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VacancySummary struct {
	ID       uint           `json:"id"`
	Title    string         `json:"title"`
	Company  string         `json:"company"`
	Modality enums.Modality `json:"modality"`
	IsActive bool           `json:"isActive"`
}

type ApplicationDTO struct {
	ID        uint                    `json:"id"`
	UserID    uint                    `json:"userId"`
	VacancyID uint                    `json:"vacancyId"`
	Status    enums.ApplicationStatus `json:"status"`
	AppliedAt time.Time               `json:"appliedAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
	User      *CandidateSummary       `json:"user,omitempty"`
	Vacancy   *VacancySummary         `json:"vacancy,omitempty"`
}

func FromModel(app *models.Application) *ApplicationDTO {
	if app == nil {
		return nil
	}
	out := &ApplicationDTO{
		ID:        app.ID,
		UserID:    app.UserID,
		VacancyID: app.VacancyID,
		Status:    app.Status,
		AppliedAt: app.AppliedAt,
		UpdatedAt: app.UpdatedAt,
	}
	if app.User != nil {
		out.User = &CandidateSummary{ID: app.User.ID, Name: app.User.Name, Email: app.User.Email}
	}
	if app.Vacancy != nil {
		out.Vacancy = &VacancySummary{
			ID:       app.Vacancy.ID,
			Title:    app.Vacancy.Title,
			Company:  app.Vacancy.Company,
			Modality: app.Vacancy.Modality,
			IsActive: app.Vacancy.IsActive,
		}
	}
	return out
}

// fromModels maps rows, dropping the summary the caller does not need.
func fromModels(list []models.Application, keepUser, keepVacancy bool) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(list))
	for i := range list {
		dto := FromModel(&list[i])
		if !keepUser {
			dto.User = nil
		}
		if !keepVacancy {
			dto.Vacancy = nil
		}
		out = append(out, *dto)
	}
	return out
}
