package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/pkg/enums"
)

// Application binds a candidate to a vacancy. The (user_id, vacancy_id)
// pair is unique across live and soft-deleted rows.
type Application struct {
	ID        uint                    `gorm:"primaryKey"`
	UserID    uint                    `gorm:"column:user_id;not null;uniqueIndex:ux_applications_user_vacancy"`
	VacancyID uint                    `gorm:"column:vacancy_id;not null;uniqueIndex:ux_applications_user_vacancy;index"`
	Status    enums.ApplicationStatus `gorm:"column:status;type:text;not null;default:pending"`
	AppliedAt time.Time               `gorm:"column:applied_at;not null"`
	UpdatedAt time.Time               `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt          `gorm:"column:deleted_at;index"`

	User    *User    `gorm:"foreignKey:UserID"`
	Vacancy *Vacancy `gorm:"foreignKey:VacancyID"`
}

func (Application) TableName() string { return "applications" }
