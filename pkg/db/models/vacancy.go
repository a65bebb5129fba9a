package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/pkg/enums"
)

// Vacancy is a job posting that candidates apply to.
type Vacancy struct {
	ID            uint           `gorm:"primaryKey"`
	Title         string         `gorm:"column:title;not null"`
	Description   string         `gorm:"column:description;type:text;not null"`
	Technologies  string         `gorm:"column:technologies;type:text;not null"`
	Seniority     string         `gorm:"column:seniority;not null"`
	SoftSkills    string         `gorm:"column:soft_skills;type:text;not null"`
	Location      string         `gorm:"column:location;not null"`
	Modality      enums.Modality `gorm:"column:modality;type:text;not null"`
	SalaryRange   string         `gorm:"column:salary_range;not null"`
	Company       string         `gorm:"column:company;not null"`
	MaxApplicants int            `gorm:"column:max_applicants;not null;check:chk_vacancies_max_applicants,max_applicants >= 1"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Vacancy) TableName() string { return "vacancies" }
