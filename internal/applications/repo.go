package applications

import (
	"context"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/internal/repo"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
)

// Repository is the persistence surface of the eligibility engine. Lock*
// reads take row locks and are only meaningful on a transaction handle.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	LockActiveVacancy(ctx context.Context, vacancyID uint) (*models.Vacancy, error)
	LockUser(ctx context.Context, userID uint) (*models.User, error)
	LockByID(ctx context.Context, id uint) (*models.Application, error)

	ExistsForCandidate(ctx context.Context, userID, vacancyID uint) (bool, error)
	CountLiveByUser(ctx context.Context, userID uint) (int64, error)
	CountLiveByVacancy(ctx context.Context, vacancyID uint) (int64, error)

	Create(ctx context.Context, app *models.Application) error
	UpdateStatus(ctx context.Context, id uint, status enums.ApplicationStatus) error
	SoftDelete(ctx context.Context, id uint) (bool, error)

	FindByID(ctx context.Context, id uint) (*models.Application, error)
	ListAll(ctx context.Context) ([]models.Application, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Application, error)
	ListByVacancy(ctx context.Context, vacancyID uint) ([]models.Application, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds an applications repository bound to db.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) LockActiveVacancy(ctx context.Context, vacancyID uint) (*models.Vacancy, error) {
	var v models.Vacancy
	err := r.Locked(ctx).
		Where("id = ? AND is_active = ?", vacancyID, true).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) LockUser(ctx context.Context, userID uint) (*models.User, error) {
	var u models.User
	if err := r.Locked(ctx).Where("id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) LockByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	if err := r.Locked(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ExistsForCandidate includes soft-deleted rows: a removed application still
// blocks a second attempt at the same vacancy.
func (r *repository) ExistsForCandidate(ctx context.Context, userID, vacancyID uint) (bool, error) {
	var count int64
	err := r.Unscoped(ctx).
		Model(&models.Application{}).
		Where("user_id = ? AND vacancy_id = ?", userID, vacancyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountLiveByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB(ctx).Model(&models.Application{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *repository) CountLiveByVacancy(ctx context.Context, vacancyID uint) (int64, error) {
	var count int64
	err := r.DB(ctx).Model(&models.Application{}).Where("vacancy_id = ?", vacancyID).Count(&count).Error
	return count, err
}

func (r *repository) Create(ctx context.Context, app *models.Application) error {
	return r.DB(ctx).Omit("User", "Vacancy").Create(app).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status enums.ApplicationStatus) error {
	return r.DB(ctx).Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uint) (bool, error) {
	res := r.DB(ctx).Delete(&models.Application{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	if err := r.withSummaries(ctx).Where("applications.id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) ListAll(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	err := r.newestFirst(r.withSummaries(ctx)).Find(&out).Error
	return out, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]models.Application, error) {
	var out []models.Application
	err := r.newestFirst(r.withSummaries(ctx)).Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

func (r *repository) ListByVacancy(ctx context.Context, vacancyID uint) ([]models.Application, error) {
	var out []models.Application
	err := r.newestFirst(r.withSummaries(ctx)).Where("vacancy_id = ?", vacancyID).Find(&out).Error
	return out, err
}

// withSummaries preloads the candidate and vacancy even when either has since
// been soft-deleted, so history keeps its labels.
func (r *repository) withSummaries(ctx context.Context) *gorm.DB {
	unscoped := func(db *gorm.DB) *gorm.DB { return db.Unscoped() }
	return r.DB(ctx).
		Preload("User", unscoped).
		Preload("Vacancy", unscoped)
}

func (r *repository) newestFirst(q *gorm.DB) *gorm.DB {
	return q.Order("applied_at DESC").Order("id DESC")
}
