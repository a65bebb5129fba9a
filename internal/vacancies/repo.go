package vacancies

import (
	"context"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/internal/repo"
	"github.com/riwi/jobboard-backend/pkg/db/models"
)

// Repository persists vacancies. Soft-deleted rows are invisible to every
// method.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Create(ctx context.Context, v *models.Vacancy) error {
	return r.DB(ctx).Create(v).Error
}

// FindByID returns a live vacancy regardless of its active flag.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Vacancy, error) {
	var v models.Vacancy
	if err := r.DB(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByTitle returns the live vacancy a company published under title.
func (r *Repository) FindByTitle(ctx context.Context, title, company string) (*models.Vacancy, error) {
	var v models.Vacancy
	if err := r.DB(ctx).Where("title = ? AND company = ?", title, company).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ListActive returns live, active vacancies newest first.
func (r *Repository) ListActive(ctx context.Context) ([]models.Vacancy, error) {
	var out []models.Vacancy
	err := r.DB(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// Update applies column updates and reports whether a live row matched.
func (r *Repository) Update(ctx context.Context, id uint, updates map[string]any) (bool, error) {
	res := r.DB(ctx).Model(&models.Vacancy{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected > 0, res.Error
}

// ToggleActive flips is_active in a single statement.
func (r *Repository) ToggleActive(ctx context.Context, id uint) (bool, error) {
	res := r.DB(ctx).Model(&models.Vacancy{}).Where("id = ?", id).Update("is_active", gorm.Expr("NOT is_active"))
	return res.RowsAffected > 0, res.Error
}

func (r *Repository) SoftDelete(ctx context.Context, id uint) (bool, error) {
	res := r.DB(ctx).Delete(&models.Vacancy{}, id)
	return res.RowsAffected > 0, res.Error
}
