package users

import (
	"context"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/internal/repo"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
)

// Repository exposes user persistence. Every read skips soft-deleted rows.
type Repository struct {
	repo.Base
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Create(ctx context.Context, user *models.User) error {
	return r.DB(ctx).Create(user).Error
}

// FindByEmail retrieves the live user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns live users, newest first.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := r.DB(ctx).Order("created_at DESC").Order("id DESC").Find(&out).Error
	return out, err
}

// EmailInUse reports whether another live user owns email.
func (r *Repository) EmailInUse(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	q := r.DB(ctx).Model(&models.User{}).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ExistsByRole(ctx context.Context, role enums.Role) (bool, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update applies column updates to a live user and reports whether a row
// matched.
func (r *Repository) Update(ctx context.Context, id uint, updates map[string]any) (bool, error) {
	res := r.DB(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected > 0, res.Error
}

// SoftDelete stamps deleted_at and reports whether a live row matched.
func (r *Repository) SoftDelete(ctx context.Context, id uint) (bool, error) {
	res := r.DB(ctx).Delete(&models.User{}, id)
	return res.RowsAffected > 0, res.Error
}
