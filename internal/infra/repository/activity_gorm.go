package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/httperr"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

type ActivityGormRepository struct {
	db *gorm.DB
}

func NewActivityGormRepository(db *gorm.DB) *ActivityGormRepository {
	return &ActivityGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ActivityGormRepository) FetchVisible(
	ctx context.Context,
	userID string,
) ([]models.Activity, error) {

	var acts []models.Activity
	if err := r.db.WithContext(ctx).
		Where("user_id = ? OR visibility = ?", userID, string(domain.VisibilityPublic)).
		Order("date ASC").
		Order("start_time ASC").
		Order("created_at ASC").
		Find(&acts).Error; err != nil {
		return nil, err
	}

	return acts, nil
}

func (r *ActivityGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.Activity, error) {

	var a models.Activity
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("activity_not_found")
		}
		return nil, err
	}

	return &a, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ActivityGormRepository) Create(
	ctx context.Context,
	draft domain.Draft,
	ownerID string,
) (*models.Activity, error) {

	a := draft.Model(ownerID)
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ActivityGormRepository) Update(
	ctx context.Context,
	id string,
	patch domain.Patch,
) error {

	cols := patch.Columns()
	if len(cols) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Activity{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("activity_not_found")
	}
	return nil
}

func (r *ActivityGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("activity_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.Store = (*ActivityGormRepository)(nil)
