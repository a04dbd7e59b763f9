package repository

import (
	"github.com/lshigami/Assessly/internal/model"
	"gorm.io/gorm"
)

type ReferenceRepository interface {
	Create(item *model.ReferenceItem) error
	FindAllByUser(userID uint) ([]model.ReferenceItem, error)
	Delete(userID, id uint) error
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) Create(item *model.ReferenceItem) error {
	return r.db.Create(item).Error
}

func (r *referenceRepository) FindAllByUser(userID uint) ([]model.ReferenceItem, error) {
	var items []model.ReferenceItem
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&items).Error
	return items, err
}

// Delete removes one of the user's items; it returns gorm.ErrRecordNotFound if there was none.
func (r *referenceRepository) Delete(userID, id uint) error {
	res := r.db.Where("user_id = ?", userID).Delete(&model.ReferenceItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
