package repository

import (
	"github.com/lshigami/Assessly/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CredentialRepository is the credential store: it supplies and invalidates a user's API key.
type CredentialRepository interface {
	Save(userID uint, apiKey string) error
	FindByUserID(userID uint) (*model.Credential, error)
	Invalidate(userID uint) error
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Save(userID uint, apiKey string) error {
	cred := model.Credential{UserID: userID, APIKey: apiKey}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"api_key", "updated_at"}),
	}).Create(&cred).Error
}

// FindByUserID returns gorm.ErrRecordNotFound when the user has no key.
func (r *credentialRepository) FindByUserID(userID uint) (*model.Credential, error) {
	var cred model.Credential
	err := r.db.Where("user_id = ?", userID).First(&cred).Error
	return &cred, err
}

func (r *credentialRepository) Invalidate(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Credential{}).Error
}
