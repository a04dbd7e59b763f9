package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/Assessly/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CredentialService interface {
	Save(userID uint, apiKey string) error
	// Resolve returns the user's key, or "" when none is stored.
	Resolve(userID uint) (string, error)
	IsConfigured(userID uint) (bool, error)
	Invalidate(userID uint) error
}

type credentialService struct {
	repo repository.CredentialRepository
}

func NewCredentialService(repo repository.CredentialRepository) CredentialService {
	return &credentialService{repo: repo}
}

func (s *credentialService) Save(userID uint, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	if err := s.repo.Save(userID, apiKey); err != nil {
		return fmt.Errorf("save credential for user %d: %w", userID, err)
	}
	log.Info().Uint("userID", userID).Msg("Credential stored")
	return nil
}

func (s *credentialService) Resolve(userID uint) (string, error) {
	cred, err := s.repo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load credential for user %d: %w", userID, err)
	}
	return cred.APIKey, nil
}

func (s *credentialService) IsConfigured(userID uint) (bool, error) {
	key, err := s.Resolve(userID)
	return key != "", err
}

func (s *credentialService) Invalidate(userID uint) error {
	if err := s.repo.Invalidate(userID); err != nil {
		return fmt.Errorf("invalidate credential for user %d: %w", userID, err)
	}
	log.Warn().Uint("userID", userID).Msg("Credential invalidated")
	return nil
}
