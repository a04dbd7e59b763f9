package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Assessly/internal/dto"
	"github.com/lshigami/Assessly/internal/model"
	"github.com/lshigami/Assessly/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrReferenceNotFound = errors.New("reference item not found")
	ErrInvalidReference  = errors.New("invalid reference item")
)

// ReferenceService manages a user's saved reference materials: uploaded files kept as data URLs, and links.
type ReferenceService interface {
	Create(userID uint, req dto.ReferenceCreateRequest) (*dto.ReferenceResponse, error)
	List(userID uint) ([]dto.ReferenceResponse, error)
	Delete(userID, id uint) error
}

type referenceService struct {
	repo repository.ReferenceRepository
}

func NewReferenceService(repo repository.ReferenceRepository) ReferenceService {
	return &referenceService{repo: repo}
}

func checkReference(req dto.ReferenceCreateRequest) error {
	url := strings.TrimSpace(req.URL)
	switch req.Type {
	case model.ReferenceTypeLink:
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return fmt.Errorf("%w: link must be an http(s) URL", ErrInvalidReference)
		}
	case model.ReferenceTypeFile:
		if !strings.HasPrefix(url, "data:") {
			return fmt.Errorf("%w: file must be a data URL", ErrInvalidReference)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidReference, req.Type)
	}
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is blank", ErrInvalidReference)
	}
	return nil
}

func (s *referenceService) Create(userID uint, req dto.ReferenceCreateRequest) (*dto.ReferenceResponse, error) {
	if err := checkReference(req); err != nil {
		return nil, err
	}

	item := model.ReferenceItem{UserID: userID}
	if err := copier.Copy(&item, &req); err != nil {
		return nil, fmt.Errorf("error mapping reference request: %w", err)
	}
	item.Title = strings.TrimSpace(item.Title)
	item.URL = strings.TrimSpace(item.URL)

	if err := s.repo.Create(&item); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to create reference item")
		return nil, fmt.Errorf("error saving reference item: %w", err)
	}

	var resp dto.ReferenceResponse
	if err := copier.Copy(&resp, &item); err != nil {
		return nil, fmt.Errorf("error preparing reference response: %w", err)
	}
	return &resp, nil
}

func (s *referenceService) List(userID uint) ([]dto.ReferenceResponse, error) {
	items, err := s.repo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list reference items")
		return nil, fmt.Errorf("error fetching reference items: %w", err)
	}

	resp := make([]dto.ReferenceResponse, len(items))
	for i := range items {
		if err := copier.Copy(&resp[i], &items[i]); err != nil {
			return nil, fmt.Errorf("error preparing reference list: %w", err)
		}
	}
	return resp, nil
}

func (s *referenceService) Delete(userID, id uint) error {
	err := s.repo.Delete(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrReferenceNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("error deleting reference item %d: %w", id, err)
	}
	return nil
}
