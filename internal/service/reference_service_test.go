package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Assessly/internal/dto"
	"github.com/lshigami/Assessly/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReferenceRepo struct {
	items  []model.ReferenceItem
	nextID uint
}

func (f *fakeReferenceRepo) Create(item *model.ReferenceItem) error {
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeReferenceRepo) FindAllByUser(userID uint) ([]model.ReferenceItem, error) {
	var out []model.ReferenceItem
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeReferenceRepo) Delete(userID, id uint) error {
	for i, it := range f.items {
		if it.ID == id && it.UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestReferenceServiceCreateAndList(t *testing.T) {
	svc := NewReferenceService(&fakeReferenceRepo{})

	link, err := svc.Create(1, dto.ReferenceCreateRequest{Type: "link", Title: " 성취기준 해설 ", URL: "https://ncic.re.kr"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), link.ID)
	assert.Equal(t, "성취기준 해설", link.Title)
	assert.Equal(t, "link", link.Type)

	_, err = svc.Create(1, dto.ReferenceCreateRequest{Type: "file", Title: "학습지.pdf", URL: "data:application/pdf;base64,JVBERi0="})
	require.NoError(t, err)
	_, err = svc.Create(2, dto.ReferenceCreateRequest{Type: "link", Title: "other", URL: "http://example.com"})
	require.NoError(t, err)

	items, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "학습지.pdf", items[1].Title)

	empty, err := svc.List(3)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReferenceServiceRejectsInvalidItems(t *testing.T) {
	svc := NewReferenceService(&fakeReferenceRepo{})
	for _, req := range []dto.ReferenceCreateRequest{
		{Type: "link", Title: "t", URL: "ftp://example.com"},
		{Type: "file", Title: "t", URL: "https://example.com/a.pdf"},
		{Type: "video", Title: "t", URL: "https://example.com"},
		{Type: "link", Title: "  ", URL: "https://example.com"},
	} {
		_, err := svc.Create(1, req)
		assert.True(t, errors.Is(err, ErrInvalidReference), "%+v", req)
	}
}

func TestReferenceServiceDeleteIsScopedToUser(t *testing.T) {
	svc := NewReferenceService(&fakeReferenceRepo{})
	item, err := svc.Create(1, dto.ReferenceCreateRequest{Type: "link", Title: "t", URL: "https://example.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(2, item.ID), ErrReferenceNotFound)
	assert.NoError(t, svc.Delete(1, item.ID))
	assert.ErrorIs(t, svc.Delete(1, item.ID), ErrReferenceNotFound)
}
