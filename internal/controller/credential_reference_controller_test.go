package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Assessly/internal/dto"
	"github.com/lshigami/Assessly/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentialService struct {
	keys map[uint]string
}

func (f *fakeCredentialService) Save(userID uint, apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("API key is empty")
	}
	f.keys[userID] = apiKey
	return nil
}

func (f *fakeCredentialService) Resolve(userID uint) (string, error) { return f.keys[userID], nil }

func (f *fakeCredentialService) IsConfigured(userID uint) (bool, error) {
	return f.keys[userID] != "", nil
}

func (f *fakeCredentialService) Invalidate(userID uint) error {
	delete(f.keys, userID)
	return nil
}

type fakeReferenceService struct {
	items map[uint]dto.ReferenceResponse
}

func (f *fakeReferenceService) Create(_ uint, req dto.ReferenceCreateRequest) (*dto.ReferenceResponse, error) {
	if req.Type == "link" && req.URL == "not-a-url" {
		return nil, fmt.Errorf("%w: link must be an http(s) URL", service.ErrInvalidReference)
	}
	item := dto.ReferenceResponse{ID: uint(len(f.items) + 1), Type: req.Type, Title: req.Title, URL: req.URL}
	f.items[item.ID] = item
	return &item, nil
}

func (f *fakeReferenceService) List(uint) ([]dto.ReferenceResponse, error) {
	out := make([]dto.ReferenceResponse, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeReferenceService) Delete(_ uint, id uint) error {
	if _, ok := f.items[id]; !ok {
		return service.ErrReferenceNotFound
	}
	delete(f.items, id)
	return nil
}

func newCredentialReferenceRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	r := gin.New()
	users := r.Group("/api/v1/users")
	NewCredentialController(&fakeCredentialService{keys: map[uint]string{}}).RegisterRoutes(users)
	NewReferenceController(&fakeReferenceService{items: map[uint]dto.ReferenceResponse{}}).RegisterRoutes(users)
	return r
}

func TestCredentialEndpoints(t *testing.T) {
	r := newCredentialReferenceRouter(t)

	status := func() bool {
		w := doJSON(r, http.MethodGet, "/api/v1/users/3/credential", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.CredentialStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Configured
	}

	assert.False(t, status())
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPut, "/api/v1/users/3/credential", map[string]string{}).Code)

	w := doJSON(r, http.MethodPut, "/api/v1/users/3/credential", dto.CredentialRequest{APIKey: "AIza-secret"})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, status())

	w = doJSON(r, http.MethodGet, "/api/v1/users/3/credential", nil)
	assert.NotContains(t, w.Body.String(), "AIza-secret")

	require.Equal(t, http.StatusNoContent, doJSON(r, http.MethodDelete, "/api/v1/users/3/credential", nil).Code)
	assert.False(t, status())
}

func TestReferenceEndpoints(t *testing.T) {
	r := newCredentialReferenceRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/users/1/references", dto.ReferenceCreateRequest{Type: "link", Title: "해설서", URL: "https://example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.ReferenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "해설서", created.Title)

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/api/v1/users/1/references",
		dto.ReferenceCreateRequest{Type: "video", Title: "t", URL: "https://example.com"}).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/api/v1/users/1/references",
		dto.ReferenceCreateRequest{Type: "link", Title: "t", URL: "not-a-url"}).Code)

	w = doJSON(r, http.MethodGet, "/api/v1/users/1/references", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []dto.ReferenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodDelete, "/api/v1/users/1/references/x", nil).Code)
	assert.Equal(t, http.StatusNoContent, doJSON(r, http.MethodDelete, fmt.Sprintf("/api/v1/users/1/references/%d", created.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, fmt.Sprintf("/api/v1/users/1/references/%d", created.ID), nil).Code)
}
