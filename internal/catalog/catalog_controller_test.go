package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"ghost-theme-storefront/internal/catalog"
	"ghost-theme-storefront/internal/database"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"gorm.io/gorm"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ####################### valid behavior tests
func TestGetThemes_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock := newMockRepository()
	ctrl := newMockController(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/themes", nil)

	ctrl.GetThemes(c)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var got []models.Theme
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshalling error: %v", err)
	}

	if !cmp.Equal(mock.themes, got) {
		t.Error(cmp.Diff(mock.themes, got))
		return
	}
}

func TestGetThemeById_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "id", Value: "aurora"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/themes/aurora", nil)

	ctrl.GetThemeById(c)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var got models.Theme
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshalling error: %v", err)
	}
	if got.ID != "aurora" {
		t.Errorf("got theme id %q, want aurora", got.ID)
	}
}

func TestGetThemeById_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/themes/missing", nil)

	ctrl.GetThemeById(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

func TestGetDocumentationByThemeSlug_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "slug", Value: "aurora"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/documentation/theme/aurora", nil)

	ctrl.GetDocumentationByThemeSlug(c)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var got models.Documentation
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshalling error: %v", err)
	}
	if got.Slug != "aurora" {
		t.Errorf("got documentation slug %q, want aurora", got.Slug)
	}
}

func TestGetDocumentationByThemeSlug_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "slug", Value: "missing"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/documentation/theme/missing", nil)

	ctrl.GetDocumentationByThemeSlug(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

// ####################### error tests
func TestGetThemes_RepositoryError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock := newMockRepository()
	mock.findThemesErr = errors.New("connection refused")
	ctrl := newMockController(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/themes", nil)

	ctrl.GetThemes(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("got status %d, want 500", w.Code)
	}
}

// ####################### test setup
func newMockController(repo database.Repository) *catalog.Controller {
	env := environment.Null()
	env.Repository = repo

	return &catalog.Controller{Env: env}
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		themes: []models.Theme{
			{ID: "aurora", Name: "Aurora", Price: 89, Featured: true},
			{ID: "paperleaf", Name: "Paperleaf", Price: 49},
		},
		docs: []models.Documentation{
			{ID: "1", Slug: "aurora", Title: "Aurora Setup Guide"},
		},
	}
}

type mockRepository struct {
	database.NullRepository

	themes []models.Theme
	docs   []models.Documentation

	findThemesErr error
}

func (m *mockRepository) FindAllThemes(ctx context.Context, themes *[]models.Theme) error {
	if m.findThemesErr != nil {
		return m.findThemesErr
	}
	*themes = append(*themes, m.themes...)
	return nil
}

func (m *mockRepository) FindThemeById(ctx context.Context, id string, theme *models.Theme) error {
	for _, th := range m.themes {
		if th.ID == id {
			*theme = th
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRepository) FindAllDocumentation(ctx context.Context, docs *[]models.Documentation) error {
	*docs = append(*docs, m.docs...)
	return nil
}

func (m *mockRepository) FindDocumentationBySlug(ctx context.Context, slug string, doc *models.Documentation) error {
	for _, d := range m.docs {
		if d.Slug == slug {
			*doc = d
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
