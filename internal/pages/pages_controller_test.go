package pages_test

import (
	"bytes"
	"context"
	"encoding/json"
	"ghost-theme-storefront/internal/database"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/models"
	"ghost-theme-storefront/internal/pages"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ####################### valid behavior tests
func TestGetPages_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/pages", nil)

	ctrl.GetPages(c)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var got []models.PageSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshalling error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d pages, want 1", len(got))
	}
	if got[0].Slug != "about" {
		t.Errorf("got slug %q, want about", got[0].Slug)
	}
}

func TestGetPageBySlug_UnpublishedIsHidden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "slug", Value: "draft"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/pages/draft", nil)

	ctrl.GetPageBySlug(c)

	// the draft exists but is unpublished, which reads as absent
	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

func TestCreatePage_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock := newMockRepository()
	ctrl := newMockController(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"title":"Pricing","slug":"pricing","content":"## Plans"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/pages", bytes.NewBufferString(body))

	ctrl.CreatePage(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var got models.Page
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshalling error: %v", err)
	}

	if len(got.ID) <= 0 {
		t.Error("got empty page id, want generated uuid")
	}
	if !got.Published {
		t.Error("got published false, want default true")
	}
	if mock.created == nil || mock.created.Slug != "pricing" {
		t.Errorf("created page not persisted: %+v", mock.created)
	}
}

func TestCreatePage_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"title":"Pricing"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/pages", bytes.NewBufferString(body))

	ctrl.CreatePage(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Title, slug, and content are required") {
		t.Errorf("got body %s, want required-fields message", w.Body.String())
	}
}

func TestCreatePage_DuplicateSlugConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"title":"About","slug":"about","content":"# About"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/pages", bytes.NewBufferString(body))

	ctrl.CreatePage(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("got status %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "A page with this slug already exists") {
		t.Errorf("got body %s, want duplicate-slug message", w.Body.String())
	}
}

func TestUpdatePage_MergePatchSkipsAbsentAndEmptyFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock := newMockRepository()
	ctrl := newMockController(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "slug", Value: "about"}}
	// empty title must not blank the stored one; description may be
	// set to empty; published flips explicitly
	body := `{"title":"","description":"","published":false}`
	c.Request = httptest.NewRequest(http.MethodPut, "/pages/about", bytes.NewBufferString(body))

	ctrl.UpdatePage(c)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200; body: %s", w.Code, w.Body.String())
	}

	if _, ok := mock.updatedFields["title"]; ok {
		t.Error("empty title must not be applied")
	}
	if _, ok := mock.updatedFields["content"]; ok {
		t.Error("absent content must not be applied")
	}
	if got, ok := mock.updatedFields["description"]; !ok || got != "" {
		t.Errorf("description: got %v, want empty string applied", got)
	}
	if got, ok := mock.updatedFields["published"]; !ok || got != false {
		t.Errorf("published: got %v, want false applied", got)
	}
}

func TestUpdatePage_NoFieldsStillReturnsPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock := newMockRepository()
	ctrl := newMockController(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "slug", Value: "about"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/pages/about", bytes.NewBufferString(`{}`))

	ctrl.UpdatePage(c)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if mock.updateCalled {
		t.Error("no update statement expected for an empty patch")
	}
}

func TestUpdatePage_UnknownSlugIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "slug", Value: "missing"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/pages/missing", bytes.NewBufferString(`{"title":"New"}`))

	ctrl.UpdatePage(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

func TestDeletePage_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock := newMockRepository()
	ctrl := newMockController(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "slug", Value: "about"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/pages/about", nil)

	ctrl.DeletePage(c)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page deleted successfully") {
		t.Errorf("got body %s, want deletion message", w.Body.String())
	}
	if mock.deletedSlug != "about" {
		t.Errorf("got deleted slug %q, want about", mock.deletedSlug)
	}
}

func TestDeletePage_UnknownSlugIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := newMockController(newMockRepository())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = []gin.Param{{Key: "slug", Value: "missing"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/pages/missing", nil)

	ctrl.DeletePage(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

// ####################### test setup
func newMockController(repo database.Repository) *pages.Controller {
	env := environment.Null()
	env.Repository = repo

	return &pages.Controller{Env: env}
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		pages: map[string]models.Page{
			"about": {ID: "1", Title: "About", Slug: "about", Content: "# About", Published: true},
			"draft": {ID: "2", Title: "Draft", Slug: "draft", Content: "# Draft", Published: false},
		},
	}
}

type mockRepository struct {
	database.NullRepository

	pages map[string]models.Page

	created       *models.Page
	updatedFields map[string]any
	updateCalled  bool
	deletedSlug   string
}

func (m *mockRepository) FindPublishedPageSummaries(ctx context.Context, summaries *[]models.PageSummary) error {
	for _, p := range m.pages {
		if !p.Published {
			continue
		}
		*summaries = append(*summaries, models.PageSummary{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Description: p.Description,
		})
	}
	return nil
}

func (m *mockRepository) FindPublishedPageBySlug(ctx context.Context, slug string, page *models.Page) error {
	found, ok := m.pages[slug]
	if !ok || !found.Published {
		return gorm.ErrRecordNotFound
	}
	*page = found
	return nil
}

func (m *mockRepository) FindPageBySlug(ctx context.Context, slug string, page *models.Page) error {
	found, ok := m.pages[slug]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	*page = found
	return nil
}

func (m *mockRepository) CreatePage(ctx context.Context, page *models.Page) error {
	m.created = page
	m.pages[page.Slug] = *page
	return nil
}

func (m *mockRepository) UpdatePageBySlug(ctx context.Context, slug string, fields map[string]any) (int64, error) {
	m.updateCalled = true
	m.updatedFields = fields

	if _, ok := m.pages[slug]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (m *mockRepository) DeletePageBySlug(ctx context.Context, slug string) (int64, error) {
	if _, ok := m.pages[slug]; !ok {
		return 0, nil
	}
	m.deletedSlug = slug
	delete(m.pages, slug)
	return 1, nil
}
