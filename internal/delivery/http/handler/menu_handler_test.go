package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	domainMenu "github.com/AyushiSrivastava11/VRV-Backend/internal/domain/menu"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	menuUsecase "github.com/AyushiSrivastava11/VRV-Backend/internal/usecase/menu"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("test"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type memMenuRepo struct {
	categories map[uuid.UUID]*domainMenu.Category
	items      map[uuid.UUID]*domainMenu.Item
}

func newMemMenuRepo() *memMenuRepo {
	return &memMenuRepo{
		categories: make(map[uuid.UUID]*domainMenu.Category),
		items:      make(map[uuid.UUID]*domainMenu.Item),
	}
}

func (r *memMenuRepo) CreateCategory(_ context.Context, c *domainMenu.Category) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	copied := *c
	r.categories[c.ID] = &copied
	return nil
}

func (r *memMenuRepo) GetCategoryByID(_ context.Context, id uuid.UUID) (*domainMenu.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainMenu.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *memMenuRepo) GetCategoryByName(_ context.Context, name string) (*domainMenu.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domainMenu.ErrCategoryNotFound
}

func (r *memMenuRepo) ListCategories(_ context.Context) ([]*domainMenu.Category, error) {
	var out []*domainMenu.Category
	for _, c := range r.categories {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memMenuRepo) UpdateCategory(_ context.Context, c *domainMenu.Category) error {
	stored, ok := r.categories[c.ID]
	if !ok {
		return domainMenu.ErrCategoryNotFound
	}
	stored.Name = c.Name
	return nil
}

func (r *memMenuRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return domainMenu.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *memMenuRepo) CreateItem(_ context.Context, it *domainMenu.Item) error {
	it.ID = uuid.New()
	it.CreatedAt = time.Now()
	copied := *it
	r.items[it.ID] = &copied
	return nil
}

func (r *memMenuRepo) GetItemByID(_ context.Context, id uuid.UUID) (*domainMenu.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domainMenu.ErrItemNotFound
	}
	copied := *it
	return &copied, nil
}

func (r *memMenuRepo) ListItems(_ context.Context) ([]*domainMenu.Item, error) {
	var out []*domainMenu.Item
	for _, it := range r.items {
		copied := *it
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memMenuRepo) UpdateItem(_ context.Context, it *domainMenu.Item) error {
	stored, ok := r.items[it.ID]
	if !ok {
		return domainMenu.ErrItemNotFound
	}
	*stored = *it
	return nil
}

func (r *memMenuRepo) DeleteItem(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return domainMenu.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func newMenuRouter() (*gin.Engine, *memMenuRepo) {
	repo := newMemMenuRepo()
	h := NewMenuHandler(menuUsecase.NewService(repo))

	r := gin.New()
	group := r.Group("/api/v1/menu")
	h.RegisterRoutes(group)
	h.RegisterAdminRoutes(group)
	return r, repo
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetMenuItems(t *testing.T) {
	router, repo := newMenuRouter()

	category := &domainMenu.Category{Name: "Mains"}
	require.NoError(t, repo.CreateCategory(context.Background(), category))
	require.NoError(t, repo.CreateItem(context.Background(), &domainMenu.Item{
		Name: "Margherita", Price: 9.5, CategoryID: category.ID,
	}))

	w := doJSON(router, http.MethodGet, "/api/v1/menu/get-menuItems", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Margherita")

	w = doJSON(router, http.MethodGet, "/api/v1/menu/get-categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mains")
}

func TestCategoryWritesMissingEntityIs404(t *testing.T) {
	router, _ := newMenuRouter()

	w := doJSON(router, http.MethodDelete, "/api/v1/menu/delete-category/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "category not found")

	w = doJSON(router, http.MethodPatch, "/api/v1/menu/update-category/"+uuid.NewString(),
		gin.H{"name": "Desserts"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemUnknownCategoryIs400(t *testing.T) {
	router, _ := newMenuRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/menu/create-menuItem", gin.H{
		"name":        "Orphan",
		"price":       5,
		"category_id": uuid.NewString(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "category does not exist")
}

func TestMenuItemMissingEntityIs404(t *testing.T) {
	router, _ := newMenuRouter()

	w := doJSON(router, http.MethodDelete, "/api/v1/menu/delete-menuItem/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "menu item not found")
}
