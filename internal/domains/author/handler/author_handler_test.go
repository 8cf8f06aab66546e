package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/service"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *testutil.Catalog, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := testutil.NewCatalog()
	tokens := testutil.NewJWTManager()
	svc := service.NewAuthorService(catalog.Authors(), infraCache.NewMemoryCache(100, time.Minute), time.Minute)

	router := gin.New()
	api := router.Group("/api", middleware.Authenticate(tokens))
	NewAuthorHandler(svc).RegisterRoutes(api, middleware.RequireRole(shared.RoleAdmin, shared.AdminDeniedMessage))

	return router, catalog, testutil.AdminToken(t, tokens)
}

func send(router *gin.Engine, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetAuthor(t *testing.T) {
	router, catalog, admin := setupRouter(t)

	w := send(router, http.MethodPost, "/api/authors", `{"firstName":"Frank","lastName":"Herbert"}`, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/authors/1", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"firstName":"Frank","lastName":"Herbert"}`, w.Body.String())

	w = send(router, http.MethodGet, "/api/authors/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"firstName":"Frank","lastName":"Herbert","books":[]}`, w.Body.String())

	catalog.AddBook("Dune", 1)
	w = send(router, http.MethodGet, "/api/authors/1", "", "")
	assert.JSONEq(t, `{"id":1,"firstName":"Frank","lastName":"Herbert","books":[{"id":1,"title":"Dune"}]}`, w.Body.String())
}

func TestCreateAuthor_ValidationError(t *testing.T) {
	router, catalog, admin := setupRouter(t)

	w := send(router, http.MethodPost, "/api/authors", `{"firstName":""}`, admin)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var vs []shared.Violation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vs))
	require.Len(t, vs, 2)
	assert.Equal(t, "firstName", vs[0].Property)
	assert.Equal(t, "lastName", vs[1].Property)

	w = send(router, http.MethodGet, "/api/authors", "", "")
	assert.Equal(t, "[]", w.Body.String())

	_, err := catalog.Authors().GetByID(t.Context(), 1)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestListAuthors_ReflectsUpdate(t *testing.T) {
	router, catalog, admin := setupRouter(t)
	catalog.AddAuthor("Frank", "Herbert")

	w := send(router, http.MethodGet, "/api/authors", "", "")
	assert.JSONEq(t, `[{"id":1,"firstName":"Frank","lastName":"Herbert"}]`, w.Body.String())

	w = send(router, http.MethodPut, "/api/authors/1", `{"firstName":"Brian"}`, admin)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = send(router, http.MethodGet, "/api/authors", "", "")
	assert.JSONEq(t, `[{"id":1,"firstName":"Brian","lastName":"Herbert"}]`, w.Body.String())
}

func TestDeleteAuthor(t *testing.T) {
	router, catalog, admin := setupRouter(t)
	herbert := catalog.AddAuthor("Frank", "Herbert")
	catalog.AddAuthor("Ursula", "Le Guin")
	catalog.AddBook("Dune", herbert.ID)

	w := send(router, http.MethodDelete, "/api/authors/1", "", admin)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "AUTHOR_HAS_BOOKS")

	w = send(router, http.MethodDelete, "/api/authors/2", "", admin)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = send(router, http.MethodDelete, "/api/authors/2", "", admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthorMutations_RequireAdmin(t *testing.T) {
	router, catalog, _ := setupRouter(t)
	catalog.AddAuthor("Frank", "Herbert")
	user := testutil.UserToken(t, testutil.NewJWTManager())

	w := send(router, http.MethodPost, "/api/authors", `{"firstName":"A","lastName":"B"}`, user)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = send(router, http.MethodPut, "/api/authors/1", `{"firstName":"A"}`, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = send(router, http.MethodDelete, "/api/authors/1", "", user)
	assert.Equal(t, http.StatusForbidden, w.Code)

	a, err := catalog.Authors().GetByID(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Frank", a.FirstName)
}

func TestGetAuthor_NotFound(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := send(router, http.MethodGet, "/api/authors/9", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
