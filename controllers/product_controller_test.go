package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"product-catalog/app"
	"product-catalog/config"
	"product-catalog/models"
	"product-catalog/repositories"
	"product-catalog/services"
	"product-catalog/utils"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.MemoryProductRepository, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryProductRepository()
	cfg := &config.Config{JWTSecret: testSecret, JWTExpiry: time.Hour}
	router := app.NewRouter(cfg,
		services.NewProductService(store, nil),
		services.NewAuthService("admin@example.com", "", testSecret, time.Hour),
	)

	token, _, err := utils.GenerateToken(testSecret, "admin@example.com", utils.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	return router, store, token
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) models.ActionResult {
	t.Helper()
	var result models.ActionResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return result
}

func TestCreateProductJSON(t *testing.T) {
	router, store, token := newTestRouter(t)

	body := `{"name":"Premium Coffee Beans","description":"Freshly roasted single origin arabica.","price":19.99,"imageUrl":"https://placehold.co/600x400.png"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if result := decodeResult(t, rec); !result.Success {
		t.Errorf("expected success, got %+v", result)
	}

	products, _ := store.List(context.Background())
	if len(products) != 1 || products[0].Price != 19.99 {
		t.Errorf("unexpected store contents: %+v", products)
	}
}

func TestCreateProductForm(t *testing.T) {
	router, _, token := newTestRouter(t)

	form := url.Values{
		"name":        {"Green Tea"},
		"description": {"Loose leaf sencha from Shizuoka."},
		"price":       {"7.5"},
		"imageUrl":    {"https://i.imgur.com/abc123.jpg"},
	}
	submit := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := submit(); rec.Code != http.StatusCreated {
		t.Fatalf("first submit status = %d: %s", rec.Code, rec.Body.String())
	}

	form.Set("name", "GREEN TEA")
	rec := submit()
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate submit status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
	if result := decodeResult(t, rec); result.Code != models.CodeDuplicateName {
		t.Errorf("code = %q, want %q", result.Code, models.CodeDuplicateName)
	}
}

func TestCreateProductValidationFailure(t *testing.T) {
	router, store, token := newTestRouter(t)

	body := `{"name":"ab","description":"Freshly roasted single origin arabica.","price":"-1","imageUrl":"https://placehold.co/600x400.png"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	result := decodeResult(t, rec)
	if len(result.Errors["name"]) != 1 || len(result.Errors["price"]) != 1 || len(result.Errors) != 2 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if products, _ := store.List(context.Background()); len(products) != 0 {
		t.Errorf("nothing should be stored, got %+v", products)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	userToken, _, err := utils.GenerateToken(testSecret, "user@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"malformed", "Token abc", http.StatusUnauthorized},
		{"bad signature", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"not admin", "Bearer " + userToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/admin/products/abc", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	router, store, token := newTestRouter(t)

	p := &models.Product{Name: "Green Tea", Description: "Loose leaf sencha.", Price: 7.5}
	if err := store.Create(context.Background(), p); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/admin/products/"+p.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if products, _ := store.List(context.Background()); len(products) != 0 {
		t.Errorf("product was not deleted: %+v", products)
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if result := decodeResult(t, rec); result.Code != models.CodeIDRequired {
		t.Errorf("code = %q, want %q", result.Code, models.CodeIDRequired)
	}
}

func TestGetAllProductsUsesPlaceholder(t *testing.T) {
	router, store, _ := newTestRouter(t)

	if err := store.Create(context.Background(), &models.Product{Name: "No Image", Description: "Product without an image.", Price: 1}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data  []models.Product `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Total != 1 || body.Data[0].ImageURL != models.PlaceholderImageURL {
		t.Errorf("unexpected listing: %+v", body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}
