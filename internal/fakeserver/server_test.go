package fakeserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/trendify-core/client/internal/model"
)

func serve(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Statuses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(nil).Handler("/api")

	if rec := serve(t, h, http.MethodPost, "/api/User/Register", "{not json", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
	if rec := serve(t, h, http.MethodGet, "/api/Carts/GetCarts", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := serve(t, h, http.MethodGet, "/api/Carts/GetCarts", "", "forged"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", rec.Code)
	}
}

func TestServer_RegisterDuplicateEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(nil).Handler("/api")
	body := `{"name":"Ada","email":"Ada@Example.com","password":"pw"}`

	first := serve(t, h, http.MethodPost, "/api/User/Register", body, "")
	var ok model.RegisterResponse
	if err := json.Unmarshal(first.Body.Bytes(), &ok); err != nil || !ok.Status || ok.Data.Email != "ada@example.com" {
		t.Fatalf("unexpected first register %s (%v)", first.Body.String(), err)
	}

	second := serve(t, h, http.MethodPost, "/api/User/Register", body, "")
	var dup model.RegisterResponse
	if err := json.Unmarshal(second.Body.Bytes(), &dup); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second.Code != http.StatusOK || dup.Status || dup.Message == "" {
		t.Fatalf("expected rejected envelope, got %d %s", second.Code, second.Body.String())
	}
}

func TestServer_CustomCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	products := []model.Product{{ID: 1, Name: "Only"}}
	h := New(products).Handler("")

	rec := serve(t, h, http.MethodGet, "/Home/Gethomedata", "", "")
	var home model.Home
	if err := json.Unmarshal(rec.Body.Bytes(), &home); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(home.Data.Products) != 1 || home.Data.Products[0].Name != "Only" || len(home.Data.Banners) != 0 {
		t.Fatalf("unexpected feed %+v", home.Data)
	}
}
