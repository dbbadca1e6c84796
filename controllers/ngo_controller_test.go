package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNearbyNGOsRejectsMalformedParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ngos/nearby", NearbyNGOs)

	queries := []string{
		"lat=abc",
		"lng=abc",
		"radius_km=1O", // letter O, not ten
		"top=three",
		"quantity_kg=ten",
	}
	for _, q := range queries {
		req := httptest.NewRequest(http.MethodGet, "/ngos/nearby?"+q, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want %d", q, w.Code, http.StatusBadRequest)
		}
	}
}
