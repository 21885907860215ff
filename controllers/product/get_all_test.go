package productcontroller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The rejection paths run before any query is built, so no database is
// needed to exercise them.
func listProducts(t *testing.T, rawQuery string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(nil))

	req := httptest.NewRequest(http.MethodGet, "/products?"+rawQuery, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProductsRejectsBadFilters(t *testing.T) {
	t.Run("non-numeric min_price", func(t *testing.T) {
		w := listProducts(t, "min_price=cheap")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "min_price")
	})

	t.Run("non-numeric max_price", func(t *testing.T) {
		w := listProducts(t, "max_price=12,50")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "max_price")
	})

	t.Run("non-numeric category", func(t *testing.T) {
		w := listProducts(t, "category=furniture")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "category")
	})
}
