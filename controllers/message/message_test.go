package messageControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Input validation runs before the database is touched, so these paths
// need no backing store.
func messageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", SubmitMessage(nil))
	r.POST("/admin/messages/:id/toggle-read", ToggleMessageRead(nil))
	r.DELETE("/admin/messages/:id", DeleteMessage(nil))
	return r
}

func TestSubmitMessageRejectsBadInput(t *testing.T) {
	r := messageRouter()
	req := httptest.NewRequest(http.MethodPost, "/contact",
		strings.NewReader(`{"name":"Aya","email":"not-an-email","body":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessageAdminRejectsBadID(t *testing.T) {
	r := messageRouter()

	t.Run("toggle-read", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/messages/abc/toggle-read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/messages/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
