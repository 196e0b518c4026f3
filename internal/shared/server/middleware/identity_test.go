package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func identityRouter(capture *[2]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity())
	router.GET("/whoami", func(c *gin.Context) {
		capture[0] = ActorNameFromContext(c)
		capture[1] = ActorRoleFromContext(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestIdentityReadsHeaders(t *testing.T) {
	var got [2]string
	router := identityRouter(&got)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Actor-Name", "Alex Advisor")
	req.Header.Set("X-Actor-Role", "ADVISOR")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got[0] != "Alex Advisor" {
		t.Fatalf("expected actor name, got %q", got[0])
	}
	if got[1] != RoleAdvisor {
		t.Fatalf("expected role normalized to advisor, got %q", got[1])
	}
}

func TestIdentityDefaults(t *testing.T) {
	var got [2]string
	router := identityRouter(&got)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got[0] != "Unknown" {
		t.Fatalf("expected Unknown actor, got %q", got[0])
	}
	if got[1] != RoleClient {
		t.Fatalf("expected default client role, got %q", got[1])
	}
}
