package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"humana/constants"
	"humana/services"
	"humana/types"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func makeToken(t *testing.T, userID uint, role int) string {
	t.Helper()

	claims := services.Claims{
		UserInfo: services.UserInfo{UserId: userID, Role: role},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Không ký được token test: %v", err)
	}
	return signed
}

func newAuthRouter(roles ...int) (*gin.Engine, *types.Viewer) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var captured types.Viewer
	router.GET("/protected", AuthMiddleware(roles...), func(c *gin.Context) {
		viewer, _ := GetViewer(c)
		captured = viewer
		c.Status(http.StatusOK)
	})
	return router, &captured
}

func perform(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareThieuHeader(t *testing.T) {
	router, _ := newAuthRouter()
	w := perform(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, muốn 401", w.Code)
	}
}

func TestAuthMiddlewareTokenHong(t *testing.T) {
	router, _ := newAuthRouter()
	w := perform(router, "khong.phai-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, muốn 401", w.Code)
	}
}

func TestAuthMiddlewareGanViewerVaoContext(t *testing.T) {
	router, captured := newAuthRouter()
	w := perform(router, makeToken(t, 7, constants.RoleEmployee))
	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, muốn 200", w.Code)
	}
	if captured.UserID != 7 || captured.Role != constants.RoleEmployee {
		t.Errorf("Viewer = %+v, muốn UserID=7 Role=employee", *captured)
	}
	if captured.AllScope() {
		t.Error("Nhân viên thường không được có all scope")
	}
}

func TestAuthMiddlewareChanSaiRole(t *testing.T) {
	router, _ := newAuthRouter(constants.RoleAdmin)

	w := perform(router, makeToken(t, 7, constants.RoleEmployee))
	if w.Code != http.StatusForbidden {
		t.Errorf("Status = %d, muốn 403", w.Code)
	}

	w = perform(router, makeToken(t, 1, constants.RoleAdmin))
	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, muốn 200", w.Code)
	}
}
