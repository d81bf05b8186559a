package middleware

import (
	"strings"

	"humana/errors"
	"humana/response"
	"humana/services"
	"humana/types"

	"github.com/gin-gonic/gin"
)

const ViewerKey = "viewer"

// AuthMiddleware xử lý authentication, resolve viewer một lần cho request
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu viewer vào context, tầng truy vấn chỉ đọc từ đây
		c.Set(ViewerKey, types.Viewer{UserID: userID, Role: userRole})
		c.Next()
	}
}

// GetViewer lấy viewer đã resolve từ context
func GetViewer(c *gin.Context) (types.Viewer, bool) {
	v, exists := c.Get(ViewerKey)
	if !exists {
		return types.Viewer{}, false
	}
	viewer, ok := v.(types.Viewer)
	return viewer, ok
}

// ErrorHandler xử lý lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Kiểm tra lỗi
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr, ok := err.(*errors.AppError); ok {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
