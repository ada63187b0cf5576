package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/barchasb-io/barchasb/internal/modules/serializer"
	"github.com/barchasb-io/barchasb/internal/pkg/auth"
)

// CurrentUserKey is the gin context key the resolved user is stored under.
const CurrentUserKey = "current_user"

// BearerAuth authenticates requests with a JWT bearer token. It decodes the
// token, loads the user row it names, and sets the user in the context.
// Handlers attribute every mutation to this resolved user; client-supplied
// identity fields are never trusted.
func BearerAuth(tokens *auth.TokenManager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Not authenticated"))
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims, err := tokens.Decode(raw)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Token has expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Invalid token"))
			return
		}

		userID, err := auth.UserID(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Invalid token"))
			return
		}

		var user model.User
		if err := db.WithContext(c.Request.Context()).Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Invalid token"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}
