package middleware

import (
	"net/http"

	"buget/database"
	"buget/models"

	"github.com/gin-gonic/gin"
)

// AdminOnly restricts a route group to administrator accounts. Must run
// after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetCurrentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "autentificare necesara"})
			c.Abort()
			return
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "utilizator inexistent"})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"code": 403, "message": "acces permis doar administratorilor"})
			c.Abort()
			return
		}

		c.Next()
	}
}
