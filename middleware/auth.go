package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"attendance_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuth guards the administrative override routes. It accepts a
// bearer token with a role claim of admin or supervisor; everything
// else on the API stays open to the calling front-end.
func AdminAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header must be in the format: Bearer {token}"})
			c.Abort()
			return
		}

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		if claims.Role != "admin" && claims.Role != "supervisor" {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin or supervisor role required"})
			c.Abort()
			return
		}

		c.Set("employeeID", claims.EmployeeID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// NewAdminToken mints an HS256 token for an operator. Used by the
// token-issuing tooling and by tests.
func NewAdminToken(employeeID, role string, jwtSecret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		EmployeeID: employeeID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(jwtSecret)
}
