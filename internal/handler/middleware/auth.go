package middleware

import (
	"net/http"
	"strings"

	"huntbook/internal/handler/httperr"
	"huntbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Member roles as carried in the token. Wardens are club admins; guests
// are subject to the club's guest booking restrictions.
const (
	RoleMember = "member"
	RoleGuest  = "guest"
	RoleWarden = "warden"
)

const (
	ctxMemberIDKey = "member_id"
	ctxClubIDKey   = "club_id"
	ctxRoleKey     = "member_role"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth verifies the bearer token and stashes the member's
// identity and club context on the request. Tokens are issued
// elsewhere; this service only verifies.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Authentication required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxMemberIDKey, claims.MemberID)
		c.Set(ctxClubIDKey, claims.ClubID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireWarden() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := GetRole(c)
		if role != RoleWarden {
			httperr.AbortWithError(c, http.StatusForbidden, jwt.ErrInvalidToken, "Warden role required", nil)
			return
		}
		c.Next()
	}
}

func GetMemberID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxMemberIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetClubID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxClubIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
