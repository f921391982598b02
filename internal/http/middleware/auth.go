package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/marketplace-ledger/internal/auth"
	"github.com/nurpe/marketplace-ledger/internal/model"
)

const principalKey = "principal"

// ProfileResolver looks the caller's profile up in the ledger.
type ProfileResolver interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
}

// Auth resolves the caller identity from a Bearer access token or the
// legacy profile_id header. An absent or unknown identity is rejected
// outright; there is no fallback profile.
func Auth(parser *auth.Parser, profiles ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, ok := resolveProfileID(c, parser)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		profile, err := profiles.GetProfile(c.Request.Context(), profileID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(principalKey, model.Principal{
			ProfileID: profile.ID,
			Role:      profile.Role,
			Balance:   profile.Balance,
		})
		c.Next()
	}
}

func resolveProfileID(c *gin.Context, parser *auth.Parser) (uuid.UUID, bool) {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		id, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}

	if raw := c.GetHeader("profile_id"); raw != "" {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}

	return uuid.Nil, false
}

func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}
