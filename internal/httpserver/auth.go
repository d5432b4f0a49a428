package httpserver

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const subjectKey = "identitySubject"

// identityMiddleware extracts the caller's identity subject from a bearer
// token. A missing or invalid token leaves the subject empty; owner-scoped
// operations decide for themselves what that means.
func identityMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sub := subjectFromHeader(c.GetHeader("Authorization"), secret); sub != "" {
			c.Set(subjectKey, sub)
		}
		c.Next()
	}
}

func subjectFromHeader(header, secret string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if raw == "" {
		return ""
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// callerSubject returns the authenticated identity subject, or "" for an
// anonymous caller.
func callerSubject(c *gin.Context) string {
	return c.GetString(subjectKey)
}
