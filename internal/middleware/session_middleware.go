package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/campusconn/backend/internal/app/models/dto"
)

// SessionMiddleware parses the session token issued by the external auth
// provider. The token carries the provider's user id in the subject
// claim; handlers read it from the context as "externalUserID".
type SessionMiddleware struct {
	secret []byte
	issuer string
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(secret, issuer string) *SessionMiddleware {
	return &SessionMiddleware{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Enabled reports whether a signing secret is configured. Without one the
// middleware is not registered and the API trusts the ids in request
// bodies, matching deployments that terminate auth at the gateway.
func (m *SessionMiddleware) Enabled() bool {
	return len(m.secret) > 0
}

// Session validates the Bearer token and stores its subject in context.
func (m *SessionMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader && strings.Count(authHeader, ".") != 2 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		options := []jwt.ParserOption{
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		}
		if m.issuer != "" {
			options = append(options, jwt.WithIssuer(m.issuer))
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return m.secret, nil
		}, options...)
		if err != nil || !token.Valid {
			errorCode := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				errorCode = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if claims.Subject == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Authentication failed")
			errorDetail = errorDetail.WithDetails("Token has no subject")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set("externalUserID", claims.Subject)
		c.Next()
	}
}
