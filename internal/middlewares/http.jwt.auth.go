package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/joshuarp/consent-bridge/internal/shared/jwt"
)

const (
	LocalSubject = "subject"
	LocalClaims  = "jwt_claims"
)

// NewHTTPJWTMiddleware verifies the bearer token. Patient routes and gateway
// callbacks are mounted behind separate verifiers, each bound to its issuer.
func NewHTTPJWTMiddleware(verifier sharedjwt.Verifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := verifier.Verify(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		subject := claims.Subject
		if claims.ClientID != "" {
			subject = claims.ClientID
		}
		c.Locals(LocalSubject, subject)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// SubjectFromContext returns the authenticated patient id on patient routes
// and the calling client id on gateway callbacks.
func SubjectFromContext(c fiber.Ctx) string {
	subject, _ := c.Locals(LocalSubject).(string)
	return subject
}

func ClaimsFromContext(c fiber.Ctx) *sharedjwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*sharedjwt.Claims)
	return claims
}
