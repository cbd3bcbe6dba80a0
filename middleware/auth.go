package middleware

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/medibook/appointment-engine/models"
)

const sessionKey = "session"

// Protected verifies the bearer token and places the session context —
// the active user's identity for ownership filtering — in the request
// locals. Token issuance belongs to the identity provider; this engine
// only consumes sessions.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}

			session, err := sessionFromClaims(claims)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			c.Locals(sessionKey, session)
			return c.Next()
		},
	})
}

// Session returns the context stored by Protected.
func Session(c *fiber.Ctx) (models.SessionContext, bool) {
	s, ok := c.Locals(sessionKey).(models.SessionContext)
	return s, ok
}

func sessionFromClaims(claims jwt.MapClaims) (models.SessionContext, error) {
	id, err := extractID(claims)
	if err != nil {
		return models.SessionContext{}, err
	}
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		role = "patient"
	}
	return models.SessionContext{UserID: id, DisplayName: name, Role: role}, nil
}

// extractID tolerates the id formats different issuers use.
func extractID(claims jwt.MapClaims) (string, error) {
	switch v := claims["id"].(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatUint(uint64(v), 10), nil
	case nil:
		return "", fmt.Errorf("no ID found in claims")
	default:
		return "", fmt.Errorf("unsupported ID type: %T", v)
	}
}

func jwtError(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}
