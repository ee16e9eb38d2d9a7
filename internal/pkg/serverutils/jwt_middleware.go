package serverutils

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"mm-voicenote-be/internal/entity"
)

// SessionResolver checks that a verified token still belongs to a live
// session. Logout ends the session, so a structurally valid JWT alone is
// not enough to pass.
type SessionResolver interface {
	Resolve(ctx context.Context, token, userId string) (*entity.User, error)
}

// NewJwtMiddleware guards a route group with bearer-token auth. The token is
// verified, its user id claim type-checked, and the session resolved; only
// then does the user id land in Locals for the controllers.
func NewJwtMiddleware(secret string, sessions SessionResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		userId, ok := claims["user_id"].(string)
		if !ok || userId == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		}

		if _, err := sessions.Resolve(ctx.Context(), tokenStr, userId); err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Session expired"})
		}

		ctx.Locals("user_id", userId)
		return ctx.Next()
	}
}
