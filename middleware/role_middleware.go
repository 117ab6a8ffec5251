package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-ops-backend/lib/utils/auth-utils"
	"hr-ops-backend/models"
	apimodels "hr-ops-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// RoleRequired guards a route group to the given roles. The workflow
// engine re-checks stage authority on every transition, this is only
// the coarse HTTP-level gate.
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		userRole := GetUserRole(ctx)
		for _, role := range roles {
			if userRole == role {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
	}
}
