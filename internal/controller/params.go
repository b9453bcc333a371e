package controller

import (
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseUUIDParam rejects malformed ids before they reach a service.
func parseUUIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.Newf(apperror.ErrBadRequest, "Invalid %s format", name)
	}
	return id, nil
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals(serverutils.LocalsUserId).(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}
