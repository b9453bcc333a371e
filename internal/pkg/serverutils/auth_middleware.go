package serverutils

import (
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/pkg/token"
	"chatbot-platform-be/internal/repository/specification"
	"chatbot-platform-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalsUserId = "user_id"
	LocalsUser   = "current_user"
)

// NewAuthMiddleware validates the bearer token and resolves it to a stored
// user on every request. The lookup is deliberately not cached: deleting
// an account revokes its tokens implicitly, and expiry is re-checked on
// each call.
func NewAuthMiddleware(tm *token.Manager, uowFactory unitofwork.RepositoryFactory) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return apperror.New(apperror.ErrUnauthorized, "Could not validate credentials")
		}

		claims, err := tm.Validate(authHeader[7:])
		if err != nil {
			return apperror.New(apperror.ErrUnauthorized, "Could not validate credentials")
		}

		uow := uowFactory.NewUnitOfWork(ctx.Context())
		user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByID{ID: claims.UserId})
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.New(apperror.ErrUnauthorized, "Could not validate credentials")
		}

		ctx.Locals(LocalsUserId, user.Id.String())
		ctx.Locals(LocalsUser, user)
		return ctx.Next()
	}
}
