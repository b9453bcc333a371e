package controller

import (
	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/pkg/serverutils"
	"chatbot-platform-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type promptController struct {
	promptService  service.IPromptService
	authMiddleware fiber.Handler
}

func NewPromptController(promptService service.IPromptService, authMiddleware fiber.Handler) IPromptController {
	return &promptController{
		promptService:  promptService,
		authMiddleware: authMiddleware,
	}
}

// Creation and listing hang off the owning project; mutation and
// deletion address the prompt directly.
func (c *promptController) RegisterRoutes(r fiber.Router) {
	scoped := r.Group("/projects/:projectId/prompts")
	scoped.Use(c.authMiddleware)
	scoped.Post("", c.Create)
	scoped.Get("", c.List)

	direct := r.Group("/prompts")
	direct.Use(c.authMiddleware)
	direct.Put(":id", c.Update)
	direct.Delete(":id", c.Delete)
}

func (c *promptController) Create(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}

	var req dto.CreatePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.Create(ctx.Context(), currentUserId(ctx), projectId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create prompt", res))
}

func (c *promptController) List(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}

	res, err := c.promptService.List(ctx.Context(), currentUserId(ctx), projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list prompts", res))
}

func (c *promptController) Update(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.Update(ctx.Context(), currentUserId(ctx), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update prompt", res))
}

func (c *promptController) Delete(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.promptService.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete prompt", nil))
}
