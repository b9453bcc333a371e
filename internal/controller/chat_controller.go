package controller

import (
	"chatbot-platform-be/internal/dto"
	"chatbot-platform-be/internal/pkg/serverutils"
	"chatbot-platform-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService    service.IChatService
	authMiddleware fiber.Handler
}

func NewChatController(chatService service.IChatService, authMiddleware fiber.Handler) IChatController {
	return &chatController{
		chatService:    chatService,
		authMiddleware: authMiddleware,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/:projectId")
	h.Use(c.authMiddleware)
	h.Post("chat", c.SendChat)
	h.Post("sessions", c.CreateSession)
	h.Get("sessions", c.ListSessions)
	h.Get("sessions/:sessionId", c.ShowSession)
	h.Delete("sessions/:sessionId", c.DeleteSession)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), currentUserId(ctx), projectId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}

	res, err := c.chatService.CreateSession(ctx.Context(), currentUserId(ctx), projectId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create chat session", res))
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}

	res, err := c.chatService.ListSessions(ctx.Context(), currentUserId(ctx), projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat sessions", res))
}

func (c *chatController) ShowSession(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}
	sessionId, err := parseUUIDParam(ctx, "sessionId")
	if err != nil {
		return err
	}

	res, err := c.chatService.GetSession(ctx.Context(), currentUserId(ctx), projectId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chat session", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}
	sessionId, err := parseUUIDParam(ctx, "sessionId")
	if err != nil {
		return err
	}

	if err := c.chatService.DeleteSession(ctx.Context(), currentUserId(ctx), projectId, sessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete chat session", nil))
}
