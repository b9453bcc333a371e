package controller

import (
	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/pkg/serverutils"
	"chatbot-platform-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService    service.IFileService
	authMiddleware fiber.Handler
}

func NewFileController(fileService service.IFileService, authMiddleware fiber.Handler) IFileController {
	return &fileController{
		fileService:    fileService,
		authMiddleware: authMiddleware,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	scoped := r.Group("/projects/:projectId/files")
	scoped.Use(c.authMiddleware)
	scoped.Post("", c.Upload)
	scoped.Get("", c.List)

	direct := r.Group("/files")
	direct.Use(c.authMiddleware)
	direct.Delete(":id", c.Delete)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.New(apperror.ErrBadRequest, "Missing file in form data")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.fileService.Upload(ctx.Context(), currentUserId(ctx), projectId, fileHeader.Filename, file)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success upload file", res))
}

func (c *fileController) List(ctx *fiber.Ctx) error {
	projectId, err := parseUUIDParam(ctx, "projectId")
	if err != nil {
		return err
	}

	res, err := c.fileService.List(ctx.Context(), currentUserId(ctx), projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list files", res))
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.fileService.Delete(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete file", res))
}
