package controller

import (
	"github.com/gofiber/fiber/v2"

	"mm-voicenote-be/internal/dto"
	"mm-voicenote-be/internal/pkg/serverutils"
	"mm-voicenote-be/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/note/v1")
	h.Use(auth)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id/export", c.Export)
	h.Delete(":id", c.Delete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	note, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create note", dto.CreateNoteResponse{Note: note}))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	query := ctx.Query("q")

	notes, err := c.noteService.List(ctx.Context(), userId, query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", dto.ListNotesResponse{Notes: notes}))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	noteId := ctx.Params("id")

	if err := c.noteService.Delete(ctx.Context(), userId, noteId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete note", nil))
}

func (c *noteController) Export(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	noteId := ctx.Params("id")

	export, err := c.noteService.Export(ctx.Context(), userId, noteId)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return ctx.SendString(export.Content)
}
