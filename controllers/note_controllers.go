package controllers

import (
	middleware "notes-server/middlewares"
	service "notes-server/services"

	"github.com/gofiber/fiber/v2"
)

type NoteController struct {
	noteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (nc *NoteController) CreateNote(c *fiber.Ctx) error {
	var req createNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	note, err := nc.noteService.CreateNote(middleware.TenantFromLocals(c), req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (nc *NoteController) ListNotes(c *fiber.Ctx) error {
	notes, err := nc.noteService.ListNotes(middleware.TenantFromLocals(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(notes)
}

func (nc *NoteController) GetNote(c *fiber.Ctx) error {
	note, err := nc.noteService.GetNote(middleware.TenantFromLocals(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(note)
}

func (nc *NoteController) DeleteNote(c *fiber.Ctx) error {
	if err := nc.noteService.DeleteNote(middleware.TenantFromLocals(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
