package controllers

import (
	"strings"

	"notes-server/models"
	service "notes-server/services"

	"github.com/gofiber/fiber/v2"
)

type MemberController struct {
	memberService *service.MemberService
}

func NewMemberController(memberService *service.MemberService) *MemberController {
	return &MemberController{memberService: memberService}
}

type createMemberRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (mc *MemberController) CreateMember(c *fiber.Ctx) error {
	var req createMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A valid email is required"})
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleReader
	}
	if !role.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "role must be one of reader, writer, admin"})
	}

	member, err := mc.memberService.CreateMember(c.Params("orgId"), req.Email, req.FullName, role)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (mc *MemberController) ListMembers(c *fiber.Ctx) error {
	members, err := mc.memberService.ListMembers(c.Params("orgId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(members)
}
