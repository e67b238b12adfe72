package controllers

import (
	"fmt"
	"strings"

	"notes-server/models"
	service "notes-server/services"

	"github.com/gofiber/fiber/v2"
)

type OrganizationController struct {
	orgService *service.OrganizationService
}

func NewOrganizationController(orgService *service.OrganizationService) *OrganizationController {
	return &OrganizationController{orgService: orgService}
}

type createOrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (oc *OrganizationController) CreateOrganization(c *fiber.Ctx) error {
	var req createOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < models.MinOrganizationNameLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("name must be at least %d characters", models.MinOrganizationNameLength),
		})
	}

	org, err := oc.orgService.CreateOrganization(req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(org)
}

func (oc *OrganizationController) ListOrganizations(c *fiber.Ctx) error {
	orgs, err := oc.orgService.ListOrganizations()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(orgs)
}
