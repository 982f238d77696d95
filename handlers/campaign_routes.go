package handlers

import (
	"deliwer-loyalty-system/middleware"
	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/services"
	"deliwer-loyalty-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes wires the gated admin surface. Every handler runs its own
// Authorize call — the middleware only stashes the assertion, it never
// grants anything.
func SetupAdminRoutes(app *fiber.App, access *services.AccessService, campaignService *services.CampaignService, adminService *services.AdminService) {
	admin := app.Group("/admin", middleware.AdminContextMiddleware())

	authorize := func(c *fiber.Ctx, action string, required ...models.Permission) (*models.AdminIdentity, error) {
		return access.Authorize(middleware.AuthToken(c), middleware.ShopDomain(c), action, required...)
	}

	// --- Campaigns ---

	admin.Post("/campaigns", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "campaign.create", models.PermManageCampaigns)
		if err != nil {
			return respondError(c, err)
		}

		var req services.CreateCampaignInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		campaign, err := campaignService.CreateCampaign(identity, req)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(campaign)
	})

	admin.Get("/campaigns", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "campaign.list", models.PermViewCampaigns)
		if err != nil {
			return respondError(c, err)
		}
		campaigns, err := campaignService.ListCampaigns(identity)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(campaigns)
	})

	admin.Get("/campaigns/:id", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "campaign.get", models.PermViewCampaigns)
		if err != nil {
			return respondError(c, err)
		}
		campaign, err := campaignService.GetCampaign(identity, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(campaign)
	})

	admin.Post("/campaigns/:id/send", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "campaign.send", models.PermManageCampaigns)
		if err != nil {
			return respondError(c, err)
		}
		result, err := campaignService.SendCampaign(identity, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(result)
	})

	admin.Delete("/campaigns/:id", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "campaign.delete", models.PermManageCampaigns)
		if err != nil {
			return respondError(c, err)
		}
		campaign, err := campaignService.DeleteCampaign(identity, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(campaign)
	})

	// --- Segments ---

	admin.Post("/segments", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "segment.create", models.PermManageSegments)
		if err != nil {
			return respondError(c, err)
		}

		var req services.CreateSegmentInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		segment, err := campaignService.CreateSegment(identity, req)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(segment)
	})

	admin.Get("/segments", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "segment.list", models.PermManageSegments)
		if err != nil {
			return respondError(c, err)
		}
		segments, err := campaignService.ListSegments(identity)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(segments)
	})

	admin.Get("/segments/:id/customers", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "segment.customers", models.PermManageCampaigns)
		if err != nil {
			return respondError(c, err)
		}

		purpose := models.DataPurpose(c.Query("purpose"))
		customers, err := campaignService.GetCustomersForSegment(identity, c.Params("id"), purpose)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(customers)
	})

	// --- Admin registry ---

	admin.Get("/admins", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "admin.list", models.PermManageAdmins)
		if err != nil {
			return respondError(c, err)
		}
		admins, err := adminService.List(identity)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(admins)
	})

	admin.Post("/admins", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "admin.create", models.PermManageAdmins)
		if err != nil {
			return respondError(c, err)
		}

		var req struct {
			Email string           `json:"email"`
			Role  models.AdminRole `json:"role"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		account, err := adminService.CreateAdmin(identity, req.Email, req.Role)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(account)
	})

	admin.Patch("/admins/:id/role", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "admin.role", models.PermManageAdmins)
		if err != nil {
			return respondError(c, err)
		}

		var req struct {
			Role models.AdminRole `json:"role"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		account, err := adminService.ManageRole(identity, c.Params("id"), req.Role)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(account)
	})

	admin.Delete("/admins/:id", func(c *fiber.Ctx) error {
		identity, err := authorize(c, "admin.deactivate", models.PermManageAdmins)
		if err != nil {
			return respondError(c, err)
		}
		account, err := adminService.Deactivate(identity, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(account)
	})

	// --- Media ---

	admin.Post("/media", func(c *fiber.Ctx) error {
		if _, err := authorize(c, "media.upload", models.PermUploadMedia); err != nil {
			return respondError(c, err)
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
		}
		folder := c.FormValue("folder", "banners")
		if folder != "banners" && folder != "icons" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "folder must be banners or icons"})
		}

		url, err := utils.UploadMedia(fileHeader, folder)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
	})
}
