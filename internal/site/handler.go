package site

import (
	"strings"

	"github.com/ekralade/ministry-api/internal/config"
	"github.com/ekralade/ministry-api/internal/database"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

// SiteConfig is wired at boot from the loaded config.
var SiteConfig *config.Config

var policy = bluemonday.UGCPolicy()

func GetBiographyHandler(c *fiber.Ctx) error {
	return response.Success(c, biography, "Biography retrieved successfully")
}

func GetFAQHandler(c *fiber.Ctx) error {
	return response.Success(c, faqs, "FAQ retrieved successfully")
}

func GetLinksHandler(c *fiber.Ctx) error {
	cfg := SiteConfig
	if cfg == nil {
		cfg = config.Load()
	}
	return response.Success(c, BuildLinks(cfg), "Links retrieved successfully")
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContactHandler persists a contact form submission. Free-text fields
// are sanitized before storage since they end up rendered in the admin panel.
func SubmitContactHandler(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}

	errors := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	} else if !strings.Contains(req.Email, "@") {
		errors["email"] = "email is invalid"
	}
	if strings.TrimSpace(req.Message) == "" {
		errors["message"] = "message is required"
	}
	if len(errors) > 0 {
		return response.ValidationError(c, errors)
	}

	message := models.ContactMessage{
		Name:    policy.Sanitize(strings.TrimSpace(req.Name)),
		Email:   strings.TrimSpace(req.Email),
		Subject: policy.Sanitize(strings.TrimSpace(req.Subject)),
		Message: policy.Sanitize(req.Message),
	}

	if err := database.DB.Create(&message).Error; err != nil {
		return response.InternalError(c, "Failed to save message")
	}

	return response.Created(c, fiber.Map{
		"id": message.ID,
	}, "Message envoyé avec succès")
}

// ListContactMessagesHandler exposes submissions to the admin panel, newest
// first.
func ListContactMessagesHandler(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		return response.InternalError(c, "Failed to fetch messages")
	}
	return response.Success(c, messages, "Messages retrieved successfully")
}
