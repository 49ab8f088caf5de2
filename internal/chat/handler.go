package chat

import (
	"errors"
	"strings"

	"github.com/ekralade/ministry-api/internal/response"
	"github.com/gofiber/fiber/v2"
)

// DefaultClient is wired at boot from the loaded config. Tests point it at an
// httptest server.
var DefaultClient *Client

type chatRequest struct {
	Message string    `json:"message"`
	Context []Message `json:"context"`
}

// maxContextTurns caps how much history a caller can replay per request.
const maxContextTurns = 20

// ChatHandler relays one visitor message. Validation happens before any
// upstream call; an empty message never reaches the relay.
func ChatHandler(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}

	if strings.TrimSpace(req.Message) == "" {
		return response.ValidationError(c, map[string]string{
			"message": "message is required",
		})
	}

	if DefaultClient == nil || DefaultClient.apiKey == "" {
		return response.InternalError(c, "AI chat is not configured")
	}

	context := req.Context
	if len(context) > maxContextTurns {
		context = context[len(context)-maxContextTurns:]
	}
	for _, turn := range context {
		if turn.Role != "user" && turn.Role != "assistant" {
			return response.ValidationError(c, map[string]string{
				"context": "roles must be user or assistant",
			})
		}
	}

	reply, err := DefaultClient.Complete(req.Message, context)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return response.BadGateway(c, "AI service returned an error")
		}
		return response.BadGateway(c, "AI service is unreachable")
	}

	return response.Success(c, fiber.Map{
		"response": reply,
	}, "Chat response generated")
}
