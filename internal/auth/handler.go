// Package auth guards the admin surface. There is one operator account,
// configured through the environment; a successful login hands out a
// short-lived JWT that the mutation routes require.
package auth

import (
	"crypto/subtle"

	"github.com/ekralade/ministry-api/internal/config"
	"github.com/ekralade/ministry-api/internal/response"
	"github.com/ekralade/ministry-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// Credentials are wired at boot from the loaded config.
var Credentials *config.Config

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler checks the operator credentials and issues an access token.
// Both failure modes return the same message so the response does not reveal
// which field was wrong.
func LoginHandler(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}

	if req.Username == "" || req.Password == "" {
		return response.ValidationError(c, map[string]string{
			"credentials": "username and password are required",
		})
	}

	if Credentials == nil || !credentialsMatch(req.Username, req.Password) {
		return response.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateAdminJWT(req.Username)
	if err != nil {
		return response.InternalError(c, "Failed to generate token")
	}

	return response.Success(c, fiber.Map{
		"token":    token,
		"username": req.Username,
	}, "Login successful")
}

func credentialsMatch(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(Credentials.AdminUsername)) != 1 {
		return false
	}

	if Credentials.AdminPasswordHash != "" {
		return utils.CheckPasswordHash(password, Credentials.AdminPasswordHash)
	}
	if Credentials.AdminPassword != "" {
		return subtle.ConstantTimeCompare([]byte(password), []byte(Credentials.AdminPassword)) == 1
	}
	return false
}
