package server

import (
	"time"

	"github.com/ekralade/ministry-api/internal/auth"
	"github.com/ekralade/ministry-api/internal/catalog"
	"github.com/ekralade/ministry-api/internal/chat"
	"github.com/ekralade/ministry-api/internal/convert"
	"github.com/ekralade/ministry-api/internal/media"
	"github.com/ekralade/ministry-api/internal/player"
	"github.com/ekralade/ministry-api/internal/site"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Ministry API is running",
		})
	})

	// ==========================================
	// AUTH (single operator login)
	// ==========================================
	authGroup := app.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), auth.LoginHandler)

	// ==========================================
	// PUBLIC SITE CONTENT
	// ==========================================
	siteGroup := app.Group("/site")
	siteGroup.Get("/biography", site.GetBiographyHandler)
	siteGroup.Get("/faq", site.GetFAQHandler)
	siteGroup.Get("/links", site.GetLinksHandler)

	app.Post("/contact", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
	}), site.SubmitContactHandler)

	// ==========================================
	// PUBLIC CATALOG
	// ==========================================
	app.Get("/catalog/:kind", catalog.ListCatalogHandler)

	// ==========================================
	// AI CHAT RELAY (rate limited, the upstream bills per call)
	// ==========================================
	app.Post("/chat", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), chat.ChatHandler)

	// ==========================================
	// PLAYER SESSIONS (public, in-memory)
	// ==========================================
	playerGroup := app.Group("/player/sessions")
	playerGroup.Post("/", player.CreateSessionHandler)
	playerGroup.Get("/:id", player.GetSessionHandler)
	playerGroup.Delete("/:id", player.DeleteSessionHandler)
	playerGroup.Post("/:id/play", player.PlayHandler)
	playerGroup.Post("/:id/pause", player.PauseHandler)
	playerGroup.Post("/:id/next", player.NextHandler)
	playerGroup.Post("/:id/previous", player.PreviousHandler)
	playerGroup.Post("/:id/ended", player.EndedHandler)
	playerGroup.Post("/:id/seek", player.SeekHandler)
	playerGroup.Post("/:id/volume", player.VolumeHandler)

	// ==========================================
	// MEDIA LIBRARY (reads public, mutations admin only)
	// ==========================================
	mediaGroup := app.Group("/media")
	mediaGroup.Get("/", media.ListMediaHandler)
	mediaGroup.Get("/groups", media.ListGroupsHandler)
	mediaGroup.Get("/stats", auth.JWTProtected(), media.GetMediaStatsHandler)
	mediaGroup.Get("/:id", media.GetMediaHandler)

	mediaGroup.Post("/photos", auth.JWTProtected(), media.UploadPhotoHandler)
	mediaGroup.Post("/videos", auth.JWTProtected(), media.UploadVideoHandler)
	mediaGroup.Post("/audio", auth.JWTProtected(), media.UploadAudioHandler)
	mediaGroup.Delete("/:id", auth.JWTProtected(), media.DeleteMediaHandler)

	// ==========================================
	// ADMIN TOOLS
	// ==========================================
	app.Post("/convert/tiktok", auth.JWTProtected(), convert.TikTokToAudioHandler)
	app.Get("/contact/messages", auth.JWTProtected(), site.ListContactMessagesHandler)
}
