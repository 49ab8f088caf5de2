package player

import (
	"errors"

	"github.com/ekralade/ministry-api/internal/catalog"
	"github.com/ekralade/ministry-api/internal/models"
	"github.com/ekralade/ministry-api/internal/response"
	"github.com/gofiber/fiber/v2"
)

// DefaultManager backs the HTTP layer. Tests swap it for an isolated one.
var DefaultManager = NewManager()

type createSessionRequest struct {
	Category string `json:"category"`
}

type commandRequest struct {
	Token uint64 `json:"token"`
}

type seekRequest struct {
	Position float64 `json:"position"`
	Token    uint64  `json:"token"`
}

type volumeRequest struct {
	Volume float64 `json:"volume"`
}

// CreateSessionHandler builds a playlist from the audio catalog (optionally
// narrowed to one category) and opens a session over it.
func CreateSessionHandler(c *fiber.Ctx) error {
	var req createSessionRequest
	_ = c.BodyParser(&req)

	items, err := catalog.Load(models.MediaTypeAudio)
	if err != nil {
		return response.InternalError(c, "Failed to build playlist")
	}
	items = catalog.Filter(items, req.Category)

	playlist := make([]Track, 0, len(items))
	for _, item := range items {
		playlist = append(playlist, Track{
			ID:          item.ID,
			Title:       item.Title,
			Category:    item.Category,
			FileURL:     item.FileURL,
			ExternalURL: item.ExternalURL,
			Duration:    item.Duration,
		})
	}

	if len(playlist) == 0 {
		return response.BadRequest(c, "No audio tracks available", fiber.Map{
			"category": req.Category,
		})
	}

	session := DefaultManager.Create(playlist)
	return response.Created(c, session.State(), "Player session created")
}

func GetSessionHandler(c *fiber.Ctx) error {
	session, ok := DefaultManager.Get(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Player session")
	}
	return response.Success(c, session.State(), "Player state retrieved")
}

func DeleteSessionHandler(c *fiber.Ctx) error {
	if _, ok := DefaultManager.Get(c.Params("id")); !ok {
		return response.NotFound(c, "Player session")
	}
	DefaultManager.Delete(c.Params("id"))
	return c.Status(fiber.StatusNoContent).Send(nil)
}

func PlayHandler(c *fiber.Ctx) error {
	return command(c, func(s *Session, token uint64) error {
		return s.Play(token)
	})
}

func PauseHandler(c *fiber.Ctx) error {
	return command(c, func(s *Session, token uint64) error {
		return s.Pause(token)
	})
}

func NextHandler(c *fiber.Ctx) error {
	return command(c, func(s *Session, token uint64) error {
		return s.Next(token)
	})
}

func PreviousHandler(c *fiber.Ctx) error {
	return command(c, func(s *Session, token uint64) error {
		return s.Previous(token)
	})
}

// EndedHandler is posted by the client when a track ran to its natural end.
func EndedHandler(c *fiber.Ctx) error {
	return command(c, func(s *Session, token uint64) error {
		return s.Ended(token)
	})
}

func SeekHandler(c *fiber.Ctx) error {
	session, ok := DefaultManager.Get(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Player session")
	}

	var req seekRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}

	if err := session.Seek(req.Position, req.Token); err != nil {
		return commandError(c, session, err)
	}
	return response.Success(c, session.State(), "Player state updated")
}

func VolumeHandler(c *fiber.Ctx) error {
	session, ok := DefaultManager.Get(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Player session")
	}

	var req volumeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}

	session.SetVolume(req.Volume)
	return response.Success(c, session.State(), "Player state updated")
}

func command(c *fiber.Ctx, apply func(*Session, uint64) error) error {
	session, ok := DefaultManager.Get(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Player session")
	}

	var req commandRequest
	_ = c.BodyParser(&req)

	if err := apply(session, req.Token); err != nil {
		return commandError(c, session, err)
	}
	return response.Success(c, session.State(), "Player state updated")
}

// commandError maps state machine errors. A stale token is not a failure:
// the command was simply superseded, so the caller gets the current state.
func commandError(c *fiber.Ctx, session *Session, err error) error {
	if errors.Is(err, ErrStaleToken) {
		return response.Success(c, session.State(), "Command superseded by a newer load")
	}
	if errors.Is(err, ErrEmptyPlaylist) {
		return response.BadRequest(c, "Playlist is empty", nil)
	}
	return response.InternalError(c, "Player command failed")
}
