package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tilerace/tilerace-server/internal/game"
	"github.com/tilerace/tilerace-server/internal/proto"
)

// RoomHandlers provides the REST surface over the session coordinator.
type RoomHandlers struct {
	coord *game.Coordinator
	log   *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(coord *game.Coordinator, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		coord: coord,
		log:   logger,
	}
}

// CreateRoomRequest represents the create room request body.
type CreateRoomRequest struct {
	Host proto.PlayerCandidate `json:"host"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListRooms returns the full snapshot mapping.
// GET /rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	snapshot, err := h.coord.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read snapshot")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetRoom returns a single room by code.
// GET /rooms/:code
func (h *RoomHandlers) GetRoom(c *gin.Context) {
	room, err := h.coord.GetRoom(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, game.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
			return
		}
		h.log.Error().Err(err).Str("room", c.Param("code")).Msg("failed to read room")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom creates a room hosted by the posted candidate.
// POST /rooms
func (h *RoomHandlers) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid create room request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid host"})
		return
	}

	room, err := h.coord.CreateRoom(c.Request.Context(), candidateFromProto(req.Host))
	if err != nil {
		if errors.Is(err, game.ErrInvalidPlayer) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid host"})
			return
		}
		if errors.Is(err, game.ErrRoomSpaceExhausted) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "no room codes available"})
			return
		}
		h.log.Error().Err(err).Msg("failed to create room")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	h.log.Info().Str("room", room.Code).Msg("room created over http")
	c.JSON(http.StatusCreated, room)
}
