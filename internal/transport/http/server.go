package http

import (
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tilerace/tilerace-server/internal/config"
	"github.com/tilerace/tilerace-server/internal/game"
)

// NewServer builds the HTTP server: REST room endpoints, the realtime
// websocket channel and a health probe. CORS is wide open because the
// game client is served from a different origin.
func NewServer(coord *game.Coordinator, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	rooms := NewRoomHandlers(coord, logger)
	router.GET("/health", healthHandler)
	router.GET("/rooms", rooms.ListRooms)
	router.GET("/rooms/:code", rooms.GetRoom)
	router.POST("/rooms", rooms.CreateRoom)
	router.GET("/ws", gin.WrapH(NewWSHandler(coord, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	_, _ = fmt.Fprint(c.Writer, "ok")
}
