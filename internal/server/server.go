package server

import (
	"github.com/nishchayy07/ThaparRideShare/internal/auth"
	"github.com/nishchayy07/ThaparRideShare/internal/config"
	"github.com/nishchayy07/ThaparRideShare/internal/ride"
	"github.com/nishchayy07/ThaparRideShare/internal/stream"
	"github.com/nishchayy07/ThaparRideShare/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret, s.Cfg.AllowedDomain)
	rideSvc := ride.NewService(s.DB, s.Stream)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.Cfg.AllowedDomain, s.DB))
	ride.RegisterRoutes(s.App.Group("/rides"), rideSvc, jwtMiddleware)
	view.RegisterRoutes(s.App.Group("/board"), rideSvc, jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
