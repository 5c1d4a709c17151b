package server

import (
	"errors"
	"log"
	"time"

	"github.com/goccy/go-json"

	"github.com/zinan-c/empty-checker/apis/common"
	"github.com/zinan-c/empty-checker/internal/config"
	"github.com/zinan-c/empty-checker/internal/handlers"
	"github.com/zinan-c/empty-checker/internal/middleware"
	"github.com/zinan-c/empty-checker/internal/version"
	"github.com/zinan-c/empty-checker/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Server represents the HTTP server instance.
// It encapsulates the Fiber application and configuration for the
// Empty-Check Service.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the server configuration
	cfg *config.Config
}

// New creates and initializes a new Server instance with the provided
// configuration. It sets up the Fiber application with middleware and routes.
// The server will be ready to start after this function returns.
func New(cfg *config.Config) *Server {
	// Initialize logger first
	if err := logger.InitFromConfig(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Create Fiber app with faster JSON encoder
	app := fiber.New(fiber.Config{
		AppName:      "Empty-Check Service " + version.GetVersion(),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	// Middleware. The process-time wrapper goes first so the timing and
	// service headers cover the full handling span of every request.
	app.Use(middleware.ProcessTime())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Setup routes
	handlers.SetupRoutes(app)

	return &Server{
		app: app,
		cfg: cfg,
	}
}

// errorHandler renders every failed request as the standardized error
// envelope, preserving the original status code. HTTPError details pass
// through as structured documents; everything else is reported as a string.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var detail interface{} = err.Error()

	var httpErr *common.HTTPError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		detail = httpErr.Detail
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		detail = fiberErr.Message
	}

	return c.Status(code).JSON(common.ErrorEnvelope{
		Success: false,
		Error: common.ErrorDetail{
			Code:      code,
			Message:   detail,
			Timestamp: time.Now().Format(common.TimestampFormat),
		},
	})
}

// App returns the underlying Fiber application. It is used by tests to drive
// requests through the full middleware stack without binding a listener.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the HTTP server on the configured bind address and port.
// It blocks until the listener stops and returns an error if the server
// fails to start.
func (s *Server) Start() error {
	logger.Infof("Listening on %s:%s", s.cfg.Host, s.cfg.Port)
	return s.app.Listen(s.cfg.Host + ":" + s.cfg.Port)
}
