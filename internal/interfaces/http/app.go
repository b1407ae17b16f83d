package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name           string
	RequestTimeout time.Duration // 0 = sin límite
}

// NewApp construye la aplicación Fiber con el manejador central de errores
// y los middlewares comunes (log de peticiones, recover, timeout por petición).
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	app.Use(RequestTimeout(cfg.RequestTimeout))
	return app
}

// RequestLogger registra cada petición con su id, estado y latencia.
// Resuelve aquí el error del handler para que el estado registrado sea el final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, requestID)

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msgf("%s %s", c.Method(), c.Path())
		return nil
	}
}

// RequestTimeout acota el contexto que reciben los casos de uso (y con él las consultas a la BD).
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// parseBody decodifica el JSON del cuerpo; un cuerpo ilegible es entrada inválida.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.Invalidf("cuerpo inválido: %v", err)
	}
	return nil
}

// Pinger comprueba la conexión a la BD (pgxpool.Pool lo implementa).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler GET /health. Responde 503 si la BD no contesta.
func HealthHandler(service string, db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			if err := db.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_UNAVAILABLE", Message: "base de datos no disponible"})
			}
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Service: service})
	}
}
