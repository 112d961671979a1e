package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"

	"github.com/daniilsolovey/content-admin/internal/content"
	"github.com/daniilsolovey/content-admin/internal/metrics"
)

const (
	apiPrefix = "/api"

	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/v1/rpc"

	// AdminHeader names the acting admin when token auth is disabled.
	AdminHeader = "X-Admin-User"
)

// Claims is the payload of an admin access token.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// RegisterRoutes builds the HTTP server. rpc, when not nil, is mounted
// at /v1/rpc.
func (h *Handler) RegisterRoutes(rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())

	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(metrics.Handler()))
	e.GET(swaggerPath, h.SwaggerDoc)

	if rpc != nil {
		e.Any(rpcPath, echo.WrapHandler(rpc), h.identify, h.requireAdmin)
	}

	api := e.Group(apiPrefix, h.identify)

	settings := api.Group("/settings")
	settings.GET("/site", h.Site)
	settings.PUT("/site", h.UpdateSite, h.requireAdmin)
	settings.GET("/payments", h.Gateways)
	settings.PUT("/payments/:id", h.UpdateGateway, h.requireAdmin)

	api.GET("/terms/:id/preview", h.TermPreview)

	api.GET("/:type", h.List)
	api.GET("/:type/summary", h.Summary)
	api.GET("/:type/meta", h.Meta)
	api.GET("/:type/:id", h.Get)
	api.POST("/:type", h.Create, h.requireAdmin)
	api.PUT("/:type/:id", h.Update, h.requireAdmin)
	api.DELETE("/:type/:id", h.Delete, h.requireAdmin)

	return e
}

// Health handles GET /health
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if h.ping != nil {
		if err := h.ping(c.Request().Context()); err != nil {
			h.log.Error("health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger doc is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

// identify resolves the acting admin. With a secret configured the name is
// taken from a verified bearer token, otherwise from the admin header.
func (h *Handler) identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.authSecret == nil {
			if name := strings.TrimSpace(c.Request().Header.Get(AdminHeader)); name != "" {
				setActor(c, name)
			}
			return next(c)
		}

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid token"})
		}

		name, err := h.parseToken(tokenString)
		if err != nil {
			h.log.Warn("invalid token", "error", err, "path", c.Path())
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
		}

		setActor(c, name)
		return next(c)
	}
}

// requireAdmin rejects anonymous requests when token auth is enabled.
func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := content.ActorFrom(c.Request().Context()); h.authSecret != nil && !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid token"})
		}
		return next(c)
	}
}

func (h *Handler) parseToken(tokenString string) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.authSecret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token is not valid")
	}

	if claims.Name != "" {
		return claims.Name, nil
	}
	if claims.Subject != "" {
		return claims.Subject, nil
	}

	return "", errors.New("token has no subject")
}

func setActor(c echo.Context, name string) {
	c.SetRequest(c.Request().WithContext(content.WithActor(c.Request().Context(), name)))
}

// actor returns the admin resolved by identify.
func actor(c echo.Context) string {
	if name, ok := content.ActorFrom(c.Request().Context()); ok {
		return name
	}
	return content.SystemActor
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}

			h.log.LogAttrs(c.Request().Context(), level, "HTTP request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
			)
			return nil
		},
	})
}
