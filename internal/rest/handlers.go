package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/content-admin/internal/content"
	"github.com/daniilsolovey/content-admin/internal/settings"
)

// SessionHeader identifies a client listing session for last-request-wins
// ordering.
const SessionHeader = "X-Listing-Session"

type Handler struct {
	engine   *content.Engine
	sessions *content.Sessions
	coord    *content.Coordinator
	settings *settings.Service
	log      *slog.Logger

	authSecret []byte
	ping       func(ctx context.Context) error
}

func NewHandler(engine *content.Engine, sessions *content.Sessions, coord *content.Coordinator, settingsSvc *settings.Service, log *slog.Logger) *Handler {
	return &Handler{
		engine:   engine,
		sessions: sessions,
		coord:    coord,
		settings: settingsSvc,
		log:      log,
	}
}

// WithAuthSecret enables bearer token verification with an HMAC secret.
func (h *Handler) WithAuthSecret(secret string) *Handler {
	if secret != "" {
		h.authSecret = []byte(secret)
	}
	return h
}

// WithHealthCheck makes /health report the result of ping.
func (h *Handler) WithHealthCheck(ping func(ctx context.Context) error) *Handler {
	h.ping = ping
	return h
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message, "path", c.Path())
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// respondError maps domain errors onto HTTP status codes.
func (h *Handler) respondError(c echo.Context, err error) error {
	var (
		verr *content.ValidationError
		rerr *content.RepositoryError
	)

	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, content.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, content.ErrSuperseded), errors.Is(err, content.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, content.ErrTimeout):
		return h.handleError(c, err, http.StatusGatewayTimeout, "repository timed out")
	case errors.As(err, &rerr):
		return h.handleError(c, err, http.StatusBadGateway, "repository unavailable")
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) contentType(c echo.Context) (content.Type, error) {
	t, err := content.ParseType(c.Param("type"))
	if err != nil {
		return "", c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}
	return t, nil
}

// List handles GET /api/:type
// @Summary List content
// @Description Returns one page of banners, FAQs, notices or terms with their effective status. Page is zero-based.
// @Tags content
// @Produce json
// @Param type path string true "Content type" Enums(banners, faqs, notices, terms)
// @Param page query int false "Zero-based page (default: 0)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param search query string false "Case-insensitive search text"
// @Param status query string false "Stored status"
// @Param effectiveStatus query string false "Effective status (banners, notices)"
// @Param category query string false "Category (faqs, notices, terms)"
// @Param type query string false "Banner type"
// @Param position query string false "Banner position"
// @Param popular query bool false "Popular FAQs only"
// @Param important query bool false "Important notices only"
// @Param required query bool false "Required terms only"
// @Param version query string false "Term version"
// @Param X-Listing-Session header string false "Listing session id; older requests of the session are superseded"
// @Success 200 {object} rest.ListResponse
// @Failure 400,404,409,422,502,504 {object} rest.ErrorResponse
// @Router /api/{type} [get]
func (h *Handler) List(c echo.Context) error {
	t, err := h.contentType(c)
	if t == "" {
		return err
	}

	var req ListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	params := content.ListParams{
		Type:     t,
		Search:   req.Search,
		Filters:  req.Filters(),
		Page:     req.Page,
		PageSize: req.Limit,
	}

	page, err := h.sessions.List(c.Request().Context(), c.Request().Header.Get(SessionHeader), params)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewListResponse(page))
}

// Summary handles GET /api/:type/summary
// @Summary Status summary
// @Description Counts every item of a content type by effective status
// @Tags content
// @Produce json
// @Param type path string true "Content type" Enums(banners, faqs, notices, terms)
// @Success 200 {object} rest.Summary
// @Failure 404,502,504 {object} rest.ErrorResponse
// @Router /api/{type}/summary [get]
func (h *Handler) Summary(c echo.Context) error {
	t, err := h.contentType(c)
	if t == "" {
		return err
	}

	sum, err := h.engine.Summary(c.Request().Context(), t)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewSummary(sum))
}

// Meta handles GET /api/:type/meta
// @Summary Content type metadata
// @Description Status vocabulary, category and banner labels, and filterable fields of a content type
// @Tags content
// @Produce json
// @Param type path string true "Content type" Enums(banners, faqs, notices, terms)
// @Success 200 {object} rest.Meta
// @Failure 404 {object} rest.ErrorResponse
// @Router /api/{type}/meta [get]
func (h *Handler) Meta(c echo.Context) error {
	t, err := h.contentType(c)
	if t == "" {
		return err
	}

	return c.JSON(http.StatusOK, NewMeta(content.Describe(t)))
}

// Get handles GET /api/:type/:id
// @Summary Get content
// @Tags content
// @Produce json
// @Param type path string true "Content type" Enums(banners, faqs, notices, terms)
// @Param id path string true "Content ID"
// @Success 200 {object} rest.Content
// @Failure 404,502,504 {object} rest.ErrorResponse
// @Router /api/{type}/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	t, err := h.contentType(c)
	if t == "" {
		return err
	}

	item, err := h.engine.Get(c.Request().Context(), t, c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewContent(item))
}

// Create handles POST /api/:type
// @Summary Create content
// @Description Validates and stores a new item. A missing status defaults to draft; createdBy is the authenticated admin.
// @Tags content
// @Accept json
// @Produce json
// @Param type path string true "Content type" Enums(banners, faqs, notices, terms)
// @Param body body rest.ContentInput true "New item"
// @Success 201 {object} rest.Content
// @Failure 400,401,404,422,502,504 {object} rest.ErrorResponse
// @Router /api/{type} [post]
func (h *Handler) Create(c echo.Context) error {
	t, err := h.contentType(c)
	if t == "" {
		return err
	}

	var in ContentInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	created, err := h.coord.Create(c.Request().Context(), t, actor(c), in.Fields())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, NewContent(h.listed(c, created)))
}

// Update handles PUT /api/:type/:id
// @Summary Update content
// @Description Applies the supplied fields to an existing item and validates the result
// @Tags content
// @Accept json
// @Produce json
// @Param type path string true "Content type" Enums(banners, faqs, notices, terms)
// @Param id path string true "Content ID"
// @Param body body rest.ContentInput true "Changed fields"
// @Success 200 {object} rest.Content
// @Failure 400,401,404,422,502,504 {object} rest.ErrorResponse
// @Router /api/{type}/{id} [put]
func (h *Handler) Update(c echo.Context) error {
	t, err := h.contentType(c)
	if t == "" {
		return err
	}

	var in ContentInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.coord.Update(c.Request().Context(), t, c.Param("id"), in.Fields())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewContent(h.listed(c, updated)))
}

// Delete handles DELETE /api/:type/:id
// @Summary Delete content
// @Tags content
// @Param type path string true "Content type" Enums(banners, faqs, notices, terms)
// @Param id path string true "Content ID"
// @Success 204
// @Failure 401,404,502,504 {object} rest.ErrorResponse
// @Router /api/{type}/{id} [delete]
func (h *Handler) Delete(c echo.Context) error {
	t, err := h.contentType(c)
	if t == "" {
		return err
	}

	if err := h.coord.Delete(c.Request().Context(), t, c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TermPreview handles GET /api/terms/:id/preview
// @Summary Preview a term document
// @Description Renders the plain-text term content to HTML
// @Tags content
// @Produce json
// @Param id path string true "Term ID"
// @Success 200 {object} rest.TermPreview
// @Failure 404,502,504 {object} rest.ErrorResponse
// @Router /api/terms/{id}/preview [get]
func (h *Handler) TermPreview(c echo.Context) error {
	term, err := h.engine.Get(c.Request().Context(), content.TypeTerm, c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	html, err := content.RenderTerm(term.Content)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to render term")
	}

	return c.JSON(http.StatusOK, TermPreview{
		ID:      term.ID,
		Title:   term.Title,
		Version: term.Version,
		HTML:    html,
	})
}

// Site handles GET /api/settings/site
// @Summary Site settings
// @Tags settings
// @Produce json
// @Success 200 {object} rest.Site
// @Failure 502 {object} rest.ErrorResponse
// @Router /api/settings/site [get]
func (h *Handler) Site(c echo.Context) error {
	site, err := h.settings.Site(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewSite(site))
}

// UpdateSite handles PUT /api/settings/site
// @Summary Update site settings
// @Tags settings
// @Accept json
// @Produce json
// @Param body body rest.SiteInput true "Changed fields"
// @Success 200 {object} rest.Site
// @Failure 400,401,422,502 {object} rest.ErrorResponse
// @Router /api/settings/site [put]
func (h *Handler) UpdateSite(c echo.Context) error {
	var in SiteInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	site, err := h.settings.UpdateSite(c.Request().Context(), in.Patch())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewSite(site))
}

// Gateways handles GET /api/settings/payments
// @Summary Payment gateways
// @Description Lists every payment gateway. API keys are masked.
// @Tags settings
// @Produce json
// @Success 200 {array} rest.Gateway
// @Failure 502 {object} rest.ErrorResponse
// @Router /api/settings/payments [get]
func (h *Handler) Gateways(c echo.Context) error {
	gateways, err := h.settings.Gateways(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, Map(gateways, NewGateway))
}

// UpdateGateway handles PUT /api/settings/payments/:id
// @Summary Update a payment gateway
// @Description An enabled gateway needs a merchant id and an API key
// @Tags settings
// @Accept json
// @Produce json
// @Param id path string true "Gateway ID" Enums(card, kakaopay, naverpay, tosspay)
// @Param body body rest.GatewayInput true "Changed fields"
// @Success 200 {object} rest.Gateway
// @Failure 400,401,404,422,502 {object} rest.ErrorResponse
// @Router /api/settings/payments/{id} [put]
func (h *Handler) UpdateGateway(c echo.Context) error {
	var in GatewayInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	g, err := h.settings.UpdateGateway(c.Request().Context(), c.Param("id"), in.Patch())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewGateway(g))
}

// listed resolves the effective status of a freshly written item.
func (h *Handler) listed(c echo.Context, it content.Item) content.Listed {
	got, err := h.engine.Get(c.Request().Context(), it.Type, it.ID)
	if err != nil {
		h.log.Warn("re-read after write failed", "type", it.Type, "id", it.ID, "error", err)
		return content.Listed{Item: it, Effective: it.Status}
	}
	return got
}
