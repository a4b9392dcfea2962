// Package api exposes the directory, assistant and intake over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	errx "github.com/community-support-hub/server/internal/core/error"
	"github.com/community-support-hub/server/internal/hub/directory"
	"github.com/community-support-hub/server/internal/hub/graph"
	"github.com/community-support-hub/server/internal/hub/guide"
	"github.com/community-support-hub/server/internal/hub/metrics"
	"github.com/community-support-hub/server/internal/hub/model"
	logx "github.com/community-support-hub/server/pkg/logger"
)

// Catalog is the read side of the resource catalog.
type Catalog interface {
	Records() []model.Resource
}

// Intake submits help requests.
type Intake interface {
	Submit(ctx context.Context, req model.HelpRequest) (model.Receipt, error)
}

type Handler struct {
	catalog Catalog
	runner  graph.Runner
	intake  Intake
}

func NewHandler(catalog Catalog, runner graph.Runner, intake Intake) *Handler {
	return &Handler{catalog: catalog, runner: runner, intake: intake}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.handleHealth)
	api.GET("/resources", h.handleResources)
	api.GET("/filters", h.handleFilters)
	api.POST("/conversations", h.handleOpenConversation)
	api.GET("/conversations/:id", h.handleTranscript)
	api.DELETE("/conversations/:id", h.handleCloseConversation)
	api.POST("/conversations/:id/options", h.handleOption)
	api.POST("/conversations/:id/messages", h.handleMessage)
	api.POST("/requests", h.handleSubmitRequest)
	api.GET("/requests/options", h.handleRequestOptions)
	api.GET("/safety-guide", h.handleSafetyGuide)
}

type optionBody struct {
	Option string `json:"option"`
}

type messageBody struct {
	Text string `json:"text"`
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "resources": len(h.catalog.Records())})
}

func (h *Handler) handleResources(c echo.Context) error {
	metrics.DirectoryQueries.Inc()
	category := c.QueryParam("category")
	if category == "" {
		category = model.CategoryAll
	}
	data := directory.Filter(h.catalog.Records(), category, c.QueryParam("q"))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data, "count": len(data)})
}

func (h *Handler) handleFilters(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": model.FilterOptions})
}

func (h *Handler) handleOpenConversation(c echo.Context) error {
	res, err := h.runner.Open(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) handleTranscript(c echo.Context) error {
	res, err := h.runner.Transcript(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// handleCloseConversation lets a visitor erase their chat before leaving.
func (h *Handler) handleCloseConversation(c echo.Context) error {
	if err := h.runner.Close(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) handleOption(c echo.Context) error {
	var body optionBody
	if err := c.Bind(&body); err != nil {
		return h.fail(c, errx.InvalidInput(err, "option"))
	}
	action, ok := model.ParseQuickReply(body.Option)
	if !ok {
		return h.fail(c, errx.InvalidInput(fmt.Errorf("unknown option %q", body.Option), "option"))
	}
	return h.turn(c, action)
}

func (h *Handler) handleMessage(c echo.Context) error {
	var body messageBody
	if err := c.Bind(&body); err != nil {
		return h.fail(c, errx.InvalidInput(err, "text"))
	}
	return h.turn(c, model.FreeText{Text: body.Text})
}

func (h *Handler) turn(c echo.Context, action model.ChatAction) error {
	res, err := h.runner.Invoke(c.Request().Context(), model.TurnInput{
		ConversationID: c.Param("id"),
		Action:         action,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) handleSubmitRequest(c echo.Context) error {
	var req model.HelpRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, errx.InvalidInput(err))
	}
	receipt, err := h.intake.Submit(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": receipt})
}

func (h *Handler) handleRequestOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": guide.RequestForm()})
}

func (h *Handler) handleSafetyGuide(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": guide.Safety()})
}

// fail writes the errx envelope. Only the safe message leaves the process.
func (h *Handler) fail(c echo.Context, err error) error {
	status := errx.StatusOf(err)
	body := echo.Map{"success": false, "error": errx.MessageOf(err)}

	var appErr *errx.AppError
	if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.Path()).Int("status", status).Msg("request failed")
	}
	return c.JSON(status, body)
}
