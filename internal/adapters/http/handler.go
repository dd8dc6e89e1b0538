package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RisingZenByte/tianji-api/internal/app"
)

const (
	serviceName          = "天机命理API"
	headerAnalysisSource = "X-Analysis-Source"
	ctxKeyLLMLatency     = "llm_latency_ms"
)

var errBadBody = errors.New("request body must be a JSON object")

type Handler struct {
	mingli  *app.MingliService
	almanac *app.AlmanacService
}

func NewHandler(mingli *app.MingliService, almanac *app.AlmanacService) *Handler {
	return &Handler{mingli: mingli, almanac: almanac}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.POST("/v1/analysis/mingli", h.Mingli)
	e.POST("/v1/analysis/liunian", h.Liunian)
	e.POST("/v1/daily/yiji", h.DailyYiJi)
	e.POST("/v1/daily/shichen", h.ShiChen)
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{Message: "🔮 " + serviceName, Status: "running"})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: serviceName})
}

// Mingli always answers 200; degraded results carry static content and are
// flagged only through the X-Analysis-Source header.
func (h *Handler) Mingli(c echo.Context) error {
	var req MingliRequest
	if err := decodeBody(c, &req); err != nil {
		return mapError(c, err)
	}

	res := h.mingli.Analyze(c.Request().Context(), req.pillars())
	if res.Source != app.SourceUnconfigured {
		c.Set(ctxKeyLLMLatency, res.LatencyMS)
	}

	c.Response().Header().Set(headerAnalysisSource, string(res.Source))
	return c.JSON(http.StatusOK, res.Analysis)
}

func (h *Handler) Liunian(c echo.Context) error {
	var req LiunianRequest
	if err := decodeBody(c, &req); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, h.almanac.Liunian(req.year()))
}

func (h *Handler) DailyYiJi(c echo.Context) error {
	var req DateRequest
	if err := decodeBody(c, &req); err != nil {
		return mapError(c, err)
	}

	day, err := h.almanac.DailyYiJi(c.Request().Context(), req.Date)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, day)
}

func (h *Handler) ShiChen(c echo.Context) error {
	var req DateRequest
	if err := decodeBody(c, &req); err != nil {
		return mapError(c, err)
	}

	day, err := h.almanac.ShiChen(c.Request().Context(), req.Date)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, ShiChenResponse{Date: day.Date, ShiChens: day.ShiChens})
}

// decodeBody reads a single JSON object regardless of Content-Type. An empty
// body leaves dst at its zero value so every field takes its documented
// default. Anything after the object is rejected.
func decodeBody(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", errBadBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", errBadBody)
	}
	return nil
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, errBadBody):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(c.Request().Context(), "internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
