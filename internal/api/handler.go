package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gitfolio/gitfolio/internal/adapters"
	"github.com/gitfolio/gitfolio/internal/analysis"
	apperrors "github.com/gitfolio/gitfolio/internal/errors"
	"github.com/gitfolio/gitfolio/internal/types"
)

// Collector materializes a profile dataset for a username.
type Collector interface {
	FetchProfile(ctx context.Context, username string) (*types.ProfileDataset, error)
}

// AnalyzeResponse is the payload returned for a successful analysis.
type AnalyzeResponse struct {
	Account    types.Account   `json:"account"`
	Analysis   analysis.Result `json:"analysis"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}

// Handler serves the analysis endpoints.
type Handler struct {
	collector Collector
	analyzer  *analysis.Analyzer
	logger    *logrus.Logger
	timeout   time.Duration
}

// NewHandler creates a Handler.
func NewHandler(collector Collector, analyzer *analysis.Analyzer, logger *logrus.Logger, timeout time.Duration) *Handler {
	return &Handler{
		collector: collector,
		analyzer:  analyzer,
		logger:    logger,
		timeout:   timeout,
	}
}

// Analyze collects and scores the profile named in the path. The path
// parameter accepts a bare username or a full github.com profile URL.
func (h *Handler) Analyze(c *gin.Context) {
	username, err := adapters.ParseUsername(c.Param("username"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	dataset, err := h.collector.FetchProfile(ctx, username)
	if err != nil {
		h.logger.WithError(err).WithField("username", username).Error("profile collection failed")
		h.respondError(c, err)
		return
	}

	result := h.analyzer.Analyze(*dataset)

	c.JSON(http.StatusOK, AnalyzeResponse{
		Account:    dataset.Account,
		Analysis:   result,
		AnalyzedAt: h.analyzer.Now(),
	})
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := apperrors.ToAppError(err)
	c.JSON(appErr.HTTPStatus, gin.H{
		"error":    appErr.Error(),
		"category": appErr.Category,
	})
}
