// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ripwatch/internal/logger"
	"ripwatch/internal/status"
	"ripwatch/internal/sysinfo"
)

// Handler holds dependencies
type Handler struct {
	tracker *status.Tracker
	prober  sysinfo.Prober
	logger  logger.Logger
	started time.Time
}

// NewHandler creates API handler
func NewHandler(tracker *status.Tracker, prober sysinfo.Prober, log logger.Logger) *Handler {
	return &Handler{
		tracker: tracker,
		prober:  prober,
		logger:  log,
		started: time.Now(),
	}
}

func errResp(c *gin.Context, code int, msg, detail string) {
	c.JSON(code, ErrorResponse{Code: code, Message: msg, Detail: detail})
}

// GetStatus GET /api/v1/status
//
// The query operation: one full replay of the activity log per call.
// Automation may override the log path (`log`) and the reference clock
// (`now`, RFC3339) for deterministic results.
func (h *Handler) GetStatus(c *gin.Context) {
	opts, ok := queryOptions(c)
	if !ok {
		return
	}

	rec, err := h.tracker.Status(opts)
	if err != nil {
		if errors.Is(err, status.ErrPathNotAllowed) {
			errResp(c, http.StatusBadRequest, "Log path not allowed", err.Error())
			return
		}
		h.logger.Error("status query failed: %v", err)
		errResp(c, http.StatusBadGateway, "Activity log unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetReport GET /api/v1/report
func (h *Handler) GetReport(c *gin.Context) {
	opts, ok := queryOptions(c)
	if !ok {
		return
	}

	report, err := h.tracker.Report(opts)
	if err != nil {
		if errors.Is(err, status.ErrPathNotAllowed) {
			errResp(c, http.StatusBadRequest, "Log path not allowed", err.Error())
			return
		}
		h.logger.Error("report query failed: %v", err)
		errResp(c, http.StatusBadGateway, "Activity log unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSystem GET /api/v1/system
func (h *Handler) GetSystem(c *gin.Context) {
	c.JSON(http.StatusOK, h.prober.Probe())
}

// Health GET /api/v1/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	})
}

func queryOptions(c *gin.Context) (status.Options, bool) {
	opts := status.Options{LogPath: c.DefaultQuery("log", "")}
	if nowStr := c.DefaultQuery("now", ""); nowStr != "" {
		now, err := time.Parse(time.RFC3339, nowStr)
		if err != nil {
			errResp(c, http.StatusBadRequest, "Invalid now timestamp", err.Error())
			return status.Options{}, false
		}
		opts.Now = now
	}
	return opts, true
}
