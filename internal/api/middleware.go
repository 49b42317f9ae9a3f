// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"

	"ripwatch/internal/logger"
)

// RequestID tags every request with a short unique id, echoed in the
// X-Request-Id header and attached to the access log line.
func RequestID(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = shortuuid.New()
		}
		c.Header("X-Request-Id", id)

		start := time.Now()
		c.Next()

		log.Debug("%s %s -> %d in %s id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), id)
	}
}
