// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ripwatch/internal/api"
	"ripwatch/internal/config"
	"ripwatch/internal/logger"
	"ripwatch/internal/riplog"
	"ripwatch/internal/status"
	"ripwatch/internal/sysinfo"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	bind := flag.String("bind", "", "Bind address (overrides config)")
	logPath := flag.String("log", "", "Pipeline activity log path (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Load config: %v", err)
		}
	}

	bindAddr := cfg.Server.Bind
	if *bind != "" {
		bindAddr = *bind
	}
	activityLog := cfg.Pipeline.LogPath
	if *logPath != "" {
		activityLog = *logPath
	}

	logger, err := logger.NewWithConfig("ripwatchd", logger.Config{
		Level:      cfg.Logging.Level,
		OutputPath: cfg.Logging.Path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		log.Fatalf("Logger init: %v", err)
	}

	validator, err := riplog.NewPathValidator(cfg.Pipeline.AllowPaths, cfg.Pipeline.BlockPaths)
	if err != nil {
		log.Fatalf("Path validator: %v", err)
	}

	tracker, err := status.New(status.Config{
		LogPath:   activityLog,
		TailLines: cfg.Report.TailLines,
		Validator: validator,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Tracker init: %v", err)
	}

	prober := sysinfo.NewProber(cfg.Pipeline.ProcessName)
	handler := api.NewHandler(tracker, prober, logger)

	r := gin.Default()
	r.Use(gin.Recovery(), cors.Default(), api.RequestID(logger))

	webDir := "web"
	indexPath := filepath.Join(webDir, "index.html")
	r.GET("/", func(c *gin.Context) { c.File(indexPath) })

	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", handler.GetStatus)
		v1.GET("/report", handler.GetReport)
		v1.GET("/system", handler.GetSystem)
		v1.GET("/health", handler.Health)
	}

	log.Printf("RipWatch listening on %s (Web UI: /), watching %s", bindAddr, activityLog)
	if err := r.Run(bindAddr); err != nil {
		log.Fatalf("Server: %v", err)
	}
}
