// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"ripwatch/internal/status"
)

func newReportCommand(server *string) *cobra.Command {
	var jsonFlag bool
	var logFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the tail of the pipeline activity log",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if logFlag != "" {
				query.Set("log", logFlag)
			}

			var report status.Report
			body, err := newClient(*server).getJSON("/api/v1/report", query, &report)
			if err != nil {
				return err
			}

			if jsonFlag {
				fmt.Println(string(body))
				return nil
			}

			fmt.Printf("%s (%d lines total, showing last %d)\n", report.Path, report.TotalLines, len(report.Lines))
			for _, line := range report.Lines {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the raw JSON response")
	cmd.Flags().StringVar(&logFlag, "log", "", "Override the activity log path")

	return cmd
}
