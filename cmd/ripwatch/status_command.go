// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"ripwatch/internal/status"
)

func newStatusCommand(server *string) *cobra.Command {
	var jsonFlag bool
	var logFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current pipeline status",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if logFlag != "" {
				query.Set("log", logFlag)
			}

			var rec status.Record
			body, err := newClient(*server).getJSON("/api/v1/status", query, &rec)
			if err != nil {
				return err
			}

			if jsonFlag {
				fmt.Println(string(body))
				return nil
			}

			fmt.Println(renderStatusTable(rec, shouldColorize(os.Stdout)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the raw JSON response")
	cmd.Flags().StringVar(&logFlag, "log", "", "Override the activity log path")

	return cmd
}

func renderStatusTable(rec status.Record, colorize bool) string {
	chapters := "?"
	if rec.NumChapters >= 0 {
		chapters = strconv.Itoa(rec.NumChapters)
	}
	eta := rec.ETA
	if eta == "" {
		eta = "-"
	}

	return renderTable(
		[]string{"Status", "Encode", "Started", "Ended", "Chapters", "ETA"},
		[][]string{{
			colorizePhase(rec.StatusText.String(), rec.Status, colorize),
			rec.CurrentEncode,
			rec.StartTime,
			rec.EndTime,
			chapters,
			eta,
		}},
	)
}
