// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var serverFlag string

	rootCmd := &cobra.Command{
		Use:           "ripwatch",
		Short:         "Query the rip pipeline observer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "http://127.0.0.1:8090", "Base URL of the ripwatchd API")

	rootCmd.AddCommand(newStatusCommand(&serverFlag))
	rootCmd.AddCommand(newReportCommand(&serverFlag))

	return rootCmd
}
