// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer
//
// Package sysinfo reports resource usage of the observed encoder process.
// The observer never controls the encoder; it only looks it up by name.

package sysinfo

import (
	gopsutilprocess "github.com/shirou/gopsutil/v3/process"
)

// Stats for the encoder process. Found is false when no process with the
// configured name is running.
type Stats struct {
	Found     bool    `json:"found"`
	PID       int32   `json:"pid"`
	Name      string  `json:"name"`
	CPU       float64 `json:"cpu_usage"`
	Memory    uint64  `json:"memory_bytes"`
	StartedAt int64   `json:"started_at_ms"`
}

// Prober locates the encoder process and samples its usage.
type Prober interface {
	Probe() Stats
}

type sysProber struct {
	name string
}

// NewProber creates a Prober for the given process name.
func NewProber(processName string) Prober {
	return &sysProber{name: processName}
}

func (p *sysProber) Probe() Stats {
	stats := Stats{Name: p.name}

	procs, err := gopsutilprocess.Processes()
	if err != nil {
		return stats
	}

	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil || name != p.name {
			continue
		}
		stats.Found = true
		stats.PID = proc.Pid
		if cpu, err := proc.CPUPercent(); err == nil {
			stats.CPU = cpu
		}
		if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
			stats.Memory = mem.RSS
		}
		if created, err := proc.CreateTime(); err == nil {
			stats.StartedAt = created
		}
		break
	}

	return stats
}

type nullProber struct{}

// NewNullProber returns a Prober that never finds the encoder.
func NewNullProber() Prober {
	return &nullProber{}
}

func (p *nullProber) Probe() Stats { return Stats{} }
