// Package sysmon samples system-wide CPU and memory usage for the dashboard.
// Brute-force searches saturate every core; the samples make that visible.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds one snapshot of system-wide resource usage. Percentages are
// in the range 0..100.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// String renders the snapshot as a compact status line.
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%% MEM %.1f%%", s.CPUPercent, s.MemPercent)
}

// Sample collects a system-wide CPU and memory snapshot. The CPU reading is
// the usage since the previous call (gopsutil interval=0), so the first
// sample of a process reports 0. Sampling errors degrade to zero values.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
	}
	return s
}
