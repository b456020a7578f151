// Package resource provides an abstract process memory sampler so the
// prover's resource limits never reach into OS APIs directly.
package resource

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sampler reports current resident memory usage.
type Sampler interface {
	CurrentRSSBytes() (uint64, error)
}

// NopSampler always reports zero, used when max_memory_bytes is disabled
// (0) so the prover never pays for a sample it will not check.
type NopSampler struct{}

// CurrentRSSBytes always returns 0, nil.
func (NopSampler) CurrentRSSBytes() (uint64, error) { return 0, nil }

// ProcSampler reads VmRSS from /proc/self/status on Linux; on platforms
// without that file it falls back to runtime.MemStats.Sys as an
// approximation.
type ProcSampler struct{}

// CurrentRSSBytes returns the process's resident set size in bytes.
func (ProcSampler) CurrentRSSBytes() (uint64, error) {
	if runtime.GOOS != "linux" {
		return memStatsRSS(), nil
	}
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return memStatsRSS(), nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, errors.New("resource: malformed VmRSS line")
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, errors.Wrap(err, "resource: parse VmRSS")
		}
		return kb * 1024, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "resource: scan /proc/self/status")
	}
	return memStatsRSS(), nil
}

func memStatsRSS() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}
