// Package stats surfaces the matching engine's §5 resource-model figures
// (peak working set, call timing) to a caller that wants instrumentation
// without forcing it into the engine's hot path. Grounded on the teacher's
// CaptureStats (domain/capture/metrics.go), a plain counters struct
// summarizing loop behavior for logging.
package stats

import (
	"time"

	"github.com/dustin/go-humanize"
)

// CallStats summarizes one matching call for instrumentation.
type CallStats struct {
	SourceWidth, SourceHeight     int
	TemplateWidth, TemplateHeight int
	Duration                      time.Duration
	MatchesFound                  int
}

// PeakWorkingSetBytes estimates the dominant allocation of a call per
// spec.md §5, all float64: two integral planes sized (W+1)*(H+1) each, the
// W*H source buffer, and the w*h template profile.
func (c CallStats) PeakWorkingSetBytes() uint64 {
	const wordSize = 8 // float64
	w, h := uint64(c.SourceWidth), uint64(c.SourceHeight)
	tw, th := uint64(c.TemplateWidth), uint64(c.TemplateHeight)
	integralPlane := (w + 1) * (h + 1) * wordSize
	source := w * h * wordSize
	template := tw * th * wordSize
	return 2*integralPlane + source + template
}

// String renders a human-readable one-line summary, the way a log line
// would report it: sizes in bytes, durations in a natural unit.
func (c CallStats) String() string {
	return humanize.Bytes(c.PeakWorkingSetBytes()) + " peak, " +
		c.Duration.String() + ", " +
		humanize.Comma(int64(c.MatchesFound)) + " match(es)"
}
