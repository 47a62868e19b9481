package knobs

import (
	"fmt"
	"os"
	"time"
)

// passStats holds per-pass timing and table metrics.
// Only logged when Panel.debug is true.
type passStats struct {
	buildTime      time.Duration
	deriveTime     time.Duration
	overlayTime    time.Duration
	siteCount      int
	collisionCount int
}

// SetDebugMode enables or disables debug mode. When enabled, per-pass timing
// stats are logged to stderr, and key collisions are reported.
func (p *Panel) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// debugLog prints pass stats to stderr.
func (p *Panel) debugLog(stats passStats) {
	if !p.debug {
		return
	}
	total := stats.buildTime + stats.deriveTime + stats.overlayTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[knobs] pass %d | build: %v | derive: %v | overlay: %v | total: %v | sites: %d\n",
		p.pass, stats.buildTime, stats.deriveTime, stats.overlayTime, total, stats.siteCount)
	if stats.collisionCount > 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[knobs] warning: %d key collision(s) this pass, two annotations share a SiteKey\n",
			stats.collisionCount)
	}
}
