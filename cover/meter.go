package cover

import (
	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/rotblauer/ndstile/common"
	"log/slog"
	"time"
)

// scanMeter logs the progress of a scan every interval until stopped.
// A nil *scanMeter is valid and does nothing.
type scanMeter struct {
	level   int
	total   int64
	started time.Time
	ticker  *time.Ticker
	done    chan struct{}
	tested  metrics.Meter
	hits    metrics.Counter
}

func newScanMeter(interval time.Duration, level int, total int64) *scanMeter {
	if interval <= 0 {
		return nil
	}
	// Meters are no-ops unless the package is enabled.
	metrics.Enabled = true

	m := &scanMeter{
		level:   level,
		total:   total,
		started: time.Now(),
		ticker:  time.NewTicker(interval),
		done:    make(chan struct{}),
		tested:  metrics.NewMeter(),
		hits:    metrics.NewCounter(),
	}
	go m.run()
	return m
}

func (m *scanMeter) mark(tested, hits int64) {
	if m == nil {
		return
	}
	m.tested.Mark(tested)
	m.hits.Inc(hits)
}

func (m *scanMeter) run() {
	for {
		select {
		case <-m.ticker.C:
			m.log()
		case <-m.done:
			return
		}
	}
}

func (m *scanMeter) log() {
	snap := m.tested.Snapshot()
	slog.Info("Scanning candidates", "level", m.level,
		"tested", humanize.Comma(snap.Count()),
		"of", humanize.Comma(m.total),
		"tiles", humanize.Comma(m.hits.Snapshot().Count()),
		"tps", common.DecimalToFixed(snap.Rate1(), 0),
		"running", time.Since(m.started).Round(time.Second))
}

func (m *scanMeter) stop() {
	if m == nil {
		return
	}
	m.ticker.Stop()
	close(m.done)
	m.tested.Stop()
}
