// Package bench times the enumeration strategies on one problem instance.
// The enumerator itself is a pure input-to-output transformation; the
// wall-clock measurement lives here, outside it.
package bench

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/boxkit/boxfinder/internal/engine"
	"github.com/boxkit/boxfinder/internal/model"
)

var log = logrus.WithField("module", "bench")

// Timing is the measured outcome of one strategy run.
type Timing struct {
	Strategy string
	Elapsed  time.Duration
	Boxes    int
}

// Report collects the timings of one benchmark run.
type Report struct {
	RunID      string
	InstanceID string
	Objective  model.Objective
	Timings    []Timing
}

// Options controls how a benchmark run executes.
type Options struct {
	// Parallel runs the strategies concurrently, each on its own copy of
	// the instance. Timings then overlap, which shortens the run but lets
	// the strategies contend for cores.
	Parallel bool
}

// Run times every strategy on the instance under its selected objective.
// Timings keep the strategy order of engine.Strategies. Each strategy
// appends into a buffer owned by this run; only the box count survives.
func Run(inst *model.Instance, opts Options) (*Report, error) {
	strategies := engine.Strategies()
	report := &Report{
		RunID:      uuid.New().String()[:8],
		InstanceID: inst.ID,
		Objective:  inst.Objective(),
		Timings:    make([]Timing, len(strategies)),
	}

	l := log.WithFields(logrus.Fields{
		"run":      report.RunID,
		"instance": inst.ID,
		"parallel": opts.Parallel,
	})
	l.Debug("benchmark starting")

	errs := make([]error, len(strategies))
	if opts.Parallel {
		var wg sync.WaitGroup
		for i, s := range strategies {
			wg.Add(1)
			go func(i int, s engine.Enumerator) {
				defer wg.Done()
				report.Timings[i], errs[i] = runOne(s, inst.Clone())
			}(i, s)
		}
		wg.Wait()
	} else {
		for i, s := range strategies {
			report.Timings[i], errs[i] = runOne(s, inst)
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for _, t := range report.Timings {
		l.WithFields(logrus.Fields{
			"strategy": t.Strategy,
			"elapsed":  t.Elapsed,
			"boxes":    t.Boxes,
		}).Debug("strategy finished")
	}
	return report, nil
}

func runOne(s engine.Enumerator, inst *model.Instance) (Timing, error) {
	out := make([]model.Box, 0)
	start := time.Now()
	err := s.AllRectangles(inst, inst.Objective(), &out)
	elapsed := time.Since(start)
	if err != nil {
		return Timing{}, fmt.Errorf("strategy %s: %w", s.Name(), err)
	}
	return Timing{Strategy: s.Name(), Elapsed: elapsed, Boxes: len(out)}, nil
}

// FormatLine renders the report as the harness output line: the elapsed
// times in seconds at 20 decimal places, space-separated, in strategy
// order.
func (r *Report) FormatLine() string {
	parts := make([]string, len(r.Timings))
	for i, t := range r.Timings {
		parts[i] = fmt.Sprintf("%.20f", t.Elapsed.Seconds())
	}
	return strings.Join(parts, " ")
}
