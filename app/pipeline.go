package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"goeda/domain/dataset"
	"goeda/domain/report"
	"goeda/internal"
	"goeda/internal/errors"
	"goeda/ports"
)

// Stage names used in logs and error messages
const (
	StageLoad     = "load"
	StageOverview = "overview"
	StageClean    = "clean"
	StageCharts   = "charts"
	StageTests    = "tests"
)

// RunResult is what one pipeline run produced
type RunResult struct {
	Clean    CleanSummary
	Profiles []ColumnProfile
	Tests    TestReport
	Charts   []string
	Duration time.Duration
}

// Pipeline runs the exploratory analysis end to end: load, overview, clean,
// charts, hypothesis tests, then the remaining charts.
type Pipeline struct {
	reader   ports.TableReader
	charts   ports.ChartRenderer
	reporter *Reporter
	cleaner  *Cleaner
	profiler *Profiler
	tester   *StatisticalTester
	out      io.Writer
	logger   *internal.Logger
}

// NewPipeline wires a pipeline writing its report text to out
func NewPipeline(reader ports.TableReader, charts ports.ChartRenderer, out io.Writer, logger *internal.Logger) *Pipeline {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Pipeline{
		reader:   reader,
		charts:   charts,
		reporter: NewReporter(out),
		cleaner:  NewCleaner(logger),
		profiler: NewProfiler(logger),
		tester:   NewStatisticalTester(out, logger),
		out:      out,
		logger:   logger,
	}
}

// Run executes every stage in order. The first failure stops the run; the
// error names the stage it came from.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{}
	var table *dataset.Table

	stages := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{StageLoad, func(ctx context.Context) error {
			t, err := p.reader.Read(ctx)
			table = t
			return err
		}},
		{StageOverview, func(context.Context) error { return p.overview(table) }},
		{StageClean, func(context.Context) error {
			summary, err := p.cleaner.Clean(table)
			result.Clean = summary
			if err != nil {
				return err
			}
			result.Profiles = p.profiler.Profile(table)
			p.profiler.LogProfiles(result.Profiles)
			return nil
		}},
		{StageCharts, func(ctx context.Context) error {
			return p.renderCharts(ctx, table, report.ChartsBeforeTests, result)
		}},
		{StageTests, func(context.Context) error {
			tests, err := p.tester.Run(table)
			result.Tests = tests
			return err
		}},
		{StageCharts, func(ctx context.Context) error {
			return p.renderCharts(ctx, table, report.ChartsAfterTests, result)
		}},
	}

	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrapf(err, "%s stage cancelled", st.name)
		}
		stageStart := time.Now()
		if err := st.run(ctx); err != nil {
			p.logger.Error("stage %s failed: %v", st.name, err)
			return result, errors.Wrapf(err, "%s stage failed", st.name)
		}
		p.logger.Debug("stage %s finished in %s", st.name, time.Since(stageStart))
	}

	result.Duration = time.Since(start)
	p.logger.Info("analysis complete: %d charts written in %s", len(result.Charts), result.Duration)
	return result, nil
}

func (p *Pipeline) overview(t *dataset.Table) error {
	fmt.Fprintln(p.out, "First 5 rows of data:")
	if err := p.reporter.Head(t, HeadRows); err != nil {
		return err
	}
	fmt.Fprintln(p.out, "\nData info:")
	if err := p.reporter.Info(t); err != nil {
		return err
	}
	fmt.Fprintln(p.out, "\nMissing values per column:")
	return p.reporter.Missing(t)
}

func (p *Pipeline) renderCharts(ctx context.Context, t *dataset.Table, names []report.ChartName, result *RunResult) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		path, err := p.charts.Render(ctx, t, name)
		if err != nil {
			return errors.Wrapf(err, "render %s", name)
		}
		result.Charts = append(result.Charts, path)
	}
	return nil
}
