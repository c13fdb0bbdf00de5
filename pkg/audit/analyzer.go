// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd008-audit-interface R4 (analyzer), R5 (worker pool);
//
//	docs/ARCHITECTURE § Audit Interface.
package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/petar-djukic/include-audit/internal/analysis"
	"github.com/petar-djukic/include-audit/internal/frontend"
	"github.com/petar-djukic/include-audit/internal/record"
	"github.com/petar-djukic/include-audit/internal/report"
	"github.com/petar-djukic/include-audit/pkg/types"
)

const defaultWorkers = 4

// New validates the config and returns a ready-to-use Auditor.
func New(cfg Config) (Auditor, error) {
	for _, dir := range cfg.IncludeDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: include dir %q is not a directory", ErrInvalidConfig, dir)
		}
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: negative worker count", ErrInvalidConfig)
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}

	logger := log.New(io.Discard)
	if cfg.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	}
	return &analyzer{cfg: cfg, logger: logger}, nil
}

type analyzer struct {
	cfg    Config
	logger *log.Logger
}

// Run fans the units out over a bounded worker pool. Each unit gets an
// independent analysis context, so results are deterministic per unit
// regardless of scheduling; the result slice follows input order.
func (a *analyzer) Run(ctx context.Context, units []string) ([]*UnitResult, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: no units given", ErrInvalidConfig)
	}

	results := make([]*UnitResult, len(units))
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := a.cfg.Workers
	if workers > len(units) {
		workers = len(units)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = a.runUnit(ctx, units[i])
			}
		}()
	}
	for i := range units {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()
	return results, nil
}

// runUnit analyzes one translation unit end to end.
func (a *analyzer) runUnit(ctx context.Context, unit string) *UnitResult {
	res := &UnitResult{Unit: unit}

	u, err := frontend.Load(ctx, unit, frontend.Options{IncludeDirs: a.cfg.IncludeDirs})
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrLoadFailure, err)
		return res
	}
	a.logger.Debug("unit loaded", "unit", unit, "events", len(u.Events))

	policy := types.Policy{
		Construction: a.cfg.Construction,
		Members:      a.cfg.Members,
		Operators:    a.cfg.Operators,
	}
	actx := analysis.NewContext(u.Files, policy, a.cfg.AnalyzeStdlib)
	pp := record.NewPP(u.Macros, actx.Arena())
	for _, ev := range u.Events {
		pp.Record(ev)
	}

	out := actx.Run(u.Roots, pp)
	a.logger.Debug("unit analyzed", "unit", unit,
		"references", len(out.References), "unused", len(out.Unused))

	rep := report.New(u.Files)
	jr := rep.JSON(unit, out)
	for i, inc := range out.Unused {
		res.Unused = append(res.Unused, UnusedInclude{
			Line:      jr.Unused[i].Line,
			Directive: jr.Unused[i].Directive,
			Message:   rep.Unused(inc),
		})
	}
	if a.cfg.Satisfied {
		for i, ref := range jr.References {
			res.References = append(res.References, Provenance{
				Location:  ref.Location,
				Symbol:    ref.Symbol,
				Kind:      ref.Kind,
				Providers: ref.Providers,
				Satisfied: ref.Satisfied,
				Message:   rep.Reference(out.References[i]),
			})
		}
	}

	if a.cfg.Fix && len(out.Unused) > 0 {
		if err := report.Apply(unit, report.Removals(out.Unused)); err != nil {
			res.Err = err
			return res
		}
		res.Fixed = true
		a.logger.Debug("removals applied", "unit", unit, "count", len(out.Unused))
	}
	return res
}
