// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vericore/vericore/logx"
	"github.com/vericore/vericore/platform"
)

// Pipeline owns the three role loops and their lifecycle, grounded on
// the teacher's context/cancel/WaitGroup shutdown idiom
// (networking/handler/notifier.go) generalized from a single
// forwarding goroutine to collector/processor(s)/reporter.
type Pipeline struct {
	opts      Options
	resources *Resources
	source    platform.JobSource
	sink      platform.StatsSink
	log       logx.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPipeline constructs a Pipeline ready to Start.
func NewPipeline(opts Options, resources *Resources, source platform.JobSource, sink platform.StatsSink, log logx.Logger) *Pipeline {
	if log == nil {
		log = logx.NewNop()
	}
	return &Pipeline{opts: opts, resources: resources, source: source, sink: sink, log: log}
}

// Start launches the collector, numProcessors processors, and the
// reporter as goroutines sharing p.resources. Calling Start twice is
// undefined; Stop tears down everything Start launched.
func (p *Pipeline) Start(numProcessors int) {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.collect(ctx)
	}()

	for i := 0; i < numProcessors; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.process(ctx)
		}()
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.report(ctx)
	}()
}

// Stop signals shutdown (unblocking Queue.Pop and every ticker-driven
// loop), waits for every role to finish draining, and returns only
// after the reporter has performed its final flush.
func (p *Pipeline) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.resources.Queue.Stop()
	p.wg.Wait()
}

// collect implements the Collector role of spec.md §4.6, grounded on
// worker.cpp's collector loop.
func (p *Pipeline) collect(ctx context.Context) {
	ticker := time.NewTicker(p.opts.PollingInterval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return
		}

		p.log.Debug("polling for new comparison jobs")
		tic := time.Now()
		jobs, err := p.source.RetrieveJobs(ctx)
		if err != nil {
			p.log.Warn("failed to retrieve jobs", zap.Error(err))
			if !sleepOrDone(ctx, ticker) {
				return
			}
			continue
		}

		if len(jobs) == 0 {
			if !sleepOrDone(ctx, ticker) {
				return
			}
			continue
		}

		dur := time.Since(tic)
		p.log.Info("received comparison jobs", zap.Int("count", len(jobs)))
		p.resources.Stats.UpdateCollectorStats(dur, len(jobs))

		for _, job := range jobs {
			p.resources.Queue.Push(job)
		}
	}
}

// process implements the Processor role of spec.md §4.6. Any number
// of processors may run this loop concurrently; each job is popped by
// exactly one of them.
func (p *Pipeline) process(ctx context.Context) {
	for {
		job, err := p.resources.Queue.Pop()
		if err != nil { // queue.ErrStopped
			return
		}

		desc := job.Describe()
		p.log.Debug("processing", zap.String("job", desc))
		tic := time.Now()

		if !job.Process(p.opts) {
			p.log.Error("failed to process job", zap.String("job", desc))
			continue
		}

		dur := time.Since(tic)
		p.log.Info("processed", zap.String("job", desc), zap.Duration("took", dur))
		p.resources.Stats.UpdateProcessorStats(dur)
	}
}

// report implements the Reporter role of spec.md §4.6, including the
// idempotent-suppression rule of spec.md §9.
func (p *Pipeline) report(ctx context.Context) {
	ticker := time.NewTicker(p.opts.StatusReportInterval)
	defer ticker.Stop()

	previous := ""
	for {
		select {
		case <-ctx.Done():
			p.flush(ctx, &previous)
			return
		case <-ticker.C:
			p.flush(ctx, &previous)
		}
	}
}

func (p *Pipeline) flush(ctx context.Context, previous *string) {
	report := p.resources.Stats.Report()
	if report == *previous {
		return
	}
	p.log.Info(report)
	*previous = report

	collect, process := p.resources.Stats.counts()
	if collect == 0 || process == 0 {
		return
	}

	ok, err := p.sink.PostStats(ctx, report)
	if err != nil {
		p.log.Warn("failed to report statistics", zap.Error(err))
		return
	}
	if !ok {
		p.log.Warn("stats endpoint rejected report")
		return
	}
	p.resources.Stats.Reset()
}

// sleepOrDone waits for the next tick or context cancellation,
// returning false if the caller should exit.
func sleepOrDone(ctx context.Context, ticker *time.Ticker) bool {
	select {
	case <-ctx.Done():
		return false
	case <-ticker.C:
		return true
	}
}
