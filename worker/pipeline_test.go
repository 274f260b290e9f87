// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vericore/vericore/logx"
	"github.com/vericore/vericore/queue"
	"github.com/vericore/vericore/worker"
	"github.com/vericore/vericore/workertest"
)

// fakeJob is a minimal queue.Job used to observe whether the processor
// role actually drained and ran it.
type fakeJob struct {
	name      string
	processed int32
}

func (j *fakeJob) Describe() string { return j.name }

func (j *fakeJob) Process(any) bool {
	atomic.StoreInt32(&j.processed, 1)
	return true
}

func (j *fakeJob) wasProcessed() bool {
	return atomic.LoadInt32(&j.processed) == 1
}

func newTestOptions(t *testing.T) worker.Options {
	t.Helper()
	opts, err := worker.NewBuilder().
		WithAPIURL("http://example.invalid").
		WithPollingInterval(5 * time.Millisecond).
		WithStatusReportInterval(10 * time.Millisecond).
		Build()
	require.NoError(t, err)
	return opts
}

func TestPipelineCollectsProcessesAndReports(t *testing.T) {
	ctrl := gomock.NewController(t)

	job := &fakeJob{name: "job-1"}

	source := workertest.NewMockJobSource(ctrl)
	source.EXPECT().
		RetrieveJobs(gomock.Any()).
		Return([]queue.Job{job}, nil).
		MinTimes(1)

	sink := workertest.NewMockStatsSink(ctrl)
	sink.EXPECT().
		PostStats(gomock.Any(), gomock.Any()).
		Return(true, nil).
		MinTimes(1)

	stats, err := worker.NewStats(prometheus.NewRegistry())
	require.NoError(t, err)
	resources := worker.NewResources(stats)

	p := worker.NewPipeline(newTestOptions(t), resources, source, sink, logx.NewNop())
	p.Start(2)

	require.Eventually(t, job.wasProcessed, time.Second, time.Millisecond)

	zeroReport := (&worker.Stats{}).Report()
	require.Eventually(t, func() bool {
		return stats.Report() != zeroReport
	}, time.Second, time.Millisecond)

	p.Stop()
}

func TestPipelineStopReturnsAfterQueuedJobIsProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := workertest.NewMockJobSource(ctrl)
	source.EXPECT().
		RetrieveJobs(gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	sink := workertest.NewMockStatsSink(ctrl)
	sink.EXPECT().
		PostStats(gomock.Any(), gomock.Any()).
		Return(true, nil).
		AnyTimes()

	stats, err := worker.NewStats(prometheus.NewRegistry())
	require.NoError(t, err)
	resources := worker.NewResources(stats)

	p := worker.NewPipeline(newTestOptions(t), resources, source, sink, logx.NewNop())
	p.Start(1)

	job := &fakeJob{name: "queued-before-stop"}
	resources.Queue.Push(job)

	require.Eventually(t, job.wasProcessed, time.Second, time.Millisecond)

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return in time")
	}
}

func TestPipelineReporterSkipsPostWithoutActivity(t *testing.T) {
	ctrl := gomock.NewController(t)

	source := workertest.NewMockJobSource(ctrl)
	source.EXPECT().RetrieveJobs(gomock.Any()).Return(nil, nil).AnyTimes()

	var postCount int32
	sink := workertest.NewMockStatsSink(ctrl)
	sink.EXPECT().
		PostStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (bool, error) {
			atomic.AddInt32(&postCount, 1)
			return true, nil
		}).
		AnyTimes()

	stats, err := worker.NewStats(prometheus.NewRegistry())
	require.NoError(t, err)
	resources := worker.NewResources(stats)

	p := worker.NewPipeline(newTestOptions(t), resources, source, sink, logx.NewNop())
	p.Start(1)

	// With no jobs ever collected or processed, counts() stays at (0, 0)
	// and flush's short-circuit keeps the sink from ever being posted to.
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	require.Equal(t, int32(0), atomic.LoadInt32(&postCount))
}
