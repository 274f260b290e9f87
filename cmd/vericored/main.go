// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Command vericored runs the comparison worker pipeline described in
// spec.md §4.6: a collector polls the platform for jobs, processors
// drain the shared queue, and a reporter periodically posts
// aggregated statistics back to the platform. Flag layout follows the
// teacher's checker command (flag, not a CLI framework).
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vericore/vericore/logx"
	"github.com/vericore/vericore/platform"
	"github.com/vericore/vericore/worker"
)

func main() {
	apiURL := flag.String("api-url", "", "base URL of the platform REST collaborator (required)")
	pollingInterval := flag.Duration("polling-interval", 5*time.Second, "collector's empty-poll sleep duration")
	reportInterval := flag.Duration("status-report-interval", time.Minute, "reporter's tick period")
	numProcessors := flag.Int("processors", 4, "number of concurrent processor goroutines")
	metricsAddr := flag.String("metrics-addr", ":9090", "address to serve Prometheus metrics on")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vericored: building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logx.New(logger)

	opts, err := worker.NewBuilder().
		WithAPIURL(*apiURL).
		WithPollingInterval(*pollingInterval).
		WithStatusReportInterval(*reportInterval).
		Build()
	if err != nil {
		log.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	stats, err := worker.NewStats(registry)
	if err != nil {
		log.Error("registering stats collectors", zap.Error(err))
		os.Exit(1)
	}

	client := platform.NewClient(opts.APIURL)
	resources := worker.NewResources(stats)
	pipeline := worker.NewPipeline(opts, resources, client, client, log)

	metricsServer := &http.Server{
		Addr:    *metricsAddr,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn("metrics server stopped", zap.Error(err))
		}
	}()

	log.Info("starting worker pipeline",
		zap.String("api_url", opts.APIURL),
		zap.Duration("polling_interval", opts.PollingInterval),
		zap.Duration("status_report_interval", opts.StatusReportInterval),
		zap.Int("processors", *numProcessors),
	)
	pipeline.Start(*numProcessors)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	pipeline.Stop()
	_ = metricsServer.Close()
}
