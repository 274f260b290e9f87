// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package worker

import (
	"errors"
	"time"
)

// Sentinel validation failures for Builder.Build, grounded on the
// teacher's config package's package-level sentinel error style.
var (
	ErrMissingAPIURL          = errors.New("worker: api_url is required")
	ErrInvalidPollingInterval = errors.New("worker: polling_interval must be positive")
	ErrInvalidReportInterval  = errors.New("worker: status_report_interval must be positive")
)

// Options carries the three configuration keys of spec.md §6.
type Options struct {
	APIURL               string
	PollingInterval      time.Duration
	StatusReportInterval time.Duration
}

// Builder provides a fluent constructor for Options, grounded on the
// teacher's config.Builder, with sensible defaults and final
// validation on Build.
type Builder struct {
	opts Options
	err  error
}

// NewBuilder returns a Builder seeded with sensible defaults.
func NewBuilder() *Builder {
	return &Builder{
		opts: Options{
			PollingInterval:      5 * time.Second,
			StatusReportInterval: time.Minute,
		},
	}
}

// WithAPIURL sets the REST base URL for the job source and stats sink.
func (b *Builder) WithAPIURL(url string) *Builder {
	if b.err != nil {
		return b
	}
	if url == "" {
		b.err = ErrMissingAPIURL
		return b
	}
	b.opts.APIURL = url
	return b
}

// WithPollingInterval sets the collector's empty-poll sleep duration.
func (b *Builder) WithPollingInterval(d time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	if d <= 0 {
		b.err = ErrInvalidPollingInterval
		return b
	}
	b.opts.PollingInterval = d
	return b
}

// WithStatusReportInterval sets the reporter's tick period.
func (b *Builder) WithStatusReportInterval(d time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	if d <= 0 {
		b.err = ErrInvalidReportInterval
		return b
	}
	b.opts.StatusReportInterval = d
	return b
}

// Build returns the final Options, or the first validation error
// encountered by any With* call.
func (b *Builder) Build() (Options, error) {
	if b.err != nil {
		return Options{}, b.err
	}
	if b.opts.APIURL == "" {
		return Options{}, ErrMissingAPIURL
	}
	return b.opts, nil
}
