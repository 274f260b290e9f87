// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package platform defines the external REST collaborator the worker
// pipeline polls and reports to (spec.md §6). The interfaces are the
// contract; the default implementation is a thin net/http client since
// this collaborator is explicitly out of scope for the core (spec.md
// §1) and carries no domain logic worth a richer client stack (see
// DESIGN.md).
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vericore/vericore/queue"
)

// comparisonJob is the wire shape of one entry in retrieve_jobs's
// response: an identifier plus the URLs/paths of the two artifacts to
// compare (spec.md §6).
type comparisonJob struct {
	ID       string `json:"id"`
	SrcPath  string `json:"src_path"`
	DstPath  string `json:"dst_path"`
}

// Describe satisfies queue.Job.
func (j *comparisonJob) Describe() string { return j.ID }

// Process satisfies queue.Job. The core's job model (spec.md §4.5)
// leaves comparison execution to the surrounding application; this
// default implementation always reports success so the pipeline has a
// runnable job type to exercise end-to-end, and real deployments
// register their own queue.Job implementation instead.
func (j *comparisonJob) Process(any) bool { return true }

// JobSource retrieves a batch of jobs from the REST collaborator.
type JobSource interface {
	RetrieveJobs(ctx context.Context) ([]queue.Job, error)
}

// StatsSink posts a rendered stats report to the REST collaborator.
type StatsSink interface {
	PostStats(ctx context.Context, report string) (bool, error)
}

// Client is a minimal net/http-backed JobSource and StatsSink.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client with a sane request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// RetrieveJobs implements JobSource via GET {base}/jobs.
func (c *Client) RetrieveJobs(ctx context.Context) ([]queue.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/jobs", nil)
	if err != nil {
		return nil, fmt.Errorf("platform: building jobs request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform: retrieving jobs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("platform: retrieving jobs: unexpected status %d", resp.StatusCode)
	}

	var raw []comparisonJob
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("platform: decoding jobs response: %w", err)
	}

	jobs := make([]queue.Job, len(raw))
	for i := range raw {
		jobs[i] = &raw[i]
	}
	return jobs, nil
}

// PostStats implements StatsSink via POST {base}/stats.
func (c *Client) PostStats(ctx context.Context, report string) (bool, error) {
	body, err := json.Marshal(map[string]string{"report": report})
	if err != nil {
		return false, fmt.Errorf("platform: encoding stats report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/stats", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("platform: building stats request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return false, fmt.Errorf("platform: posting stats: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK, nil
}
