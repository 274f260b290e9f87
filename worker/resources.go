// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package worker

import "github.com/vericore/vericore/queue"

// Resources is the object the three pipeline roles share for the
// lifetime of the process (spec.md §4.6/§5).
type Resources struct {
	Queue *queue.Queue
	Stats *Stats
}

// NewResources wires a fresh Queue to stats.
func NewResources(stats *Stats) *Resources {
	return &Resources{Queue: queue.New(), Stats: stats}
}
