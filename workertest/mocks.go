// Copyright (C) 2025, Vericore Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package workertest provides gomock-style test doubles for the
// platform package's JobSource/StatsSink collaborator interfaces,
// grounded on the teacher's generated validator mocks
// (validator/validatorsmock) and built against go.uber.org/mock
// without running mockgen.
package workertest

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/vericore/vericore/queue"
)

// MockJobSource is a mock of the platform.JobSource interface.
type MockJobSource struct {
	ctrl     *gomock.Controller
	recorder *MockJobSourceMockRecorder
}

// MockJobSourceMockRecorder is the mock recorder for MockJobSource.
type MockJobSourceMockRecorder struct {
	mock *MockJobSource
}

// NewMockJobSource returns a new mock of platform.JobSource.
func NewMockJobSource(ctrl *gomock.Controller) *MockJobSource {
	m := &MockJobSource{ctrl: ctrl}
	m.recorder = &MockJobSourceMockRecorder{m}
	return m
}

// EXPECT returns an object that allows the caller to indicate expected
// calls.
func (m *MockJobSource) EXPECT() *MockJobSourceMockRecorder {
	return m.recorder
}

// RetrieveJobs mocks base method.
func (m *MockJobSource) RetrieveJobs(ctx context.Context) ([]queue.Job, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RetrieveJobs", ctx)
	jobs, _ := ret[0].([]queue.Job)
	err, _ := ret[1].(error)
	return jobs, err
}

// RetrieveJobs indicates an expected call of RetrieveJobs.
func (mr *MockJobSourceMockRecorder) RetrieveJobs(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RetrieveJobs", reflect.TypeOf((*MockJobSource)(nil).RetrieveJobs), ctx)
}

// MockStatsSink is a mock of the platform.StatsSink interface.
type MockStatsSink struct {
	ctrl     *gomock.Controller
	recorder *MockStatsSinkMockRecorder
}

// MockStatsSinkMockRecorder is the mock recorder for MockStatsSink.
type MockStatsSinkMockRecorder struct {
	mock *MockStatsSink
}

// NewMockStatsSink returns a new mock of platform.StatsSink.
func NewMockStatsSink(ctrl *gomock.Controller) *MockStatsSink {
	m := &MockStatsSink{ctrl: ctrl}
	m.recorder = &MockStatsSinkMockRecorder{m}
	return m
}

// EXPECT returns an object that allows the caller to indicate expected
// calls.
func (m *MockStatsSink) EXPECT() *MockStatsSinkMockRecorder {
	return m.recorder
}

// PostStats mocks base method.
func (m *MockStatsSink) PostStats(ctx context.Context, report string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PostStats", ctx, report)
	ok, _ := ret[0].(bool)
	err, _ := ret[1].(error)
	return ok, err
}

// PostStats indicates an expected call of PostStats.
func (mr *MockStatsSinkMockRecorder) PostStats(ctx, report any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PostStats", reflect.TypeOf((*MockStatsSink)(nil).PostStats), ctx, report)
}
