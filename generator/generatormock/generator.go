// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package generatormock provides a gomock-backed generator whose outputs are
// scripted by the test.
//
// mockgen cannot emit mocks for the self-referential generic Generator
// interface, so the mock is written out here in the same shape.
package generatormock

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/ava-labs/splitrand/generator"
)

var _ generator.Generator[*Generator] = (*Generator)(nil)

// Generator is a mock of generator.Generator[*Generator].
type Generator struct {
	ctrl     *gomock.Controller
	recorder *GeneratorMockRecorder
}

// GeneratorMockRecorder is the mock recorder for Generator.
type GeneratorMockRecorder struct {
	mock *Generator
}

// NewGenerator creates a new mock instance.
func NewGenerator(ctrl *gomock.Controller) *Generator {
	mock := &Generator{ctrl: ctrl}
	mock.recorder = &GeneratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Generator) EXPECT() *GeneratorMockRecorder {
	return m.recorder
}

// Next mocks base method.
func (m *Generator) Next() (uint64, *Generator) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(*Generator)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *GeneratorMockRecorder) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*Generator)(nil).Next))
}

// Split mocks base method.
func (m *Generator) Split() (*Generator, *Generator) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Split")
	ret0, _ := ret[0].(*Generator)
	ret1, _ := ret[1].(*Generator)
	return ret0, ret1
}

// Split indicates an expected call of Split.
func (mr *GeneratorMockRecorder) Split() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Split", reflect.TypeOf((*Generator)(nil).Split))
}

// Range mocks base method.
func (m *Generator) Range() (uint64, uint64) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Range")
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(uint64)
	return ret0, ret1
}

// Range indicates an expected call of Range.
func (mr *GeneratorMockRecorder) Range() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Range", reflect.TypeOf((*Generator)(nil).Range))
}

// Script makes [m] report the native range [lo, hi] and return [outputs], in
// order, from consecutive calls to Next. Every successor state is [m] itself.
// Drawing more values than scripted fails the test.
func Script(m *Generator, lo, hi uint64, outputs ...uint64) {
	m.EXPECT().Range().Return(lo, hi).AnyTimes()

	calls := make([]*gomock.Call, len(outputs))
	for i, output := range outputs {
		calls[i] = m.EXPECT().Next().Return(output, m)
	}
	gomock.InOrder(calls...)
}
