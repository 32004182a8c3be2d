// Package mocks holds testify mocks of the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"camelize.dev/pkg/camelize/internal/controller"
	m "camelize.dev/pkg/camelize/internal/model"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// Start provides a mock function with given fields: ctx, options.
func (_m *MockUI) Start(ctx context.Context, options ...controller.StartOption) error {
	ret := _m.Called(ctx, options)

	return ret.Error(0)
}

// Close provides a mock function with given fields: ctx.
func (_m *MockUI) Close(ctx context.Context) {
	_m.Called(ctx)
}

// Wait provides a mock function with given fields: ctx.
func (_m *MockUI) Wait(ctx context.Context) {
	_m.Called(ctx)
}

// DisplayConcurrencyInfo provides a mock function with given fields: ctx, workers, files.
func (_m *MockUI) DisplayConcurrencyInfo(ctx context.Context, workers int, files int) {
	_m.Called(ctx, workers, files)
}

// DisplayRenames provides a mock function with given fields: ctx, results.
func (_m *MockUI) DisplayRenames(ctx context.Context, results []m.FileResult) error {
	ret := _m.Called(ctx, results)

	return ret.Error(0)
}

// DisplaySource provides a mock function with given fields: ctx, result.
func (_m *MockUI) DisplaySource(ctx context.Context, result m.FileResult) {
	_m.Called(ctx, result)
}

// DisplayDiff provides a mock function with given fields: ctx, result.
func (_m *MockUI) DisplayDiff(ctx context.Context, result m.FileResult) {
	_m.Called(ctx, result)
}

// DisplayFileError provides a mock function with given fields: ctx, result.
func (_m *MockUI) DisplayFileError(ctx context.Context, result m.FileResult) {
	_m.Called(ctx, result)
}

// DisplaySummary provides a mock function with given fields: ctx, results.
func (_m *MockUI) DisplaySummary(ctx context.Context, results []m.FileResult) error {
	ret := _m.Called(ctx, results)

	return ret.Error(0)
}

// NewMockUI creates a new instance of MockUI. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}
