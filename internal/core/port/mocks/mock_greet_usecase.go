package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greeter/internal/core/domain"
)

// MockGreetUseCase is a mock implementation of port.GreetUseCase.
type MockGreetUseCase struct {
	mock.Mock
}

type MockGreetUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGreetUseCase) EXPECT() *MockGreetUseCase_Expecter {
	return &MockGreetUseCase_Expecter{mock: &_m.Mock}
}

// Greet provides a mock function with given fields: ctx
func (_m *MockGreetUseCase) Greet(ctx context.Context) (domain.Greeting, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Greet")
	}

	var r0 domain.Greeting
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (domain.Greeting, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) domain.Greeting); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(domain.Greeting)
	}
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockGreetUseCase_Greet_Call is a *mock.Call for the Greet method.
type MockGreetUseCase_Greet_Call struct {
	*mock.Call
}

// Greet is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockGreetUseCase_Expecter) Greet(ctx interface{}) *MockGreetUseCase_Greet_Call {
	return &MockGreetUseCase_Greet_Call{Call: _e.mock.On("Greet", ctx)}
}

func (_c *MockGreetUseCase_Greet_Call) Run(run func(ctx context.Context)) *MockGreetUseCase_Greet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockGreetUseCase_Greet_Call) Return(_a0 domain.Greeting, _a1 error) *MockGreetUseCase_Greet_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockGreetUseCase creates a new instance of MockGreetUseCase. It also
// registers a cleanup function to assert the mocks expectations.
func NewMockGreetUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGreetUseCase {
	m := &MockGreetUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
