// Package mocks holds testify mocks of the pos-svc service dependencies.
package mocks

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

func count(ret mock.Arguments, i int) int64 {
	if v, ok := ret.Get(i).(int); ok {
		return int64(v)
	}
	return ret.Get(i).(int64)
}
