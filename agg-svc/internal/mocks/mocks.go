// Package mocks holds testify mocks of the agg-svc consumer dependencies.
package mocks

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StoreInterface) RecordCompletedOrder(ctx context.Context, day time.Time, orderID int, total decimal.Decimal) error {
	return _m.Called(ctx, day, orderID, total).Error(0)
}

func (_m *StoreInterface) RemoveOrder(ctx context.Context, day time.Time, orderID int) error {
	return _m.Called(ctx, day, orderID).Error(0)
}

type MessageReader struct {
	mock.Mock
}

func NewMessageReader(t testingT) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)
	var r0 kafka.Message
	if v := ret.Get(0); v != nil {
		r0 = v.(kafka.Message)
	}
	return r0, ret.Error(1)
}
