package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/domain"
)

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t testingT) *TableRepository {
	m := &TableRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *TableRepository) CreateTable(ctx context.Context, t *domain.Table) error {
	return _m.Called(ctx, t).Error(0)
}

func (_m *TableRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Table
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableRepository) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Table
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableRepository) UpdateTableStatus(ctx context.Context, id int, status domain.TableStatus) (*domain.Table, error) {
	ret := _m.Called(ctx, id, status)
	var r0 *domain.Table
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableRepository) CountActiveOrders(ctx context.Context, tableID int) (int, error) {
	ret := _m.Called(ctx, tableID)
	return ret.Int(0), ret.Error(1)
}

func (_m *TableRepository) DeleteTable(ctx context.Context, id int) (int64, error) {
	ret := _m.Called(ctx, id)
	return count(ret, 0), ret.Error(1)
}

func (_m *TableRepository) ClearTable(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	return _m.Called(ctx, o).Error(0)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	ret := _m.Called(ctx, f)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrder(ctx context.Context, o *domain.Order) error {
	return _m.Called(ctx, o).Error(0)
}

func (_m *OrderRepository) DeleteOrder(ctx context.Context, id int) (int64, error) {
	ret := _m.Called(ctx, id)
	return count(ret, 0), ret.Error(1)
}

func (_m *OrderRepository) AddOrderItems(ctx context.Context, o *domain.Order, items []domain.OrderItem) error {
	return _m.Called(ctx, o, items).Error(0)
}

func (_m *OrderRepository) DeleteOrderItem(ctx context.Context, o *domain.Order, itemID int) error {
	return _m.Called(ctx, o, itemID).Error(0)
}

func (_m *OrderRepository) CreateDiscount(ctx context.Context, o *domain.Order, d *domain.Discount) error {
	return _m.Called(ctx, o, d).Error(0)
}

func (_m *OrderRepository) DeleteDiscount(ctx context.Context, o *domain.Order) error {
	return _m.Called(ctx, o).Error(0)
}

type SettingsRepository struct {
	mock.Mock
}

func NewSettingsRepository(t testingT) *SettingsRepository {
	m := &SettingsRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *SettingsRepository) GetOrCreateSettings(ctx context.Context) (*domain.Settings, error) {
	ret := _m.Called(ctx)
	var r0 *domain.Settings
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Settings)
	}
	return r0, ret.Error(1)
}

func (_m *SettingsRepository) UpdateSettings(ctx context.Context, s *domain.Settings) error {
	return _m.Called(ctx, s).Error(0)
}

type SettingsCache struct {
	mock.Mock
}

func NewSettingsCache(t testingT) *SettingsCache {
	m := &SettingsCache{}
	register(&m.Mock, t)
	return m
}

func (_m *SettingsCache) GetSettings(ctx context.Context) (*domain.Settings, error) {
	ret := _m.Called(ctx)
	var r0 *domain.Settings
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Settings)
	}
	return r0, ret.Error(1)
}

func (_m *SettingsCache) SetSettings(ctx context.Context, s *domain.Settings) error {
	return _m.Called(ctx, s).Error(0)
}

func (_m *SettingsCache) InvalidateSettings(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

type SettingsProvider struct {
	mock.Mock
}

func NewSettingsProvider(t testingT) *SettingsProvider {
	m := &SettingsProvider{}
	register(&m.Mock, t)
	return m
}

func (_m *SettingsProvider) Get(ctx context.Context) (*domain.Settings, error) {
	ret := _m.Called(ctx)
	var r0 *domain.Settings
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Settings)
	}
	return r0, ret.Error(1)
}

type RevenueCounter struct {
	mock.Mock
}

func NewRevenueCounter(t testingT) *RevenueCounter {
	m := &RevenueCounter{}
	register(&m.Mock, t)
	return m
}

func (_m *RevenueCounter) DailyRevenue(ctx context.Context, day time.Time) (decimal.Decimal, int, bool, error) {
	ret := _m.Called(ctx, day)
	return ret.Get(0).(decimal.Decimal), ret.Int(1), ret.Bool(2), ret.Error(3)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	register(&m.Mock, t)
	return m
}

func (_m *EventPublisher) PublishOrderEvent(ctx context.Context, ev events.OrderEvent) error {
	return _m.Called(ctx, ev).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(&m.Mock, t)
	return m
}

func (_m *QRGenerator) Generate(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}
