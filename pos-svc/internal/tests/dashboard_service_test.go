package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/mocks"
	"sushi-pos/pos-svc/internal/service"
)

func TestDashboardService_Stats(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	svc := service.NewDashboardService(orders, nil, quietLogger())

	created := fixedNow.Add(-30 * time.Minute)
	done := fixedNow
	completed := openOrder(1, domain.OrderStatusCompleted)
	completed.CreatedAt = created
	completed.CompletionTime = &done
	ayce := &domain.Order{ID: 2, Status: domain.OrderStatusPreparing, AYCEOrder: true}
	delivered := &domain.Order{ID: 3, Status: domain.OrderStatusDelivered}

	orders.On("ListOrders", mock.Anything, domain.OrderFilter{}).
		Return([]domain.Order{*completed, *ayce, *delivered}, nil).Once()

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assertAmount(t, "48.00", stats.TotalRevenue)
	assert.Equal(t, 30, stats.AverageOrderTime)
	assert.Equal(t, 1, stats.ActiveOrders)
}

func TestDashboardService_StatsWithoutCompletedOrders(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	svc := service.NewDashboardService(orders, nil, quietLogger())

	orders.On("ListOrders", mock.Anything, domain.OrderFilter{}).Return([]domain.Order{}, nil).Once()

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 15, stats.AverageOrderTime)
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestDashboardService_RecentOrders(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	svc := service.NewDashboardService(orders, nil, quietLogger())

	orders.On("ListOrders", mock.Anything, domain.OrderFilter{Limit: 10}).
		Return([]domain.Order{*openOrder(5, domain.OrderStatusReady)}, nil).Once()

	recent, err := svc.RecentOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, 5, recent[0].ID)
	assertAmount(t, "23.00", recent[0].Total)
}

func TestDashboardService_DailyRevenue(t *testing.T) {
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("counters present", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		counters := mocks.NewRevenueCounter(t)
		svc := service.NewDashboardService(orders, counters, quietLogger())

		counters.On("DailyRevenue", mock.Anything, day).Return(dec("120.5"), 4, true, nil).Once()

		rev, err := svc.DailyRevenue(context.Background(), day.Add(15*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, "2024-03-09", rev.Date)
		assert.Equal(t, "redis", rev.Source)
		assert.Equal(t, 4, rev.CompletedOrders)
		assertAmount(t, "120.50", rev.Revenue)
	})

	t.Run("falls back to database", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		counters := mocks.NewRevenueCounter(t)
		svc := service.NewDashboardService(orders, counters, quietLogger())

		counters.On("DailyRevenue", mock.Anything, day).Return(decimal.Zero, 0, false, errors.New("redis down")).Once()
		orders.On("ListOrders", mock.Anything, mock.MatchedBy(func(f domain.OrderFilter) bool {
			return f.Status != nil && *f.Status == domain.OrderStatusCompleted &&
				f.CompletedSince.Equal(day) && f.CompletedBefore.Equal(day.AddDate(0, 0, 1))
		})).Return([]domain.Order{*openOrder(1, domain.OrderStatusCompleted)}, nil).Once()

		rev, err := svc.DailyRevenue(context.Background(), day)

		require.NoError(t, err)
		assert.Equal(t, "database", rev.Source)
		assert.Equal(t, 1, rev.CompletedOrders)
		assertAmount(t, "23.00", rev.Revenue)
	})
}
