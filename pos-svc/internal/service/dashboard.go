package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/money"
	"sushi-pos/pos-svc/internal/pricing"
)

const (
	recentOrdersLimit = 10
	// defaultOrderMinutes is reported while no order has been completed.
	defaultOrderMinutes = 15
)

// DashboardService aggregates order figures. Every amount it reports comes
// from the pricing calculator, never from the stored total_amount.
type DashboardService struct {
	orders   OrderRepository
	counters RevenueCounter
	log      *log.Entry
}

func NewDashboardService(orders OrderRepository, counters RevenueCounter, logger *log.Entry) *DashboardService {
	return &DashboardService{orders: orders, counters: counters, log: logger}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	orders, err := s.orders.ListOrders(ctx, domain.OrderFilter{})
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{TotalOrders: len(orders), AverageOrderTime: defaultOrderMinutes}
	revenue := decimal.Zero
	var (
		completed int
		minutes   float64
	)
	for i := range orders {
		o := &orders[i]
		revenue = revenue.Add(pricing.Calculate(o).Total)
		for _, st := range domain.KitchenOrderStatuses {
			if o.Status == st {
				stats.ActiveOrders++
			}
		}
		if o.Status == domain.OrderStatusCompleted && o.CompletionTime != nil {
			completed++
			minutes += o.CompletionTime.Sub(o.CreatedAt).Minutes()
		}
	}
	stats.TotalRevenue = money.Round(revenue)
	if completed > 0 {
		stats.AverageOrderTime = int(minutes/float64(completed) + 0.5)
	}
	return stats, nil
}

func (s *DashboardService) RecentOrders(ctx context.Context) ([]domain.RecentOrder, error) {
	orders, err := s.orders.ListOrders(ctx, domain.OrderFilter{Limit: recentOrdersLimit})
	if err != nil {
		return nil, err
	}
	recent := make([]domain.RecentOrder, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		recent = append(recent, domain.RecentOrder{
			ID:        o.ID,
			TableID:   o.TableID,
			Status:    o.Status,
			Total:     pricing.Calculate(o).Total,
			CreatedAt: o.CreatedAt,
		})
	}
	return recent, nil
}

// DailyRevenue reports the revenue of completed orders on the given UTC day.
// The counters maintained by agg-svc are preferred; without them the figure
// is recomputed from the database.
func (s *DashboardService) DailyRevenue(ctx context.Context, day time.Time) (*domain.DailyRevenue, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	res := &domain.DailyRevenue{Date: start.Format(events.DateLayout)}

	if s.counters != nil {
		revenue, count, ok, err := s.counters.DailyRevenue(ctx, start)
		switch {
		case err != nil:
			s.log.WithError(err).Warn("revenue counters unavailable, reading database")
		case ok:
			res.Revenue = money.Round(revenue)
			res.CompletedOrders = count
			res.Source = "redis"
			return res, nil
		}
	}

	end := start.AddDate(0, 0, 1)
	completed := domain.OrderStatusCompleted
	orders, err := s.orders.ListOrders(ctx, domain.OrderFilter{
		Status:          &completed,
		CompletedSince:  &start,
		CompletedBefore: &end,
	})
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for i := range orders {
		revenue = revenue.Add(pricing.Calculate(&orders[i]).Total)
	}
	res.Revenue = money.Round(revenue)
	res.CompletedOrders = len(orders)
	res.Source = "database"
	return res, nil
}

var _ DashboardServiceInterface = (*DashboardService)(nil)
