package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/domain"
)

type TableService struct {
	repo   TableRepository
	orders OrderRepository
	events orderEvents

	Clock func() time.Time
}

// NewTableService builds the table service. Completed orders swept away by
// Delete or Clear are announced on publisher, which may be nil.
func NewTableService(repo TableRepository, orders OrderRepository, publisher EventPublisher, logger *log.Entry) *TableService {
	return &TableService{
		repo:   repo,
		orders: orders,
		events: orderEvents{publisher: publisher, log: logger},
		Clock:  time.Now,
	}
}

func (s *TableService) Create(ctx context.Context, in domain.TableInput) (*domain.Table, error) {
	if in.Number <= 0 {
		return nil, apperr.Validation("Table number must be positive")
	}
	if in.Capacity <= 0 {
		return nil, apperr.Validation("Table capacity must be positive")
	}
	t := &domain.Table{
		Number:          in.Number,
		Capacity:        in.Capacity,
		Status:          domain.TableStatusAvailable,
		ReservationTime: in.ReservationTime,
		PartySize:       in.PartySize,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		Notes:           in.Notes,
	}
	if in.Status != "" {
		status, err := domain.ParseTableStatus(in.Status)
		if err != nil {
			return nil, err
		}
		t.Status = status
	}
	if err := s.repo.CreateTable(ctx, t); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, apperr.Conflict("Table with number %d already exists", in.Number)
		}
		return nil, err
	}
	return t, nil
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	return s.repo.ListTables(ctx)
}

func (s *TableService) Get(ctx context.Context, id int) (*domain.Table, error) {
	return s.repo.GetTable(ctx, id)
}

// UpdateStatus sets any of the four table states; no transition is refused.
func (s *TableService) UpdateStatus(ctx context.Context, id int, status string) (*domain.Table, error) {
	st, err := domain.ParseTableStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateTableStatus(ctx, id, st)
}

// Delete refuses while the table still has an order being served.
func (s *TableService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetTable(ctx, id); err != nil {
		return err
	}
	active, err := s.repo.CountActiveOrders(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return apperr.InvalidOperation("Cannot delete table with active orders. Clear the table first.")
	}
	counted, err := s.completedOrders(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.repo.DeleteTable(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("Table", id)
	}
	s.events.publishDeleted(ctx, counted, s.Clock())
	return nil
}

// Clear drops every order of the table, active ones included, and makes the
// table available again.
func (s *TableService) Clear(ctx context.Context, id int) error {
	if _, err := s.repo.GetTable(ctx, id); err != nil {
		return err
	}
	counted, err := s.completedOrders(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.ClearTable(ctx, id); err != nil {
		return err
	}
	s.events.publishDeleted(ctx, counted, s.Clock())
	return nil
}

// completedOrders lists the table's orders whose revenue has been counted.
// Without a publisher nobody needs to hear about them.
func (s *TableService) completedOrders(ctx context.Context, id int) ([]domain.Order, error) {
	if !s.events.enabled() {
		return nil, nil
	}
	completed := domain.OrderStatusCompleted
	return s.orders.ListOrders(ctx, domain.OrderFilter{TableID: &id, Status: &completed})
}

func (s *TableService) Orders(ctx context.Context, id int) ([]domain.Order, error) {
	if _, err := s.repo.GetTable(ctx, id); err != nil {
		return nil, err
	}
	return s.orders.ListOrders(ctx, domain.OrderFilter{TableID: &id})
}

var _ TableServiceInterface = (*TableService)(nil)
