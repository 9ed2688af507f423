package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/mocks"
	"sushi-pos/pos-svc/internal/service"
)

func TestTableService_Create(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.TableInput
		prepare  func(*mocks.TableRepository)
		wantKind *apperr.Kind
	}{
		{
			name:  "success",
			input: domain.TableInput{Number: 4, Capacity: 6},
			prepare: func(m *mocks.TableRepository) {
				m.On("CreateTable", mock.Anything, mock.MatchedBy(func(t *domain.Table) bool {
					return t.Status == domain.TableStatusAvailable
				})).Return(nil).Once()
			},
		},
		{
			name:     "non-positive capacity",
			input:    domain.TableInput{Number: 4, Capacity: 0},
			prepare:  func(m *mocks.TableRepository) {},
			wantKind: kindPtr(apperr.KindValidation),
		},
		{
			name:     "unknown status",
			input:    domain.TableInput{Number: 4, Capacity: 2, Status: "broken"},
			prepare:  func(m *mocks.TableRepository) {},
			wantKind: kindPtr(apperr.KindValidation),
		},
		{
			name:  "duplicate number",
			input: domain.TableInput{Number: 4, Capacity: 2},
			prepare: func(m *mocks.TableRepository) {
				m.On("CreateTable", mock.Anything, mock.Anything).Return(apperr.Conflict("duplicate")).Once()
			},
			wantKind: kindPtr(apperr.KindConflict),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewTableRepository(t)
			svc := service.NewTableService(repo, mocks.NewOrderRepository(t), nil, quietLogger())
			testCase.prepare(repo)

			table, err := svc.Create(context.Background(), testCase.input)

			if testCase.wantKind != nil {
				require.Error(t, err)
				assert.Equal(t, *testCase.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4, table.Number)
		})
	}
}

func kindPtr(k apperr.Kind) *apperr.Kind { return &k }

func TestTableService_UpdateStatusAnyTransition(t *testing.T) {
	repo := mocks.NewTableRepository(t)
	svc := service.NewTableService(repo, mocks.NewOrderRepository(t), nil, quietLogger())

	repo.On("UpdateTableStatus", mock.Anything, 1, domain.TableStatusCleaning).
		Return(&domain.Table{ID: 1, Status: domain.TableStatusCleaning}, nil).Once()
	repo.On("UpdateTableStatus", mock.Anything, 1, domain.TableStatusReserved).
		Return(&domain.Table{ID: 1, Status: domain.TableStatusReserved}, nil).Once()

	table, err := svc.UpdateStatus(context.Background(), 1, "cleaning")
	require.NoError(t, err)
	assert.Equal(t, domain.TableStatusCleaning, table.Status)

	table, err = svc.UpdateStatus(context.Background(), 1, "RESERVED")
	require.NoError(t, err)
	assert.Equal(t, domain.TableStatusReserved, table.Status)

	_, err = svc.UpdateStatus(context.Background(), 1, "closed")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestTableService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*mocks.TableRepository)
		wantErr error
	}{
		{
			name: "active order blocks deletion",
			prepare: func(m *mocks.TableRepository) {
				m.On("GetTable", mock.Anything, 1).Return(&domain.Table{ID: 1}, nil).Once()
				m.On("CountActiveOrders", mock.Anything, 1).Return(1, nil).Once()
			},
			wantErr: apperr.ErrInvalidOperation,
		},
		{
			name: "only finished orders",
			prepare: func(m *mocks.TableRepository) {
				m.On("GetTable", mock.Anything, 1).Return(&domain.Table{ID: 1}, nil).Once()
				m.On("CountActiveOrders", mock.Anything, 1).Return(0, nil).Once()
				m.On("DeleteTable", mock.Anything, 1).Return(int64(1), nil).Once()
			},
		},
		{
			name: "missing table",
			prepare: func(m *mocks.TableRepository) {
				m.On("GetTable", mock.Anything, 1).Return(nil, apperr.NotFound("Table", 1)).Once()
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name: "database error",
			prepare: func(m *mocks.TableRepository) {
				m.On("GetTable", mock.Anything, 1).Return(&domain.Table{ID: 1}, nil).Once()
				m.On("CountActiveOrders", mock.Anything, 1).Return(0, errors.New("db down")).Once()
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewTableRepository(t)
			svc := service.NewTableService(repo, mocks.NewOrderRepository(t), nil, quietLogger())
			testCase.prepare(repo)

			err := svc.Delete(context.Background(), 1)

			switch {
			case testCase.wantErr == nil:
				assert.NoError(t, err)
			case apperr.As(testCase.wantErr) != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			default:
				assert.EqualError(t, err, testCase.wantErr.Error())
			}
		})
	}
}

// A table whose order was preparing can be deleted once the order is
// cancelled, because cancelled orders are no longer active.
func TestTableService_DeleteAfterCancellingOrder(t *testing.T) {
	tables := mocks.NewTableRepository(t)
	orders := mocks.NewOrderRepository(t)
	tableSvc := service.NewTableService(tables, orders, nil, quietLogger())
	orderSvc := service.NewOrderService(orders, tables, mocks.NewCatalogLookup(t), mocks.NewSettingsProvider(t), nil, nil, quietLogger())

	tables.On("GetTable", mock.Anything, 1).Return(&domain.Table{ID: 1}, nil)
	tables.On("CountActiveOrders", mock.Anything, 1).Return(1, nil).Once()

	err := tableSvc.Delete(context.Background(), 1)
	require.ErrorIs(t, err, apperr.ErrInvalidOperation)

	orders.On("GetOrder", mock.Anything, 7).Return(openOrder(7, domain.OrderStatusPreparing), nil).Once()
	orders.On("UpdateOrder", mock.Anything, mock.Anything).Return(nil).Once()
	_, err = orderSvc.UpdateStatus(context.Background(), 7, domain.StatusUpdate{Status: "cancelled"})
	require.NoError(t, err)

	tables.On("CountActiveOrders", mock.Anything, 1).Return(0, nil).Once()
	tables.On("DeleteTable", mock.Anything, 1).Return(int64(1), nil).Once()
	assert.NoError(t, tableSvc.Delete(context.Background(), 1))
}

func TestTableService_ClearAndOrders(t *testing.T) {
	repo := mocks.NewTableRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewTableService(repo, orders, nil, quietLogger())
	tableID := 2

	repo.On("GetTable", mock.Anything, tableID).Return(&domain.Table{ID: tableID}, nil).Twice()
	repo.On("ClearTable", mock.Anything, tableID).Return(nil).Once()
	orders.On("ListOrders", mock.Anything, domain.OrderFilter{TableID: &tableID}).
		Return([]domain.Order{{ID: 1, TableID: tableID}}, nil).Once()

	require.NoError(t, svc.Clear(context.Background(), tableID))
	list, err := svc.Orders(context.Background(), tableID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTableService_SweptCompletedOrdersArePublished(t *testing.T) {
	tableID := 2
	completed := domain.OrderStatusCompleted
	completedFilter := domain.OrderFilter{TableID: &tableID, Status: &completed}
	completedAt := fixedNow.Add(-time.Hour)
	done := openOrder(8, domain.OrderStatusCompleted)
	done.TableID = tableID
	done.CompletionTime = &completedAt

	isDeletion := mock.MatchedBy(func(ev events.OrderEvent) bool {
		return ev.Type == events.TypeOrderDeleted && ev.OrderID == 8 && ev.TableID == tableID &&
			ev.CompletedAt != nil && ev.CompletedAt.Equal(completedAt)
	})

	t.Run("clear", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		orders := mocks.NewOrderRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewTableService(repo, orders, publisher, quietLogger())

		repo.On("GetTable", mock.Anything, tableID).Return(&domain.Table{ID: tableID}, nil).Once()
		orders.On("ListOrders", mock.Anything, completedFilter).Return([]domain.Order{*done}, nil).Once()
		repo.On("ClearTable", mock.Anything, tableID).Return(nil).Once()
		publisher.On("PublishOrderEvent", mock.Anything, isDeletion).Return(nil).Once()

		require.NoError(t, svc.Clear(context.Background(), tableID))
	})

	t.Run("delete", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		orders := mocks.NewOrderRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewTableService(repo, orders, publisher, quietLogger())

		repo.On("GetTable", mock.Anything, tableID).Return(&domain.Table{ID: tableID}, nil).Once()
		repo.On("CountActiveOrders", mock.Anything, tableID).Return(0, nil).Once()
		orders.On("ListOrders", mock.Anything, completedFilter).Return([]domain.Order{*done}, nil).Once()
		repo.On("DeleteTable", mock.Anything, tableID).Return(int64(1), nil).Once()
		publisher.On("PublishOrderEvent", mock.Anything, isDeletion).Return(nil).Once()

		require.NoError(t, svc.Delete(context.Background(), tableID))
	})

	t.Run("failed clear publishes nothing", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		orders := mocks.NewOrderRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewTableService(repo, orders, publisher, quietLogger())

		repo.On("GetTable", mock.Anything, tableID).Return(&domain.Table{ID: tableID}, nil).Once()
		orders.On("ListOrders", mock.Anything, completedFilter).Return([]domain.Order{*done}, nil).Once()
		repo.On("ClearTable", mock.Anything, tableID).Return(errors.New("connection reset")).Once()

		assert.Error(t, svc.Clear(context.Background(), tableID))
		publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
	})
}
