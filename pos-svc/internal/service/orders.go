package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/money"
	"sushi-pos/pos-svc/internal/pricing"
)

const DefaultOrderPageSize = 10

type OrderService struct {
	repo      OrderRepository
	tables    TableLookup
	catalog   CatalogLookup
	settings  SettingsProvider
	events    orderEvents
	qrEncoder QRGenerator

	// Clock stamps completion times.
	Clock func() time.Time
}

func NewOrderService(repo OrderRepository, tables TableLookup, catalog CatalogLookup, settings SettingsProvider,
	publisher EventPublisher, qr QRGenerator, logger *log.Entry) *OrderService {
	return &OrderService{
		repo:      repo,
		tables:    tables,
		catalog:   catalog,
		settings:  settings,
		events:    orderEvents{publisher: publisher, log: logger},
		qrEncoder: qr,
		Clock:     time.Now,
	}
}

// Create writes the order and its items in one transaction. Each item takes
// the current menu price as its unit price.
func (s *OrderService) Create(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	if in.TableID <= 0 {
		return nil, apperr.Validation("table_id is required")
	}
	status := domain.OrderStatusPending
	if in.Status != "" {
		st, err := domain.ParseOrderStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}
	if in.AYCEPrice != nil && money.IsNegative(*in.AYCEPrice) {
		return nil, apperr.Validation("ayce_price must be >= 0")
	}
	if err := validateItemInputs(in.Items); err != nil {
		return nil, err
	}

	if _, err := s.tables.GetTable(ctx, in.TableID); err != nil {
		return nil, err
	}
	items, err := s.buildItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	o := &domain.Order{
		TableID:   in.TableID,
		Status:    status,
		Notes:     in.Notes,
		AYCEOrder: in.AYCEOrder,
		Items:     items,
	}
	if in.AYCEPrice != nil {
		o.AYCEPrice = money.Round(*in.AYCEPrice)
	} else {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		o.AYCEPrice = settings.AYCEPriceFor(settings.CurrentMealPeriod)
	}
	if status == domain.OrderStatusCompleted {
		now := s.Clock()
		o.CompletionTime = &now
	}
	o.TotalAmount = pricing.Calculate(o).Total

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeOrderCreated, o)
	if status == domain.OrderStatusCompleted {
		s.publish(ctx, events.TypeOrderCompleted, o)
	}
	return o, nil
}

func validateItemInputs(items []domain.OrderItemInput) error {
	for _, it := range items {
		if it.Quantity <= 0 {
			return apperr.Validation("Quantity must be positive for menu item %d", it.MenuItemID)
		}
	}
	return nil
}

// buildItems resolves menu items and modifiers for new order items.
func (s *OrderService) buildItems(ctx context.Context, inputs []domain.OrderItemInput) ([]domain.OrderItem, error) {
	if len(inputs) == 0 {
		return []domain.OrderItem{}, nil
	}

	var menuIDs, modIDs []int
	for _, in := range inputs {
		menuIDs = append(menuIDs, in.MenuItemID)
		modIDs = append(modIDs, in.ModifierIDs...)
	}
	menuIDs, modIDs = uniqueIDs(menuIDs), uniqueIDs(modIDs)

	menuItems, err := s.catalog.GetMenuItems(ctx, menuIDs)
	if err != nil {
		return nil, err
	}
	menu := make(map[int]domain.MenuItem, len(menuItems))
	for _, m := range menuItems {
		menu[m.ID] = m
	}
	if missing := missingIDs(menuIDs, menuItemIDsOf(menuItems)); len(missing) > 0 {
		return nil, apperr.NotFound("MenuItem", missing[0])
	}

	mods := map[int]domain.Modifier{}
	if len(modIDs) > 0 {
		found, err := s.catalog.GetModifiers(ctx, modIDs)
		if err != nil {
			return nil, err
		}
		if missing := missingIDs(modIDs, modifierIDsOf(found)); len(missing) > 0 {
			return nil, apperr.NotFound("Modifier", missing[0])
		}
		for _, m := range found {
			mods[m.ID] = m
		}
	}

	items := make([]domain.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		item := domain.OrderItem{
			MenuItemID: in.MenuItemID,
			Quantity:   in.Quantity,
			UnitPrice:  menu[in.MenuItemID].Price,
			Notes:      in.Notes,
			Modifiers:  []domain.Modifier{},
		}
		for _, id := range uniqueIDs(in.ModifierIDs) {
			item.Modifiers = append(item.Modifiers, mods[id])
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *OrderService) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	if f.Limit == 0 {
		f.Limit = DefaultOrderPageSize
	}
	if f.Skip < 0 || f.Limit < 1 || f.Limit > MaxPageSize {
		return nil, apperr.Validation("skip must be >= 0 and limit between 1 and %d", MaxPageSize)
	}
	return s.repo.ListOrders(ctx, f)
}

func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) Update(ctx context.Context, id int, p domain.OrderPatch) (*domain.Order, error) {
	var status *domain.OrderStatus
	if p.Status != nil {
		st, err := domain.ParseOrderStatus(*p.Status)
		if err != nil {
			return nil, err
		}
		status = &st
	}
	if p.AYCEPrice != nil && money.IsNegative(*p.AYCEPrice) {
		return nil, apperr.Validation("ayce_price must be >= 0")
	}

	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.TableID != nil && *p.TableID != o.TableID {
		if _, err := s.tables.GetTable(ctx, *p.TableID); err != nil {
			return nil, err
		}
		o.TableID = *p.TableID
	}
	if o.Status == domain.OrderStatusCompleted && (p.AYCEOrder != nil || p.AYCEPrice != nil) {
		return nil, apperr.InvalidOperation("Cannot change the pricing of a completed order")
	}
	previous := o.Status
	if status != nil {
		if err := s.applyStatus(o, *status); err != nil {
			return nil, err
		}
	}
	if p.Notes != nil {
		o.Notes = p.Notes
	}
	if p.AYCEOrder != nil {
		o.AYCEOrder = *p.AYCEOrder
	}
	if p.AYCEPrice != nil {
		o.AYCEPrice = money.Round(*p.AYCEPrice)
	}
	o.TotalAmount = pricing.Calculate(o).Total

	if err := s.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}
	s.publishStatusChange(ctx, previous, o)
	return o, nil
}

// Delete removes the order with its items and discount. Deleting a completed
// order publishes an event so its revenue is withdrawn.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("Order", id)
	}
	s.events.publishDeleted(ctx, []domain.Order{*o}, s.Clock())
	return nil
}

// UpdateStatus moves the order to a new status. When the caller names the
// version it last saw, a newer stored version is a Conflict.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, u domain.StatusUpdate) (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(u.Status)
	if err != nil {
		return nil, err
	}
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.ExpectedVersion != nil && *u.ExpectedVersion != o.Version {
		return nil, apperr.Conflict("Order %d is at version %d, not %d", id, o.Version, *u.ExpectedVersion)
	}

	previous := o.Status
	if err := s.applyStatus(o, status); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}
	s.publishStatusChange(ctx, previous, o)
	return o, nil
}

// applyStatus validates the move and stamps completion_time on entering
// completed.
func (s *OrderService) applyStatus(o *domain.Order, status domain.OrderStatus) error {
	if err := domain.ValidateOrderTransition(o.Status, status); err != nil {
		return err
	}
	if status == domain.OrderStatusCompleted && o.Status != domain.OrderStatusCompleted {
		now := s.Clock()
		o.CompletionTime = &now
	}
	o.Status = status
	return nil
}

// BulkUpdateStatus updates each order on its own; one failing order does not
// stop the others.
func (s *OrderService) BulkUpdateStatus(ctx context.Context, req domain.BulkOrderStatusRequest) (*domain.BulkResult, error) {
	if len(req.OrderIDs) == 0 {
		return nil, apperr.Validation("order_ids must not be empty")
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, err
	}

	res := &domain.BulkResult{Operation: "update-status", Affected: []int{}}
	notFound := 0
	for _, id := range uniqueIDs(req.OrderIDs) {
		o, err := s.repo.GetOrder(ctx, id)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				notFound++
			}
			res.Fail(id, err)
			continue
		}
		previous := o.Status
		if err := s.applyStatus(o, status); err != nil {
			res.Fail(id, err)
			continue
		}
		if req.Notes != nil && *req.Notes != "" {
			o.Notes = req.Notes
		}
		if err := s.repo.UpdateOrder(ctx, o); err != nil {
			res.Fail(id, err)
			continue
		}
		s.publishStatusChange(ctx, previous, o)
		res.Affected = append(res.Affected, id)
	}

	if notFound == len(uniqueIDs(req.OrderIDs)) {
		return nil, apperr.NotFound("Order", req.OrderIDs)
	}
	res.Success = len(res.Affected) > 0
	return res, nil
}

// AddItems appends items to an open order. A pending order moves to
// preparing once it receives items.
func (s *OrderService) AddItems(ctx context.Context, id int, inputs []domain.OrderItemInput) (*domain.Order, error) {
	if len(inputs) == 0 {
		return nil, apperr.Validation("items must not be empty")
	}
	if err := validateItemInputs(inputs); err != nil {
		return nil, err
	}

	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderStatusCompleted {
		return nil, apperr.InvalidOperation("Cannot add items to a completed order")
	}
	added, err := s.buildItems(ctx, inputs)
	if err != nil {
		return nil, err
	}

	previous := o.Status
	if o.Status == domain.OrderStatusPending {
		o.Status = domain.OrderStatusPreparing
	}
	existing := o.Items
	o.Items = append(append([]domain.OrderItem{}, existing...), added...)
	o.TotalAmount = pricing.Calculate(o).Total
	o.Items = existing

	if err := s.repo.AddOrderItems(ctx, o, added); err != nil {
		return nil, err
	}
	o.Items = append(o.Items, added...)
	s.publishStatusChange(ctx, previous, o)
	return o, nil
}

func (s *OrderService) RemoveItem(ctx context.Context, id, itemID int) (*domain.Order, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderStatusCompleted {
		return nil, apperr.InvalidOperation("Cannot remove items from a completed order")
	}

	idx := -1
	for i, it := range o.Items {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperr.NotFound("OrderItem", itemID)
	}

	remaining := make([]domain.OrderItem, 0, len(o.Items)-1)
	remaining = append(remaining, o.Items[:idx]...)
	remaining = append(remaining, o.Items[idx+1:]...)
	o.Items = remaining
	o.TotalAmount = pricing.Calculate(o).Total

	if err := s.repo.DeleteOrderItem(ctx, o, itemID); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ApplyDiscount(ctx context.Context, id int, in domain.DiscountInput) (*domain.Discount, error) {
	typ, err := domain.ParseDiscountType(in.Type)
	if err != nil {
		return nil, err
	}
	if money.IsNegative(in.Value) {
		return nil, apperr.Validation("Discount value must be >= 0")
	}
	if typ == domain.DiscountPercent && in.Value.GreaterThan(pricing.MaxPercent) {
		return nil, apperr.Validation("Percentage discount must be between 0 and 100")
	}

	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderStatusCompleted {
		return nil, apperr.InvalidOperation("Cannot change the discount of a completed order")
	}
	if o.Discount != nil {
		return nil, apperr.Conflict("Order %d already has a discount", id)
	}

	d := &domain.Discount{OrderID: id, Type: typ, Value: money.Round(in.Value)}
	o.Discount = d
	o.TotalAmount = pricing.Calculate(o).Total
	if err := s.repo.CreateDiscount(ctx, o, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *OrderService) RemoveDiscount(ctx context.Context, id int) error {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if o.Status == domain.OrderStatusCompleted {
		return apperr.InvalidOperation("Cannot change the discount of a completed order")
	}
	if o.Discount == nil {
		return apperr.NotFound("Discount for order", id)
	}
	o.Discount = nil
	o.TotalAmount = pricing.Calculate(o).Total
	return s.repo.DeleteDiscount(ctx, o)
}

// Total is the authoritative price breakdown of the order; the stored
// total_amount is only a convenience copy.
func (s *OrderService) Total(ctx context.Context, id int) (*pricing.Breakdown, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	b := pricing.Calculate(o)
	return &b, nil
}

// QRCode renders a PNG linking to the order's receipt page.
func (s *OrderService) QRCode(ctx context.Context, id int) ([]byte, error) {
	if _, err := s.repo.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(id)
}

func (s *OrderService) publishStatusChange(ctx context.Context, previous domain.OrderStatus, o *domain.Order) {
	if previous == o.Status {
		return
	}
	if o.Status == domain.OrderStatusCompleted {
		s.publish(ctx, events.TypeOrderCompleted, o)
		return
	}
	s.publish(ctx, events.TypeOrderStatusChanged, o)
}

func (s *OrderService) publish(ctx context.Context, typ string, o *domain.Order) {
	s.events.publish(ctx, typ, o, s.Clock())
}

func menuItemIDsOf(items []domain.MenuItem) []int {
	ids := make([]int, len(items))
	for i, m := range items {
		ids[i] = m.ID
	}
	return ids
}

var _ OrderServiceInterface = (*OrderService)(nil)
