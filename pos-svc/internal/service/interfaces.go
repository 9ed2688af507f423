package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/pricing"
	"sushi-pos/pos-svc/internal/storage"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id int) (int64, error)
}

type MenuItemRepository interface {
	ListMenuItems(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	GetMenuItems(ctx context.Context, ids []int) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, m *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int) (int64, error)
	SetMenuItemsAvailability(ctx context.Context, ids []int, available bool) (int64, error)
	SetMenuItemModifiers(ctx context.Context, menuItemID int, modifierIDs []int) error
	ListMenuItemModifiers(ctx context.Context, menuItemID int) ([]domain.Modifier, error)
}

type ModifierRepository interface {
	ListModifiers(ctx context.Context, f domain.ModifierFilter) ([]domain.Modifier, error)
	GetModifier(ctx context.Context, id int) (*domain.Modifier, error)
	GetModifiers(ctx context.Context, ids []int) ([]domain.Modifier, error)
	CreateModifier(ctx context.Context, m *domain.Modifier) error
	UpdateModifier(ctx context.Context, m *domain.Modifier) error
	DeleteModifier(ctx context.Context, id int) (int64, error)
}

type TableRepository interface {
	CreateTable(ctx context.Context, t *domain.Table) error
	ListTables(ctx context.Context) ([]domain.Table, error)
	GetTable(ctx context.Context, id int) (*domain.Table, error)
	UpdateTableStatus(ctx context.Context, id int, status domain.TableStatus) (*domain.Table, error)
	CountActiveOrders(ctx context.Context, tableID int) (int, error)
	DeleteTable(ctx context.Context, id int) (int64, error)
	ClearTable(ctx context.Context, id int) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, o *domain.Order) error
	DeleteOrder(ctx context.Context, id int) (int64, error)
	AddOrderItems(ctx context.Context, o *domain.Order, items []domain.OrderItem) error
	DeleteOrderItem(ctx context.Context, o *domain.Order, itemID int) error
	CreateDiscount(ctx context.Context, o *domain.Order, d *domain.Discount) error
	DeleteDiscount(ctx context.Context, o *domain.Order) error
}

type SettingsRepository interface {
	GetOrCreateSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, s *domain.Settings) error
}

type SettingsCache interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SetSettings(ctx context.Context, s *domain.Settings) error
	InvalidateSettings(ctx context.Context) error
}

type RevenueCounter interface {
	DailyRevenue(ctx context.Context, day time.Time) (decimal.Decimal, int, bool, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev events.OrderEvent) error
}

// CatalogLookup resolves the menu items and modifiers referenced by an order.
type CatalogLookup interface {
	GetMenuItems(ctx context.Context, ids []int) ([]domain.MenuItem, error)
	GetModifiers(ctx context.Context, ids []int) ([]domain.Modifier, error)
}

type TableLookup interface {
	GetTable(ctx context.Context, id int) (*domain.Table, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type CategoryServiceInterface interface {
	List(ctx context.Context, skip, limit int) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	Patch(ctx context.Context, id int, p domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}

type MenuItemServiceInterface interface {
	List(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error)
	Get(ctx context.Context, id int) (*domain.MenuItem, error)
	Create(ctx context.Context, in domain.MenuItemInput) (*domain.MenuItem, error)
	Patch(ctx context.Context, id int, p domain.MenuItemPatch) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int) error
	Bulk(ctx context.Context, req domain.BulkMenuItemRequest) (*domain.BulkResult, error)
	BulkAvailability(ctx context.Context, req domain.BulkAvailabilityRequest) (int64, error)
	SetModifiers(ctx context.Context, id int, modifierIDs []int) ([]domain.Modifier, error)
	ListModifiers(ctx context.Context, id int) ([]domain.Modifier, error)
}

type ModifierServiceInterface interface {
	List(ctx context.Context, f domain.ModifierFilter) ([]domain.Modifier, error)
	Get(ctx context.Context, id int) (*domain.Modifier, error)
	Create(ctx context.Context, in domain.ModifierInput) (*domain.Modifier, error)
	Patch(ctx context.Context, id int, p domain.ModifierPatch) (*domain.Modifier, error)
	Delete(ctx context.Context, id int) error
}

type TableServiceInterface interface {
	Create(ctx context.Context, in domain.TableInput) (*domain.Table, error)
	List(ctx context.Context) ([]domain.Table, error)
	Get(ctx context.Context, id int) (*domain.Table, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Table, error)
	Delete(ctx context.Context, id int) error
	Clear(ctx context.Context, id int) error
	Orders(ctx context.Context, id int) ([]domain.Order, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	Update(ctx context.Context, id int, p domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id int) error
	UpdateStatus(ctx context.Context, id int, u domain.StatusUpdate) (*domain.Order, error)
	BulkUpdateStatus(ctx context.Context, req domain.BulkOrderStatusRequest) (*domain.BulkResult, error)
	AddItems(ctx context.Context, id int, items []domain.OrderItemInput) (*domain.Order, error)
	RemoveItem(ctx context.Context, id, itemID int) (*domain.Order, error)
	ApplyDiscount(ctx context.Context, id int, in domain.DiscountInput) (*domain.Discount, error)
	RemoveDiscount(ctx context.Context, id int) error
	Total(ctx context.Context, id int) (*pricing.Breakdown, error)
	QRCode(ctx context.Context, id int) ([]byte, error)
}

type SettingsServiceInterface interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, p domain.SettingsPatch) (*domain.Settings, error)
	SetMealPeriod(ctx context.Context, period string) (*domain.Settings, error)
}

type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	RecentOrders(ctx context.Context) ([]domain.RecentOrder, error)
	DailyRevenue(ctx context.Context, day time.Time) (*domain.DailyRevenue, error)
}

var (
	_ CategoryRepository = (*storage.PostgresRepository)(nil)
	_ MenuItemRepository = (*storage.PostgresRepository)(nil)
	_ ModifierRepository = (*storage.PostgresRepository)(nil)
	_ TableRepository    = (*storage.PostgresRepository)(nil)
	_ OrderRepository    = (*storage.PostgresRepository)(nil)
	_ SettingsRepository = (*storage.PostgresRepository)(nil)
	_ SettingsCache      = (*storage.RedisCache)(nil)
	_ RevenueCounter     = (*storage.RedisCache)(nil)
	_ EventPublisher     = (*storage.KafkaPublisher)(nil)
)
