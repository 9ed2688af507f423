package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the fixed key of the singleton settings row.
const SettingsID = 1

type Category struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *int            `json:"category_id"`
	ImageURL     *string         `json:"image_url"`
	IsAvailable  bool            `json:"is_available"`
	IsPopular    bool            `json:"is_popular"`
	MealPeriod   MenuMealPeriod  `json:"meal_period"`
	DisplayOrder int             `json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at"`
}

type Modifier struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *int            `json:"category_id"`
	IsAvailable  bool            `json:"is_available"`
	DisplayOrder int             `json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at"`
}

type Table struct {
	ID              int         `json:"id"`
	Number          int         `json:"number"`
	Capacity        int         `json:"capacity"`
	Status          TableStatus `json:"status"`
	ReservationTime *time.Time  `json:"reservation_time"`
	PartySize       *int        `json:"party_size"`
	CustomerName    *string     `json:"customer_name"`
	CustomerPhone   *string     `json:"customer_phone"`
	Notes           *string     `json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       *time.Time  `json:"updated_at"`
}

type Order struct {
	ID             int             `json:"id"`
	TableID        int             `json:"table_id"`
	Status         OrderStatus     `json:"status"`
	Notes          *string         `json:"notes"`
	AYCEOrder      bool            `json:"ayce_order"`
	AYCEPrice      decimal.Decimal `json:"ayce_price"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Version        int             `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
	CompletionTime *time.Time      `json:"completion_time"`
	Items          []OrderItem     `json:"items"`
	Discount       *Discount       `json:"discount"`
}

type OrderItem struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"order_id"`
	MenuItemID int             `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Notes      *string         `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	Modifiers  []Modifier      `json:"modifiers"`
}

type Discount struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"order_id"`
	Type      DiscountType    `json:"type"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
}

type Settings struct {
	ID                int             `json:"id"`
	RestaurantName    string          `json:"restaurant_name"`
	Timezone          string          `json:"timezone"`
	CurrentMealPeriod MealPeriod      `json:"current_meal_period"`
	AYCELunchPrice    decimal.Decimal `json:"ayce_lunch_price"`
	AYCEDinnerPrice   decimal.Decimal `json:"ayce_dinner_price"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at"`
}

// AYCEPriceFor returns the all-you-can-eat price of the given period.
func (s *Settings) AYCEPriceFor(period MealPeriod) decimal.Decimal {
	if period == MealPeriodLunch {
		return s.AYCELunchPrice
	}
	return s.AYCEDinnerPrice
}

// DefaultSettings is the row created when none exists yet.
func DefaultSettings() Settings {
	return Settings{
		ID:                SettingsID,
		RestaurantName:    "Sushi Restaurant",
		Timezone:          "America/New_York",
		CurrentMealPeriod: MealPeriodDinner,
		AYCELunchPrice:    decimal.NewFromInt(20).Round(2),
		AYCEDinnerPrice:   decimal.NewFromInt(25).Round(2),
	}
}

// BulkError describes one failed element of a bulk operation.
type BulkError struct {
	ID      *int   `json:"id,omitempty"`
	Index   *int   `json:"index,omitempty"`
	Message string `json:"error"`
}

// BulkResult carries both halves of a partially successful bulk operation.
type BulkResult struct {
	Success   bool        `json:"success"`
	Operation string      `json:"operation"`
	Affected  []int       `json:"affected_items"`
	Errors    []BulkError `json:"errors,omitempty"`
}

func (r *BulkResult) Fail(id int, err error) {
	r.Errors = append(r.Errors, BulkError{ID: &id, Message: err.Error()})
}

func (r *BulkResult) FailAt(index int, err error) {
	r.Errors = append(r.Errors, BulkError{Index: &index, Message: err.Error()})
}

type DashboardStats struct {
	TotalOrders      int             `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	AverageOrderTime int             `json:"average_order_time"`
	ActiveOrders     int             `json:"active_orders"`
}

type RecentOrder struct {
	ID        int             `json:"id"`
	TableID   int             `json:"table_id"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

type DailyRevenue struct {
	Date            string          `json:"date"`
	Revenue         decimal.Decimal `json:"revenue"`
	CompletedOrders int             `json:"completed_orders"`
	Source          string          `json:"source"`
}
