package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patch payloads use pointers: a nil field is left untouched.

type CategoryInput struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

type CategoryPatch struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
}

type MenuItemInput struct {
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *int            `json:"category_id"`
	ImageURL     *string         `json:"image_url"`
	IsAvailable  *bool           `json:"is_available"`
	IsPopular    bool            `json:"is_popular"`
	MealPeriod   string          `json:"meal_period"`
	DisplayOrder int             `json:"display_order"`
}

type MenuItemPatch struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	CategoryID   *int             `json:"category_id"`
	ImageURL     *string          `json:"image_url"`
	IsAvailable  *bool            `json:"is_available"`
	IsPopular    *bool            `json:"is_popular"`
	MealPeriod   *string          `json:"meal_period"`
	DisplayOrder *int             `json:"display_order"`
}

const (
	BulkCreate = "create"
	BulkUpdate = "update"
	BulkDelete = "delete"
)

type BulkMenuItemRequest struct {
	OperationType string          `json:"operation_type"`
	ItemIDs       []int           `json:"item_ids"`
	Items         []MenuItemInput `json:"items"`
	Data          *MenuItemPatch  `json:"data"`
}

type BulkAvailabilityRequest struct {
	ItemIDs     []int `json:"item_ids"`
	IsAvailable bool  `json:"is_available"`
}

type ModifierInput struct {
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *int            `json:"category_id"`
	IsAvailable  *bool           `json:"is_available"`
	DisplayOrder int             `json:"display_order"`
}

type ModifierPatch struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	CategoryID   *int             `json:"category_id"`
	IsAvailable  *bool            `json:"is_available"`
	DisplayOrder *int             `json:"display_order"`
}

type TableInput struct {
	Number          int        `json:"number"`
	Capacity        int        `json:"capacity"`
	Status          string     `json:"status"`
	ReservationTime *time.Time `json:"reservation_time"`
	PartySize       *int       `json:"party_size"`
	CustomerName    *string    `json:"customer_name"`
	CustomerPhone   *string    `json:"customer_phone"`
	Notes           *string    `json:"notes"`
}

type OrderItemInput struct {
	MenuItemID  int     `json:"menu_item_id"`
	Quantity    int     `json:"quantity"`
	Notes       *string `json:"notes"`
	ModifierIDs []int   `json:"modifier_ids"`
}

type OrderInput struct {
	TableID   int              `json:"table_id"`
	Status    string           `json:"status"`
	Notes     *string          `json:"notes"`
	AYCEOrder bool             `json:"ayce_order"`
	AYCEPrice *decimal.Decimal `json:"ayce_price"`
	Items     []OrderItemInput `json:"items"`
}

type OrderPatch struct {
	TableID   *int             `json:"table_id"`
	Status    *string          `json:"status"`
	Notes     *string          `json:"notes"`
	AYCEOrder *bool            `json:"ayce_order"`
	AYCEPrice *decimal.Decimal `json:"ayce_price"`
}

type StatusUpdate struct {
	Status          string `json:"status"`
	ExpectedVersion *int   `json:"expected_version"`
}

type BulkOrderStatusRequest struct {
	OrderIDs []int   `json:"order_ids"`
	Status   string  `json:"status"`
	Notes    *string `json:"notes"`
}

type DiscountInput struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

type SettingsPatch struct {
	RestaurantName    *string          `json:"restaurant_name"`
	Timezone          *string          `json:"timezone"`
	CurrentMealPeriod *string          `json:"current_meal_period"`
	AYCELunchPrice    *decimal.Decimal `json:"ayce_lunch_price"`
	AYCEDinnerPrice   *decimal.Decimal `json:"ayce_dinner_price"`
}
