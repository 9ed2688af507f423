package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sushi-pos/pos-svc/internal/domain"
)

type CategoryRepository struct {
	mock.Mock
}

func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *CategoryRepository) ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	ret := _m.Called(ctx, skip, limit)
	var r0 []domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategoryRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Category
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	return _m.Called(ctx, c).Error(0)
}

func (_m *CategoryRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	return _m.Called(ctx, c).Error(0)
}

func (_m *CategoryRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	ret := _m.Called(ctx, id)
	return count(ret, 0), ret.Error(1)
}

type MenuItemRepository struct {
	mock.Mock
}

func NewMenuItemRepository(t testingT) *MenuItemRepository {
	m := &MenuItemRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *MenuItemRepository) ListMenuItems(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, f)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuItemRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuItemRepository) GetMenuItems(ctx context.Context, ids []int) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuItemRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return _m.Called(ctx, item).Error(0)
}

func (_m *MenuItemRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return _m.Called(ctx, item).Error(0)
}

func (_m *MenuItemRepository) DeleteMenuItem(ctx context.Context, id int) (int64, error) {
	ret := _m.Called(ctx, id)
	return count(ret, 0), ret.Error(1)
}

func (_m *MenuItemRepository) SetMenuItemsAvailability(ctx context.Context, ids []int, available bool) (int64, error) {
	ret := _m.Called(ctx, ids, available)
	return count(ret, 0), ret.Error(1)
}

func (_m *MenuItemRepository) SetMenuItemModifiers(ctx context.Context, menuItemID int, modifierIDs []int) error {
	return _m.Called(ctx, menuItemID, modifierIDs).Error(0)
}

func (_m *MenuItemRepository) ListMenuItemModifiers(ctx context.Context, menuItemID int) ([]domain.Modifier, error) {
	ret := _m.Called(ctx, menuItemID)
	var r0 []domain.Modifier
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Modifier)
	}
	return r0, ret.Error(1)
}

type ModifierRepository struct {
	mock.Mock
}

func NewModifierRepository(t testingT) *ModifierRepository {
	m := &ModifierRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *ModifierRepository) ListModifiers(ctx context.Context, f domain.ModifierFilter) ([]domain.Modifier, error) {
	ret := _m.Called(ctx, f)
	var r0 []domain.Modifier
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Modifier)
	}
	return r0, ret.Error(1)
}

func (_m *ModifierRepository) GetModifier(ctx context.Context, id int) (*domain.Modifier, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Modifier
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Modifier)
	}
	return r0, ret.Error(1)
}

func (_m *ModifierRepository) GetModifiers(ctx context.Context, ids []int) ([]domain.Modifier, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Modifier
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Modifier)
	}
	return r0, ret.Error(1)
}

func (_m *ModifierRepository) CreateModifier(ctx context.Context, mod *domain.Modifier) error {
	return _m.Called(ctx, mod).Error(0)
}

func (_m *ModifierRepository) UpdateModifier(ctx context.Context, mod *domain.Modifier) error {
	return _m.Called(ctx, mod).Error(0)
}

func (_m *ModifierRepository) DeleteModifier(ctx context.Context, id int) (int64, error) {
	ret := _m.Called(ctx, id)
	return count(ret, 0), ret.Error(1)
}

// CatalogLookup resolves order item references.
type CatalogLookup struct {
	mock.Mock
}

func NewCatalogLookup(t testingT) *CatalogLookup {
	m := &CatalogLookup{}
	register(&m.Mock, t)
	return m
}

func (_m *CatalogLookup) GetMenuItems(ctx context.Context, ids []int) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogLookup) GetModifiers(ctx context.Context, ids []int) ([]domain.Modifier, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Modifier
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Modifier)
	}
	return r0, ret.Error(1)
}
