package service

import (
	"context"
	"strings"

	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/domain"
	"sushi-pos/pos-svc/internal/money"
)

const (
	DefaultMenuPageSize = 12
	MaxPageSize         = 100
)

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	if skip < 0 || limit < 1 {
		return nil, apperr.Validation("skip must be >= 0 and limit >= 1")
	}
	return s.repo.ListCategories(ctx, skip, limit)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*domain.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("Category name is required")
	}
	c := &domain.Category{Name: name, Description: in.Description, DisplayOrder: in.DisplayOrder}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Patch(ctx context.Context, id int, p domain.CategoryPatch) (*domain.Category, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, apperr.Validation("Category name cannot be empty")
		}
		c.Name = name
	}
	if p.Description != nil {
		c.Description = p.Description
	}
	if p.DisplayOrder != nil {
		c.DisplayOrder = *p.DisplayOrder
	}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	n, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("Category", id)
	}
	return nil
}

var _ CategoryServiceInterface = (*CategoryService)(nil)

type MenuItemService struct {
	repo       MenuItemRepository
	categories CategoryRepository
	modifiers  ModifierRepository
}

func NewMenuItemService(repo MenuItemRepository, categories CategoryRepository, modifiers ModifierRepository) *MenuItemService {
	return &MenuItemService{repo: repo, categories: categories, modifiers: modifiers}
}

func (s *MenuItemService) List(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error) {
	if f.Limit == 0 {
		f.Limit = DefaultMenuPageSize
	}
	if f.Skip < 0 || f.Limit < 1 || f.Limit > MaxPageSize {
		return nil, apperr.Validation("skip must be >= 0 and limit between 1 and %d", MaxPageSize)
	}
	f.Search = strings.TrimSpace(f.Search)
	return s.repo.ListMenuItems(ctx, f)
}

func (s *MenuItemService) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *MenuItemService) Create(ctx context.Context, in domain.MenuItemInput) (*domain.MenuItem, error) {
	m := &domain.MenuItem{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Price:        money.Round(in.Price),
		CategoryID:   in.CategoryID,
		ImageURL:     in.ImageURL,
		IsAvailable:  true,
		IsPopular:    in.IsPopular,
		MealPeriod:   domain.MenuMealPeriodBoth,
		DisplayOrder: in.DisplayOrder,
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	if in.MealPeriod != "" {
		period, err := domain.ParseMenuMealPeriod(in.MealPeriod)
		if err != nil {
			return nil, err
		}
		m.MealPeriod = period
	}
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := s.repo.CreateMenuItem(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuItemService) Patch(ctx context.Context, id int, p domain.MenuItemPatch) (*domain.MenuItem, error) {
	m, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyMenuItemPatch(m, p); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateMenuItem(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func applyMenuItemPatch(m *domain.MenuItem, p domain.MenuItemPatch) error {
	if p.Name != nil {
		m.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.Price != nil {
		m.Price = money.Round(*p.Price)
	}
	if p.CategoryID != nil {
		m.CategoryID = p.CategoryID
	}
	if p.ImageURL != nil {
		m.ImageURL = p.ImageURL
	}
	if p.IsAvailable != nil {
		m.IsAvailable = *p.IsAvailable
	}
	if p.IsPopular != nil {
		m.IsPopular = *p.IsPopular
	}
	if p.MealPeriod != nil {
		period, err := domain.ParseMenuMealPeriod(*p.MealPeriod)
		if err != nil {
			return err
		}
		m.MealPeriod = period
	}
	if p.DisplayOrder != nil {
		m.DisplayOrder = *p.DisplayOrder
	}
	return nil
}

func (s *MenuItemService) validate(ctx context.Context, m *domain.MenuItem) error {
	if m.Name == "" {
		return apperr.Validation("Menu item name is required")
	}
	if money.IsNegative(m.Price) {
		return apperr.Validation("Menu item price must be >= 0")
	}
	if m.CategoryID != nil {
		if _, err := s.categories.GetCategory(ctx, *m.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

func (s *MenuItemService) Delete(ctx context.Context, id int) error {
	n, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("MenuItem", id)
	}
	return nil
}

// Bulk applies one operation to many menu items. Failures are collected per
// element and never undo the elements that succeeded.
func (s *MenuItemService) Bulk(ctx context.Context, req domain.BulkMenuItemRequest) (*domain.BulkResult, error) {
	op := strings.ToLower(strings.TrimSpace(req.OperationType))
	res := &domain.BulkResult{Operation: op, Affected: []int{}}

	switch op {
	case domain.BulkCreate:
		if len(req.Items) == 0 {
			return nil, apperr.Validation("items required for create operation")
		}
		for i, in := range req.Items {
			m, err := s.Create(ctx, in)
			if err != nil {
				res.FailAt(i, err)
				continue
			}
			res.Affected = append(res.Affected, m.ID)
		}

	case domain.BulkUpdate, domain.BulkDelete:
		if len(req.ItemIDs) == 0 {
			return nil, apperr.Validation("item_ids required for %s operation", op)
		}
		if op == domain.BulkUpdate && req.Data == nil {
			return nil, apperr.Validation("data required for update operation")
		}
		found, err := s.repo.GetMenuItems(ctx, req.ItemIDs)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, apperr.NotFound("MenuItem", req.ItemIDs)
		}
		exists := make(map[int]bool, len(found))
		for _, m := range found {
			exists[m.ID] = true
		}
		for _, id := range req.ItemIDs {
			if !exists[id] {
				res.Fail(id, apperr.NotFound("MenuItem", id))
				continue
			}
			if op == domain.BulkUpdate {
				_, err = s.Patch(ctx, id, *req.Data)
			} else {
				err = s.Delete(ctx, id)
			}
			if err != nil {
				res.Fail(id, err)
				continue
			}
			res.Affected = append(res.Affected, id)
		}

	default:
		return nil, apperr.Validation("Invalid operation type. Must be one of: create, update, delete")
	}

	res.Success = len(res.Affected) > 0 || len(res.Errors) == 0
	return res, nil
}

func (s *MenuItemService) BulkAvailability(ctx context.Context, req domain.BulkAvailabilityRequest) (int64, error) {
	if len(req.ItemIDs) == 0 {
		return 0, apperr.Validation("item_ids must not be empty")
	}
	n, err := s.repo.SetMenuItemsAvailability(ctx, req.ItemIDs, req.IsAvailable)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, apperr.NotFound("MenuItem", req.ItemIDs)
	}
	return n, nil
}

// SetModifiers replaces the modifiers customers may pick for a menu item.
func (s *MenuItemService) SetModifiers(ctx context.Context, id int, modifierIDs []int) ([]domain.Modifier, error) {
	if _, err := s.repo.GetMenuItem(ctx, id); err != nil {
		return nil, err
	}
	ids := uniqueIDs(modifierIDs)
	if len(ids) > 0 {
		found, err := s.modifiers.GetModifiers(ctx, ids)
		if err != nil {
			return nil, err
		}
		if missing := missingIDs(ids, modifierIDsOf(found)); len(missing) > 0 {
			return nil, apperr.NotFound("Modifier", missing[0])
		}
	}
	if err := s.repo.SetMenuItemModifiers(ctx, id, ids); err != nil {
		return nil, err
	}
	return s.repo.ListMenuItemModifiers(ctx, id)
}

func (s *MenuItemService) ListModifiers(ctx context.Context, id int) ([]domain.Modifier, error) {
	if _, err := s.repo.GetMenuItem(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListMenuItemModifiers(ctx, id)
}

var _ MenuItemServiceInterface = (*MenuItemService)(nil)

type ModifierService struct {
	repo       ModifierRepository
	categories CategoryRepository
}

func NewModifierService(repo ModifierRepository, categories CategoryRepository) *ModifierService {
	return &ModifierService{repo: repo, categories: categories}
}

func (s *ModifierService) List(ctx context.Context, f domain.ModifierFilter) ([]domain.Modifier, error) {
	return s.repo.ListModifiers(ctx, f)
}

func (s *ModifierService) Get(ctx context.Context, id int) (*domain.Modifier, error) {
	return s.repo.GetModifier(ctx, id)
}

// Create accepts any price, negative ones included, so a modifier can act
// as a surcharge or a reduction.
func (s *ModifierService) Create(ctx context.Context, in domain.ModifierInput) (*domain.Modifier, error) {
	m := &domain.Modifier{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Price:        money.Round(in.Price),
		CategoryID:   in.CategoryID,
		IsAvailable:  true,
		DisplayOrder: in.DisplayOrder,
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := s.repo.CreateModifier(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ModifierService) Patch(ctx context.Context, id int, p domain.ModifierPatch) (*domain.Modifier, error) {
	m, err := s.repo.GetModifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		m.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.Price != nil {
		m.Price = money.Round(*p.Price)
	}
	if p.CategoryID != nil {
		m.CategoryID = p.CategoryID
	}
	if p.IsAvailable != nil {
		m.IsAvailable = *p.IsAvailable
	}
	if p.DisplayOrder != nil {
		m.DisplayOrder = *p.DisplayOrder
	}
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateModifier(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ModifierService) validate(ctx context.Context, m *domain.Modifier) error {
	if m.Name == "" {
		return apperr.Validation("Modifier name is required")
	}
	if m.CategoryID != nil {
		if _, err := s.categories.GetCategory(ctx, *m.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

func (s *ModifierService) Delete(ctx context.Context, id int) error {
	n, err := s.repo.DeleteModifier(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("Modifier", id)
	}
	return nil
}

var _ ModifierServiceInterface = (*ModifierService)(nil)

func uniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// missingIDs returns the ids in want that are absent from have, in order.
func missingIDs(want, have []int) []int {
	present := make(map[int]bool, len(have))
	for _, id := range have {
		present[id] = true
	}
	var missing []int
	for _, id := range want {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func modifierIDsOf(mods []domain.Modifier) []int {
	ids := make([]int, len(mods))
	for i, m := range mods {
		ids[i] = m.ID
	}
	return ids
}
