package httpapi

import (
	"net/http"

	"github.com/shopspring/decimal"

	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/domain"
)

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	f, err := menuItemFilter(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	items, err := h.MenuItems.List(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func menuItemFilter(r *http.Request) (domain.MenuItemFilter, error) {
	var (
		f   domain.MenuItemFilter
		err error
	)
	if f.Skip, err = queryInt(r, "skip", 0); err != nil {
		return f, err
	}
	if f.Limit, err = queryInt(r, "limit", 0); err != nil {
		return f, err
	}
	if f.CategoryID, err = queryIntPtr(r, "category_id"); err != nil {
		return f, err
	}
	f.Search = r.URL.Query().Get("search")
	if f.MinPrice, err = queryDecimal(r, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = queryDecimal(r, "max_price"); err != nil {
		return f, err
	}
	return f, nil
}

func queryDecimal(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperr.Validation("Query parameter %s must be a number", name)
	}
	return &d, nil
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.MenuItems.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var in domain.MenuItemInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.MenuItems.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) patchMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var p domain.MenuItemPatch
	if err := decode(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.MenuItems.Patch(r.Context(), id, p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.MenuItems.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted successfully"})
}

func (h *Handler) bulkMenuItems(w http.ResponseWriter, r *http.Request) {
	var req domain.BulkMenuItemRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.MenuItems.Bulk(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) bulkAvailability(w http.ResponseWriter, r *http.Request) {
	var req domain.BulkAvailabilityRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	n, err := h.MenuItems.BulkAvailability(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"affected_count": n})
}

func (h *Handler) listMenuItemModifiers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	mods, err := h.MenuItems.ListModifiers(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mods)
}

func (h *Handler) setMenuItemModifiers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body struct {
		ModifierIDs []int `json:"modifier_ids"`
	}
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	mods, err := h.MenuItems.SetModifiers(r.Context(), id, body.ModifierIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mods)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 100)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	categories, err := h.Categories.List(r.Context(), skip, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in domain.CategoryInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.Categories.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) patchCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var p domain.CategoryPatch
	if err := decode(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.Categories.Patch(r.Context(), id, p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Categories.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

func (h *Handler) listModifiers(w http.ResponseWriter, r *http.Request) {
	var (
		f   domain.ModifierFilter
		err error
	)
	if f.CategoryID, err = queryIntPtr(r, "category_id"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if f.AvailableOnly, err = queryBool(r, "available"); err != nil {
		h.writeError(w, r, err)
		return
	}
	mods, err := h.Modifiers.List(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mods)
}

func (h *Handler) getModifier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	m, err := h.Modifiers.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) createModifier(w http.ResponseWriter, r *http.Request) {
	var in domain.ModifierInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	m, err := h.Modifiers.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) patchModifier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var p domain.ModifierPatch
	if err := decode(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	m, err := h.Modifiers.Patch(r.Context(), id, p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) deleteModifier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Modifiers.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Modifier deleted successfully"})
}
