package httpapi

import (
	"net/http"
	"time"

	"sushi-pos/events"
	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/domain"
)

// statusFromRequest accepts the status as a query parameter or a JSON body.
func statusFromRequest(r *http.Request) (domain.StatusUpdate, error) {
	var u domain.StatusUpdate
	if s := r.URL.Query().Get("status"); s != "" {
		u.Status = s
		v, err := queryIntPtr(r, "expected_version")
		u.ExpectedVersion = v
		return u, err
	}
	if err := decode(r, &u); err != nil {
		return u, err
	}
	if u.Status == "" {
		return u, apperr.Validation("status is required")
	}
	return u, nil
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var in domain.TableInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.Tables.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.Tables.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) updateTableStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := statusFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.Tables.UpdateStatus(r.Context(), id, u.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Tables.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Table deleted successfully"})
}

func (h *Handler) clearTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Tables.Clear(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Table cleared successfully"})
}

func (h *Handler) listTableOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	orders, err := h.Tables.Orders(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	var (
		f   domain.OrderFilter
		err error
	)
	if f.Skip, err = queryInt(r, "skip", 0); err != nil {
		h.writeError(w, r, err)
		return
	}
	if f.Limit, err = queryInt(r, "limit", 0); err != nil {
		h.writeError(w, r, err)
		return
	}
	if f.TableID, err = queryIntPtr(r, "table_id"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if s := r.URL.Query().Get("status"); s != "" {
		st, err := domain.ParseOrderStatus(s)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		f.Status = &st
	}
	orders, err := h.Orders.List(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.OrderInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	o, err := h.Orders.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	o, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var p domain.OrderPatch
	if err := decode(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	o, err := h.Orders.Update(r.Context(), id, p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Orders.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := statusFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	o, err := h.Orders.UpdateStatus(r.Context(), id, u)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) bulkOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.BulkOrderStatusRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.Orders.BulkUpdateStatus(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) addOrderItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var items []domain.OrderItemInput
	if err := decode(r, &items); err != nil {
		h.writeError(w, r, err)
		return
	}
	o, err := h.Orders.AddItems(r.Context(), id, items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	o, err := h.Orders.RemoveItem(r.Context(), id, itemID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) applyDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in domain.DiscountInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.Orders.ApplyDiscount(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) removeDiscount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Orders.RemoveDiscount(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Discount removed successfully"})
}

func (h *Handler) getOrderTotal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.Orders.Total(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	png, err := h.Orders.QRCode(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) recentOrders(w http.ResponseWriter, r *http.Request) {
	recent, err := h.Dashboard.RecentOrders(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recent)
}

func (h *Handler) dailyRevenue(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(events.DateLayout, raw)
		if err != nil {
			h.writeError(w, r, apperr.Validation("date must be formatted as YYYY-MM-DD"))
			return
		}
		day = parsed
	}
	rev, err := h.Dashboard.DailyRevenue(r.Context(), day)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Settings.Get(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var p domain.SettingsPatch
	if err := decode(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.Settings.Update(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) setMealPeriod(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("meal_period")
	if period == "" {
		var body struct {
			MealPeriod string `json:"meal_period"`
		}
		if err := decode(r, &body); err != nil {
			h.writeError(w, r, err)
			return
		}
		period = body.MealPeriod
	}
	s, err := h.Settings.SetMealPeriod(r.Context(), period)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
