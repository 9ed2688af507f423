package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/service"
)

type Handler struct {
	Categories service.CategoryServiceInterface
	MenuItems  service.MenuItemServiceInterface
	Modifiers  service.ModifierServiceInterface
	Tables     service.TableServiceInterface
	Orders     service.OrderServiceInterface
	Settings   service.SettingsServiceInterface
	Dashboard  service.DashboardServiceInterface
	Log        *log.Entry
}

func NewHandler(
	categories service.CategoryServiceInterface,
	menuItems service.MenuItemServiceInterface,
	modifiers service.ModifierServiceInterface,
	tables service.TableServiceInterface,
	orders service.OrderServiceInterface,
	settings service.SettingsServiceInterface,
	dashboard service.DashboardServiceInterface,
	logger *log.Entry,
) *Handler {
	return &Handler{
		Categories: categories,
		MenuItems:  menuItems,
		Modifiers:  modifiers,
		Tables:     tables,
		Orders:     orders,
		Settings:   settings,
		Dashboard:  dashboard,
		Log:        logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	menu := r.PathPrefix("/api/v1/menu").Subrouter()
	menu.HandleFunc("/menu-items", h.listMenuItems).Methods("GET")
	menu.HandleFunc("/menu-items", h.createMenuItem).Methods("POST")
	menu.HandleFunc("/menu-items/bulk", h.bulkMenuItems).Methods("POST")
	menu.HandleFunc("/menu-items/bulk-availability", h.bulkAvailability).Methods("POST")
	menu.HandleFunc("/menu-items/{id:[0-9]+}", h.getMenuItem).Methods("GET")
	menu.HandleFunc("/menu-items/{id:[0-9]+}", h.patchMenuItem).Methods("PATCH")
	menu.HandleFunc("/menu-items/{id:[0-9]+}", h.deleteMenuItem).Methods("DELETE")
	menu.HandleFunc("/menu-items/{id:[0-9]+}/modifiers", h.listMenuItemModifiers).Methods("GET")
	menu.HandleFunc("/menu-items/{id:[0-9]+}/modifiers", h.setMenuItemModifiers).Methods("PUT")

	menu.HandleFunc("/categories", h.listCategories).Methods("GET")
	menu.HandleFunc("/categories", h.createCategory).Methods("POST")
	menu.HandleFunc("/categories/{id:[0-9]+}", h.getCategory).Methods("GET")
	menu.HandleFunc("/categories/{id:[0-9]+}", h.patchCategory).Methods("PATCH")
	menu.HandleFunc("/categories/{id:[0-9]+}", h.deleteCategory).Methods("DELETE")

	menu.HandleFunc("/modifiers", h.listModifiers).Methods("GET")
	menu.HandleFunc("/modifiers", h.createModifier).Methods("POST")
	menu.HandleFunc("/modifiers/{id:[0-9]+}", h.getModifier).Methods("GET")
	menu.HandleFunc("/modifiers/{id:[0-9]+}", h.patchModifier).Methods("PUT", "PATCH")
	menu.HandleFunc("/modifiers/{id:[0-9]+}", h.deleteModifier).Methods("DELETE")

	orders := r.PathPrefix("/api/v1/orders").Subrouter()
	orders.HandleFunc("/tables", h.listTables).Methods("GET")
	orders.HandleFunc("/tables", h.createTable).Methods("POST")
	orders.HandleFunc("/tables/{id:[0-9]+}", h.getTable).Methods("GET")
	orders.HandleFunc("/tables/{id:[0-9]+}", h.deleteTable).Methods("DELETE")
	orders.HandleFunc("/tables/{id:[0-9]+}/status", h.updateTableStatus).Methods("PUT")
	orders.HandleFunc("/tables/{id:[0-9]+}/clear", h.clearTable).Methods("POST")
	orders.HandleFunc("/tables/{id:[0-9]+}/orders", h.listTableOrders).Methods("GET")

	orders.HandleFunc("", h.listOrders).Methods("GET")
	orders.HandleFunc("", h.createOrder).Methods("POST")
	orders.HandleFunc("/bulk-status", h.bulkOrderStatus).Methods("POST")
	orders.HandleFunc("/{id:[0-9]+}", h.getOrder).Methods("GET")
	orders.HandleFunc("/{id:[0-9]+}", h.updateOrder).Methods("PUT")
	orders.HandleFunc("/{id:[0-9]+}", h.deleteOrder).Methods("DELETE")
	orders.HandleFunc("/{id:[0-9]+}/status", h.updateOrderStatus).Methods("PUT")
	orders.HandleFunc("/{id:[0-9]+}/items", h.addOrderItems).Methods("POST")
	orders.HandleFunc("/{id:[0-9]+}/items/{itemId:[0-9]+}", h.deleteOrderItem).Methods("DELETE")
	orders.HandleFunc("/{id:[0-9]+}/discount", h.applyDiscount).Methods("POST")
	orders.HandleFunc("/{id:[0-9]+}/discount", h.removeDiscount).Methods("DELETE")
	orders.HandleFunc("/{id:[0-9]+}/total", h.getOrderTotal).Methods("GET")
	orders.HandleFunc("/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")

	dash := r.PathPrefix("/api/v1/dashboard").Subrouter()
	dash.HandleFunc("/stats", h.dashboardStats).Methods("GET")
	dash.HandleFunc("/recent-orders", h.recentOrders).Methods("GET")
	dash.HandleFunc("/revenue", h.dailyRevenue).Methods("GET")

	r.HandleFunc("/api/v1/settings", h.getSettings).Methods("GET")
	r.HandleFunc("/api/v1/settings", h.updateSettings).Methods("PATCH")
	r.HandleFunc("/api/v1/settings/meal-period", h.setMealPeriod).Methods("PATCH")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindValidation, apperr.KindInvalidOperation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError renders err. Internal failures are logged with their cause and
// reported without it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.As(err)
	if appErr == nil {
		h.logger().WithError(err).WithFields(log.Fields{"method": r.Method, "path": r.URL.Path}).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Code:    apperr.CodeInternal,
			Message: "An unexpected error occurred",
		})
		return
	}
	h.logger().WithFields(log.Fields{"code": appErr.Code, "path": r.URL.Path}).Debug(appErr.Message)
	writeJSON(w, statusOf(appErr.Kind), errorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

func (h *Handler) logger() *log.Entry {
	if h.Log == nil {
		return log.NewEntry(log.StandardLogger())
	}
	return h.Log
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decode reads a JSON body into v. An empty body is a validation error.
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validation("Request body is required")
		}
		return apperr.Validation("Invalid JSON format: %s", err.Error())
	}
	return nil
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, apperr.Validation("Invalid %s", name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation("Query parameter %s must be an integer", name)
	}
	return v, nil
}

func queryIntPtr(r *http.Request, name string) (*int, error) {
	if r.URL.Query().Get(name) == "" {
		return nil, nil
	}
	v, err := queryInt(r, name, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperr.Validation("Query parameter %s must be a boolean", name)
	}
	return v, nil
}
