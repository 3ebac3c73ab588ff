package handler

import (
	"net/http"

	"commerce-admin/service"

	"github.com/gorilla/mux"
)

// Overview serves the three dashboard aggregations in one response.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	sales, err := h.svc.SalesCount(storeID)
	if err != nil {
		h.fail(w, "OVERVIEW_GET", err)
		return
	}
	stock, err := h.svc.StockCount(storeID)
	if err != nil {
		h.fail(w, "OVERVIEW_GET", err)
		return
	}
	revenue, err := h.svc.TotalRevenue(storeID)
	if err != nil {
		h.fail(w, "OVERVIEW_GET", err)
		return
	}

	writeJSON(w, http.StatusOK, service.OverviewDTO{
		SalesCount:   sales,
		StockCount:   stock,
		TotalRevenue: revenue,
	})
}
