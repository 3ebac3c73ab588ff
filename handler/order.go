package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.svc.ListOrders(mux.Vars(r)["storeId"])
	if err != nil {
		h.fail(w, "ORDERS_GET", err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}
