package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type checkoutReq struct {
	ProductIDs []string `json:"productIds"`
}

// setCORS attaches the permissive headers that let a separate storefront
// origin call the checkout endpoint directly.
func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

func (h *Handler) CheckoutOptions(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	writeJSON(w, http.StatusOK, map[string]any{})
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	var req checkoutReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	url, err := h.svc.Checkout(mux.Vars(r)["storeId"], req.ProductIDs)
	if err != nil {
		h.fail(w, "CHECKOUT_POST", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
