// Package handler is the HTTP layer: it decodes request shapes, resolves the
// caller through the auth client, delegates to the service, and translates
// service error kinds to transport status codes.
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"commerce-admin/auth"
	"commerce-admin/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	svc  service.ServiceInterface
	auth auth.Authenticator
}

func NewHandler(svc service.ServiceInterface, authn auth.Authenticator) *Handler {
	return &Handler{svc: svc, auth: authn}
}

// RegisterRoutes registers all routes on the provided router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Stores (tenancy root)
	r.HandleFunc("/api/stores", h.CreateStore).Methods("POST")
	r.HandleFunc("/api/stores/{storeId}", h.GetStore).Methods("GET")
	r.HandleFunc("/api/stores/{storeId}", h.UpdateStore).Methods("PATCH")
	r.HandleFunc("/api/stores/{storeId}", h.DeleteStore).Methods("DELETE")

	// Billboards
	r.HandleFunc("/api/{storeId}/billboards", h.ListBillboards).Methods("GET")
	r.HandleFunc("/api/{storeId}/billboards", h.CreateBillboard).Methods("POST")
	r.HandleFunc("/api/{storeId}/billboards/{billboardId}", h.GetBillboard).Methods("GET")
	r.HandleFunc("/api/{storeId}/billboards/{billboardId}", h.UpdateBillboard).Methods("PATCH")
	r.HandleFunc("/api/{storeId}/billboards/{billboardId}", h.DeleteBillboard).Methods("DELETE")

	// Categories
	r.HandleFunc("/api/{storeId}/categories", h.ListCategories).Methods("GET")
	r.HandleFunc("/api/{storeId}/categories", h.CreateCategory).Methods("POST")
	r.HandleFunc("/api/{storeId}/categories/{categoryId}", h.GetCategory).Methods("GET")
	r.HandleFunc("/api/{storeId}/categories/{categoryId}", h.UpdateCategory).Methods("PATCH")
	r.HandleFunc("/api/{storeId}/categories/{categoryId}", h.DeleteCategory).Methods("DELETE")

	// Products
	r.HandleFunc("/api/{storeId}/products", h.ListProducts).Methods("GET")
	r.HandleFunc("/api/{storeId}/products", h.CreateProduct).Methods("POST")
	r.HandleFunc("/api/{storeId}/products/{productId}", h.GetProduct).Methods("GET")
	r.HandleFunc("/api/{storeId}/products/{productId}", h.UpdateProduct).Methods("PATCH")
	r.HandleFunc("/api/{storeId}/products/{productId}", h.DeleteProduct).Methods("DELETE")

	// Orders (read-only; rows materialize through checkout)
	r.HandleFunc("/api/{storeId}/orders", h.ListOrders).Methods("GET")

	// Checkout + payment confirmation
	r.HandleFunc("/api/{storeId}/checkout", h.Checkout).Methods("POST")
	r.HandleFunc("/api/{storeId}/checkout", h.CheckoutOptions).Methods("OPTIONS")
	r.HandleFunc("/api/webhook", h.Webhook).Methods("POST")

	// Dashboard aggregations
	r.HandleFunc("/api/{storeId}/overview", h.Overview).Methods("GET")
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	http.Error(w, msg, code)
}

// fail maps service error kinds to statuses: missing fields and bad checkout
// input to 400, unauthenticated to 403, non-owner to 405, everything else to
// an opaque 500 logged under the handler's tag.
func (h *Handler) fail(w http.ResponseWriter, tag string, err error) {
	var mf *service.MissingFieldError
	switch {
	case errors.As(err, &mf):
		writeErr(w, http.StatusBadRequest, mf.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		writeErr(w, http.StatusForbidden, "Unauthenticated")
	case errors.Is(err, service.ErrNotOwner):
		writeErr(w, http.StatusMethodNotAllowed, "Unauthorized")
	case errors.Is(err, service.ErrNoProducts), errors.Is(err, service.ErrUnknownProduct):
		writeErr(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[%s] %v", tag, err)
		writeErr(w, http.StatusInternalServerError, "Internal error")
	}
}
