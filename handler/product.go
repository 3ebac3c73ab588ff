package handler

import (
	"net/http"

	"commerce-admin/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type productReq struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	IsArchived bool            `json:"isArchived"`
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	in := service.ProductInput{Name: req.Name, Price: req.Price, IsArchived: req.IsArchived}
	dto, err := h.svc.CreateProduct(h.auth.UserID(r), mux.Vars(r)["storeId"], in)
	if err != nil {
		h.fail(w, "PRODUCTS_POST", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	dto, err := h.svc.GetProduct(mux.Vars(r)["productId"])
	if err != nil {
		h.fail(w, "PRODUCT_GET", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.svc.ListProducts(mux.Vars(r)["storeId"])
	if err != nil {
		h.fail(w, "PRODUCTS_GET", err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	vars := mux.Vars(r)
	in := service.ProductInput{Name: req.Name, Price: req.Price, IsArchived: req.IsArchived}
	dto, err := h.svc.UpdateProduct(h.auth.UserID(r), vars["storeId"], vars["productId"], in)
	if err != nil {
		h.fail(w, "PRODUCT_PATCH", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dto, err := h.svc.DeleteProduct(h.auth.UserID(r), vars["storeId"], vars["productId"])
	if err != nil {
		h.fail(w, "PRODUCT_DELETE", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}
