package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type categoryReq struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId"`
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	dto, err := h.svc.CreateCategory(h.auth.UserID(r), mux.Vars(r)["storeId"], req.Name, req.BillboardID)
	if err != nil {
		h.fail(w, "CATEGORIES_POST", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// GetCategory returns the category with its billboard included.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	dto, err := h.svc.GetCategory(mux.Vars(r)["categoryId"])
	if err != nil {
		h.fail(w, "CATEGORY_GET", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.svc.ListCategories(mux.Vars(r)["storeId"])
	if err != nil {
		h.fail(w, "CATEGORIES_GET", err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	vars := mux.Vars(r)
	dto, err := h.svc.UpdateCategory(h.auth.UserID(r), vars["storeId"], vars["categoryId"], req.Name, req.BillboardID)
	if err != nil {
		h.fail(w, "CATEGORY_PATCH", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dto, err := h.svc.DeleteCategory(h.auth.UserID(r), vars["storeId"], vars["categoryId"])
	if err != nil {
		h.fail(w, "CATEGORY_DELETE", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}
