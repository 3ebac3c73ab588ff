package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type billboardReq struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

func (h *Handler) CreateBillboard(w http.ResponseWriter, r *http.Request) {
	var req billboardReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	dto, err := h.svc.CreateBillboard(h.auth.UserID(r), mux.Vars(r)["storeId"], req.Label, req.ImageURL)
	if err != nil {
		h.fail(w, "BILLBOARDS_POST", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) GetBillboard(w http.ResponseWriter, r *http.Request) {
	dto, err := h.svc.GetBillboard(mux.Vars(r)["billboardId"])
	if err != nil {
		h.fail(w, "BILLBOARD_GET", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) ListBillboards(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.svc.ListBillboards(mux.Vars(r)["storeId"])
	if err != nil {
		h.fail(w, "BILLBOARDS_GET", err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) UpdateBillboard(w http.ResponseWriter, r *http.Request) {
	var req billboardReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	vars := mux.Vars(r)
	dto, err := h.svc.UpdateBillboard(h.auth.UserID(r), vars["storeId"], vars["billboardId"], req.Label, req.ImageURL)
	if err != nil {
		h.fail(w, "BILLBOARD_PATCH", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) DeleteBillboard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dto, err := h.svc.DeleteBillboard(h.auth.UserID(r), vars["storeId"], vars["billboardId"])
	if err != nil {
		h.fail(w, "BILLBOARD_DELETE", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}
