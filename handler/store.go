package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type storeReq struct {
	Name string `json:"name"`
}

func (h *Handler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req storeReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	dto, err := h.svc.CreateStore(h.auth.UserID(r), req.Name)
	if err != nil {
		h.fail(w, "STORES_POST", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) GetStore(w http.ResponseWriter, r *http.Request) {
	dto, err := h.svc.GetStore(mux.Vars(r)["storeId"])
	if err != nil {
		h.fail(w, "STORE_GET", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var req storeReq
	if err := decodeBody(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	dto, err := h.svc.UpdateStore(h.auth.UserID(r), mux.Vars(r)["storeId"], req.Name)
	if err != nil {
		h.fail(w, "STORE_PATCH", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	dto, err := h.svc.DeleteStore(h.auth.UserID(r), mux.Vars(r)["storeId"])
	if err != nil {
		h.fail(w, "STORE_DELETE", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}
