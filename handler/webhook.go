package handler

import (
	"io"
	"net/http"
)

// Webhook receives the payment provider's out-of-band confirmation. The
// provider signs the payload; verification happens inside the service's
// provider client before any state changes.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.svc.ConfirmCheckout(payload, r.Header.Get("Stripe-Signature")); err != nil {
		h.fail(w, "WEBHOOK_POST", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}
