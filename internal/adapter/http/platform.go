package httpadapter

import (
	"net/http"

	"github.com/gagliardetto/solana-go"

	"salina-hive/internal/core/port"
)

// handleInitializePlatform creates the platform singleton with the caller
// as authority. An optional treasury address redirects fees away from the
// platform record. Returns 201 on success and 409 if already initialized.
func (h *Handler) handleInitializePlatform(w http.ResponseWriter, r *http.Request) {
	payer, ok := h.caller(w, r)
	if !ok {
		return
	}
	var body initializePlatformRequest
	if !h.decode(w, r, &body) {
		return
	}
	req := port.InitializePlatformReq{FeeBps: body.FeeBps, TreasuryBump: body.TreasuryBump}
	if body.Treasury != nil {
		treasury, err := solana.PublicKeyFromBase58(*body.Treasury)
		if err != nil {
			h.badRequest(w, r, "invalid treasury address")
			return
		}
		req.Treasury = &treasury
	}
	p, err := h.svc.InitializePlatform(r.Context(), payer, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, newPlatformResponse(p))
}

func (h *Handler) handleGetPlatform(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPlatform(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newPlatformResponse(p))
}

// handleUpdatePlatform changes the fee rate. The body must carry fee_bps.
func (h *Handler) handleUpdatePlatform(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var body updatePlatformRequest
	if !h.decode(w, r, &body) {
		return
	}
	if body.FeeBps == nil {
		h.badRequest(w, r, "fee_bps is required")
		return
	}
	p, err := h.svc.UpdatePlatformSettings(r.Context(), caller, *body.FeeBps)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newPlatformResponse(p))
}
