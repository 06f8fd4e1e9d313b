package httpadapter

import "net/http"

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	addr, ok := h.address(w, r)
	if !ok {
		return
	}
	lamports, err := h.svc.Balance(r.Context(), addr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, balanceResponse{Address: addr.String(), Lamports: lamports})
}

// handleAirdrop mints lamports into an address. Only routed when the
// faucet is enabled.
func (h *Handler) handleAirdrop(w http.ResponseWriter, r *http.Request) {
	addr, ok := h.address(w, r)
	if !ok {
		return
	}
	var body amountRequest
	if !h.decode(w, r, &body) {
		return
	}
	lamports, err := h.svc.Airdrop(r.Context(), addr, body.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, balanceResponse{Address: addr.String(), Lamports: lamports})
}
