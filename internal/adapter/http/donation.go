package httpadapter

import "net/http"

// handleDonate moves amount lamports from the caller into the campaign,
// less the platform fee. Returns 201 with the receipt.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	donor, ok := h.caller(w, r)
	if !ok {
		return
	}
	cid, ok := h.cid(w, r)
	if !ok {
		return
	}
	var body amountRequest
	if !h.decode(w, r, &body) {
		return
	}
	res, err := h.svc.Donate(r.Context(), donor, cid, body.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, donationResponse{
		Campaign: newCampaignResponse(&res.Campaign),
		Receipt:  newReceiptResponse(&res.Receipt),
		Fee:      res.Fee,
		Net:      res.Net,
	})
}

func (h *Handler) handleListDonations(w http.ResponseWriter, r *http.Request) {
	cid, ok := h.cid(w, r)
	if !ok {
		return
	}
	receipts, err := h.svc.ListDonations(r.Context(), cid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]receiptResponse, 0, len(receipts))
	for i := range receipts {
		resp = append(resp, newReceiptResponse(&receipts[i]))
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// handleWithdraw pays the campaign balance above its storage floor to the
// creator. A zero amount is a successful response.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	cid, ok := h.cid(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Withdraw(r.Context(), caller, cid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, withdrawResponse{
		Campaign: newCampaignResponse(&res.Campaign),
		Amount:   res.Amount,
	})
}
