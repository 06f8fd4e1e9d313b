package httpadapter

import (
	"net/http"

	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
)

// handleCreateCampaign opens a campaign owned by the caller, who also pays
// its storage floor. Returns 201 with the stored campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var body createCampaignRequest
	if !h.decode(w, r, &body) {
		return
	}
	v, err := h.svc.CreateCampaign(r.Context(), caller, port.CreateCampaignReq{
		Title:        body.Title,
		Description:  body.Description,
		ImageURL:     body.ImageURL,
		GoalLamports: body.GoalLamports,
		DeadlineTS:   body.DeadlineTS,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, newCampaignViewResponse(v))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]campaignResponse, 0, len(views))
	for i := range views {
		resp = append(resp, newCampaignViewResponse(&views[i]))
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	cid, ok := h.cid(w, r)
	if !ok {
		return
	}
	v, err := h.svc.GetCampaign(r.Context(), cid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newCampaignViewResponse(v))
}

// handleUpdateCampaign replaces all three text fields. Omitted fields are
// stored empty.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	cid, ok := h.cid(w, r)
	if !ok {
		return
	}
	var body updateCampaignRequest
	if !h.decode(w, r, &body) {
		return
	}
	v, err := h.svc.UpdateCampaign(r.Context(), caller, cid, domain.CampaignText{
		Title:       body.Title,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newCampaignViewResponse(v))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	cid, ok := h.cid(w, r)
	if !ok {
		return
	}
	res, err := h.svc.DeleteCampaign(r.Context(), caller, cid)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, deleteResponse{
		Campaign:  newCampaignResponse(&res.Campaign),
		Reclaimed: res.Reclaimed,
	})
}
