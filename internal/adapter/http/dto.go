package httpadapter

import (
	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
)

type initializePlatformRequest struct {
	FeeBps       uint16  `json:"fee_bps"`
	TreasuryBump uint8   `json:"treasury_bump"`
	Treasury     *string `json:"treasury,omitempty"`
}

type updatePlatformRequest struct {
	FeeBps *uint16 `json:"fee_bps"`
}

type createCampaignRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	GoalLamports uint64 `json:"goal_lamports"`
	DeadlineTS   int64  `json:"deadline_ts"`
}

type updateCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type amountRequest struct {
	Amount uint64 `json:"amount"`
}

type platformResponse struct {
	Address       string `json:"address"`
	Authority     string `json:"authority"`
	FeeBps        uint16 `json:"fee_bps"`
	Treasury      string `json:"treasury"`
	CampaignCount uint64 `json:"campaign_count"`
	Bump          uint8  `json:"bump"`
}

func newPlatformResponse(p *domain.Platform) platformResponse {
	return platformResponse{
		Address:       p.Address.String(),
		Authority:     p.Authority.String(),
		FeeBps:        p.FeeBps,
		Treasury:      p.Treasury.String(),
		CampaignCount: p.CampaignCount,
		Bump:          p.Bump,
	}
}

type campaignResponse struct {
	Address        string  `json:"address"`
	Platform       string  `json:"platform"`
	Creator        string  `json:"creator"`
	CID            uint64  `json:"cid"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url"`
	GoalLamports   uint64  `json:"goal_lamports"`
	RaisedLamports uint64  `json:"raised_lamports"`
	DeadlineTS     int64   `json:"deadline_ts"`
	DonationCount  uint64  `json:"donation_count"`
	IsDeleted      bool    `json:"is_deleted"`
	Bump           uint8   `json:"bump"`
	Balance        *uint64 `json:"balance_lamports,omitempty"`
	Withdrawable   *bool   `json:"withdrawable,omitempty"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		Address:        c.Address.String(),
		Platform:       c.Platform.String(),
		Creator:        c.Creator.String(),
		CID:            c.CID,
		Title:          c.Title,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		GoalLamports:   c.GoalLamports,
		RaisedLamports: c.RaisedLamports,
		DeadlineTS:     c.DeadlineTS,
		DonationCount:  c.DonationCount,
		IsDeleted:      c.IsDeleted,
		Bump:           c.Bump,
	}
}

func newCampaignViewResponse(v *port.CampaignView) campaignResponse {
	resp := newCampaignResponse(&v.Campaign)
	balance, withdrawable := v.Balance, v.Withdrawable
	resp.Balance, resp.Withdrawable = &balance, &withdrawable
	return resp
}

type receiptResponse struct {
	Address   string `json:"address"`
	Campaign  string `json:"campaign"`
	Donor     string `json:"donor"`
	Amount    uint64 `json:"amount"`
	Fee       uint64 `json:"fee"`
	Net       uint64 `json:"net"`
	Seq       uint64 `json:"seq"`
	DonatedAt int64  `json:"donated_at"`
}

func newReceiptResponse(r *domain.DonationReceipt) receiptResponse {
	return receiptResponse{
		Address:   r.Address.String(),
		Campaign:  r.Campaign.String(),
		Donor:     r.Donor.String(),
		Amount:    r.Amount,
		Fee:       r.Fee,
		Net:       r.Net,
		Seq:       r.Seq,
		DonatedAt: r.DonatedAt,
	}
}

type donationResponse struct {
	Campaign campaignResponse `json:"campaign"`
	Receipt  receiptResponse  `json:"receipt"`
	Fee      uint64           `json:"fee"`
	Net      uint64           `json:"net"`
}

type withdrawResponse struct {
	Campaign campaignResponse `json:"campaign"`
	Amount   uint64           `json:"amount"`
}

type deleteResponse struct {
	Campaign  campaignResponse `json:"campaign"`
	Reclaimed uint64           `json:"reclaimed"`
}

type balanceResponse struct {
	Address  string `json:"address"`
	Lamports uint64 `json:"lamports"`
}
