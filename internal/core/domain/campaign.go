package domain

import (
	"github.com/gagliardetto/solana-go"
)

// Text limits in bytes, enforced identically on create and update.
const (
	TitleMaxLen = 64
	DescMaxLen  = 512
	URLMaxLen   = 200
)

// CampaignSpace is the fixed serialized size of a campaign record,
// discriminator included. Text fields are sized at their maximum length.
const CampaignSpace = 8 + // discriminator
	32 + 32 + 8 + // platform, creator, cid
	(4 + TitleMaxLen) + (4 + DescMaxLen) + (4 + URLMaxLen) +
	8 + 8 + 8 + 8 + // goal, raised, deadline, donation count
	1 + 1 // is_deleted, bump

// Campaign is one fundraising effort. Amounts are in lamports and the
// deadline is a unix timestamp in seconds.
type Campaign struct {
	Address        solana.PublicKey
	Platform       solana.PublicKey
	Creator        solana.PublicKey
	CID            uint64
	Title          string
	Description    string
	ImageURL       string
	GoalLamports   uint64
	RaisedLamports uint64
	DeadlineTS     int64
	DonationCount  uint64
	IsDeleted      bool
	Bump           uint8
}

// CampaignText groups the mutable text fields of a campaign.
type CampaignText struct {
	Title       string
	Description string
	ImageURL    string
}

// Validate checks the byte lengths of the text fields.
func (t CampaignText) Validate() error {
	if len(t.Title) > TitleMaxLen {
		return ErrTitleTooLong
	}
	if len(t.Description) > DescMaxLen {
		return ErrDescriptionTooLong
	}
	if len(t.ImageURL) > URLMaxLen {
		return ErrURLTooLong
	}
	return nil
}

// CanWithdraw reports whether the creator may withdraw at now: the goal
// has been reached or the deadline has passed.
func (c *Campaign) CanWithdraw(now int64) bool {
	return c.RaisedLamports >= c.GoalLamports || now >= c.DeadlineTS
}

// IsCreator reports whether who owns the campaign.
func (c *Campaign) IsCreator(who solana.PublicKey) bool {
	return c.Creator.Equals(who)
}

// ApplyDonation records a net donation. Both counters saturate instead of
// wrapping.
func (c *Campaign) ApplyDonation(net uint64) {
	c.RaisedLamports = SaturatingAdd(c.RaisedLamports, net)
	c.DonationCount = SaturatingAdd(c.DonationCount, 1)
}

// SetText replaces the text fields. Callers validate first.
func (c *Campaign) SetText(t CampaignText) {
	c.Title = t.Title
	c.Description = t.Description
	c.ImageURL = t.ImageURL
}
