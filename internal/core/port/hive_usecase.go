package port

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"salina-hive/internal/core/domain"
)

// HiveUseCase defines the ledger operations exposed by the crowdfunding
// core. This interface represents the primary port into the application
// domain. Every mutating method runs as one atomic transaction against the
// LedgerStore and either fully commits or returns a typed domain error.
type HiveUseCase interface {
	// InitializePlatform creates the platform singleton with payer as its
	// authority. Fails with domain.ErrAlreadyInitialized on a second call.
	InitializePlatform(ctx context.Context, payer solana.PublicKey, req InitializePlatformReq) (*domain.Platform, error)

	// GetPlatform returns the platform singleton.
	GetPlatform(ctx context.Context) (*domain.Platform, error)

	// UpdatePlatformSettings changes the fee rate. Only the platform
	// authority may call it.
	UpdatePlatformSettings(ctx context.Context, caller solana.PublicKey, feeBps uint16) (*domain.Platform, error)

	// CreateCampaign validates req, assigns the next sequential campaign id
	// and persists the new campaign owned by caller.
	CreateCampaign(ctx context.Context, caller solana.PublicKey, req CreateCampaignReq) (*CampaignView, error)

	// UpdateCampaign replaces the text fields of a live campaign. Only the
	// creator may call it.
	UpdateCampaign(ctx context.Context, caller solana.PublicKey, cid uint64, text domain.CampaignText) (*CampaignView, error)

	// DeleteCampaign soft-deletes a never-funded campaign and reclaims its
	// storage floor to the creator.
	DeleteCampaign(ctx context.Context, caller solana.PublicKey, cid uint64) (*DeleteResult, error)

	// Donate moves amount from donor, split between the campaign and the
	// platform treasury according to the platform fee.
	Donate(ctx context.Context, donor solana.PublicKey, cid uint64, amount uint64) (*DonationResult, error)

	// Withdraw moves everything the campaign holds above its storage floor
	// to the creator once the goal is reached or the deadline has passed.
	Withdraw(ctx context.Context, caller solana.PublicKey, cid uint64) (*WithdrawResult, error)

	// GetCampaign returns a campaign by its sequential id.
	GetCampaign(ctx context.Context, cid uint64) (*CampaignView, error)

	// ListCampaigns returns every campaign of the platform, deleted ones
	// included, ordered by id.
	ListCampaigns(ctx context.Context) ([]CampaignView, error)

	// ListDonations returns the donation receipts of a campaign.
	ListDonations(ctx context.Context, cid uint64) ([]domain.DonationReceipt, error)

	// Balance returns the lamports held by addr.
	Balance(ctx context.Context, addr solana.PublicKey) (uint64, error)

	// Airdrop credits amount lamports to addr. Used by local faucets and
	// seeding only.
	Airdrop(ctx context.Context, addr solana.PublicKey, amount uint64) (uint64, error)
}

// InitializePlatformReq carries the platform settings. A nil Treasury
// makes the platform record custody its own fees. TreasuryBump is
// accepted for wire compatibility and otherwise ignored.
type InitializePlatformReq struct {
	FeeBps       uint16
	TreasuryBump uint8
	Treasury     *solana.PublicKey
}

// CreateCampaignReq is the caller input for a new campaign.
type CreateCampaignReq struct {
	Title        string
	Description  string
	ImageURL     string
	GoalLamports uint64
	DeadlineTS   int64
}

// CampaignView is a campaign together with values derived at read time:
// the lamports currently held by the record and whether the creator may
// withdraw right now.
type CampaignView struct {
	domain.Campaign
	Balance      uint64
	Withdrawable bool
}

// DonationResult describes an applied donation.
type DonationResult struct {
	Campaign domain.Campaign
	Receipt  domain.DonationReceipt
	Fee      uint64
	Net      uint64
}

// WithdrawResult describes a withdrawal. Amount is zero when the campaign
// held nothing above its storage floor.
type WithdrawResult struct {
	Campaign domain.Campaign
	Amount   uint64
}

// DeleteResult describes a deletion. Reclaimed is the balance refunded to
// the creator when the record was closed.
type DeleteResult struct {
	Campaign  domain.Campaign
	Reclaimed uint64
}
