package port

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"salina-hive/internal/core/domain"
)

// LedgerReader reads records and balances. Missing records are reported
// as domain.ErrNotFound; unknown accounts hold a zero balance.
type LedgerReader interface {
	GetPlatform(ctx context.Context, addr solana.PublicKey) (*domain.Platform, error)
	GetCampaign(ctx context.Context, addr solana.PublicKey) (*domain.Campaign, error)
	Balance(ctx context.Context, addr solana.PublicKey) (uint64, error)
}

// LedgerStore is the persistent, key-addressed ledger. It is an outbound
// port; implementations must serialize conflicting transactions and apply
// each InTx callback atomically.
type LedgerStore interface {
	LedgerReader

	// InTx runs fn inside a single transaction. Every write made through tx
	// commits when fn returns nil and is discarded otherwise.
	InTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error

	// ListCampaigns returns the campaigns of platform ordered by cid.
	ListCampaigns(ctx context.Context, platform solana.PublicKey) ([]domain.Campaign, error)
	// ListReceipts returns the donation receipts of campaign ordered by seq.
	ListReceipts(ctx context.Context, campaign solana.PublicKey) ([]domain.DonationReceipt, error)
}

// LedgerTx is the write surface available inside a transaction. Reads
// through a LedgerTx lock the record for the rest of the transaction:
// GetPlatform takes a shared lock, every other read an exclusive one.
type LedgerTx interface {
	LedgerReader

	// LockPlatform reads the platform at addr and locks it exclusively.
	// Writers of the platform record read it through LockPlatform.
	LockPlatform(ctx context.Context, addr solana.PublicKey) (*domain.Platform, error)

	// CreatePlatform persists p at p.Address and charges payer its storage
	// floor. An existing record yields domain.ErrAlreadyInitialized.
	CreatePlatform(ctx context.Context, payer solana.PublicKey, p *domain.Platform) error
	// UpdatePlatform overwrites the mutable platform fields.
	UpdatePlatform(ctx context.Context, p *domain.Platform) error

	// CreateCampaign persists c at c.Address and charges payer its storage
	// floor. An existing record yields domain.ErrConflict.
	CreateCampaign(ctx context.Context, payer solana.PublicKey, c *domain.Campaign) error
	// UpdateCampaign overwrites the mutable campaign fields.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error

	// CreateReceipt appends a donation receipt.
	CreateReceipt(ctx context.Context, r *domain.DonationReceipt) error

	// Transfer moves amount lamports between accounts. It fails with
	// domain.ErrInsufficientFunds when from cannot cover amount.
	Transfer(ctx context.Context, from, to solana.PublicKey, amount uint64) error
	// Credit mints amount lamports into addr.
	Credit(ctx context.Context, addr solana.PublicKey, amount uint64) error
	// Reclaim drains the whole balance of addr into dest and returns the
	// amount moved. The record itself is left in place.
	Reclaim(ctx context.Context, addr, dest solana.PublicKey) (uint64, error)

	// MinimumBalance is the storage floor of a record of size bytes.
	MinimumBalance(size int) uint64
}
