package memory

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/gagliardetto/solana-go"

	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
)

var errBalanceOverflow = errors.New("balance overflow")

// LedgerStore implements port.LedgerStore in process memory. Transactions
// run one at a time on a private copy of the ledger which replaces the
// committed copy only when the callback succeeds.
type LedgerStore struct {
	mu   sync.RWMutex
	rent domain.Rent
	st   *state
}

var _ port.LedgerStore = (*LedgerStore)(nil)

// NewLedgerStore returns an empty ledger priced with rent.
func NewLedgerStore(rent domain.Rent) *LedgerStore {
	return &LedgerStore{rent: rent, st: newState()}
}

// InTx runs fn against a copy of the ledger and commits it on success.
func (s *LedgerStore) InTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &ledgerTx{st: work, rent: s.rent}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// GetPlatform returns a copy of the platform at addr.
func (s *LedgerStore) GetPlatform(_ context.Context, addr solana.PublicKey) (*domain.Platform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.platform(addr)
}

// GetCampaign returns a copy of the campaign at addr.
func (s *LedgerStore) GetCampaign(_ context.Context, addr solana.PublicKey) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.campaign(addr)
}

// Balance returns the lamports held by addr.
func (s *LedgerStore) Balance(_ context.Context, addr solana.PublicKey) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.accounts[addr], nil
}

// ListCampaigns returns the campaigns of platform ordered by cid.
func (s *LedgerStore) ListCampaigns(_ context.Context, platform solana.PublicKey) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.st.campaigns))
	for _, c := range s.st.campaigns {
		if c.Platform.Equals(platform) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int { return cmp.Compare(a.CID, b.CID) })
	return out, nil
}

// ListReceipts returns the receipts of campaign in the order they were
// written, which is sequence order.
func (s *LedgerStore) ListReceipts(_ context.Context, campaign solana.PublicKey) ([]domain.DonationReceipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.st.receipts[campaign]), nil
}

type state struct {
	accounts  map[solana.PublicKey]uint64
	platforms map[solana.PublicKey]domain.Platform
	campaigns map[solana.PublicKey]domain.Campaign
	receipts  map[solana.PublicKey][]domain.DonationReceipt
}

func newState() *state {
	return &state{
		accounts:  make(map[solana.PublicKey]uint64),
		platforms: make(map[solana.PublicKey]domain.Platform),
		campaigns: make(map[solana.PublicKey]domain.Campaign),
		receipts:  make(map[solana.PublicKey][]domain.DonationReceipt),
	}
}

func (st *state) clone() *state {
	receipts := make(map[solana.PublicKey][]domain.DonationReceipt, len(st.receipts))
	for k, v := range st.receipts {
		receipts[k] = slices.Clone(v)
	}
	return &state{
		accounts:  maps.Clone(st.accounts),
		platforms: maps.Clone(st.platforms),
		campaigns: maps.Clone(st.campaigns),
		receipts:  receipts,
	}
}

func (st *state) platform(addr solana.PublicKey) (*domain.Platform, error) {
	p, ok := st.platforms[addr]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (st *state) campaign(addr solana.PublicKey) (*domain.Campaign, error) {
	c, ok := st.campaigns[addr]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (st *state) credit(addr solana.PublicKey, amount uint64) error {
	next := st.accounts[addr] + amount
	if next < amount {
		return errBalanceOverflow
	}
	st.accounts[addr] = next
	return nil
}

func (st *state) transfer(from, to solana.PublicKey, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if st.accounts[from] < amount {
		return domain.ErrInsufficientFunds
	}
	st.accounts[from] -= amount
	if st.accounts[from] == 0 {
		delete(st.accounts, from)
	}
	return st.credit(to, amount)
}

type ledgerTx struct {
	st   *state
	rent domain.Rent
}

func (tx *ledgerTx) GetPlatform(_ context.Context, addr solana.PublicKey) (*domain.Platform, error) {
	return tx.st.platform(addr)
}

func (tx *ledgerTx) LockPlatform(_ context.Context, addr solana.PublicKey) (*domain.Platform, error) {
	return tx.st.platform(addr)
}

func (tx *ledgerTx) GetCampaign(_ context.Context, addr solana.PublicKey) (*domain.Campaign, error) {
	return tx.st.campaign(addr)
}

func (tx *ledgerTx) Balance(_ context.Context, addr solana.PublicKey) (uint64, error) {
	return tx.st.accounts[addr], nil
}

func (tx *ledgerTx) CreatePlatform(_ context.Context, payer solana.PublicKey, p *domain.Platform) error {
	if _, ok := tx.st.platforms[p.Address]; ok {
		return domain.ErrAlreadyInitialized
	}
	if err := tx.st.transfer(payer, p.Address, tx.MinimumBalance(domain.PlatformSpace)); err != nil {
		return err
	}
	tx.st.platforms[p.Address] = *p
	return nil
}

func (tx *ledgerTx) UpdatePlatform(_ context.Context, p *domain.Platform) error {
	if _, ok := tx.st.platforms[p.Address]; !ok {
		return domain.ErrNotFound
	}
	tx.st.platforms[p.Address] = *p
	return nil
}

func (tx *ledgerTx) CreateCampaign(_ context.Context, payer solana.PublicKey, c *domain.Campaign) error {
	if _, ok := tx.st.campaigns[c.Address]; ok {
		return domain.ErrConflict
	}
	if err := tx.st.transfer(payer, c.Address, tx.MinimumBalance(domain.CampaignSpace)); err != nil {
		return err
	}
	tx.st.campaigns[c.Address] = *c
	return nil
}

func (tx *ledgerTx) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	if _, ok := tx.st.campaigns[c.Address]; !ok {
		return domain.ErrNotFound
	}
	tx.st.campaigns[c.Address] = *c
	return nil
}

func (tx *ledgerTx) CreateReceipt(_ context.Context, r *domain.DonationReceipt) error {
	tx.st.receipts[r.Campaign] = append(tx.st.receipts[r.Campaign], *r)
	return nil
}

func (tx *ledgerTx) Transfer(_ context.Context, from, to solana.PublicKey, amount uint64) error {
	return tx.st.transfer(from, to, amount)
}

func (tx *ledgerTx) Credit(_ context.Context, addr solana.PublicKey, amount uint64) error {
	return tx.st.credit(addr, amount)
}

func (tx *ledgerTx) Reclaim(_ context.Context, addr, dest solana.PublicKey) (uint64, error) {
	amount := tx.st.accounts[addr]
	if err := tx.st.transfer(addr, dest, amount); err != nil {
		return 0, err
	}
	return amount, nil
}

func (tx *ledgerTx) MinimumBalance(size int) uint64 {
	return tx.rent.MinimumBalance(size)
}
