package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
)

// SQLSTATE codes the store translates into domain errors.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateCheckViolation       = "23514"
)

var errBalanceOverflow = errors.New("balance overflow")

// LedgerStore implements port.LedgerStore using pgxpool for PostgreSQL.
// Lamport amounts live in NUMERIC(20,0) columns and cross the wire as text
// so the full uint64 range survives.
type LedgerStore struct {
	pool *pgxpool.Pool
	rent domain.Rent
}

var _ port.LedgerStore = (*LedgerStore)(nil)

// NewLedgerStore returns a new store instance.
func NewLedgerStore(pool *pgxpool.Pool, rent domain.Rent) *LedgerStore {
	return &LedgerStore{pool: pool, rent: rent}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InTx runs fn inside one transaction. Every record read inside it takes
// a row lock, so transactions touching the same platform, campaign or
// account serialize while unrelated ones proceed. Deadlocks and
// serialization failures are reported as domain.ErrConflict and are not
// retried.
func (s *LedgerStore) InTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = mapError(tx.Commit(ctx))
	}()
	return mapError(fn(ctx, &ledgerTx{q: tx, rent: s.rent}))
}

// GetPlatform returns the platform at addr.
func (s *LedgerStore) GetPlatform(ctx context.Context, addr solana.PublicKey) (*domain.Platform, error) {
	return getPlatform(ctx, s.pool, addr, lockNone)
}

// GetCampaign returns the campaign at addr.
func (s *LedgerStore) GetCampaign(ctx context.Context, addr solana.PublicKey) (*domain.Campaign, error) {
	return getCampaign(ctx, s.pool, addr, lockNone)
}

// Balance returns the lamports held by addr.
func (s *LedgerStore) Balance(ctx context.Context, addr solana.PublicKey) (uint64, error) {
	return balance(ctx, s.pool, addr, lockNone)
}

// ListCampaigns returns the campaigns of platform ordered by cid.
func (s *LedgerStore) ListCampaigns(ctx context.Context, platform solana.PublicKey) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE platform = $1 ORDER BY cid`, platform.String())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// ListReceipts returns the receipts of campaign ordered by seq.
func (s *LedgerStore) ListReceipts(ctx context.Context, campaign solana.PublicKey) ([]domain.DonationReceipt, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT address, campaign, donor, amount::text, fee::text, net::text, seq::text, donated_at
        FROM donation_receipts
        WHERE campaign = $1
        ORDER BY seq`, campaign.String())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DonationReceipt, error) {
		var (
			r                     domain.DonationReceipt
			addr, camp, donor     string
			amount, fee, net, seq string
		)
		if err := row.Scan(&addr, &camp, &donor, &amount, &fee, &net, &seq, &r.DonatedAt); err != nil {
			return r, err
		}
		var d decoder
		r.Address, r.Campaign, r.Donor = d.key(addr), d.key(camp), d.key(donor)
		r.Amount, r.Fee, r.Net, r.Seq = d.u64(amount), d.u64(fee), d.u64(net), d.u64(seq)
		return r, d.err
	})
}

type ledgerTx struct {
	q    querier
	rent domain.Rent
}

func (tx *ledgerTx) GetPlatform(ctx context.Context, addr solana.PublicKey) (*domain.Platform, error) {
	return getPlatform(ctx, tx.q, addr, lockShare)
}

func (tx *ledgerTx) LockPlatform(ctx context.Context, addr solana.PublicKey) (*domain.Platform, error) {
	return getPlatform(ctx, tx.q, addr, lockUpdate)
}

func (tx *ledgerTx) GetCampaign(ctx context.Context, addr solana.PublicKey) (*domain.Campaign, error) {
	return getCampaign(ctx, tx.q, addr, lockUpdate)
}

func (tx *ledgerTx) Balance(ctx context.Context, addr solana.PublicKey) (uint64, error) {
	return balance(ctx, tx.q, addr, lockUpdate)
}

func (tx *ledgerTx) CreatePlatform(ctx context.Context, payer solana.PublicKey, p *domain.Platform) error {
	tag, err := tx.q.Exec(ctx, `
        INSERT INTO platforms (address, authority, fee_bps, treasury, campaign_count, bump)
        VALUES ($1, $2, $3, $4, $5::text::numeric, $6)
        ON CONFLICT (address) DO NOTHING`,
		p.Address.String(), p.Authority.String(), int32(p.FeeBps), p.Treasury.String(), num(p.CampaignCount), int16(p.Bump))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyInitialized
	}
	return tx.Transfer(ctx, payer, p.Address, tx.MinimumBalance(domain.PlatformSpace))
}

func (tx *ledgerTx) UpdatePlatform(ctx context.Context, p *domain.Platform) error {
	tag, err := tx.q.Exec(ctx, `
        UPDATE platforms
        SET fee_bps = $2, treasury = $3, campaign_count = $4::text::numeric, updated_at = now()
        WHERE address = $1`,
		p.Address.String(), int32(p.FeeBps), p.Treasury.String(), num(p.CampaignCount))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (tx *ledgerTx) CreateCampaign(ctx context.Context, payer solana.PublicKey, c *domain.Campaign) error {
	tag, err := tx.q.Exec(ctx, `
        INSERT INTO campaigns
            (address, platform, creator, cid, title, description, image_url,
             goal_lamports, raised_lamports, deadline_ts, donation_count, is_deleted, bump)
        VALUES ($1, $2, $3, $4::text::numeric, $5, $6, $7,
                $8::text::numeric, $9::text::numeric, $10, $11::text::numeric, $12, $13)
        ON CONFLICT DO NOTHING`,
		c.Address.String(), c.Platform.String(), c.Creator.String(), num(c.CID), c.Title, c.Description, c.ImageURL,
		num(c.GoalLamports), num(c.RaisedLamports), c.DeadlineTS, num(c.DonationCount), c.IsDeleted, int16(c.Bump))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return tx.Transfer(ctx, payer, c.Address, tx.MinimumBalance(domain.CampaignSpace))
}

func (tx *ledgerTx) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := tx.q.Exec(ctx, `
        UPDATE campaigns
        SET title = $2, description = $3, image_url = $4,
            raised_lamports = $5::text::numeric, donation_count = $6::text::numeric,
            is_deleted = $7, updated_at = now()
        WHERE address = $1`,
		c.Address.String(), c.Title, c.Description, c.ImageURL, num(c.RaisedLamports), num(c.DonationCount), c.IsDeleted)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (tx *ledgerTx) CreateReceipt(ctx context.Context, r *domain.DonationReceipt) error {
	_, err := tx.q.Exec(ctx, `
        INSERT INTO donation_receipts (address, campaign, donor, amount, fee, net, seq, donated_at)
        VALUES ($1, $2, $3, $4::text::numeric, $5::text::numeric, $6::text::numeric, $7::text::numeric, $8)`,
		r.Address.String(), r.Campaign.String(), r.Donor.String(), num(r.Amount), num(r.Fee), num(r.Net), num(r.Seq), r.DonatedAt)
	return err
}

// Transfer debits from only when it can cover amount, then credits to.
func (tx *ledgerTx) Transfer(ctx context.Context, from, to solana.PublicKey, amount uint64) error {
	if amount == 0 {
		return nil
	}
	tag, err := tx.q.Exec(ctx, `
        UPDATE accounts
        SET lamports = lamports - $2::text::numeric, updated_at = now()
        WHERE address = $1 AND lamports >= $2::text::numeric`,
		from.String(), num(amount))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return tx.Credit(ctx, to, amount)
}

func (tx *ledgerTx) Credit(ctx context.Context, addr solana.PublicKey, amount uint64) error {
	_, err := tx.q.Exec(ctx, `
        INSERT INTO accounts (address, lamports) VALUES ($1, $2::text::numeric)
        ON CONFLICT (address) DO UPDATE
        SET lamports = accounts.lamports + EXCLUDED.lamports, updated_at = now()`,
		addr.String(), num(amount))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateCheckViolation {
		return fmt.Errorf("credit %s: %w", addr, errBalanceOverflow)
	}
	return err
}

func (tx *ledgerTx) Reclaim(ctx context.Context, addr, dest solana.PublicKey) (uint64, error) {
	amount, err := tx.Balance(ctx, addr)
	if err != nil {
		return 0, err
	}
	if err = tx.Transfer(ctx, addr, dest, amount); err != nil {
		return 0, err
	}
	return amount, nil
}

func (tx *ledgerTx) MinimumBalance(size int) uint64 {
	return tx.rent.MinimumBalance(size)
}

const campaignColumns = `address, platform, creator, cid::text, title, description, image_url,
        goal_lamports::text, raised_lamports::text, deadline_ts, donation_count::text, is_deleted, bump`

func getPlatform(ctx context.Context, q querier, addr solana.PublicKey, lock rowLock) (*domain.Platform, error) {
	var (
		address, authority, treasury, count string
		fee                                 int32
		bump                                int16
	)
	err := q.QueryRow(ctx, `SELECT address, authority, fee_bps, treasury, campaign_count::text, bump FROM platforms WHERE address = $1`+string(lock), addr.String()).
		Scan(&address, &authority, &fee, &treasury, &count, &bump)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var d decoder
	p := &domain.Platform{
		Address:       d.key(address),
		Authority:     d.key(authority),
		FeeBps:        uint16(fee),
		Treasury:      d.key(treasury),
		CampaignCount: d.u64(count),
		Bump:          uint8(bump),
	}
	return p, d.err
}

func getCampaign(ctx context.Context, q querier, addr solana.PublicKey, lock rowLock) (*domain.Campaign, error) {
	c, err := scanCampaign(q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE address = $1`+string(lock), addr.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                          domain.Campaign
		address, platform, creator string
		cid, goal, raised, count   string
		bump                       int16
	)
	err := row.Scan(&address, &platform, &creator, &cid, &c.Title, &c.Description, &c.ImageURL,
		&goal, &raised, &c.DeadlineTS, &count, &c.IsDeleted, &bump)
	if err != nil {
		return nil, err
	}
	var d decoder
	c.Address, c.Platform, c.Creator = d.key(address), d.key(platform), d.key(creator)
	c.CID, c.GoalLamports, c.RaisedLamports, c.DonationCount = d.u64(cid), d.u64(goal), d.u64(raised), d.u64(count)
	c.Bump = uint8(bump)
	return &c, d.err
}

func balance(ctx context.Context, q querier, addr solana.PublicKey, lock rowLock) (uint64, error) {
	var lamports string
	err := q.QueryRow(ctx, `SELECT lamports::text FROM accounts WHERE address = $1`+string(lock), addr.String()).Scan(&lamports)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(lamports, 10, 64)
}

// rowLock is the locking clause appended to a record read.
type rowLock string

const (
	lockNone   rowLock = ""
	lockShare  rowLock = " FOR SHARE"
	lockUpdate rowLock = " FOR UPDATE"
)

func num(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// mapError turns transaction conflicts into domain.ErrConflict and leaves
// every other error untouched.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected) {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Message)
	}
	return err
}

// decoder parses stored text columns and keeps the first failure.
type decoder struct {
	err error
}

func (d *decoder) key(s string) solana.PublicKey {
	if d.err != nil {
		return solana.PublicKey{}
	}
	k, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		d.err = fmt.Errorf("decode address %q: %w", s, err)
	}
	return k
}

func (d *decoder) u64(s string) uint64 {
	if d.err != nil {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		d.err = fmt.Errorf("decode amount %q: %w", s, err)
	}
	return v
}
