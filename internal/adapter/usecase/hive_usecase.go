package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"

	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
)

// HiveUseCase implements port.HiveUseCase on top of a port.LedgerStore.
// It holds no mutable state of its own: every operation reads the records
// it needs inside one store transaction, validates, writes and returns.
type HiveUseCase struct {
	store   port.LedgerStore
	program domain.Program
	metrics port.Metrics
	logger  *slog.Logger
	now     func() time.Time

	platformAddr solana.PublicKey
	platformBump uint8
}

var _ port.HiveUseCase = (*HiveUseCase)(nil)

// Option customises a HiveUseCase.
type Option func(*HiveUseCase)

// WithClock overrides the wall clock used for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(u *HiveUseCase) { u.now = now }
}

// WithMetrics installs a metrics sink.
func WithMetrics(m port.Metrics) Option {
	return func(u *HiveUseCase) { u.metrics = m }
}

// WithLogger installs a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *HiveUseCase) { u.logger = l }
}

// NewHiveUseCase creates a new usecase bound to store and the address
// namespace of program.
func NewHiveUseCase(store port.LedgerStore, program domain.Program, opts ...Option) (*HiveUseCase, error) {
	u := &HiveUseCase{
		store:   store,
		program: program,
		metrics: port.NopMetrics{},
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	addr, bump, err := program.PlatformAddress()
	if err != nil {
		return nil, fmt.Errorf("derive platform address: %w", err)
	}
	u.platformAddr, u.platformBump = addr, bump
	return u, nil
}

// PlatformAddress returns the address of the platform singleton.
func (u *HiveUseCase) PlatformAddress() solana.PublicKey {
	return u.platformAddr
}

// InitializePlatform creates the platform singleton. The payer becomes the
// authority and pays the record's storage floor.
func (u *HiveUseCase) InitializePlatform(ctx context.Context, payer solana.PublicKey, req port.InitializePlatformReq) (*domain.Platform, error) {
	const op = "initialize_platform"
	if err := domain.ValidateFeeBps(req.FeeBps); err != nil {
		return nil, u.fail(op, err)
	}
	p := &domain.Platform{
		Address:   u.platformAddr,
		Authority: payer,
		FeeBps:    req.FeeBps,
		Treasury:  u.platformAddr,
		Bump:      u.platformBump,
	}
	if req.Treasury != nil && !req.Treasury.IsZero() {
		p.Treasury = *req.Treasury
	}
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		return tx.CreatePlatform(ctx, payer, p)
	})
	if err != nil {
		return nil, u.fail(op, err)
	}
	u.logger.Info("platform initialized",
		slog.String("platform", p.Address.String()),
		slog.String("authority", p.Authority.String()),
		slog.Int("fee_bps", int(p.FeeBps)))
	return p, nil
}

// GetPlatform returns the platform singleton.
func (u *HiveUseCase) GetPlatform(ctx context.Context) (*domain.Platform, error) {
	return u.loadPlatform(ctx, u.store)
}

// UpdatePlatformSettings sets a new fee rate. Only the authority may call it.
func (u *HiveUseCase) UpdatePlatformSettings(ctx context.Context, caller solana.PublicKey, feeBps uint16) (*domain.Platform, error) {
	const op = "update_platform_settings"
	var p *domain.Platform
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		var err error
		if p, err = u.lockPlatform(ctx, tx); err != nil {
			return err
		}
		if !p.IsAuthority(caller) {
			return domain.ErrUnauthorized
		}
		if err = domain.ValidateFeeBps(feeBps); err != nil {
			return err
		}
		p.FeeBps = feeBps
		return tx.UpdatePlatform(ctx, p)
	})
	if err != nil {
		return nil, u.fail(op, err)
	}
	u.logger.Info("platform fee updated", slog.Int("fee_bps", int(feeBps)))
	return p, nil
}

// CreateCampaign validates the request, takes the next id from the platform
// counter and persists the campaign at the address derived from that id.
// Creations serialize on the platform record.
func (u *HiveUseCase) CreateCampaign(ctx context.Context, caller solana.PublicKey, req port.CreateCampaignReq) (*port.CampaignView, error) {
	const op = "create_campaign"
	text := domain.CampaignText{Title: req.Title, Description: req.Description, ImageURL: req.ImageURL}
	if err := text.Validate(); err != nil {
		return nil, u.fail(op, err)
	}
	if req.GoalLamports == 0 {
		return nil, u.fail(op, domain.ErrInvalidAmount)
	}
	now := u.now().Unix()
	if req.DeadlineTS <= now {
		return nil, u.fail(op, domain.ErrDeadlineInPast)
	}

	var view *port.CampaignView
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		p, err := u.lockPlatform(ctx, tx)
		if err != nil {
			return err
		}
		cid, err := p.NextCampaignID()
		if err != nil {
			return err
		}
		addr, bump, err := u.program.CampaignAddress(p.Address, cid)
		if err != nil {
			return fmt.Errorf("derive campaign address: %w", err)
		}
		c := &domain.Campaign{
			Address:      addr,
			Platform:     p.Address,
			Creator:      caller,
			CID:          cid,
			GoalLamports: req.GoalLamports,
			DeadlineTS:   req.DeadlineTS,
			Bump:         bump,
		}
		c.SetText(text)
		if err = tx.CreateCampaign(ctx, caller, c); err != nil {
			return err
		}
		p.CampaignCount = cid
		if err = tx.UpdatePlatform(ctx, p); err != nil {
			return err
		}
		view, err = u.view(ctx, tx, c, now)
		return err
	})
	if err != nil {
		return nil, u.fail(op, err)
	}
	u.metrics.CampaignCreated()
	u.logger.Info("campaign created",
		slog.Uint64("cid", view.CID),
		slog.String("campaign", view.Address.String()),
		slog.String("creator", caller.String()),
		slog.Uint64("goal_lamports", view.GoalLamports))
	return view, nil
}

// UpdateCampaign replaces the text fields of a live campaign. Financial
// fields are never touched.
func (u *HiveUseCase) UpdateCampaign(ctx context.Context, caller solana.PublicKey, cid uint64, text domain.CampaignText) (*port.CampaignView, error) {
	const op = "update_campaign"
	var view *port.CampaignView
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		c, err := u.loadCampaign(ctx, tx, cid)
		if err != nil {
			return err
		}
		if !c.IsCreator(caller) {
			return domain.ErrUnauthorized
		}
		if c.IsDeleted {
			return domain.ErrCampaignDeleted
		}
		if err = text.Validate(); err != nil {
			return err
		}
		c.SetText(text)
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		view, err = u.view(ctx, tx, c, u.now().Unix())
		return err
	})
	if err != nil {
		return nil, u.fail(op, err)
	}
	u.logger.Info("campaign updated", slog.Uint64("cid", cid))
	return view, nil
}

// DeleteCampaign marks a never-funded campaign deleted and, as a separate
// store step, reclaims whatever the record holds to the creator.
func (u *HiveUseCase) DeleteCampaign(ctx context.Context, caller solana.PublicKey, cid uint64) (*port.DeleteResult, error) {
	const op = "delete_campaign"
	var res port.DeleteResult
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		c, err := u.loadCampaign(ctx, tx, cid)
		if err != nil {
			return err
		}
		if !c.IsCreator(caller) {
			return domain.ErrUnauthorized
		}
		if c.IsDeleted {
			return domain.ErrCampaignDeleted
		}
		if c.RaisedLamports != 0 {
			return domain.ErrWithdrawNotAllowed
		}
		c.IsDeleted = true
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}
		if res.Reclaimed, err = tx.Reclaim(ctx, c.Address, c.Creator); err != nil {
			return err
		}
		res.Campaign = *c
		return nil
	})
	if err != nil {
		return nil, u.fail(op, err)
	}
	u.metrics.CampaignDeleted()
	u.logger.Info("campaign deleted",
		slog.Uint64("cid", cid),
		slog.Uint64("reclaimed_lamports", res.Reclaimed))
	return &res, nil
}

// Donate splits amount into fee and net, moves net to the campaign and the
// fee to the platform treasury, and bumps the campaign counters. Both
// transfers commit together or not at all.
func (u *HiveUseCase) Donate(ctx context.Context, donor solana.PublicKey, cid uint64, amount uint64) (*port.DonationResult, error) {
	const op = "donate"
	if amount == 0 {
		return nil, u.fail(op, domain.ErrInvalidAmount)
	}
	var res port.DonationResult
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		p, err := u.loadPlatform(ctx, tx)
		if err != nil {
			return err
		}
		c, err := u.loadCampaign(ctx, tx, cid)
		if err != nil {
			return err
		}
		if !c.Platform.Equals(p.Address) {
			return domain.ErrPlatformMismatch
		}
		if c.IsDeleted {
			return domain.ErrCampaignDeleted
		}

		fee, net := domain.SplitDonation(amount, p.FeeBps)
		if err = tx.Transfer(ctx, donor, c.Address, net); err != nil {
			return err
		}
		if fee > 0 {
			if err = tx.Transfer(ctx, donor, p.Treasury, fee); err != nil {
				return err
			}
		}
		c.ApplyDonation(net)
		if err = tx.UpdateCampaign(ctx, c); err != nil {
			return err
		}

		addr, _, err := u.program.ReceiptAddress(c.Address, c.DonationCount)
		if err != nil {
			return fmt.Errorf("derive receipt address: %w", err)
		}
		res.Receipt = domain.DonationReceipt{
			Address:   addr,
			Campaign:  c.Address,
			Donor:     donor,
			Amount:    amount,
			Fee:       fee,
			Net:       net,
			Seq:       c.DonationCount,
			DonatedAt: u.now().Unix(),
		}
		if err = tx.CreateReceipt(ctx, &res.Receipt); err != nil {
			return err
		}
		res.Campaign, res.Fee, res.Net = *c, fee, net
		return nil
	})
	if err != nil {
		return nil, u.fail(op, err)
	}
	u.metrics.DonationApplied(res.Net, res.Fee)
	u.logger.Info("donation applied",
		slog.Uint64("cid", cid),
		slog.String("donor", donor.String()),
		slog.Uint64("net_lamports", res.Net),
		slog.Uint64("fee_lamports", res.Fee))
	return &res, nil
}

// Withdraw moves the balance held above the storage floor to the creator.
// A campaign holding nothing above the floor withdraws zero without error.
// Withdrawal never resets the raised amount and may be repeated.
func (u *HiveUseCase) Withdraw(ctx context.Context, caller solana.PublicKey, cid uint64) (*port.WithdrawResult, error) {
	const op = "withdraw"
	var res port.WithdrawResult
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		c, err := u.loadCampaign(ctx, tx, cid)
		if err != nil {
			return err
		}
		if !c.IsCreator(caller) {
			return domain.ErrUnauthorized
		}
		if c.IsDeleted {
			return domain.ErrCampaignDeleted
		}
		if !c.CanWithdraw(u.now().Unix()) {
			return domain.ErrWithdrawNotAllowed
		}
		floor := tx.MinimumBalance(domain.CampaignSpace)
		balance, err := tx.Balance(ctx, c.Address)
		if err != nil {
			return err
		}
		if balance > floor {
			res.Amount = balance - floor
			if err = tx.Transfer(ctx, c.Address, c.Creator, res.Amount); err != nil {
				return err
			}
		}
		res.Campaign = *c
		return nil
	})
	if err != nil {
		return nil, u.fail(op, err)
	}
	u.metrics.Withdrawn(res.Amount)
	u.logger.Info("campaign withdrawn",
		slog.Uint64("cid", cid),
		slog.Uint64("amount_lamports", res.Amount))
	return &res, nil
}

// GetCampaign returns a campaign by its sequential id.
func (u *HiveUseCase) GetCampaign(ctx context.Context, cid uint64) (*port.CampaignView, error) {
	c, err := u.loadCampaign(ctx, u.store, cid)
	if err != nil {
		return nil, err
	}
	return u.view(ctx, u.store, c, u.now().Unix())
}

// ListCampaigns returns every campaign of the platform ordered by id.
func (u *HiveUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignView, error) {
	campaigns, err := u.store.ListCampaigns(ctx, u.platformAddr)
	if err != nil {
		return nil, err
	}
	now := u.now().Unix()
	views := make([]port.CampaignView, 0, len(campaigns))
	for i := range campaigns {
		v, err := u.view(ctx, u.store, &campaigns[i], now)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// ListDonations returns the receipts of campaign cid ordered by sequence.
func (u *HiveUseCase) ListDonations(ctx context.Context, cid uint64) ([]domain.DonationReceipt, error) {
	c, err := u.loadCampaign(ctx, u.store, cid)
	if err != nil {
		return nil, err
	}
	return u.store.ListReceipts(ctx, c.Address)
}

// Balance returns the lamports held by addr.
func (u *HiveUseCase) Balance(ctx context.Context, addr solana.PublicKey) (uint64, error) {
	return u.store.Balance(ctx, addr)
}

// Airdrop mints amount lamports into addr and returns the new balance.
func (u *HiveUseCase) Airdrop(ctx context.Context, addr solana.PublicKey, amount uint64) (uint64, error) {
	const op = "airdrop"
	if amount == 0 {
		return 0, u.fail(op, domain.ErrInvalidAmount)
	}
	var balance uint64
	err := u.store.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		if err := tx.Credit(ctx, addr, amount); err != nil {
			return err
		}
		var err error
		balance, err = tx.Balance(ctx, addr)
		return err
	})
	if err != nil {
		return 0, u.fail(op, err)
	}
	u.logger.Debug("airdrop", slog.String("address", addr.String()), slog.Uint64("amount_lamports", amount))
	return balance, nil
}

func (u *HiveUseCase) loadPlatform(ctx context.Context, r port.LedgerReader) (*domain.Platform, error) {
	p, err := r.GetPlatform(ctx, u.platformAddr)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrPlatformNotInitialized
	}
	return p, err
}

func (u *HiveUseCase) lockPlatform(ctx context.Context, tx port.LedgerTx) (*domain.Platform, error) {
	p, err := tx.LockPlatform(ctx, u.platformAddr)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrPlatformNotInitialized
	}
	return p, err
}

func (u *HiveUseCase) loadCampaign(ctx context.Context, r port.LedgerReader, cid uint64) (*domain.Campaign, error) {
	addr, _, err := u.program.CampaignAddress(u.platformAddr, cid)
	if err != nil {
		return nil, fmt.Errorf("derive campaign address: %w", err)
	}
	return r.GetCampaign(ctx, addr)
}

func (u *HiveUseCase) view(ctx context.Context, r port.LedgerReader, c *domain.Campaign, now int64) (*port.CampaignView, error) {
	balance, err := r.Balance(ctx, c.Address)
	if err != nil {
		return nil, err
	}
	return &port.CampaignView{
		Campaign:     *c,
		Balance:      balance,
		Withdrawable: !c.IsDeleted && c.CanWithdraw(now),
	}, nil
}

// fail records a rejected operation and returns err unchanged.
func (u *HiveUseCase) fail(op string, err error) error {
	code := domain.ErrorCode(err)
	u.metrics.OperationFailed(op, code)
	if code == domain.CodeUnknown {
		u.logger.Error("operation failed", slog.String("op", op), slog.Any("error", err))
	}
	return err
}
