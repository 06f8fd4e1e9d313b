package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gagliardetto/solana-go"

	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
)

const (
	seedCampaigns       = 5
	seedDonors          = 20
	seedDonationsPerCmp = 10
	seedAirdrop         = 10 * solana.LAMPORTS_PER_SOL
)

// SeedResult lists the keys generated while seeding so that a demo client
// can act as the seeded accounts.
type SeedResult struct {
	Authority solana.PrivateKey
	Creators  []solana.PrivateKey
	Donors    []solana.PrivateKey
}

// Seed fills the ledger with demo data through the usecase: it initializes
// the platform with feeBps (if not yet initialized), funds random creator
// and donor accounts from the faucet, opens campaigns and donates to them.
func Seed(ctx context.Context, svc port.HiveUseCase, feeBps uint16, logger *slog.Logger) (*SeedResult, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	res := &SeedResult{}

	var err error
	if res.Authority, err = fundedKey(ctx, svc); err != nil {
		return nil, err
	}
	_, err = svc.InitializePlatform(ctx, res.Authority.PublicKey(), port.InitializePlatformReq{FeeBps: feeBps})
	if err != nil && !errors.Is(err, domain.ErrAlreadyInitialized) {
		return nil, fmt.Errorf("initialize platform: %w", err)
	}

	for range seedDonors {
		key, err := fundedKey(ctx, svc)
		if err != nil {
			return nil, err
		}
		res.Donors = append(res.Donors, key)
	}

	for i := 1; i <= seedCampaigns; i++ {
		creator, err := fundedKey(ctx, svc)
		if err != nil {
			return nil, err
		}
		res.Creators = append(res.Creators, creator)

		view, err := svc.CreateCampaign(ctx, creator.PublicKey(), port.CreateCampaignReq{
			Title:        fmt.Sprintf("Campaign %d", i),
			Description:  fmt.Sprintf("Demo campaign number %d", i),
			ImageURL:     fmt.Sprintf("https://example.com/image/%d.png", i),
			GoalLamports: uint64(1+r.Intn(5)) * solana.LAMPORTS_PER_SOL,
			DeadlineTS:   time.Now().AddDate(0, 0, 7+r.Intn(30)).Unix(),
		})
		if err != nil {
			return nil, fmt.Errorf("create campaign %d: %w", i, err)
		}

		for range seedDonationsPerCmp {
			donor := res.Donors[r.Intn(len(res.Donors))]
			amount := uint64(1+r.Intn(100)) * solana.LAMPORTS_PER_SOL / 100
			if _, err = svc.Donate(ctx, donor.PublicKey(), view.CID, amount); err != nil {
				return nil, fmt.Errorf("donate to campaign %d: %w", view.CID, err)
			}
		}
		logger.Info("seeded campaign", slog.Uint64("cid", view.CID), slog.String("creator", creator.PublicKey().String()))
	}
	return res, nil
}

func fundedKey(ctx context.Context, svc port.HiveUseCase) (solana.PrivateKey, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, err
	}
	if _, err = svc.Airdrop(ctx, key.PublicKey(), seedAirdrop); err != nil {
		return nil, fmt.Errorf("airdrop: %w", err)
	}
	return key, nil
}
