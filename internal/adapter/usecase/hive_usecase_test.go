package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salina-hive/internal/adapter/memory"
	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
)

const startBalance = 10 * solana.LAMPORTS_PER_SOL

var (
	campaignFloor = domain.DefaultRent.MinimumBalance(domain.CampaignSpace)
	platformFloor = domain.DefaultRent.MinimumBalance(domain.PlatformSpace)
)

type testEnv struct {
	svc     *HiveUseCase
	store   *memory.LedgerStore
	now     time.Time
	admin   solana.PublicKey
	creator solana.PublicKey
	donor   solana.PublicKey
}

func (e *testEnv) clock() time.Time { return e.now }

// newEnv returns a usecase over an empty in-memory ledger with funded
// admin, creator and donor accounts. The platform is not initialized.
func newEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	program, err := domain.NewProgram(domain.DefaultProgramID)
	require.NoError(t, err)

	e := &testEnv{
		store:   memory.NewLedgerStore(domain.DefaultRent),
		now:     time.Unix(1_700_000_000, 0),
		admin:   solana.NewWallet().PublicKey(),
		creator: solana.NewWallet().PublicKey(),
		donor:   solana.NewWallet().PublicKey(),
	}
	opts = append([]Option{WithClock(e.clock)}, opts...)
	e.svc, err = NewHiveUseCase(e.store, program, opts...)
	require.NoError(t, err)

	for _, k := range []solana.PublicKey{e.admin, e.creator, e.donor} {
		_, err = e.svc.Airdrop(context.Background(), k, startBalance)
		require.NoError(t, err)
	}
	return e
}

// newPlatformEnv is newEnv with the platform initialized at feeBps.
func newPlatformEnv(t *testing.T, feeBps uint16, opts ...Option) *testEnv {
	t.Helper()
	e := newEnv(t, opts...)
	_, err := e.svc.InitializePlatform(context.Background(), e.admin, port.InitializePlatformReq{FeeBps: feeBps})
	require.NoError(t, err)
	return e
}

func (e *testEnv) balance(t *testing.T, addr solana.PublicKey) uint64 {
	t.Helper()
	b, err := e.svc.Balance(context.Background(), addr)
	require.NoError(t, err)
	return b
}

func (e *testEnv) createCampaign(t *testing.T, goal uint64, deadlineIn time.Duration) *port.CampaignView {
	t.Helper()
	v, err := e.svc.CreateCampaign(context.Background(), e.creator, port.CreateCampaignReq{
		Title:        "Community garden",
		Description:  "Raised beds for the neighbourhood",
		ImageURL:     "https://example.com/garden.png",
		GoalLamports: goal,
		DeadlineTS:   e.now.Add(deadlineIn).Unix(),
	})
	require.NoError(t, err)
	return v
}

func TestInitializePlatform(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p, err := e.svc.InitializePlatform(ctx, e.admin, port.InitializePlatformReq{FeeBps: 250, TreasuryBump: 7})
	require.NoError(t, err)
	assert.Equal(t, e.svc.PlatformAddress(), p.Address)
	assert.Equal(t, p.Address, p.Treasury, "self-custody when no treasury is given")
	assert.Equal(t, e.admin, p.Authority)
	assert.Equal(t, uint64(0), p.CampaignCount)
	assert.Equal(t, startBalance-platformFloor, e.balance(t, e.admin))

	_, err = e.svc.InitializePlatform(ctx, e.creator, port.InitializePlatformReq{FeeBps: 100})
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	got, err := e.svc.GetPlatform(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(250), got.FeeBps)
	assert.Equal(t, e.admin, got.Authority)
}

func TestInitializePlatformRejectsFeeAboveMax(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.InitializePlatform(context.Background(), e.admin, port.InitializePlatformReq{FeeBps: 10_001})
	assert.ErrorIs(t, err, domain.ErrInvalidFee)

	_, err = e.svc.GetPlatform(context.Background())
	assert.ErrorIs(t, err, domain.ErrPlatformNotInitialized)
}

func TestUpdatePlatformSettings(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()

	_, err := e.svc.UpdatePlatformSettings(ctx, e.creator, 100)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = e.svc.UpdatePlatformSettings(ctx, e.admin, 10_001)
	assert.ErrorIs(t, err, domain.ErrInvalidFee)

	p, err := e.svc.UpdatePlatformSettings(ctx, e.admin, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), p.FeeBps)

	v := e.createCampaign(t, 1000, time.Hour)
	res, err := e.svc.Donate(ctx, e.donor, v.CID, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.Fee)
	assert.Equal(t, uint64(500), res.Net)
}

func TestCreateCampaignRequiresPlatform(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.CreateCampaign(context.Background(), e.creator, port.CreateCampaignReq{
		Title: "t", GoalLamports: 1, DeadlineTS: e.now.Add(time.Hour).Unix(),
	})
	assert.ErrorIs(t, err, domain.ErrPlatformNotInitialized)
}

func TestCreateCampaign(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()

	first := e.createCampaign(t, 1000, 100*time.Second)
	second := e.createCampaign(t, 2000, time.Hour)

	assert.Equal(t, uint64(1), first.CID)
	assert.Equal(t, uint64(2), second.CID)
	assert.NotEqual(t, first.Address, second.Address)
	assert.Equal(t, e.creator, first.Creator)
	assert.Equal(t, e.svc.PlatformAddress(), first.Platform)
	assert.Equal(t, uint64(0), first.RaisedLamports)
	assert.False(t, first.IsDeleted)
	assert.Equal(t, campaignFloor, first.Balance)
	assert.False(t, first.Withdrawable)
	assert.Equal(t, startBalance-2*campaignFloor, e.balance(t, e.creator))

	p, err := e.svc.GetPlatform(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), p.CampaignCount)

	list, err := e.svc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.Address, list[0].Address)
	assert.Equal(t, second.Address, list[1].Address)
}

func TestCreateCampaignValidation(t *testing.T) {
	e := newPlatformEnv(t, 250)
	deadline := e.now.Add(time.Hour).Unix()

	tests := []struct {
		name string
		req  port.CreateCampaignReq
		want error
	}{
		{"title", port.CreateCampaignReq{Title: strings.Repeat("t", 100), GoalLamports: 1, DeadlineTS: deadline}, domain.ErrTitleTooLong},
		{"description", port.CreateCampaignReq{Description: strings.Repeat("d", domain.DescMaxLen+1), GoalLamports: 1, DeadlineTS: deadline}, domain.ErrDescriptionTooLong},
		{"url", port.CreateCampaignReq{ImageURL: strings.Repeat("u", domain.URLMaxLen+1), GoalLamports: 1, DeadlineTS: deadline}, domain.ErrURLTooLong},
		{"zero goal", port.CreateCampaignReq{GoalLamports: 0, DeadlineTS: deadline}, domain.ErrInvalidAmount},
		{"deadline now", port.CreateCampaignReq{GoalLamports: 1, DeadlineTS: e.now.Unix()}, domain.ErrDeadlineInPast},
		{"deadline past", port.CreateCampaignReq{GoalLamports: 1, DeadlineTS: e.now.Unix() - 1}, domain.ErrDeadlineInPast},
		// text is checked before amounts
		{"order", port.CreateCampaignReq{Title: strings.Repeat("t", 65), GoalLamports: 0, DeadlineTS: 0}, domain.ErrTitleTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.svc.CreateCampaign(context.Background(), e.creator, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	p, err := e.svc.GetPlatform(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), p.CampaignCount, "rejected creations do not consume ids")
}

func TestCreateCampaignInsufficientFunds(t *testing.T) {
	e := newPlatformEnv(t, 250)
	poor := solana.NewWallet().PublicKey()
	_, err := e.svc.CreateCampaign(context.Background(), poor, port.CreateCampaignReq{
		Title: "t", GoalLamports: 1, DeadlineTS: e.now.Add(time.Hour).Unix(),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	p, err := e.svc.GetPlatform(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), p.CampaignCount)
}

// TestDonateAndWithdraw walks scenarios A and B: two donations at 2.5%
// reach the goal and the creator withdraws everything above the floor.
func TestDonateAndWithdraw(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	v := e.createCampaign(t, 1000, 100*time.Second)
	creatorBefore := e.balance(t, e.creator)

	res, err := e.svc.Donate(ctx, e.donor, v.CID, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), res.Fee)
	assert.Equal(t, uint64(488), res.Net)
	assert.Equal(t, uint64(488), res.Campaign.RaisedLamports)
	assert.Equal(t, uint64(1), res.Campaign.DonationCount)

	got, err := e.svc.GetCampaign(ctx, v.CID)
	require.NoError(t, err)
	assert.False(t, got.Withdrawable)

	_, err = e.svc.Withdraw(ctx, e.creator, v.CID)
	assert.ErrorIs(t, err, domain.ErrWithdrawNotAllowed)

	res, err = e.svc.Donate(ctx, e.donor, v.CID, 600)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), res.Fee)
	assert.Equal(t, uint64(585), res.Net)
	assert.Equal(t, uint64(1073), res.Campaign.RaisedLamports)
	assert.Equal(t, uint64(2), res.Campaign.DonationCount)

	got, err = e.svc.GetCampaign(ctx, v.CID)
	require.NoError(t, err)
	assert.True(t, got.Withdrawable)
	assert.Equal(t, campaignFloor+1073, got.Balance)

	assert.Equal(t, startBalance-1100, e.balance(t, e.donor))
	assert.Equal(t, platformFloor+27, e.balance(t, e.svc.PlatformAddress()))

	w, err := e.svc.Withdraw(ctx, e.creator, v.CID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1073), w.Amount)
	assert.Equal(t, uint64(1073), w.Campaign.RaisedLamports, "withdraw keeps the raised total")
	assert.Equal(t, creatorBefore+1073, e.balance(t, e.creator))
	assert.Equal(t, campaignFloor, e.balance(t, v.Address))

	w, err = e.svc.Withdraw(ctx, e.creator, v.CID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), w.Amount, "nothing left above the floor")
}

func TestWithdrawAfterDeadline(t *testing.T) {
	e := newPlatformEnv(t, 0)
	ctx := context.Background()
	v := e.createCampaign(t, 1_000_000, 100*time.Second)

	_, err := e.svc.Donate(ctx, e.donor, v.CID, 10)
	require.NoError(t, err)

	_, err = e.svc.Withdraw(ctx, e.creator, v.CID)
	assert.ErrorIs(t, err, domain.ErrWithdrawNotAllowed)

	e.now = e.now.Add(100 * time.Second)
	w, err := e.svc.Withdraw(ctx, e.creator, v.CID)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), w.Amount)
}

func TestWithdrawUnauthorized(t *testing.T) {
	e := newPlatformEnv(t, 0)
	ctx := context.Background()
	v := e.createCampaign(t, 10, time.Hour)
	_, err := e.svc.Donate(ctx, e.donor, v.CID, 10)
	require.NoError(t, err)

	_, err = e.svc.Withdraw(ctx, e.donor, v.CID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, campaignFloor+10, e.balance(t, v.Address))
}

func TestDonateValidation(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	v := e.createCampaign(t, 1000, time.Hour)

	_, err := e.svc.Donate(ctx, e.donor, v.CID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = e.svc.Donate(ctx, e.donor, 99, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestDonateInsufficientFunds ensures a failed donation moves nothing and
// writes no receipt.
func TestDonateInsufficientFunds(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	v := e.createCampaign(t, 1000, time.Hour)

	_, err := e.svc.Donate(ctx, e.donor, v.CID, startBalance+1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// net fits but net+fee does not
	poorDonor := solana.NewWallet().PublicKey()
	_, err = e.svc.Airdrop(ctx, poorDonor, 999)
	require.NoError(t, err)
	_, err = e.svc.Donate(ctx, poorDonor, v.CID, 1000)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, uint64(999), e.balance(t, poorDonor))
	assert.Equal(t, startBalance, e.balance(t, e.donor))
	assert.Equal(t, platformFloor, e.balance(t, e.svc.PlatformAddress()))

	got, err := e.svc.GetCampaign(ctx, v.CID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.DonationCount)
	assert.Equal(t, uint64(0), got.RaisedLamports)
	assert.Equal(t, campaignFloor, got.Balance)

	receipts, err := e.svc.ListDonations(ctx, v.CID)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestDonationReceipts(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	v := e.createCampaign(t, 1000, time.Hour)

	amounts := []uint64{500, 600, 1}
	for _, a := range amounts {
		_, err := e.svc.Donate(ctx, e.donor, v.CID, a)
		require.NoError(t, err)
	}

	receipts, err := e.svc.ListDonations(ctx, v.CID)
	require.NoError(t, err)
	require.Len(t, receipts, len(amounts))
	for i, r := range receipts {
		assert.Equal(t, uint64(i+1), r.Seq)
		assert.Equal(t, amounts[i], r.Amount)
		assert.Equal(t, r.Amount, r.Fee+r.Net)
		assert.Equal(t, e.donor, r.Donor)
		assert.Equal(t, v.Address, r.Campaign)
		assert.Equal(t, e.now.Unix(), r.DonatedAt)
	}
	assert.NotEqual(t, receipts[0].Address, receipts[1].Address)
}

func TestDonateToExplicitTreasury(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	treasury := solana.NewWallet().PublicKey()
	_, err := e.svc.InitializePlatform(ctx, e.admin, port.InitializePlatformReq{FeeBps: 1000, Treasury: &treasury})
	require.NoError(t, err)
	v := e.createCampaign(t, 1000, time.Hour)

	_, err = e.svc.Donate(ctx, e.donor, v.CID, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), e.balance(t, treasury))
	assert.Equal(t, platformFloor, e.balance(t, e.svc.PlatformAddress()))
}

func TestUpdateCampaign(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	v := e.createCampaign(t, 1000, time.Hour)

	text := domain.CampaignText{Title: "New title", Description: "New description", ImageURL: "https://example.com/new.png"}
	_, err := e.svc.UpdateCampaign(ctx, e.donor, v.CID, text)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := e.svc.UpdateCampaign(ctx, e.creator, v.CID, text)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "New description", got.Description)
	assert.Equal(t, "https://example.com/new.png", got.ImageURL)
	assert.Equal(t, v.GoalLamports, got.GoalLamports)
	assert.Equal(t, v.DeadlineTS, got.DeadlineTS)
}

// TestUpdateCampaignTitleTooLong is scenario E: no field is mutated.
func TestUpdateCampaignTitleTooLong(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	v := e.createCampaign(t, 1000, time.Hour)

	_, err := e.svc.UpdateCampaign(ctx, e.creator, v.CID, domain.CampaignText{
		Title:       strings.Repeat("x", 100),
		Description: "changed",
	})
	assert.ErrorIs(t, err, domain.ErrTitleTooLong)

	got, err := e.svc.GetCampaign(ctx, v.CID)
	require.NoError(t, err)
	assert.Equal(t, v.Campaign, got.Campaign)
}

// TestDeleteCampaign is scenario C plus the tombstone and refund rules.
func TestDeleteCampaign(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	before := e.balance(t, e.creator)
	v := e.createCampaign(t, 1000, time.Hour)

	_, err := e.svc.DeleteCampaign(ctx, e.donor, v.CID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	res, err := e.svc.DeleteCampaign(ctx, e.creator, v.CID)
	require.NoError(t, err)
	assert.True(t, res.Campaign.IsDeleted)
	assert.Equal(t, campaignFloor, res.Reclaimed)
	assert.Equal(t, before, e.balance(t, e.creator))

	got, err := e.svc.GetCampaign(ctx, v.CID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.False(t, got.Withdrawable)
	assert.Equal(t, uint64(0), got.Balance)

	_, err = e.svc.DeleteCampaign(ctx, e.creator, v.CID)
	assert.ErrorIs(t, err, domain.ErrCampaignDeleted)
	_, err = e.svc.Donate(ctx, e.donor, v.CID, 10)
	assert.ErrorIs(t, err, domain.ErrCampaignDeleted)
	_, err = e.svc.Withdraw(ctx, e.creator, v.CID)
	assert.ErrorIs(t, err, domain.ErrCampaignDeleted)
	_, err = e.svc.UpdateCampaign(ctx, e.creator, v.CID, domain.CampaignText{Title: "again"})
	assert.ErrorIs(t, err, domain.ErrCampaignDeleted)

	p, err := e.svc.GetPlatform(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.CampaignCount, "ids are never reused")
}

// TestDeleteFundedCampaign is scenario D.
func TestDeleteFundedCampaign(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	v := e.createCampaign(t, 1000, time.Hour)
	_, err := e.svc.Donate(ctx, e.donor, v.CID, 100)
	require.NoError(t, err)

	_, err = e.svc.DeleteCampaign(ctx, e.creator, v.CID)
	assert.ErrorIs(t, err, domain.ErrWithdrawNotAllowed)

	got, err := e.svc.GetCampaign(ctx, v.CID)
	require.NoError(t, err)
	assert.False(t, got.IsDeleted)
}

// TestConcurrentDonations ensures parallel donations neither lose updates
// nor break conservation of funds.
func TestConcurrentDonations(t *testing.T) {
	e := newPlatformEnv(t, 250)
	ctx := context.Background()
	v := e.createCampaign(t, 1_000_000, time.Hour)

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.svc.Donate(ctx, e.donor, v.CID, 1000)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := e.svc.GetCampaign(ctx, v.CID)
	require.NoError(t, err)
	assert.Equal(t, uint64(n), got.DonationCount)
	assert.Equal(t, uint64(n*975), got.RaisedLamports)
	assert.Equal(t, startBalance-n*1000, e.balance(t, e.donor))
	assert.Equal(t, platformFloor+n*25, e.balance(t, e.svc.PlatformAddress()))
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	e := newPlatformEnv(t, 0)
	ctx := context.Background()

	const n = 20
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[uint64]bool)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := e.svc.CreateCampaign(ctx, e.creator, port.CreateCampaignReq{
				Title: "t", GoalLamports: 1, DeadlineTS: e.now.Add(time.Hour).Unix(),
			})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			ids[v.CID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, n)
	for cid := uint64(1); cid <= n; cid++ {
		assert.True(t, ids[cid], "missing cid %d", cid)
	}
}

func TestAirdrop(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	addr := solana.NewWallet().PublicKey()

	_, err := e.svc.Airdrop(ctx, addr, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	b, err := e.svc.Airdrop(ctx, addr, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), b)
	b, err = e.svc.Airdrop(ctx, addr, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), b)
}
