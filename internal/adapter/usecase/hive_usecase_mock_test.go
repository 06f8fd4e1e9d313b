package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
	"salina-hive/internal/core/port/mocks"
)

type recordingMetrics struct {
	port.NopMetrics
	mu       sync.Mutex
	failures map[string]domain.Code
	donated  uint64
}

func (m *recordingMetrics) OperationFailed(op string, code domain.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures == nil {
		m.failures = make(map[string]domain.Code)
	}
	m.failures[op] = code
}

func (m *recordingMetrics) DonationApplied(net, _ uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.donated += net
}

// runTx makes store.InTx invoke the callback with tx.
func runTx(store *mocks.MockLedgerStore, tx port.LedgerTx) {
	store.EXPECT().
		InTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, port.LedgerTx) error) error {
			return fn(ctx, tx)
		})
}

func newMockUseCase(t *testing.T, store port.LedgerStore, opts ...Option) *HiveUseCase {
	t.Helper()
	program, err := domain.NewProgram(domain.DefaultProgramID)
	require.NoError(t, err)
	opts = append([]Option{WithClock(func() time.Time { return time.Unix(1_700_000_000, 0) })}, opts...)
	svc, err := NewHiveUseCase(store, program, opts...)
	require.NoError(t, err)
	return svc
}

func TestDonatePlatformMismatch(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	m := &recordingMetrics{}
	svc := newMockUseCase(t, store, WithMetrics(m))

	platform := &domain.Platform{Address: svc.PlatformAddress(), FeeBps: 250, Treasury: svc.PlatformAddress()}
	foreign := &domain.Campaign{
		Address:  solana.NewWallet().PublicKey(),
		Platform: solana.NewWallet().PublicKey(),
		CID:      1,
	}

	runTx(store, tx)
	tx.EXPECT().GetPlatform(mock.Anything, svc.PlatformAddress()).Return(platform, nil)
	tx.EXPECT().GetCampaign(mock.Anything, mock.AnythingOfType("solana.PublicKey")).Return(foreign, nil)

	_, err := svc.Donate(context.Background(), solana.NewWallet().PublicKey(), 1, 100)
	assert.ErrorIs(t, err, domain.ErrPlatformMismatch)
	assert.Equal(t, domain.CodePlatformMismatch, m.failures["donate"])
	assert.Zero(t, m.donated)
}

func TestDonateConflictPassesThrough(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	m := &recordingMetrics{}
	svc := newMockUseCase(t, store, WithMetrics(m))

	store.EXPECT().InTx(mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := svc.Donate(context.Background(), solana.NewWallet().PublicKey(), 1, 100)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeConflict, m.failures["donate"])
}

// TestDonateRejectsZeroBeforeStore ensures argument checks never reach the
// store.
func TestDonateRejectsZeroBeforeStore(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	svc := newMockUseCase(t, store)

	_, err := svc.Donate(context.Background(), solana.NewWallet().PublicKey(), 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestDonateTreasuryFailureAborts(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	svc := newMockUseCase(t, store)

	donor := solana.NewWallet().PublicKey()
	treasury := solana.NewWallet().PublicKey()
	campaign := &domain.Campaign{Address: solana.NewWallet().PublicKey(), Platform: svc.PlatformAddress(), CID: 1}

	runTx(store, tx)
	tx.EXPECT().GetPlatform(mock.Anything, svc.PlatformAddress()).
		Return(&domain.Platform{Address: svc.PlatformAddress(), FeeBps: 250, Treasury: treasury}, nil)
	tx.EXPECT().GetCampaign(mock.Anything, mock.Anything).Return(campaign, nil)
	tx.EXPECT().Transfer(mock.Anything, donor, campaign.Address, uint64(975)).Return(nil)
	tx.EXPECT().Transfer(mock.Anything, donor, treasury, uint64(25)).Return(domain.ErrInsufficientFunds)

	_, err := svc.Donate(context.Background(), donor, 1, 1000)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestGetCampaignStoreError(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	svc := newMockUseCase(t, store)

	boom := errors.New("connection reset")
	store.EXPECT().GetCampaign(mock.Anything, mock.Anything).Return(nil, boom)

	_, err := svc.GetCampaign(context.Background(), 7)
	assert.ErrorIs(t, err, boom)
}

func TestCreateCampaignCounterExhausted(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	m := &recordingMetrics{}
	svc := newMockUseCase(t, store, WithMetrics(m))

	runTx(store, tx)
	tx.EXPECT().LockPlatform(mock.Anything, svc.PlatformAddress()).
		Return(&domain.Platform{Address: svc.PlatformAddress(), CampaignCount: ^uint64(0)}, nil)

	_, err := svc.CreateCampaign(context.Background(), solana.NewWallet().PublicKey(), port.CreateCampaignReq{
		Title: "t", GoalLamports: 1, DeadlineTS: time.Unix(1_700_000_000, 0).Add(time.Hour).Unix(),
	})
	assert.ErrorIs(t, err, domain.ErrCampaignCountExhausted)
	assert.Equal(t, domain.CodeCampaignCountExhausted, m.failures["create_campaign"])
}

func TestInitializePlatformUsesStoreUniqueness(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	tx := mocks.NewMockLedgerTx(t)
	svc := newMockUseCase(t, store)
	payer := solana.NewWallet().PublicKey()

	runTx(store, tx)
	tx.EXPECT().
		CreatePlatform(mock.Anything, payer, mock.MatchedBy(func(p *domain.Platform) bool {
			return p.Address == svc.PlatformAddress() && p.Authority == payer && p.CampaignCount == 0
		})).
		Return(domain.ErrAlreadyInitialized)

	_, err := svc.InitializePlatform(context.Background(), payer, port.InitializePlatformReq{FeeBps: 250})
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)
}
