package domain

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramAddresses(t *testing.T) {
	program, err := NewProgram(DefaultProgramID)
	require.NoError(t, err)

	platform, bump, err := program.PlatformAddress()
	require.NoError(t, err)
	want, wantBump, err := solana.FindProgramAddress([][]byte{[]byte("platform")}, program.ID)
	require.NoError(t, err)
	assert.Equal(t, want, platform)
	assert.Equal(t, wantBump, bump)

	seen := map[solana.PublicKey]bool{platform: true}
	for cid := uint64(1); cid <= 16; cid++ {
		addr, _, err := program.CampaignAddress(platform, cid)
		require.NoError(t, err)
		again, _, err := program.CampaignAddress(platform, cid)
		require.NoError(t, err)
		assert.Equal(t, addr, again, "derivation is deterministic")
		assert.False(t, seen[addr], "cid %d collides", cid)
		seen[addr] = true

		receipt, _, err := program.ReceiptAddress(addr, 1)
		require.NoError(t, err)
		assert.False(t, seen[receipt], "receipt of cid %d collides", cid)
		seen[receipt] = true
	}
}

func TestProgramAddressesDependOnProgramID(t *testing.T) {
	a, err := NewProgram(DefaultProgramID)
	require.NoError(t, err)
	b := Program{ID: solana.NewWallet().PublicKey()}

	pa, _, err := a.PlatformAddress()
	require.NoError(t, err)
	pb, _, err := b.PlatformAddress()
	require.NoError(t, err)
	assert.NotEqual(t, pa, pb)
}

func TestNewProgramRejectsGarbage(t *testing.T) {
	_, err := NewProgram("not-a-key")
	assert.Error(t, err)
}
