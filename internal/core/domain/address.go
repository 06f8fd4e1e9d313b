package domain

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DefaultProgramID is the program namespace records are derived under
// unless configured otherwise.
const DefaultProgramID = "Fg852CkXa5T6tXeA86FCEj6zKa48U2oqMXMmPouvEWnP"

var (
	platformSeed = []byte("platform")
	campaignSeed = []byte("campaign")
	donationSeed = []byte("donation")
)

// Program derives deterministic, collision-free record addresses.
type Program struct {
	ID solana.PublicKey
}

// NewProgram parses a base58 program id.
func NewProgram(id string) (Program, error) {
	pk, err := solana.PublicKeyFromBase58(id)
	if err != nil {
		return Program{}, fmt.Errorf("parse program id: %w", err)
	}
	return Program{ID: pk}, nil
}

// PlatformAddress returns the address of the platform singleton.
func (p Program) PlatformAddress() (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{platformSeed}, p.ID)
}

// CampaignAddress returns the address of campaign cid under platform.
func (p Program) CampaignAddress(platform solana.PublicKey, cid uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{campaignSeed, platform.Bytes(), le64(cid)}, p.ID)
}

// ReceiptAddress returns the address of the seq-th donation receipt of
// campaign.
func (p Program) ReceiptAddress(campaign solana.PublicKey, seq uint64) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{donationSeed, campaign.Bytes(), le64(seq)}, p.ID)
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
