package configs

import "salina-hive/internal/core/domain"

// Ledger configures the ledger store and the address namespace. Backend
// selects the storage substrate: "postgres" (default) or "memory", the
// latter losing all state on restart. ProgramID is the base58 key records
// are derived under. The rent fields price the storage floor every record
// must retain; see domain.Rent.
type Ledger struct {
	Backend   string `env:"BACKEND" envDefault:"postgres"`
	ProgramID string `env:"PROGRAM_ID" envDefault:"Fg852CkXa5T6tXeA86FCEj6zKa48U2oqMXMmPouvEWnP"`

	RentLamportsPerByte uint64 `env:"RENT_LAMPORTS_PER_BYTE" envDefault:"6960"`
	RentAccountOverhead uint64 `env:"RENT_ACCOUNT_OVERHEAD" envDefault:"128"`

	// FaucetEnabled exposes the airdrop endpoint. Never enable it outside
	// local development.
	FaucetEnabled bool `env:"FAUCET_ENABLED" envDefault:"false"`
}

// Rent returns the storage pricing described by the configuration.
func (c Ledger) Rent() domain.Rent {
	return domain.Rent{LamportsPerByte: c.RentLamportsPerByte, AccountOverhead: c.RentAccountOverhead}
}

// Program parses ProgramID.
func (c Ledger) Program() (domain.Program, error) {
	return domain.NewProgram(c.ProgramID)
}

// UseMemory reports whether the in-memory backend is selected.
func (c Ledger) UseMemory() bool {
	return c.Backend == "memory"
}
