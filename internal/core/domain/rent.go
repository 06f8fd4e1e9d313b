package domain

// Rent prices the minimum balance a record must hold to stay persisted.
// The floor is (AccountOverhead + size) * LamportsPerByte.
type Rent struct {
	LamportsPerByte uint64
	AccountOverhead uint64
}

// DefaultRent mirrors the rent-exempt schedule of the reference ledger:
// 3480 lamports per byte-year over a two year exemption window and 128
// bytes of per-account metadata.
var DefaultRent = Rent{LamportsPerByte: 6960, AccountOverhead: 128}

// MinimumBalance returns the storage floor for a record of size bytes.
func (r Rent) MinimumBalance(size int) uint64 {
	if size < 0 {
		size = 0
	}
	return SaturatingMul(SaturatingAdd(r.AccountOverhead, uint64(size)), r.LamportsPerByte)
}
