package postgres

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"salina-hive/internal/core/domain"
)

func TestMapError(t *testing.T) {
	for _, code := range []string{sqlStateSerializationFailure, sqlStateDeadlockDetected} {
		err := mapError(fmt.Errorf("commit: %w", &pgconn.PgError{Code: code, Message: "could not serialize"}))
		assert.ErrorIs(t, err, domain.ErrConflict, code)
		assert.Equal(t, domain.CodeConflict, domain.ErrorCode(err))
	}

	other := &pgconn.PgError{Code: "23505"}
	assert.Same(t, other, mapError(other))
	assert.NoError(t, mapError(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, mapError(plain))
}

func TestDecoder(t *testing.T) {
	k := solana.NewWallet().PublicKey()

	var d decoder
	assert.Equal(t, k, d.key(k.String()))
	assert.Equal(t, uint64(math.MaxUint64), d.u64(num(math.MaxUint64)))
	assert.NoError(t, d.err)

	d.u64("-1")
	assert.Error(t, d.err)
	first := d.err
	d.key("garbage")
	assert.Same(t, first, d.err, "keeps the first failure")
}
