package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/go-chi/chi/v5"
)

// CallerHeader carries the base58 public key of the pre-authenticated
// caller.
const CallerHeader = "X-Hive-Caller"

// maxBodyBytes bounds request bodies; the largest legal body is a campaign
// at its text limits.
const maxBodyBytes = 16 << 10

func callerFrom(r *http.Request) (solana.PublicKey, error) {
	raw := strings.TrimSpace(r.Header.Get(CallerHeader))
	if raw == "" {
		return solana.PublicKey{}, errMissingCaller
	}
	key, err := solana.PublicKeyFromBase58(raw)
	if err != nil {
		return solana.PublicKey{}, errInvalidCaller
	}
	return key, nil
}

// caller resolves the caller or writes a 401 and reports false.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (solana.PublicKey, bool) {
	key, err := callerFrom(r)
	if err != nil {
		h.unauthenticated(w, r, err)
		return key, false
	}
	return key, true
}

// cid parses the {cid} path parameter or writes a 400 and reports false.
func (h *Handler) cid(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	cid, err := strconv.ParseUint(chi.URLParam(r, "cid"), 10, 64)
	if err != nil {
		h.badRequest(w, r, "invalid campaign id")
		return 0, false
	}
	return cid, true
}

// address parses the {address} path parameter or writes a 400 and
// reports false.
func (h *Handler) address(w http.ResponseWriter, r *http.Request) (solana.PublicKey, bool) {
	key, err := solana.PublicKeyFromBase58(chi.URLParam(r, "address"))
	if err != nil {
		h.badRequest(w, r, "invalid address")
		return key, false
	}
	return key, true
}

// decode reads a JSON body into dst or writes a 400 and reports false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		h.badRequest(w, r, "invalid JSON")
		return false
	}
	return true
}
