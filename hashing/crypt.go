package hashing

import (
	"fmt"

	xcrypt "github.com/hasbyte1/go-xcrypt"
)

// CryptHasher hashes phrases with one native method at a fixed cost.
// Every method the native library implements is driven through the same
// two calls (setting generation, then hashing), so a single driver type
// parameterised by [Method] replaces a per-algorithm driver zoo.
//
// # Thread safety
//
// CryptHasher is immutable after construction and safe for concurrent use.
type CryptHasher struct {
	method Method
	cost   uint
}

// NewCryptHasher constructs a CryptHasher for the given method and cost.
//
// [MethodDefault] resolves to the native library's preferred method at
// construction time. A cost of zero selects the method's own default.
// Method/cost compatibility is not validated here: the native library is
// the authority on its own parameter rules, and [CryptHasher.Make] surfaces
// its verdict. A typo in a custom method string is therefore reported on
// first use, not at construction.
func NewCryptHasher(method Method, cost uint) (*CryptHasher, error) {
	if method == MethodDefault {
		method = Method(xcrypt.PreferredMethod())
	}
	return &CryptHasher{method: method, cost: cost}, nil
}

// Method returns the method this hasher produces hashes with.
func (h *CryptHasher) Method() Method { return h.method }

// Cost returns the configured cost parameter; zero means the method default.
func (h *CryptHasher) Cost() uint { return h.cost }

// Make hashes phrase and returns the encoded hash string. A fresh setting
// with a random salt is generated for each call, so two calls with the same
// phrase produce different outputs.
func (h *CryptHasher) Make(phrase string) (string, error) {
	setting, err := xcrypt.GenSalt(string(h.method), h.cost, nil)
	if err != nil {
		return "", fmt.Errorf("hashing: %s: generating setting: %w", h.method, err)
	}
	hashed, err := xcrypt.Crypt(phrase, setting)
	if err != nil {
		return "", fmt.Errorf("hashing: %s: %w", h.method, err)
	}
	return hashed, nil
}

// Check verifies that phrase matches hash. The hash must carry this
// hasher's method prefix; hashes from other methods fail with
// [ErrMethodMismatch] (use [Manager.CheckWithDetect] for mixed stores).
func (h *CryptHasher) Check(phrase, hash string) (bool, error) {
	if err := h.guardMethod(hash); err != nil {
		return false, err
	}
	return xcrypt.Verify(phrase, hash)
}

// NeedsRehash reports whether hash should be re-made. The verdict is the
// native library's own (crypt_checksalt): true for legacy or disabled
// methods and for too-cheap cost parameters.
func (h *CryptHasher) NeedsRehash(hash string) (bool, error) {
	if err := h.guardMethod(hash); err != nil {
		return false, err
	}
	status, err := xcrypt.CheckSalt(hash)
	if err != nil {
		return false, err
	}
	return status != xcrypt.SaltOK, nil
}

// Info returns the method and the native library's classification of hash.
func (h *CryptHasher) Info(hash string) (HashInfo, error) {
	detected, ok := DetectMethod(hash)
	if !ok {
		return HashInfo{}, ErrInvalidHash
	}
	if detected != h.method {
		return HashInfo{}, fmt.Errorf("%w: hash is %s, not %s", ErrMethodMismatch, detected, h.method)
	}
	status, err := xcrypt.CheckSalt(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{Method: detected, Status: status}, nil
}

func (h *CryptHasher) guardMethod(hash string) error {
	detected, ok := DetectMethod(hash)
	if !ok {
		return ErrInvalidHash
	}
	if detected != h.method {
		return fmt.Errorf("%w: hash is %s, not %s", ErrMethodMismatch, detected, h.method)
	}
	return nil
}
