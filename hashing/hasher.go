package hashing

import (
	"strings"

	xcrypt "github.com/hasbyte1/go-xcrypt"
)

// Method identifies a native hashing method by its setting prefix.
// Using a named string type prevents accidental confusion with plain strings.
type Method string

const (
	// MethodDefault delegates the choice to the native library's best
	// available method (see xcrypt.PreferredMethod).
	MethodDefault Method = ""
	// MethodYescrypt selects yescrypt (recommended for new hashes).
	MethodYescrypt Method = "$y$"
	// MethodGostYescrypt selects gost-yescrypt (yescrypt with GOST R 34.11-2012).
	MethodGostYescrypt Method = "$gy$"
	// MethodScrypt selects scrypt.
	MethodScrypt Method = "$7$"
	// MethodBcrypt selects bcrypt.
	MethodBcrypt Method = "$2b$"
	// MethodSHA512Crypt selects sha512crypt.
	MethodSHA512Crypt Method = "$6$"
	// MethodSHA256Crypt selects sha256crypt.
	MethodSHA256Crypt Method = "$5$"
	// MethodMD5Crypt selects md5crypt. Legacy; recognised so stored hashes
	// can be detected and migrated, but not registered by [NewDefaultManager].
	MethodMD5Crypt Method = "$1$"
)

// Hasher is the interface satisfied by method drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext phrase and returns the encoded hash string.
	// A fresh cryptographic salt is generated for every call, so two calls
	// with the same phrase will produce different outputs.
	Make(phrase string) (string, error)

	// Check verifies that phrase matches the previously produced hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid or was produced by
	// a different method.
	//
	// Comparison is performed in constant time.
	Check(phrase, hash string) (bool, error)

	// NeedsRehash reports whether the native library classifies the hash's
	// setting as anything other than current best practice (legacy method,
	// disabled method, too-cheap cost). Callers should re-hash the phrase
	// on next successful login when this returns true.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying it.
	Info(hash string) (HashInfo, error)

	// Method returns the method this hasher produces hashes with.
	Method() Method
}

// HashInfo carries metadata derived from an encoded hash string.
type HashInfo struct {
	// Method is the hashing method that produced the hash.
	Method Method

	// Status is the native library's classification of the hash's setting.
	Status xcrypt.SaltStatus
}

// DetectMethod inspects a hash (or setting) string and returns the [Method]
// that produced it, based on its prefix. The bcrypt variants $2a$, $2b$,
// and $2y$ all report [MethodBcrypt].
//
// The second return value is false when the prefix is not recognised.
func DetectMethod(hash string) (Method, bool) {
	switch {
	// $gy$ must be tested before $y$.
	case strings.HasPrefix(hash, string(MethodGostYescrypt)):
		return MethodGostYescrypt, true
	case strings.HasPrefix(hash, string(MethodYescrypt)):
		return MethodYescrypt, true
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return MethodBcrypt, true
	case strings.HasPrefix(hash, string(MethodScrypt)):
		return MethodScrypt, true
	case strings.HasPrefix(hash, string(MethodSHA512Crypt)):
		return MethodSHA512Crypt, true
	case strings.HasPrefix(hash, string(MethodSHA256Crypt)):
		return MethodSHA256Crypt, true
	case strings.HasPrefix(hash, string(MethodMD5Crypt)):
		return MethodMD5Crypt, true
	default:
		return "", false
	}
}
