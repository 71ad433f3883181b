package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(password, hash)
//	if errors.Is(err, hashing.ErrMethodMismatch) {
//	    // hash was produced by a different method
//	}
//
// Errors from the native calls themselves (invalid input, RNG unavailable,
// ...) propagate unchanged from the xcrypt package.
var (
	// ErrInvalidHash is returned when a hash string carries no recognised
	// method prefix.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrMethodMismatch is returned by a [Hasher]'s Check, NeedsRehash, or
	// Info method when the hash was produced by a different method than the
	// one the hasher is configured for.
	ErrMethodMismatch = errors.New("hashing: hash was produced by a different method")

	// ErrMethodNotFound is returned by [Manager.Driver], or indirectly by
	// the Manager's hashing operations, when the requested method has not
	// been registered.
	ErrMethodNotFound = errors.New("hashing: method not registered")

	// ErrEmptyMethodName is returned by [Manager.RegisterMethod] when the
	// supplied method name is an empty string.
	ErrEmptyMethodName = errors.New("hashing: method name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterMethod] when a nil
	// [Hasher] is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")
)
