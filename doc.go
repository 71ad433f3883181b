// Package xcrypt provides safe, goroutine-friendly bindings for libxcrypt,
// the extended crypt library used for Unix password hashing.
//
// # Architecture
//
// libxcrypt's classic entry points (crypt, crypt_gensalt) keep their working
// state in static storage and are therefore unusable from more than one
// thread at a time. This package binds only the reentrant variants,
// crypt_r and crypt_gensalt_rn, and hides their C-style contract behind
// two plain functions:
//
//	setting, err := xcrypt.GenSalt("", 0, nil) // best available method, default cost, library CSPRNG
//	hash, err := xcrypt.Crypt("hello", setting)
//
// Each call allocates its own zeroed scratch area and runs its own
// errno clear→call→read cycle, so concurrent calls from any number of
// goroutines never share state and need no external locking.
//
// # Error classification
//
// The native calls signal failure by returning NULL or the invalid-hash
// token ("*0"/"*1", depending on build configuration), optionally leaving a
// reason in errno. The return value is authoritative: a result that is
// neither sentinel is a success even when unrelated code left errno set,
// and a sentinel with a clean or unrecognised errno is reported as
// [ErrHashFailed] rather than being misattributed. Recognised errno values map onto the package's
// sentinel errors ([ErrInvalidInput], [ErrPhraseTooLong],
// [ErrRNGUnavailable]); use [errors.Is] to test for them.
//
// # Choosing a method
//
// Pass an empty prefix to [GenSalt] to delegate the choice to the native
// library, or a method prefix such as "$y$" (yescrypt), "$2b$" (bcrypt), or
// "$6$" (sha512crypt) to pin one. [PreferredMethod] reports what the
// delegated default currently is, and [CheckSalt] classifies an existing
// setting or hash ([SaltMethodLegacy], [SaltTooCheap], ...).
//
// For a registry of named method drivers with rehash detection, see the
// hashing subpackage.
//
// # Requirements
//
// Building needs cgo, <crypt.h>, and libcrypt from libxcrypt 4.4 or later.
package xcrypt
