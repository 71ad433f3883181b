package xcrypt

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Sentinel errors returned by [Crypt], [GenSalt], and [Verify].
//
// Use [errors.Is] for comparisons:
//
//	_, err := xcrypt.Crypt(phrase, setting)
//	if errors.Is(err, xcrypt.ErrInvalidInput) {
//	    // a caller-correctable input problem
//	}
var (
	// ErrInvalidInput is returned when an input violates a precondition
	// (contains a NUL byte, or a count outside the native range) or when
	// the native library rejects the setting, prefix, count, or random
	// bytes as invalid.
	ErrInvalidInput = errors.New("xcrypt: invalid input")

	// ErrPhraseTooLong is returned when the phrase exceeds the maximum
	// length the selected hashing method supports.
	ErrPhraseTooLong = errors.New("xcrypt: phrase is too long for the selected hashing method")

	// ErrRNGUnavailable is returned by [GenSalt] when no cryptographic
	// random number generator is available on the platform.
	ErrRNGUnavailable = errors.New("xcrypt: no random number generator is available")

	// ErrHashFailed is returned when a native call reports failure with an
	// error code this package does not recognise, or with no error code at
	// all. The latter usually indicates a library version mismatch rather than a
	// clean rejection of the inputs.
	ErrHashFailed = errors.New("xcrypt: hashing failed")
)

// cryptError classifies a failed crypt_r call from the errno captured
// around it. It is only consulted after the call returned its failure
// sentinel; a stale errno alone never produces an error.
func cryptError(errnum int) error {
	switch e := unix.Errno(errnum); e {
	case 0:
		return fmt.Errorf("%w: crypt_r reported failure without an error code", ErrHashFailed)
	case unix.EINVAL:
		return fmt.Errorf("%w: setting is malformed or requests an unsupported method", ErrInvalidInput)
	case unix.ERANGE:
		return ErrPhraseTooLong
	default:
		return fmt.Errorf("%w: crypt_r: %w", ErrHashFailed, e)
	}
}

// gensaltError classifies a failed crypt_gensalt_rn call, under the same
// sentinel-then-errno protocol as cryptError.
func gensaltError(errnum int) error {
	switch e := unix.Errno(errnum); e {
	case 0:
		return fmt.Errorf("%w: crypt_gensalt_rn reported failure without an error code", ErrHashFailed)
	case unix.EINVAL:
		return fmt.Errorf("%w: invalid prefix, count, or random bytes", ErrInvalidInput)
	case unix.ENOSYS, unix.EACCES, unix.EIO:
		return ErrRNGUnavailable
	default:
		return fmt.Errorf("%w: crypt_gensalt_rn: %w", ErrHashFailed, e)
	}
}
