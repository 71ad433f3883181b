package xcrypt

/*
#include <crypt.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// SaltStatus is the native library's classification of a setting string,
// as reported by [CheckSalt].
type SaltStatus int

const (
	// SaltOK: the setting is valid and uses the current best practices.
	SaltOK SaltStatus = C.CRYPT_SALT_OK
	// SaltInvalid: the setting is unreadable or requests an unknown method.
	SaltInvalid SaltStatus = C.CRYPT_SALT_INVALID
	// SaltMethodDisabled: the method is valid but disabled in this build.
	SaltMethodDisabled SaltStatus = C.CRYPT_SALT_METHOD_DISABLED
	// SaltMethodLegacy: the method is too weak for new hashes.
	SaltMethodLegacy SaltStatus = C.CRYPT_SALT_METHOD_LEGACY
	// SaltTooCheap: the method is fine but the cost parameter is too low.
	SaltTooCheap SaltStatus = C.CRYPT_SALT_TOO_CHEAP
)

// String returns a short human-readable name for the status.
func (s SaltStatus) String() string {
	switch s {
	case SaltOK:
		return "ok"
	case SaltInvalid:
		return "invalid"
	case SaltMethodDisabled:
		return "method-disabled"
	case SaltMethodLegacy:
		return "method-legacy"
	case SaltTooCheap:
		return "too-cheap"
	default:
		return "unknown"
	}
}

// CheckSalt asks the native library to classify setting, which may be a
// [GenSalt] result or a full hashed phrase. The classification is the
// library's own judgment; this package adds nothing to it.
//
// The only error condition is a setting containing a NUL byte, which fails
// with [ErrInvalidInput] before the native call.
func CheckSalt(setting string) (SaltStatus, error) {
	cSetting, err := cString("setting", setting)
	if err != nil {
		return SaltInvalid, err
	}
	defer C.free(unsafe.Pointer(cSetting))

	return SaltStatus(C.crypt_checksalt(cSetting)), nil
}

// PreferredMethod returns the prefix of the hashing method the native
// library considers the best available, e.g. "$y$". This is the method
// [GenSalt] selects when given an empty prefix. It returns the empty string
// if the library cannot report one.
func PreferredMethod() string {
	p := C.crypt_preferred_method()
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
