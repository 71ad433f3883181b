package xcrypt

/*
#cgo CFLAGS: -D_GNU_SOURCE
#cgo LDFLAGS: -lcrypt

#include <crypt.h>
#include <errno.h>
#include <stdlib.h>

// The shims pin down the errno protocol: clear it immediately before the
// native call, capture it immediately after, all within one C function so
// nothing can run in between on the calling thread.

static char *go_crypt_r(const char *phrase, const char *setting,
                        struct crypt_data *data, int *errnum) {
	errno = 0;
	char *p = crypt_r(phrase, setting, data);
	*errnum = errno;
	return p;
}

static char *go_crypt_gensalt_rn(const char *prefix, unsigned long count,
                                 const char *rbytes, int nrbytes,
                                 char *output, int output_size, int *errnum) {
	errno = 0;
	char *p = crypt_gensalt_rn(prefix, count, rbytes, nrbytes,
	                           output, output_size);
	*errnum = errno;
	return p;
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"
)

// GenSaltOutputSize is the scratch buffer size crypt_gensalt_rn requires,
// as declared by the native library.
const GenSaltOutputSize = C.CRYPT_GENSALT_OUTPUT_SIZE

// cString converts s to a NUL-terminated C string. Embedded NUL bytes are
// rejected rather than silently truncating the value the native library
// would see. The caller must free the result.
func cString(name, s string) (*C.char, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%w: %s contains a NUL byte", ErrInvalidInput, name)
	}
	return C.CString(s), nil
}

// Crypt irreversibly hashes phrase under setting and returns the hashed
// phrase, e.g. for storage in a password database.
//
// setting is an opaque descriptor string selecting hashing method, cost
// parameters, and salt. It is produced by [GenSalt]. It may also be a
// previously stored hashed phrase, in which case the
// result will equal that hash exactly when phrase matches (see [Verify]).
//
// The same (phrase, setting) pair always yields the same output. Neither
// input may contain a NUL byte; violations fail with [ErrInvalidInput]
// before any native call is made.
//
// Crypt calls crypt_r with a fresh zeroed crypt_data per invocation, so it
// is safe for concurrent use by multiple goroutines.
func Crypt(phrase, setting string) (string, error) {
	cPhrase, err := cString("phrase", phrase)
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(cPhrase))

	cSetting, err := cString("setting", setting)
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(cSetting))

	// crypt_data is ~32 KiB of scratch space the native call uses in place
	// of static storage. new zeroes it, as crypt(3) requires; the GC
	// reclaims it once the result has been copied out.
	data := new(C.struct_crypt_data)

	var errnum C.int
	ptr := C.go_crypt_r(cPhrase, cSetting, data, &errnum)
	// crypt_r signals failure either with NULL or, when the library is
	// built with failure tokens (the default), with the invalid-hash token
	// "*0"/"*1". No valid hash ever begins with '*'.
	if ptr == nil || *ptr == '*' {
		return "", cryptError(int(errnum))
	}

	// Copy the NUL-terminated result into an owned Go string before the
	// scratch area becomes collectable. ptr aliases data, which the GC
	// cannot see through a C pointer.
	hashed := C.GoString(ptr)
	runtime.KeepAlive(data)
	return hashed, nil
}

// GenSalt compiles a fresh setting string for use as the setting argument
// to [Crypt].
//
// prefix selects the hashing method ("$y$", "$2b$", "$6$", ...); the empty
// string delegates to the native library's best available method (see
// [PreferredMethod]). count is the method-specific cost parameter; zero
// selects the method's default.
//
// rbytes optionally supplies the random bytes the salt is derived from.
// Passing nil, the recommended path, lets the native library draw them
// from the operating system's CSPRNG. Caller-supplied bytes must be
// cryptographically random and at least as many as the selected method
// requires; too few fail with [ErrInvalidInput].
//
// GenSalt calls crypt_gensalt_rn with a per-invocation output buffer, so it
// is safe for concurrent use by multiple goroutines.
func GenSalt(prefix string, count uint, rbytes []byte) (string, error) {
	var cPrefix *C.char
	if prefix != "" {
		var err error
		cPrefix, err = cString("prefix", prefix)
		if err != nil {
			return "", err
		}
		defer C.free(unsafe.Pointer(cPrefix))
	}

	// count crosses the boundary as the platform's unsigned long, whose
	// width differs across targets; reject values it cannot represent.
	if uint64(count) > uint64(^C.ulong(0)) {
		return "", fmt.Errorf("%w: count %d exceeds the native unsigned long range",
			ErrInvalidInput, count)
	}

	// C.char signedness is platform-dependent; converting through the
	// declared type keeps the byte values intact either way.
	var rbytesPtr *C.char
	if len(rbytes) > 0 {
		rbytesPtr = (*C.char)(unsafe.Pointer(&rbytes[0]))
	}

	output := make([]byte, GenSaltOutputSize)

	var errnum C.int
	ptr := C.go_crypt_gensalt_rn(
		cPrefix, C.ulong(count),
		rbytesPtr, C.int(len(rbytes)),
		(*C.char)(unsafe.Pointer(&output[0])), C.int(len(output)),
		&errnum,
	)
	if ptr == nil {
		return "", gensaltError(int(errnum))
	}

	setting := C.GoString(ptr)
	runtime.KeepAlive(output)
	return setting, nil
}
