package hashing_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/hasbyte1/go-xcrypt/hashing"
)

// newTestManager returns a Manager with yescrypt and sha512crypt registered
// and yescrypt as the default. It accepts testing.TB so it can be called
// from both unit tests and benchmarks.
func newTestManager(tb testing.TB) *hashing.Manager {
	tb.Helper()
	m := hashing.NewManager(hashing.MethodYescrypt)
	for _, method := range []hashing.Method{hashing.MethodYescrypt, hashing.MethodSHA512Crypt} {
		h, err := hashing.NewCryptHasher(method, 0)
		if err != nil {
			tb.Fatalf("NewCryptHasher(%q): %v", method, err)
		}
		if err := m.RegisterMethod(method, h); err != nil {
			tb.Fatalf("RegisterMethod(%q): %v", method, err)
		}
	}
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// NewDefaultManager
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDefaultManager_Succeeds(t *testing.T) {
	m, err := hashing.NewDefaultManager()
	if err != nil {
		t.Fatalf("NewDefaultManager: %v", err)
	}
	if m == nil {
		t.Fatal("expected non-nil manager")
	}
}

func TestNewDefaultManager_DefaultIsRegistered(t *testing.T) {
	m, _ := hashing.NewDefaultManager()
	def := m.DefaultMethod()
	if def == hashing.MethodDefault {
		t.Fatal("default method is empty")
	}
	if !m.HasMethod(def) {
		t.Errorf("default method %q has no registered driver", def)
	}
}

func TestNewDefaultManager_StrongMethodsRegistered(t *testing.T) {
	m, _ := hashing.NewDefaultManager()
	for _, method := range []hashing.Method{
		hashing.MethodYescrypt, hashing.MethodGostYescrypt,
		hashing.MethodBcrypt, hashing.MethodSHA512Crypt, hashing.MethodSHA256Crypt,
	} {
		if !m.HasMethod(method) {
			t.Errorf("method %q not registered", method)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registry
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_RegisterMethod_Validation(t *testing.T) {
	m := hashing.NewManager(hashing.MethodYescrypt)
	h, _ := hashing.NewCryptHasher(hashing.MethodYescrypt, 0)

	if err := m.RegisterMethod("", h); !errors.Is(err, hashing.ErrEmptyMethodName) {
		t.Errorf("empty name: expected ErrEmptyMethodName, got %v", err)
	}
	if err := m.RegisterMethod(hashing.MethodYescrypt, nil); !errors.Is(err, hashing.ErrNilHasher) {
		t.Errorf("nil hasher: expected ErrNilHasher, got %v", err)
	}
	if err := m.RegisterMethod(hashing.MethodYescrypt, h); err != nil {
		t.Errorf("valid registration failed: %v", err)
	}
}

func TestManager_Driver_NotFound(t *testing.T) {
	m := hashing.NewManager(hashing.MethodYescrypt)
	_, err := m.Driver(hashing.MethodBcrypt)
	if !errors.Is(err, hashing.ErrMethodNotFound) {
		t.Errorf("expected ErrMethodNotFound, got %v", err)
	}
}

func TestManager_SetDefaultMethod(t *testing.T) {
	m := newTestManager(t)
	if err := m.SetDefaultMethod(hashing.MethodSHA512Crypt); err != nil {
		t.Fatalf("SetDefaultMethod: %v", err)
	}
	if m.DefaultMethod() != hashing.MethodSHA512Crypt {
		t.Errorf("default = %q, want sha512crypt", m.DefaultMethod())
	}
}

func TestManager_SetDefaultMethod_Unregistered(t *testing.T) {
	m := newTestManager(t)
	err := m.SetDefaultMethod(hashing.MethodBcrypt)
	if !errors.Is(err, hashing.ErrMethodNotFound) {
		t.Errorf("expected ErrMethodNotFound, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Hashing operations
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_MakeAndCheck(t *testing.T) {
	m := newTestManager(t)
	hash, err := m.Make("hunter2")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	ok, err := m.Check("hunter2", hash)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Error("Check returned false for the correct phrase")
	}
}

func TestManager_Make_UnregisteredDefault(t *testing.T) {
	m := hashing.NewManager(hashing.MethodBcrypt)
	_, err := m.Make("pw")
	if !errors.Is(err, hashing.ErrMethodNotFound) {
		t.Errorf("expected ErrMethodNotFound, got %v", err)
	}
}

func TestManager_CheckWithDetect_MixedStore(t *testing.T) {
	m := newTestManager(t)

	shaDriver, err := m.Driver(hashing.MethodSHA512Crypt)
	if err != nil {
		t.Fatalf("Driver: %v", err)
	}
	legacyHash, err := shaDriver.Make("user-password")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}

	// Default is yescrypt, yet the sha512crypt hash still verifies.
	ok, err := m.CheckWithDetect("user-password", legacyHash)
	if err != nil {
		t.Fatalf("CheckWithDetect: %v", err)
	}
	if !ok {
		t.Error("CheckWithDetect returned false for the correct phrase")
	}
}

func TestManager_CheckWithDetect_UnrecognisedHash(t *testing.T) {
	m := newTestManager(t)
	_, err := m.CheckWithDetect("pw", "garbage")
	if !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

func TestManager_CheckWithDetect_UnregisteredMethod(t *testing.T) {
	m := newTestManager(t)
	_, err := m.CheckWithDetect("pw", "$2b$12$abcdefghijklmnopqrstuv")
	if !errors.Is(err, hashing.ErrMethodNotFound) {
		t.Errorf("expected ErrMethodNotFound, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NeedsRehash
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_NeedsRehash_DefaultMethodFreshHash(t *testing.T) {
	m := newTestManager(t)
	hash, _ := m.Make("pw")
	needs, err := m.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if needs {
		t.Error("a fresh default-method hash should not need a rehash")
	}
}

func TestManager_NeedsRehash_DifferentMethod(t *testing.T) {
	m := newTestManager(t)
	shaDriver, _ := m.Driver(hashing.MethodSHA512Crypt)
	hash, err := shaDriver.Make("pw")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	needs, err := m.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if !needs {
		t.Error("a non-default-method hash should need a rehash")
	}
}

func TestManager_NeedsRehash_LegacyHashWithoutDriver(t *testing.T) {
	m := newTestManager(t)
	// md5crypt is detected but has no registered driver; it differs from the
	// default method, which alone decides the question.
	needs, err := m.NeedsRehash("$1$MJHnaAke$RtlJgfLrKYRDYrlzdLU8e0")
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if !needs {
		t.Error("an md5crypt hash should need a rehash")
	}
}

func TestManager_NeedsRehash_InvalidHash(t *testing.T) {
	m := newTestManager(t)
	_, err := m.NeedsRehash("garbage")
	if !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrency
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_ConcurrentUse(t *testing.T) {
	m := newTestManager(t)
	hash, err := m.Make("pw")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := m.Check("pw", hash)
			if err != nil || !ok {
				t.Errorf("concurrent Check: ok=%v err=%v", ok, err)
			}
			if _, err := m.Make("pw"); err != nil {
				t.Errorf("concurrent Make: %v", err)
			}
		}()
	}
	wg.Wait()
}
