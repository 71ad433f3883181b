package hashing

import (
	"fmt"
	"slices"
	"sync"

	xcrypt "github.com/hasbyte1/go-xcrypt"
)

// Manager is a thread-safe method registry and dispatcher.
//
// Register one or more [Hasher] implementations under their method names,
// nominate a default, and call [Manager.Make] / [Manager.Check] /
// [Manager.NeedsRehash] through the Manager for day-to-day operations.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterMethod, SetDefaultMethod)
// while allowing concurrent reads.
type Manager struct {
	mu      sync.RWMutex
	drivers map[Method]Hasher
	def     Method
}

// NewManager creates an empty Manager with the given default method name.
// Drivers must be registered with [Manager.RegisterMethod] before any
// hashing operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant.
func NewManager(defaultMethod Method) *Manager {
	return &Manager{
		drivers: make(map[Method]Hasher),
		def:     defaultMethod,
	}
}

// NewDefaultManager creates a Manager with the strong native methods
// pre-registered at their default costs. The default method is whatever the
// native library itself prefers (yescrypt in current libxcrypt builds).
//
//	m, err := hashing.NewDefaultManager()
//	hash, _ := m.Make("secret")
func NewDefaultManager() (*Manager, error) {
	def := Method(xcrypt.PreferredMethod())
	if def == MethodDefault {
		def = MethodYescrypt
	}
	m := NewManager(def)

	methods := []Method{
		MethodYescrypt, MethodGostYescrypt, MethodBcrypt,
		MethodSHA512Crypt, MethodSHA256Crypt,
	}
	if !slices.Contains(methods, def) {
		methods = append(methods, def)
	}
	for _, method := range methods {
		h, err := NewCryptHasher(method, 0)
		if err != nil {
			return nil, fmt.Errorf("hashing: creating %s driver: %w", method, err)
		}
		if err := m.RegisterMethod(method, h); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RegisterMethod adds or replaces a named hasher in the Manager. It is safe
// to call while other goroutines are using the Manager.
func (m *Manager) RegisterMethod(name Method, h Hasher) error {
	if name == "" {
		return ErrEmptyMethodName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrMethodNotFound]
// if no such method has been registered.
func (m *Manager) Driver(name Method) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMethodNotFound, name)
	}
	return h, nil
}

// SetDefaultMethod changes the method used by [Manager.Make],
// [Manager.Check], and [Manager.NeedsRehash]. The method must already be
// registered.
func (m *Manager) SetDefaultMethod(name Method) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterMethod first",
			ErrMethodNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultMethod returns the name of the currently configured default method.
func (m *Manager) DefaultMethod() Method {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasMethod reports whether a driver for the given method is registered.
func (m *Manager) HasMethod(name Method) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Make hashes phrase using the default method's driver.
func (m *Manager) Make(phrase string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(phrase)
}

// Check verifies phrase against hash using the default method's driver.
//
// To verify a hash produced by a specific (non-default) method, use
// [Manager.Driver] first, or [Manager.CheckWithDetect] for mixed stores.
func (m *Manager) Check(phrase, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(phrase, hash)
}

// CheckWithDetect verifies phrase against hash by detecting which method
// produced the hash. This is the right call when hashes from several
// methods coexist (e.g. during a sha512crypt-to-yescrypt migration).
//
// Returns [ErrMethodNotFound] if the detected method is not registered and
// [ErrInvalidHash] if the hash carries no recognised prefix.
func (m *Manager) CheckWithDetect(phrase, hash string) (bool, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return false, err
	}
	return h.Check(phrase, hash)
}

// NeedsRehash reports whether hash should be re-made with the current
// default method.
//
// It returns true when:
//  1. The hash was produced by a different method than the current default, OR
//  2. The native library classifies its setting as legacy, disabled, or
//     too cheap.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectMethod(hash)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	// Different method: always rehash to converge on the default.
	if detected != def {
		return true, nil
	}

	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// Info extracts metadata from hash by detecting which method produced it.
func (m *Manager) Info(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default method %q has not been registered",
			ErrMethodNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, ok := DetectMethod(hash)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Driver(name)
}
