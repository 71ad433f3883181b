// Package hashing provides a driver registry and dispatcher over the native
// hashing methods exposed by the xcrypt core package.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. The concrete driver,
// [CryptHasher], binds one native method prefix (yescrypt, bcrypt,
// sha512crypt, ...) with a cost parameter; since every method is computed by
// the same native library, one driver type parameterised by [Method] covers
// them all.
//
// The [Manager] is a named driver registry. Register one or more [Hasher]
// implementations, designate a default method, then delegate day-to-day
// hashing operations through the Manager.
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // strong methods registered, native preferred default
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := m.Make("my-secret-password")
//	ok, _   := m.CheckWithDetect("my-secret-password", hash)
//
// # Hash upgrades
//
// [Manager.NeedsRehash] reports when a stored hash should be re-made: either
// it was produced by a non-default method, or the native library itself
// classifies its setting as legacy, disabled, or too cheap (crypt_checksalt).
// The judgment about method strength always stays with the native library;
// this package adds no cost heuristics of its own.
//
//	ok, _ := m.CheckWithDetect(password, storedHash)
//	if ok {
//	    if needs, _ := m.NeedsRehash(storedHash); needs {
//	        newHash, _ := m.Make(password)
//	        persist(userID, newHash)
//	    }
//	}
package hashing
