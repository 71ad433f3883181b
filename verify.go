package xcrypt

import "crypto/subtle"

// Verify reports whether phrase matches hashedPhrase, a hash previously
// produced by [Crypt].
//
// It re-hashes phrase using hashedPhrase as the setting (the stored hash
// carries its own method, cost, and salt) and compares the results in
// constant time. A structurally invalid hashedPhrase yields the same errors
// as [Crypt]; a clean mismatch is (false, nil).
func Verify(phrase, hashedPhrase string) (bool, error) {
	computed, err := Crypt(phrase, hashedPhrase)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedPhrase)) == 1, nil
}
