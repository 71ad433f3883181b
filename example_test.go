package xcrypt_test

import (
	"fmt"
	"log"

	xcrypt "github.com/hasbyte1/go-xcrypt"
)

// Example demonstrates the standard hash-then-store flow: generate a
// setting with the library's best available method, then hash the phrase.
func Example() {
	setting, err := xcrypt.GenSalt("", 0, nil)
	if err != nil {
		log.Fatal(err)
	}

	hashed, err := xcrypt.Crypt("hello", setting)
	if err != nil {
		log.Fatal(err)
	}

	ok, err := xcrypt.Verify("hello", hashed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output: true
}

// ExampleCrypt shows that hashing is deterministic for a fixed setting.
func ExampleCrypt() {
	hashed, err := xcrypt.Crypt("hello", "$y$j9T$VlxJo/WDfFCOPzIIjNMDW.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hashed)
	// Output: $y$j9T$VlxJo/WDfFCOPzIIjNMDW.$dsfHohjtMq.tSGo8x8n9EZx9zqVomsGYSfWEyApH1k.
}

// ExampleGenSalt pins a specific hashing method instead of delegating to
// the library default.
func ExampleGenSalt() {
	setting, err := xcrypt.GenSalt("$6$", 0, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(setting[:3])
	// Output: $6$
}

// ExampleVerify verifies a phrase against a previously stored hash.
func ExampleVerify() {
	stored := "$y$j9T$VlxJo/WDfFCOPzIIjNMDW.$dsfHohjtMq.tSGo8x8n9EZx9zqVomsGYSfWEyApH1k."

	ok, _ := xcrypt.Verify("hello", stored)
	fmt.Println(ok)

	ok, _ = xcrypt.Verify("goodbye", stored)
	fmt.Println(ok)
	// Output:
	// true
	// false
}

// ExampleCheckSalt classifies stored hashes, e.g. to find accounts whose
// hashes should be upgraded on next login.
func ExampleCheckSalt() {
	status, err := xcrypt.CheckSalt("$y$j9T$VlxJo/WDfFCOPzIIjNMDW.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(status)
	// Output: ok
}
