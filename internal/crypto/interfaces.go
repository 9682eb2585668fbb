package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing hashes and
// checks candidates against them.
//
// Hashes are encoded in PHC string form:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
//
// so the parameters used at hashing time travel with the hash and Verify
// keeps working after the defaults change.
type PasswordHasher interface {
	// Hash returns the encoded hash of password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed
	// hash yields ErrInvalidHashFormat, a mismatch yields (false, nil).
	Verify(password, encodedHash string) (bool, error)

	// IsHashed reports whether s already looks like a hash produced by
	// Hash. Used by the store to avoid hashing a hash twice.
	IsHashed(s string) bool
}
