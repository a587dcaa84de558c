package model

// TokenManager signs and verifies bearer tokens carrying an account ID.
type TokenManager interface {
	GenerateAccessToken(accountID string) (string, error)
	ParseAccessToken(token string) (string, error)
}

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}
