package scope

// Manager verifies and issues the tokens that carry a user scope.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// New creates a Manager backed by HMAC-signed JWTs.
func New(secretKey string) Manager {
	return &implManager{secretKey: secretKey}
}
