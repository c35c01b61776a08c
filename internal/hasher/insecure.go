package hasher

// Insecure derives the credential by prefixing the plain secret.
// It performs no real hashing and exists so tests can assert credential
// plumbing without paying for bcrypt. Never wire it into a real deployment.
type Insecure struct{}

func NewInsecure() *Insecure {
	return &Insecure{}
}

func (h *Insecure) Hash(secret string) (string, error) {
	return "hashed_" + secret, nil
}

func (h *Insecure) Compare(hash, secret string) bool {
	derived, _ := h.Hash(secret)
	return hash == derived
}
