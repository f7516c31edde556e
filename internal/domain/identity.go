package domain

// Identity is the authenticated caller decoded from a credential.
type Identity struct {
	Email string
}
