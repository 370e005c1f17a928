package domain

// Identity is the outcome of optional bearer-token verification. The zero
// value is anonymous; callers must go through Email to learn who is asking.
type Identity struct {
	email    string
	verified bool
}

// Anonymous returns an identity carrying no verified email.
func Anonymous() Identity {
	return Identity{}
}

// Verified returns an identity for an email confirmed by the identity provider.
func Verified(email string) Identity {
	if email == "" {
		return Identity{}
	}
	return Identity{email: email, verified: true}
}

// Email returns the verified email and whether one is present.
func (i Identity) Email() (string, bool) {
	return i.email, i.verified
}
