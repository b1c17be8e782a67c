package user

// Principal identifies the authenticated caller as resolved by the auth
// provider's token introspection.
type Principal struct {
	UserID string
	Email  string
}

func (p Principal) IsValid() bool {
	return p.UserID != ""
}
