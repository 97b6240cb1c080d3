package entities

// AuthUser is the verified identity supplied by the auth middleware.
type AuthUser struct {
	ID      string
	IsAdmin bool
}
