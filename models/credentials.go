package models

// Credentials identify the caller of an API request, as carried in the
// session token.
type Credentials struct {
	UserId string
	Role   Role
	Name   string
	Email  string
}
