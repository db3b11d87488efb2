package models

// User is the public view of a Finances API user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPayload is the body of POST /v1/users/. Empty fields are omitted so
// missing-parameter scenarios can be built from the same type.
type UserPayload struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Credentials is the body of POST /v1/auth/login.
type Credentials struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Login is the success body of POST /v1/auth/login.
type Login struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
