package models

// User is the profile attached to the current session. It starts as a
// placeholder derived from the login email and is enriched once the
// dashboard loads.
type User struct {
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Agency        string `json:"agency,omitempty"`
}

// Session couples the bearer token with the user profile. The two are set
// and cleared together; a token without a user never survives a completed
// login workflow.
type Session struct {
	Token string
	User  *User
}

// Credentials are transient login data, never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationRequest is the body of POST /auth/register. Document carries
// digits only (11 chars), TransactionPin is 4 digits.
type RegistrationRequest struct {
	FullName       string `json:"fullName"`
	Document       string `json:"document"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	TransactionPin string `json:"transactionPin"`
}

// RegisterResponse is returned by POST /auth/register.
type RegisterResponse struct {
	AccountNumber string `json:"accountNumber"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}
