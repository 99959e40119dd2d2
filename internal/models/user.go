package models

// User is the account profile the backend returns on login/signup.
type User struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Token wraps the backend-issued bearer credential. The token is
// opaque: the client never inspects or locally expires it.
type Token struct {
	AccessToken string `json:"access_token"`
}
