package response

// AuthResponse carries the signed token and the public user data.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
