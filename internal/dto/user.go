package dto

// UserInfoResponse echoes the identity the gateway forwarded for this request.
type UserInfoResponse struct {
	PreferredUsername string `json:"preferred_username"`
	UserID            string `json:"user_id"`
	Email             string `json:"email"`
}
