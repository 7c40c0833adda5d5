package dto

// TokenResponse carries a freshly issued access token. AccessToken is
// empty when issuance was refused.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type SellerCheckResponse struct {
	IsSeller bool `json:"isSeller"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
