package dto

type CredentialRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// CredentialStatusResponse never includes the key itself.
type CredentialStatusResponse struct {
	Configured bool `json:"configured"`
}
