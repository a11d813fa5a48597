package request

type IssueSignatureSessionRequest struct {
	SignerEmail string `json:"signer_email" binding:"required" example:"client@example.com"`
	SignerName  string `json:"signer_name"`
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required" example:"client@example.com"`
}

type VerifyOTPRequest struct {
	Code string `json:"code" binding:"required" example:"123456"`
}

// CompleteSignatureRequest carries the opaque signature payload drawn or typed by the signer.
type CompleteSignatureRequest struct {
	SignatureData string `json:"signature_data" binding:"required"`
	SignerName    string `json:"signer_name" binding:"required"`
}
