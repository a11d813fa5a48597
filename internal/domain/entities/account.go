package entities

// AccountSettings holds the per-account configuration the pipeline reads.
type AccountSettings struct {
	OwnerID       string `json:"owner_id"`
	PublicBaseURL string `json:"public_base_url"`
	BusinessName  string `json:"business_name"`
}
