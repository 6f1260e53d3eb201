package models

// ResolveResponse is the body returned by the resolve and list endpoints.
type ResolveResponse struct {
	// Variants holds resolved configurations in declaration order.
	Variants []ResolvedConfig `json:"variants"`

	// Length is len(Variants).
	Length int `json:"length"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewResolveResponse wraps configs into a [ResolveResponse].
func NewResolveResponse(configs []ResolvedConfig) ResolveResponse {
	if configs == nil {
		configs = []ResolvedConfig{}
	}

	return ResolveResponse{Variants: configs, Length: len(configs)}
}
