package models

// ErrorResponse is the JSON body of every non-2xx answer produced by the
// HTTP handlers.
type ErrorResponse struct {
	// Detail is a short human readable explanation, e.g. "Invalid API Key".
	Detail string `json:"detail"`
}

// IndexResponse is served at the root path and lists the available
// endpoints together with the demo credentials accepted by the service.
type IndexResponse struct {
	Message     string         `json:"message"`
	Endpoints   IndexEndpoints `json:"endpoints"`
	Credentials Credentials    `json:"credentials"`
}

// IndexEndpoints groups the endpoint descriptions shown by the index.
type IndexEndpoints struct {
	ParameterPassing []string `json:"parameter_passing"`
	Authentication   []string `json:"authentication"`
	Combined         []string `json:"combined"`
}

// Credentials are the demo secrets printed by the index so that the
// endpoints can be tried out by hand.
type Credentials struct {
	APIKey      string `json:"api_key"`
	BearerToken string `json:"bearer_token"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
}
