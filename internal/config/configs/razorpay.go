package configs

// Razorpay holds the payment gateway credentials and endpoint. KeyID
// and KeySecret are the two secrets required for basic auth against the
// REST API; when either is empty the server starts without a gateway
// and every capture attempt fails fast with a configuration error.
type Razorpay struct {
	KeyID     string `env:"KEY_ID"`
	KeySecret string `env:"KEY_SECRET"`

	// BaseURL is the gateway API origin. Overridable for tests.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.razorpay.com"`
}
