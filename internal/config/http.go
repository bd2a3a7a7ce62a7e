package config

type HTTP struct {
	Port    uint32 `env:"HTTP_PORT" envDefault:"8000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`

	// CorsAllowedOrigins lists the origins allowed to call the API from a browser.
	// The default is the dev server of the inventory SPA.
	CorsAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:4200" envSeparator:","`

	// RequestValidation validates requests against the embedded OpenAPI contract.
	RequestValidation bool `env:"HTTP_REQUEST_VALIDATION" envDefault:"true"`
}
