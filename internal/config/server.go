package config

// ServerConfig holds configuration for the fixture storefront server
type ServerConfig struct {
	Port string
	// Account accepted by the fixture storefront's sign-in form
	Account Credentials
}

// Default fixture account
const (
	DefaultAccountEmail    = "customer@practicesoftwaretesting.com"
	DefaultAccountPassword = "welcome01"
)

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	account := Credentials{
		Email:    getenv("TEST_EMAIL"),
		Password: getenv("TEST_PASSWORD"),
	}
	if account.Email == "" || account.Password == "" {
		account = Credentials{Email: DefaultAccountEmail, Password: DefaultAccountPassword}
	}

	return ServerConfig{
		Port:    port,
		Account: account,
	}
}
