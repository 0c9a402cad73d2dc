package config

import "fmt"

// Credentials is the account used by sign-in flows
type Credentials struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// LoadCredentials loads the test account from environment variables
func LoadCredentials(getenv func(string) string) (*Credentials, error) {
	creds := &Credentials{
		Email:    getenv("TEST_EMAIL"),
		Password: getenv("TEST_PASSWORD"),
	}

	// Validate required fields
	if creds.Email == "" {
		return nil, fmt.Errorf("TEST_EMAIL is required")
	}
	if creds.Password == "" {
		return nil, fmt.Errorf("TEST_PASSWORD is required")
	}

	return creds, nil
}

// ResolveCredentials picks the sign-in account for a run. Credentials from a
// config file win over TEST_EMAIL/TEST_PASSWORD. When required is false and
// neither source has an account, it returns nil.
func ResolveCredentials(getenv func(string) string, fromFile *Credentials, required bool) (*Credentials, error) {
	if fromFile != nil {
		if fromFile.Email == "" || fromFile.Password == "" {
			return nil, fmt.Errorf("credentials in config file need both email and password")
		}
		return fromFile, nil
	}
	if !required && getenv("TEST_EMAIL") == "" && getenv("TEST_PASSWORD") == "" {
		return nil, nil
	}
	return LoadCredentials(getenv)
}
