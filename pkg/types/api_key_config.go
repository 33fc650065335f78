package types

// APIKeyConfig DTO descreve o estado desejado de uma API key.
type APIKeyConfig struct {
	Name        string
	Description string
	Enabled     bool
	Value       string
	CustomerID  string
	Tags        map[string]string
}
