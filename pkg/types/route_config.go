package types

import "strings"

// RouteConfig DTO armazena as configurações de uma rota APIGW.
type RouteConfig struct {
	Path           string
	Method         string
	Authorization  string
	AuthorizerID   string
	APIKeyRequired bool
}

// AuthorizationType normaliza Authorization; vazio equivale a NONE.
func (r RouteConfig) AuthorizationType() string {
	a := strings.ToUpper(strings.TrimSpace(r.Authorization))
	if a == "" {
		return "NONE"
	}
	return a
}
