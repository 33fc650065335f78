package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"CreateApiKeyRequest":          "create_api_key_request",
		"TlsConfig":                    "tls_config",
		"MutualTlsAuthenticationInput": "mutual_tls_authentication_input",
		"HTTPHeader":                   "http_header",
		"Usage":                        "usage",
	}
	for in, want := range tests {
		assert.Equal(t, want, snakeCase(in), in)
	}
}

func TestEnumConstName(t *testing.T) {
	assert.Equal(t, "ContentHandlingStrategyConvertToBinary", enumConstName("ContentHandlingStrategy", EnumValue{Value: "CONVERT_TO_BINARY"}))
	assert.Equal(t, "GatewayResponseTypeDefault4xx", enumConstName("GatewayResponseType", EnumValue{Value: "DEFAULT_4XX"}))
	assert.Equal(t, "ApiKeysFormatCsv", enumConstName("ApiKeysFormat", EnumValue{Value: "csv"}))
	assert.Equal(t, "CacheClusterSizeSize118Gb", enumConstName("CacheClusterSize", EnumValue{Value: "118", Name: "Size118Gb"}))
}

func TestExportedName(t *testing.T) {
	assert.Equal(t, "RestApiId", exportedName("restApiId"))
	assert.Equal(t, "ProviderARNs", exportedName("providerARNs"))
	assert.Equal(t, "", exportedName(""))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"supercalifragilistic", "x"}, wrap("supercalifragilistic x", 8))
}
