package raysouz

import (
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	require.NoError(t, Provider().InternalValidate())
}

func TestProvider_Resources(t *testing.T) {
	p := Provider()
	for _, name := range []string{
		"raysouz_apigateway_lambda_routes",
		"raysouz_apigateway_usage_plan",
		"raysouz_apigateway_api_key",
		"raysouz_apigateway_rest_api_definition",
	} {
		assert.Contains(t, p.ResourcesMap, name)
	}
}

func TestConfigFromResourceData(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("RAYSOUZ_LOG_LEVEL", "")

	d := schema.TestResourceDataRaw(t, Provider().Schema, map[string]interface{}{
		"profile":          "staging",
		"param_validation": false,
		"log_level":        "debug",
	})

	cfg, err := configFromResourceData(d)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)
	assert.Equal(t, "staging", cfg.Profile)
	assert.False(t, cfg.ParamValidation)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}
