package resource

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/awsmock"
	"github.com/raywall/apigateway-kit/internal/repository"
	"github.com/raywall/apigateway-kit/internal/service"
	"github.com/raywall/apigateway-kit/provider/internal/models"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

func TestResourceSchemas(t *testing.T) {
	for name, r := range map[string]*schema.Resource{
		"lambda_routes":       ResourceAPIGatewayLambdaRoutes(),
		"usage_plan":          ResourceAPIGatewayUsagePlan(),
		"api_key":             ResourceAPIGatewayAPIKey(),
		"rest_api_definition": ResourceAPIGatewayRestAPIDefinition(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, r.InternalValidate(nil, true))
		})
	}
}

func TestExtractConfig(t *testing.T) {
	d := schema.TestResourceDataRaw(t, ResourceAPIGatewayLambdaRoutes().Schema, map[string]interface{}{
		"api_gateway_id": "a1b2",
		"stage_name":     "prod",
		"lambda_config": []interface{}{map[string]interface{}{
			"function_name":         "users",
			"runtime":               "provided.al2023",
			"handler":               "bootstrap",
			"zip_file":              "dist/users.zip",
			"attached_policy_arns":  []interface{}{"arn:aws:iam::aws:policy/AmazonDynamoDBReadOnlyAccess"},
			"environment_variables": map[string]interface{}{"TABLE": "users"},
		}},
		"routes": []interface{}{
			map[string]interface{}{"path": "/users", "method": "get"},
			map[string]interface{}{"path": "/users/{id}", "method": "DELETE", "authorization": "CUSTOM", "authorizer_id": "auth1", "api_key_required": true},
		},
	})

	lc, routes := extractConfig(d)

	assert.Equal(t, &dto.LambdaConfig{
		FunctionName:     "users",
		Runtime:          "provided.al2023",
		Handler:          "bootstrap",
		ZipPath:          "dist/users.zip",
		MemorySize:       128,
		Timeout:          30,
		LogRetentionDays: 14,
		PolicyARNs:       []string{"arn:aws:iam::aws:policy/AmazonDynamoDBReadOnlyAccess"},
		Environment:      map[string]string{"TABLE": "users"},
	}, lc)
	assert.Equal(t, []dto.RouteConfig{
		{Path: "/users", Method: "GET", Authorization: "NONE"},
		{Path: "/users/{id}", Method: "DELETE", Authorization: "CUSTOM", AuthorizerID: "auth1", APIKeyRequired: true},
	}, routes)
}

func TestStaleRoutes(t *testing.T) {
	prev := []dto.RouteState{
		{Path: "/users", Method: "GET", ResourceID: "u1"},
		{Path: "/users", Method: "POST", ResourceID: "u1"},
	}
	stale := staleRoutes(prev, []dto.RouteConfig{{Path: "/users", Method: "GET"}})
	assert.Equal(t, []dto.RouteState{{Path: "/users", Method: "POST", ResourceID: "u1"}}, stale)
}

func TestExtractAPIID(t *testing.T) {
	assert.Equal(t, "a1b2", extractAPIID("a1b2"))
	assert.Equal(t, "a1b2", extractAPIID("rest:a1b2"))
}

func TestUsagePlanConfig(t *testing.T) {
	d := schema.TestResourceDataRaw(t, ResourceAPIGatewayUsagePlan().Schema, map[string]interface{}{
		"name":        "basic",
		"throttle":    []interface{}{map[string]interface{}{"burst_limit": 20, "rate_limit": 10.5}},
		"quota":       []interface{}{map[string]interface{}{"limit": 1000, "period": "MONTH"}},
		"api_stages":  []interface{}{map[string]interface{}{"api_id": "a1", "stage": "prod"}},
		"api_key_ids": []interface{}{"k2", "k1"},
		"tags":        map[string]interface{}{"team": "payments"},
	})

	cfg := usagePlanConfig(d.Get)
	assert.Equal(t, &dto.UsagePlanConfig{
		Name:      "basic",
		Throttle:  &dto.ThrottleConfig{BurstLimit: 20, RateLimit: 10.5},
		Quota:     &dto.QuotaConfig{Limit: 1000, Period: "MONTH"},
		Stages:    []dto.StageConfig{{APIID: "a1", Stage: "prod"}},
		APIKeyIDs: []string{"k1", "k2"},
		Tags:      map[string]string{"team": "payments"},
	}, cfg)

	assert.Equal(t, []interface{}{map[string]interface{}{"limit": 1000, "offset": 0, "period": "MONTH"}}, flattenQuota(cfg.Quota))
	assert.Nil(t, flattenThrottle(nil))
}

func TestAPIKeyResource_CreateReadsBack(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		CreateApiKeyFunc: func(ctx context.Context, params *apigw.CreateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateApiKeyOutput, error) {
			return &apigw.CreateApiKeyOutput{Id: aws.String("key1"), Value: aws.String("generated-value-0123456789")}, nil
		},
		GetApiKeyFunc: func(ctx context.Context, params *apigw.GetApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeyOutput, error) {
			return &apigw.GetApiKeyOutput{
				Id:      params.ApiKey,
				Name:    aws.String("partner"),
				Value:   aws.String("generated-value-0123456789"),
				Enabled: true,
			}, nil
		},
	}
	repo := &repository.APIGWRepository{API: api, Log: zerolog.Nop(), ParamValidation: true}
	bundle := &models.ConfigurationBundle{
		APIKeys: &service.APIKeyService{APIGWRepo: repo, Region: "us-east-1", Log: zerolog.Nop()},
	}

	d := schema.TestResourceDataRaw(t, ResourceAPIGatewayAPIKey().Schema, map[string]interface{}{"name": "partner"})
	diags := apiKeyCreate(context.Background(), d, bundle)
	require.False(t, diags.HasError(), "%v", diags)

	assert.Equal(t, "key1", d.Id())
	assert.Equal(t, "generated-value-0123456789", d.Get("value"))
	assert.Equal(t, "arn:aws:apigateway:us-east-1::/apikeys/key1", d.Get("arn"))
	assert.True(t, d.Get("enabled").(bool))
}

func TestBundleFrom_RejectsUnconfigured(t *testing.T) {
	_, err := bundleFrom(nil)
	assert.ErrorContains(t, err, "provider not configured")
}
