package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML_UsagePlan(t *testing.T) {
	doc := []byte(`
name: gold
apiStages:
  - apiId: a1b2c3
    stage: prod
    throttle:
      /pets/GET:
        burstLimit: 20
        rateLimit: 10
throttle:
  burstLimit: 100
  rateLimit: 50.5
quota:
  limit: 10000
  period: MONTH
tags:
  team: payments
`)
	var req CreateUsagePlanRequest
	require.NoError(t, DecodeYAML(doc, &req))

	want := newUsagePlan()
	want.Description = nil
	want.ApiStages[0].SetThrottle(map[string]*ThrottleSettings{
		"/pets/GET": new(ThrottleSettings).SetBurstLimit(20).SetRateLimit(10),
	})
	assert.True(t, want.Equal(&req), "got %s", req)
}

func TestDecodeYAML_TimestampsAndBlobs(t *testing.T) {
	doc := []byte(`
restApiId: abc
mode: merge
failOnWarnings: true
parameters:
  endpointConfigurationTypes: REGIONAL
body: eyJvcGVuYXBpIjoiMy4wLjEifQ==
`)
	var req PutRestApiRequest
	require.NoError(t, DecodeYAML(doc, &req))
	assert.Equal(t, PutModeMerge, req.GetMode())
	assert.True(t, req.GetFailOnWarnings())
	assert.Equal(t, `{"openapi":"3.0.1"}`, string(req.GetBody()))
	assert.Equal(t, "REGIONAL", req.GetParameters()["endpointConfigurationTypes"])

	var key ApiKey
	require.NoError(t, DecodeYAML([]byte(`createdDate: "2024-03-01T12:00:00Z"`), &key))
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), key.GetCreatedDate().UTC())
}

func TestDecode_Errors(t *testing.T) {
	var req CreateApiKeyRequest
	assert.Error(t, Decode(map[string]interface{}{"unknownMember": "x"}, &req))

	var put PutRestApiRequest
	assert.Error(t, Decode(map[string]interface{}{"body": "%%%"}, &put))

	assert.Error(t, DecodeYAML([]byte("name: [unterminated"), &req))
}

func TestDecodeYAML_Empty(t *testing.T) {
	var req GetAccountRequest
	require.NoError(t, DecodeYAML(nil, &req))
}
