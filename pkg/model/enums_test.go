package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnums(t *testing.T) {
	assert.Equal(t, []PutMode{PutModeMerge, PutModeOverwrite}, PutMode("").Values())
	assert.True(t, EndpointTypeRegional.IsKnown())
	assert.False(t, EndpointType("GLOBAL").IsKnown())
	assert.Equal(t, "DEFAULT_4XX", GatewayResponseTypeDefault4xx.String())
	assert.Equal(t, "0.5", string(CacheClusterSizeSize0Point5Gb))
	assert.Equal(t, "TLS_1_2", string(SecurityPolicyTls12))

	// Values outside the modelled set are accepted on assignment.
	req := new(GetDocumentationPartsRequest).SetType("FUTURE_TYPE")
	assert.Equal(t, DocumentationPartType("FUTURE_TYPE"), req.GetType())
}
