package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperations(t *testing.T) {
	ops := Operations()
	require.NotEmpty(t, ops)
	assert.True(t, sort.SliceIsSorted(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name }))

	for _, op := range ops {
		in, ok := NewShape(op.Input)
		assert.True(t, ok, "%s: input shape %s", op.Name, op.Input)
		assert.Implements(t, (*Shape)(nil), in)
		if op.Output != "" {
			_, ok := NewShape(op.Output)
			assert.True(t, ok, "%s: output shape %s", op.Name, op.Output)
		}
	}
}

func TestLookupOperation(t *testing.T) {
	op, ok := LookupOperation("PutRestApi")
	require.True(t, ok)
	assert.Equal(t, "PUT", op.HTTPMethod)
	assert.Equal(t, "/restapis/{restapi_id}", op.RequestURI)
	assert.Equal(t, "PutRestApiRequest", op.Input)
	assert.Equal(t, "PutRestApiResult", op.Output)

	op, ok = LookupOperation("DeleteApiKey")
	require.True(t, ok)
	assert.Empty(t, op.Output)

	_, ok = LookupOperation("CreateWebSocketApi")
	assert.False(t, ok)
}

func TestNewRequest(t *testing.T) {
	req, ok := NewRequest("CreateApiKey")
	require.True(t, ok)
	assert.IsType(t, &CreateApiKeyRequest{}, req)

	_, ok = NewRequest("Nope")
	assert.False(t, ok)
}

func TestShapeNames(t *testing.T) {
	names := ShapeNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "EndpointConfiguration")
	for _, n := range names {
		_, ok := NewShape(n)
		assert.True(t, ok, n)
	}
}
