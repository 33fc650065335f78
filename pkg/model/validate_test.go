package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		shape  Shape
		fields []string
	}{
		{
			name:  "no required members",
			shape: new(CreateApiKeyRequest),
		},
		{
			name:   "missing uri and body members",
			shape:  new(PutMethodRequest).SetResourceId("r1"),
			fields: []string{"restApiId", "httpMethod", "authorizationType"},
		},
		{
			name: "complete request",
			shape: new(PutMethodRequest).
				SetRestApiId("a1").
				SetResourceId("r1").
				SetHttpMethod("GET").
				SetAuthorizationType("NONE"),
		},
		{
			name: "nested shape is checked when set",
			shape: new(CreateDocumentationPartRequest).
				SetRestApiId("a1").
				SetProperties(`{"description":"pets"}`).
				SetLocation(new(DocumentationPartLocation).SetPath("/pets")),
			fields: []string{"location.type"},
		},
		{
			name:   "blob payload",
			shape:  new(ImportRestApiRequest),
			fields: []string{"body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParams))

			var invalid *InvalidParamsError
			require.True(t, errors.As(err, &invalid))
			assert.ElementsMatch(t, tt.fields, invalid.Fields)
		})
	}
}

func TestValidate_NilShape(t *testing.T) {
	var req *DeleteRestApiRequest
	assert.NoError(t, req.Validate())
}
