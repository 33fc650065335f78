package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `
service: apigateway
apiVersion: "2015-07-09"
enums:
  PutMode: [merge, overwrite]
  CacheClusterSize:
    - {value: "0.5", name: Size0Point5Gb}
shapes:
  ThrottleSettings:
    doc: Request throttling limits.
    members:
      - {name: burstLimit, type: integer}
      - {name: rateLimit, type: double}
  PutRestApiRequest:
    members:
      - {name: restApiId, type: string, loc: uri, wire: restapi_id, required: true}
      - {name: mode, type: PutMode, loc: querystring, wire: mode}
      - {name: parameters, type: map<string>, loc: querystring}
      - {name: body, type: blob, loc: payload, required: true}
  PutRestApiResult:
    mirror: RestApi
  RestApi:
    doc: A REST API.
    members:
      - {name: id, type: string}
      - {name: createdDate, type: timestamp}
      - {name: stages, type: list<ThrottleSettings>}
  NotFoundException:
    exception: {code: NotFoundException, fault: client}
    members:
      - {name: message, type: string}
operations:
  - {name: PutRestApi, http: "PUT /restapis/{restapi_id}", input: PutRestApiRequest, output: PutRestApiResult}
`

func renderTestModel(t *testing.T) map[string]string {
	t.Helper()
	api, err := Parse([]byte(testModel))
	require.NoError(t, err)
	files, err := Render(api)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Name] = string(f.Content)
	}
	return out
}

func TestRender_Shapes(t *testing.T) {
	files := renderTestModel(t)

	require.Contains(t, files, "model_put_rest_api_request.go")
	req := files["model_put_rest_api_request.go"]
	assert.Contains(t, req, "// Code generated by modelgen. DO NOT EDIT.")
	assert.Contains(t, req, "// PutRestApiRequest is the input of the PutRestApi operation.")
	assert.Contains(t, req, "RestApiId *string `json:\"restApiId,omitempty\" location:\"uri\" locationName:\"restapi_id\" validate:\"required\"`")
	assert.Contains(t, req, "// RestApiId is a required field")
	assert.Contains(t, req, "Mode *PutMode `json:\"mode,omitempty\" location:\"querystring\" locationName:\"mode\"`")
	assert.Contains(t, req, "Body []byte `json:\"body,omitempty\" location:\"payload\" validate:\"required\"`")
	assert.Contains(t, req, "func (s *PutRestApiRequest) GetMode() PutMode {")
	assert.Contains(t, req, "func (s *PutRestApiRequest) SetBody(v []byte) *PutRestApiRequest {")
	assert.Contains(t, req, "func (s *PutRestApiRequest) AddParametersEntry(key string, value string) error {")
	assert.Contains(t, req, "func (s *PutRestApiRequest) ClearParametersEntries() *PutRestApiRequest {")
	assert.NotContains(t, req, `"time"`)

	res := files["model_put_rest_api_result.go"]
	assert.Contains(t, res, "// PutRestApiResult is the output of the PutRestApi operation.\n//\n// A REST API.")
	assert.Contains(t, res, `"time"`)
	assert.Contains(t, res, "CreatedDate *time.Time")
	assert.Contains(t, res, "Stages []*ThrottleSettings")

	exc := files["model_not_found_exception.go"]
	assert.Contains(t, exc, `"github.com/aws/smithy-go"`)
	assert.Contains(t, exc, "return smithy.FaultClient")
	assert.Contains(t, exc, `return "NotFoundException"`)
}

func TestRender_EnumsAndOperations(t *testing.T) {
	files := renderTestModel(t)

	enums := files["enums.go"]
	assert.Contains(t, enums, "type PutMode string")
	assert.Contains(t, enums, "PutModeMerge     PutMode = \"merge\"")
	assert.Contains(t, enums, "CacheClusterSizeSize0Point5Gb CacheClusterSize = \"0.5\"")

	ops := files["operations.go"]
	assert.Contains(t, ops, `{Name: "PutRestApi", HTTPMethod: "PUT", RequestURI: "/restapis/{restapi_id}", Input: "PutRestApiRequest", Output: "PutRestApiResult"},`)
	assert.Contains(t, ops, "case \"ThrottleSettings\":\n\t\treturn new(ThrottleSettings), true")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  string
	}{
		{
			name:  "unknown mirror",
			model: "shapes:\n  A: {mirror: B}\n",
			want:  "mirrors unknown shape",
		},
		{
			name:  "unknown operation input",
			model: "shapes:\n  A: {members: []}\noperations:\n  - {name: Op, http: GET /, input: Missing}\n",
			want:  "unknown input shape",
		},
		{
			name:  "invalid yaml",
			model: "shapes: [",
			want:  "decoding model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.model))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender_UnknownMemberType(t *testing.T) {
	api, err := Parse([]byte("shapes:\n  A:\n    members:\n      - {name: x, type: Nope}\n"))
	require.NoError(t, err)
	_, err = Render(api)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `A.x: unknown type "Nope"`)
}

func TestWrite(t *testing.T) {
	api, err := Parse([]byte(testModel))
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := Write(api, dir)
	require.NoError(t, err)

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(t, err)
		assert.Equal(t, string(f.Content), string(data))
	}
}

func TestLoad_ServiceModel(t *testing.T) {
	api, err := Load(filepath.Join("..", "..", "api", "apigateway.yaml"))
	require.NoError(t, err)

	files, err := Render(api)
	require.NoError(t, err)
	assert.Len(t, files, len(api.Shapes)+2)

	for _, op := range api.Operations {
		assert.True(t, strings.HasSuffix(op.Input, "Request"), op.Name)
		if op.Output != "" {
			assert.True(t, strings.HasSuffix(op.Output, "Result"), op.Name)
		}
	}
}
