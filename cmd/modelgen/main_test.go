package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyModel = `service: apigateway
package: model
enums:
  Op: [add, remove]
shapes:
  PatchOperation:
    members:
      - {name: op, type: Op}
      - {name: path, type: string}
  GetTagsRequest:
    members:
      - {name: resourceArn, type: string, loc: uri, wire: resource_arn, required: true}
  GetTagsResult:
    members:
      - {name: tags, type: map<string>}
operations:
  - {name: GetTags, http: "GET /tags/{resource_arn}", input: GetTagsRequest, output: GetTagsResult}
`

func TestModelgen_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(modelPath, []byte(tinyModel), 0o600))
	out := filepath.Join(dir, "out")

	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--model", modelPath, "--out", out})
	require.NoError(t, cmd.Execute())

	for _, name := range []string{"model_patch_operation.go", "model_get_tags_request.go", "enums.go", "operations.go"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
}

func TestModelgen_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(modelPath, []byte(tinyModel), 0o600))
	out := filepath.Join(dir, "out")

	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--model", modelPath, "--out", out, "--dry-run"})
	require.NoError(t, cmd.Execute())

	assert.NoDirExists(t, out)
}

func TestModelgen_MissingModel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--model", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorContains(t, cmd.Execute(), "reading model")
}
