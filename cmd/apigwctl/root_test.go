package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/config"
	"github.com/raywall/apigateway-kit/pkg/model"
)

type stubInvoker struct {
	operation string
	req       model.Shape
	res       model.Shape
	err       error
}

func (s *stubInvoker) Invoke(ctx context.Context, operation string, req model.Shape) (model.Shape, error) {
	s.operation = operation
	s.req = req
	return s.res, s.err
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(a)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func withInvoker(inv Invoker) *app {
	return &app{
		connect: func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
			return &backend{Invoker: inv}, nil
		},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShapes_FiltersByPrefix(t *testing.T) {
	out, err := run(t, &app{}, "shapes", "GetRestApi")
	require.NoError(t, err)
	assert.Contains(t, out, "GetRestApiRequest\n")
	assert.Contains(t, out, "GetRestApisResult\n")
	assert.NotContains(t, out, "UsagePlan")
}

func TestOperations_MarksInvokable(t *testing.T) {
	out, err := run(t, &app{}, "operations", "--invokable")
	require.NoError(t, err)
	assert.Contains(t, out, "OPERATION")
	assert.Contains(t, out, "GetRestApi ")
	assert.Contains(t, out, "/restapis/{restapi_id}")
}

func TestRender_DecodesAndValidates(t *testing.T) {
	path := writeFile(t, "req.yaml", "restApiId: a1b2\n")

	out, err := run(t, &app{}, "render", "GetRestApiRequest", "-f", path, "--validate")
	require.NoError(t, err)
	assert.Contains(t, out, "a1b2")

	_, err = run(t, &app{}, "render", "GetRestApiRequest", "--validate")
	assert.ErrorContains(t, err, "restApiId")

	_, err = run(t, &app{}, "render", "NoSuchShape")
	assert.ErrorContains(t, err, `unknown shape "NoSuchShape"`)
}

func TestInvoke_SendsDecodedRequest(t *testing.T) {
	inv := &stubInvoker{res: (&model.GetRestApiResult{}).SetId("a1b2").SetName("petstore")}
	path := writeFile(t, "req.yaml", "restApiId: a1b2\n")

	out, err := run(t, withInvoker(inv), "invoke", "GetRestApi", "-f", path)
	require.NoError(t, err)

	assert.Equal(t, "GetRestApi", inv.operation)
	req, ok := inv.req.(*model.GetRestApiRequest)
	require.True(t, ok)
	assert.Equal(t, "a1b2", req.GetRestApiId())
	assert.JSONEq(t, `{"id":"a1b2","name":"petstore"}`, out)
}

func TestInvoke_YAMLOutput(t *testing.T) {
	inv := &stubInvoker{res: (&model.GetRestApiResult{}).SetName("petstore")}

	out, err := run(t, withInvoker(inv), "invoke", "GetRestApi", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "name: petstore\n", out)
}

func TestInvoke_Errors(t *testing.T) {
	_, err := run(t, withInvoker(&stubInvoker{}), "invoke", "DoEverything")
	assert.ErrorContains(t, err, `unknown operation "DoEverything"`)

	inv := &stubInvoker{err: errors.New("boom")}
	_, err = run(t, withInvoker(inv), "invoke", "GetRestApi")
	assert.ErrorContains(t, err, "boom")

	inv = &stubInvoker{res: &model.GetRestApiResult{}}
	_, err = run(t, withInvoker(inv), "invoke", "GetRestApi", "-o", "xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestRoot_RejectsInvalidLogLevel(t *testing.T) {
	_, err := run(t, &app{}, "shapes", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRoot_ReadsConfigFile(t *testing.T) {
	path := writeFile(t, "apigwctl.yaml", "region: sa-east-1\nlogging:\n  level: debug\n")
	a := &app{}

	_, err := run(t, a, "--config", path, "shapes", "Account")
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", a.cfg.Region)
	assert.Equal(t, "debug", a.cfg.Logging.Level)
}
