package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/awsmock"
	"github.com/raywall/apigateway-kit/internal/repository"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

const petstore = "openapi: 3.0.1\ninfo:\n  title: petstore\n  version: '1'\npaths: {}\n"

func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstore), 0o600))
	return path
}

func newRestAPIService(api *awsmock.MockAPIGateway) *RestAPIService {
	return &RestAPIService{
		APIGWRepo: newAPIGWRepo(api),
		Documents: &repository.DocumentRepository{Log: zerolog.Nop()},
		Log:       zerolog.Nop(),
	}
}

func TestRestAPIService_ImportAndDeploy(t *testing.T) {
	var deployedStage string
	api := &awsmock.MockAPIGateway{
		ImportRestApiFunc: func(ctx context.Context, params *apigw.ImportRestApiInput, optFns ...func(*apigw.Options)) (*apigw.ImportRestApiOutput, error) {
			assert.Equal(t, petstore, string(params.Body))
			assert.Equal(t, map[string]string{"endpointConfigurationTypes": "REGIONAL"}, params.Parameters)
			return &apigw.ImportRestApiOutput{
				Id:             aws.String("a1"),
				Name:           aws.String("petstore"),
				RootResourceId: aws.String("root"),
				Warnings:       []string{"unsupported x-extension"},
			}, nil
		},
		CreateDeploymentFunc: func(ctx context.Context, params *apigw.CreateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error) {
			deployedStage = aws.ToString(params.StageName)
			return &apigw.CreateDeploymentOutput{Id: aws.String("d1")}, nil
		},
	}

	state, err := newRestAPIService(api).Import(context.Background(), &dto.RestAPIDefinitionConfig{
		BodyLocation: writeDefinition(t),
		Parameters:   map[string]string{"endpointConfigurationTypes": "REGIONAL"},
		StageName:    "prod",
	})
	require.NoError(t, err)

	assert.Equal(t, "a1", state.ID)
	assert.Equal(t, "root", state.RootResourceID)
	assert.Equal(t, "d1", state.DeploymentID)
	assert.Equal(t, BodyHash([]byte(petstore)), state.BodyHash)
	assert.Equal(t, "prod", deployedStage)
}

func TestRestAPIService_PutWithoutStage(t *testing.T) {
	var put *apigw.PutRestApiInput
	api := &awsmock.MockAPIGateway{
		PutRestApiFunc: func(ctx context.Context, params *apigw.PutRestApiInput, optFns ...func(*apigw.Options)) (*apigw.PutRestApiOutput, error) {
			put = params
			return &apigw.PutRestApiOutput{Id: params.RestApiId}, nil
		},
	}

	state, err := newRestAPIService(api).Put(context.Background(), "a1", &dto.RestAPIDefinitionConfig{
		BodyLocation:   writeDefinition(t),
		Mode:           "MERGE",
		FailOnWarnings: true,
	})
	require.NoError(t, err)

	assert.Equal(t, apigwtypes.PutModeMerge, put.Mode)
	assert.True(t, put.FailOnWarnings)
	assert.Empty(t, state.DeploymentID)
}

func TestRestAPIService_PutRejectsUnknownMode(t *testing.T) {
	_, err := newRestAPIService(&awsmock.MockAPIGateway{}).Put(context.Background(), "a1", &dto.RestAPIDefinitionConfig{
		BodyLocation: writeDefinition(t),
		Mode:         "append",
	})
	assert.ErrorContains(t, err, `invalid put mode "append"`)
}

func TestRestAPIService_ExportToFile(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		GetExportFunc: func(ctx context.Context, params *apigw.GetExportInput, optFns ...func(*apigw.Options)) (*apigw.GetExportOutput, error) {
			assert.Equal(t, "oas30", aws.ToString(params.ExportType))
			assert.Equal(t, "application/yaml", aws.ToString(params.Accepts))
			return &apigw.GetExportOutput{Body: []byte(petstore), ContentType: aws.String("application/yaml")}, nil
		},
	}
	out := filepath.Join(t.TempDir(), "export", "prod.yaml")

	require.NoError(t, newRestAPIService(api).Export(context.Background(), "a1", "prod", "oas30", "application/yaml", out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, petstore, string(got))
}

func TestRestAPIService_ReadMissing(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		GetRestApiFunc: func(ctx context.Context, params *apigw.GetRestApiInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error) {
			return nil, &apigwtypes.NotFoundException{Message: aws.String("Invalid API identifier specified")}
		},
	}

	got, err := newRestAPIService(api).Read(context.Background(), "a1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
