package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/awsmock"
	"github.com/raywall/apigateway-kit/internal/repository"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

func TestAPIKeyPatches(t *testing.T) {
	old := &dto.APIKeyConfig{Name: "partner", Enabled: true, Value: "secret"}
	desired := &dto.APIKeyConfig{Name: "partner", Enabled: false, Value: "rotated", CustomerID: "c-42"}

	assert.Equal(t, []string{"replace /enabled=false", "replace /customerId=c-42"}, opStrings(APIKeyPatches(old, desired)))
	assert.Empty(t, APIKeyPatches(old, old))
}

func TestAPIKeyService_CreateAndRead(t *testing.T) {
	var created *apigw.CreateApiKeyInput
	api := &awsmock.MockAPIGateway{
		CreateApiKeyFunc: func(ctx context.Context, params *apigw.CreateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateApiKeyOutput, error) {
			created = params
			return &apigw.CreateApiKeyOutput{Id: aws.String("key1"), Value: aws.String("generated"), Name: params.Name}, nil
		},
		GetApiKeyFunc: func(ctx context.Context, params *apigw.GetApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeyOutput, error) {
			assert.True(t, aws.ToBool(params.IncludeValue))
			return &apigw.GetApiKeyOutput{
				Id:         params.ApiKey,
				Name:       aws.String("partner"),
				Value:      aws.String("generated"),
				Enabled:    true,
				CustomerId: aws.String("c-1"),
			}, nil
		},
	}
	svc := &APIKeyService{APIGWRepo: newAPIGWRepo(api), Log: zerolog.Nop()}

	id, value, err := svc.Create(context.Background(), &dto.APIKeyConfig{Name: "partner", Enabled: true, CustomerID: "c-1"})
	require.NoError(t, err)
	assert.Equal(t, "key1", id)
	assert.Equal(t, "generated", value)
	assert.True(t, created.Enabled)
	assert.Nil(t, created.Value)

	cfg, err := svc.Read(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, &dto.APIKeyConfig{Name: "partner", Enabled: true, Value: "generated", CustomerID: "c-1"}, cfg)
}

func TestAPIKeyService_UpdateTagsUseKeyArn(t *testing.T) {
	var arn string
	api := &awsmock.MockAPIGateway{
		TagResourceFunc: func(ctx context.Context, params *apigw.TagResourceInput, optFns ...func(*apigw.Options)) (*apigw.TagResourceOutput, error) {
			arn = aws.ToString(params.ResourceArn)
			return &apigw.TagResourceOutput{}, nil
		},
	}
	svc := &APIKeyService{APIGWRepo: newAPIGWRepo(api), Region: "us-east-2", Log: zerolog.Nop()}

	cfg := &dto.APIKeyConfig{Name: "partner"}
	desired := &dto.APIKeyConfig{Name: "partner", Tags: map[string]string{"owner": "billing"}}
	require.NoError(t, svc.Update(context.Background(), "key1", cfg, desired))
	assert.Equal(t, "arn:aws:apigateway:us-east-2::/apikeys/key1", arn)
}

func TestAPIKeyService_DeleteIgnoresMissing(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		DeleteApiKeyFunc: func(ctx context.Context, params *apigw.DeleteApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteApiKeyOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "NotFoundException"}
		},
	}
	svc := &APIKeyService{APIGWRepo: newAPIGWRepo(api), Log: zerolog.Nop()}
	assert.NoError(t, svc.Delete(context.Background(), "key1"))
}

func TestAPIKeyService_ImportFromLocalCSV(t *testing.T) {
	csv := filepath.Join(t.TempDir(), "keys.csv")
	require.NoError(t, os.WriteFile(csv, []byte("name,key,enabled\npartner,abcdefghijklmnopqrst,true\n"), 0o600))

	var imported *apigw.ImportApiKeysInput
	api := &awsmock.MockAPIGateway{
		ImportApiKeysFunc: func(ctx context.Context, params *apigw.ImportApiKeysInput, optFns ...func(*apigw.Options)) (*apigw.ImportApiKeysOutput, error) {
			imported = params
			return &apigw.ImportApiKeysOutput{Ids: []string{"key7"}, Warnings: []string{"line 3 ignored"}}, nil
		},
	}
	svc := &APIKeyService{
		APIGWRepo: newAPIGWRepo(api),
		Documents: &repository.DocumentRepository{Log: zerolog.Nop()},
		Log:       zerolog.Nop(),
	}

	ids, err := svc.Import(context.Background(), csv, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"key7"}, ids)
	assert.Equal(t, apigwtypes.ApiKeysFormatCsv, imported.Format)
	assert.True(t, imported.FailOnWarnings)
	assert.Contains(t, string(imported.Body), "partner")
}
