package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/awsmock"
	"github.com/raywall/apigateway-kit/pkg/model"
)

var fastRetry = RetryPolicy{InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond, MaxRetries: 3}

func newTestRepo(api *awsmock.MockAPIGateway) *APIGWRepository {
	return &APIGWRepository{API: api, Log: zerolog.Nop(), ParamValidation: true, Retry: fastRetry}
}

func TestCreateApiKey_ConvertsRequestAndResult(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var got *apigw.CreateApiKeyInput

	api := &awsmock.MockAPIGateway{
		CreateApiKeyFunc: func(ctx context.Context, params *apigw.CreateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateApiKeyOutput, error) {
			got = params
			return &apigw.CreateApiKeyOutput{
				Id:          aws.String("k-123"),
				Name:        params.Name,
				Enabled:     true,
				CreatedDate: &created,
				StageKeys:   []string{"api/prod"},
				Tags:        params.Tags,
			}, nil
		},
	}

	req := new(model.CreateApiKeyRequest).SetName("demo").SetEnabled(true)
	require.NoError(t, req.AddTagsEntry("env", "prod"))
	req.StageKeys = []*model.StageKey{{RestApiId: aws.String("api"), StageName: aws.String("prod")}}

	res, err := newTestRepo(api).CreateApiKey(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "demo", aws.ToString(got.Name))
	assert.True(t, got.Enabled)
	assert.Equal(t, map[string]string{"env": "prod"}, got.Tags)
	require.Len(t, got.StageKeys, 1)
	assert.Equal(t, "prod", aws.ToString(got.StageKeys[0].StageName))

	assert.Equal(t, "k-123", res.GetId())
	assert.Equal(t, "demo", res.GetName())
	assert.True(t, res.GetEnabled())
	assert.True(t, created.Equal(res.GetCreatedDate()))
	assert.Equal(t, []string{"api/prod"}, res.GetStageKeys())
}

func TestPutIntegration_EnumAndNestedShapes(t *testing.T) {
	var got *apigw.PutIntegrationInput
	api := &awsmock.MockAPIGateway{
		PutIntegrationFunc: func(ctx context.Context, params *apigw.PutIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error) {
			got = params
			return &apigw.PutIntegrationOutput{
				Type: params.Type,
				Uri:  params.Uri,
				IntegrationResponses: map[string]apigwtypes.IntegrationResponse{
					"200": {StatusCode: aws.String("200")},
				},
			}, nil
		},
	}

	req := &model.PutIntegrationRequest{
		RestApiId:             aws.String("api"),
		ResourceId:            aws.String("res"),
		HttpMethod:            aws.String("GET"),
		IntegrationHttpMethod: aws.String("POST"),
		Uri:                   aws.String("arn:aws:lambda"),
		TlsConfig:             &model.TlsConfig{InsecureSkipVerification: aws.Bool(true)},
	}
	req.SetType(model.IntegrationTypeAwsProxy)

	res, err := newTestRepo(api).PutIntegration(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, apigwtypes.IntegrationTypeAwsProxy, got.Type)
	assert.Equal(t, "POST", aws.ToString(got.IntegrationHttpMethod))
	require.NotNil(t, got.TlsConfig)
	assert.True(t, got.TlsConfig.InsecureSkipVerification)

	assert.Equal(t, model.IntegrationTypeAwsProxy, res.GetType())
	assert.Equal(t, "200", res.GetIntegrationResponses()["200"].GetStatusCode())
}

func TestInvoke_ValidatesBeforeSending(t *testing.T) {
	called := false
	api := &awsmock.MockAPIGateway{
		GetApiKeyFunc: func(ctx context.Context, params *apigw.GetApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeyOutput, error) {
			called = true
			return &apigw.GetApiKeyOutput{}, nil
		},
	}
	repo := newTestRepo(api)

	_, err := repo.GetApiKey(context.Background(), &model.GetApiKeyRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidParams)
	assert.Contains(t, err.Error(), "GetApiKey")
	assert.False(t, called)

	repo.ParamValidation = false
	_, err = repo.GetApiKey(context.Background(), &model.GetApiKeyRequest{})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestInvoke_TranslatesServiceErrors(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		GetRestApiFunc: func(ctx context.Context, params *apigw.GetRestApiInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "NotFoundException", Message: "Invalid API identifier specified"}
		},
	}

	_, err := newTestRepo(api).GetRestApi(context.Background(), new(model.GetRestApiRequest).SetRestApiId("nope"))
	require.Error(t, err)

	var nf *model.NotFoundException
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Invalid API identifier specified", nf.GetMessage())
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "GetRestApi: ")
}

func TestInvoke_RetriesThrottling(t *testing.T) {
	calls := 0
	api := &awsmock.MockAPIGateway{
		GetAccountFunc: func(ctx context.Context, params *apigw.GetAccountInput, optFns ...func(*apigw.Options)) (*apigw.GetAccountOutput, error) {
			calls++
			if calls < 3 {
				return nil, &apigwtypes.TooManyRequestsException{Message: aws.String("slow down"), RetryAfterSeconds: aws.String("1")}
			}
			return &apigw.GetAccountOutput{
				CloudwatchRoleArn: aws.String("arn:aws:iam::123:role/apigw"),
				ThrottleSettings:  &apigwtypes.ThrottleSettings{BurstLimit: 5000, RateLimit: 10000},
			}, nil
		},
	}

	res, err := newTestRepo(api).GetAccount(context.Background(), &model.GetAccountRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, int32(5000), res.GetThrottleSettings().GetBurstLimit())
	assert.Equal(t, 10000.0, res.GetThrottleSettings().GetRateLimit())
}

func TestInvoke_ThrottlingExhausted(t *testing.T) {
	calls := 0
	api := &awsmock.MockAPIGateway{
		GetAccountFunc: func(ctx context.Context, params *apigw.GetAccountInput, optFns ...func(*apigw.Options)) (*apigw.GetAccountOutput, error) {
			calls++
			return nil, &apigwtypes.TooManyRequestsException{Message: aws.String("slow down"), RetryAfterSeconds: aws.String("7")}
		},
	}

	_, err := newTestRepo(api).GetAccount(context.Background(), &model.GetAccountRequest{})
	require.Error(t, err)
	assert.Equal(t, int(fastRetry.MaxRetries)+1, calls)

	var tm *model.TooManyRequestsException
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "7", tm.GetRetryAfterSeconds())
}

func TestInvoke_SingleSDKAttemptPerRetry(t *testing.T) {
	var got []func(*apigw.Options)
	api := &awsmock.MockAPIGateway{
		GetAccountFunc: func(ctx context.Context, params *apigw.GetAccountInput, optFns ...func(*apigw.Options)) (*apigw.GetAccountOutput, error) {
			got = optFns
			return &apigw.GetAccountOutput{}, nil
		},
	}

	_, err := newTestRepo(api).GetAccount(context.Background(), &model.GetAccountRequest{})
	require.NoError(t, err)
	var opts apigw.Options
	for _, fn := range got {
		fn(&opts)
	}
	assert.Equal(t, 1, opts.RetryMaxAttempts)

	repo := newTestRepo(api)
	repo.Retry = RetryPolicy{}
	_, err = repo.GetAccount(context.Background(), &model.GetAccountRequest{})
	require.NoError(t, err)
	assert.Empty(t, got, "without a policy the sdk retryer is left alone")
}

func TestTranslateError(t *testing.T) {
	plain := errors.New("dial tcp: timeout")

	tests := []struct {
		name  string
		in    error
		check func(t *testing.T, out error)
	}{
		{
			name: "nil",
			in:   nil,
			check: func(t *testing.T, out error) {
				assert.NoError(t, out)
			},
		},
		{
			name: "not an api error",
			in:   plain,
			check: func(t *testing.T, out error) {
				assert.Same(t, plain, out)
			},
		},
		{
			name: "conflict",
			in:   &smithy.GenericAPIError{Code: "ConflictException", Message: "exists"},
			check: func(t *testing.T, out error) {
				var c *model.ConflictException
				require.True(t, errors.As(out, &c))
				assert.Equal(t, "exists", c.GetMessage())
				assert.Equal(t, smithy.FaultClient, c.ErrorFault())
			},
		},
		{
			name: "service unavailable",
			in:   &apigwtypes.ServiceUnavailableException{Message: aws.String("down"), RetryAfterSeconds: aws.String("30")},
			check: func(t *testing.T, out error) {
				var su *model.ServiceUnavailableException
				require.True(t, errors.As(out, &su))
				assert.Equal(t, "30", su.GetRetryAfterSeconds())
				assert.Equal(t, smithy.FaultServer, su.ErrorFault())
				assert.True(t, IsThrottled(out))
			},
		},
		{
			name: "unknown code",
			in:   &smithy.GenericAPIError{Code: "AccessDeniedException"},
			check: func(t *testing.T, out error) {
				var apiErr smithy.APIError
				require.True(t, errors.As(out, &apiErr))
				assert.Equal(t, "AccessDeniedException", apiErr.ErrorCode())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, translateError(tt.in))
		})
	}
}

func TestInvoke_Dispatch(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		GetAccountFunc: func(ctx context.Context, params *apigw.GetAccountInput, optFns ...func(*apigw.Options)) (*apigw.GetAccountOutput, error) {
			return &apigw.GetAccountOutput{ApiKeyVersion: aws.String("4")}, nil
		},
		DeleteApiKeyFunc: func(ctx context.Context, params *apigw.DeleteApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteApiKeyOutput, error) {
			return &apigw.DeleteApiKeyOutput{}, nil
		},
		GetVpcLinksFunc: func(ctx context.Context, params *apigw.GetVpcLinksInput, optFns ...func(*apigw.Options)) (*apigw.GetVpcLinksOutput, error) {
			return &apigw.GetVpcLinksOutput{Items: []apigwtypes.VpcLink{{Id: aws.String("vl-1"), Name: aws.String("private")}}}, nil
		},
	}
	repo := newTestRepo(api)
	ctx := context.Background()

	res, err := repo.Invoke(ctx, "GetAccount", &model.GetAccountRequest{})
	require.NoError(t, err)
	account, ok := res.(*model.GetAccountResult)
	require.True(t, ok)
	assert.Equal(t, "4", account.GetApiKeyVersion())

	res, err = repo.Invoke(ctx, "DeleteApiKey", new(model.DeleteApiKeyRequest).SetApiKey("k-1"))
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = repo.Invoke(ctx, "GetVpcLinks", &model.GetVpcLinksRequest{})
	require.NoError(t, err)
	links, ok := res.(*model.GetVpcLinksResult)
	require.True(t, ok)
	require.Len(t, links.GetItems(), 1)
	assert.Equal(t, "private", links.GetItems()[0].GetName())

	_, err = repo.Invoke(ctx, "GetSdkTypes", &model.GetSdkTypesRequest{})
	assert.ErrorIs(t, err, awsmock.ErrNotStubbed)

	_, err = repo.Invoke(ctx, "NoSuchOperation", &model.GetAccountRequest{})
	assert.ErrorContains(t, err, "unknown operation")

	_, err = repo.Invoke(ctx, "GetAccount", &model.GetApiKeyRequest{})
	assert.ErrorContains(t, err, "unexpected request type")
}

func TestBoundOperations(t *testing.T) {
	ops := BoundOperations()
	assert.Len(t, ops, len(model.Operations()))
	assert.Contains(t, ops, "CreateApiKey")
	assert.Contains(t, ops, "GetVpcLinks")
	assert.Contains(t, ops, "TestInvokeMethod")
	for _, op := range ops {
		_, ok := model.LookupOperation(op)
		assert.True(t, ok, op)
	}
}

func TestGetExport_BlobPayload(t *testing.T) {
	body := []byte(`{"openapi":"3.0.1"}`)
	var got *apigw.GetExportInput
	api := &awsmock.MockAPIGateway{
		GetExportFunc: func(ctx context.Context, params *apigw.GetExportInput, optFns ...func(*apigw.Options)) (*apigw.GetExportOutput, error) {
			got = params
			return &apigw.GetExportOutput{Body: body, ContentType: aws.String("application/json")}, nil
		},
	}

	req := new(model.GetExportRequest).SetRestApiId("api").SetStageName("prod").SetExportType("oas30").SetAccepts("application/json")
	require.NoError(t, req.AddParametersEntry("extensions", "apigateway"))

	res, err := newTestRepo(api).GetExport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "application/json", aws.ToString(got.Accepts))
	assert.Equal(t, map[string]string{"extensions": "apigateway"}, got.Parameters)
	assert.Equal(t, body, res.GetBody())
	assert.Equal(t, "application/json", res.GetContentType())
}
