package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/awsmock"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

func TestLambdaRepository_EnsureFunctionCreates(t *testing.T) {
	zip := filepath.Join(t.TempDir(), "bootstrap.zip")
	require.NoError(t, os.WriteFile(zip, []byte("PK"), 0o600))

	attempts := 0
	var created *lambda.CreateFunctionInput
	mock := &awsmock.MockLambda{
		GetFunctionFunc: func(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException"}
		},
		CreateFunctionFunc: func(ctx context.Context, params *lambda.CreateFunctionInput, optFns ...func(*lambda.Options)) (*lambda.CreateFunctionOutput, error) {
			attempts++
			if attempts == 1 {
				return nil, &smithy.GenericAPIError{Code: "InvalidParameterValueException", Message: "The role defined for the function cannot be assumed by Lambda."}
			}
			created = params
			return &lambda.CreateFunctionOutput{FunctionArn: aws.String("arn:aws:lambda:us-east-1:123:function:users")}, nil
		},
		GetFunctionConfigurationFunc: func(ctx context.Context, params *lambda.GetFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionConfigurationOutput, error) {
			return &lambda.GetFunctionConfigurationOutput{State: lambdatypes.StateActive}, nil
		},
	}
	repo := &LambdaRepository{API: mock, Log: zerolog.Nop(), Retry: fastRetry}

	arn, err := repo.EnsureFunction(context.Background(), &dto.LambdaConfig{
		FunctionName: "users",
		Runtime:      "provided.al2023",
		Handler:      "bootstrap",
		ZipPath:      zip,
		MemorySize:   256,
		Timeout:      10,
		Environment:  map[string]string{"STAGE": "prod"},
	}, "arn:aws:iam::123:role/users-execution-role")
	require.NoError(t, err)

	assert.Equal(t, "arn:aws:lambda:us-east-1:123:function:users", arn)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, lambdatypes.RuntimeProvidedal2023, created.Runtime)
	assert.Equal(t, []byte("PK"), created.Code.ZipFile)
	assert.Equal(t, int32(256), aws.ToInt32(created.MemorySize))
}

func TestLambdaRepository_Permissions(t *testing.T) {
	var added *lambda.AddPermissionInput
	mock := &awsmock.MockLambda{
		AddPermissionFunc: func(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
			added = params
			return nil, &smithy.GenericAPIError{Code: "ResourceConflictException"}
		},
		RemovePermissionFunc: func(ctx context.Context, params *lambda.RemovePermissionInput, optFns ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException"}
		},
	}
	repo := &LambdaRepository{API: mock, Log: zerolog.Nop()}

	require.NoError(t, repo.AddPermission(context.Background(), "users", "a1b2", "arn:aws:execute-api:us-east-1:123:a1b2/*/*/*"))
	assert.Equal(t, "apigateway-a1b2", aws.ToString(added.StatementId))
	assert.Equal(t, "apigateway.amazonaws.com", aws.ToString(added.Principal))
	require.NoError(t, repo.RemovePermission(context.Background(), "users", "a1b2"))
}

func TestMapRuntime(t *testing.T) {
	assert.Equal(t, lambdatypes.RuntimeProvidedal2, mapRuntime(" Provided.AL2 "))
	assert.Equal(t, lambdatypes.RuntimeNodejs20x, mapRuntime("nodejs20.x"))
	assert.Equal(t, lambdatypes.Runtime("java21"), mapRuntime("java21"))
}

func TestIAMRepository(t *testing.T) {
	mock := &awsmock.MockIAM{
		GetRoleFunc: func(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
			if aws.ToString(params.RoleName) == "existing" {
				return &iam.GetRoleOutput{Role: &iamtypes.Role{Arn: aws.String("arn:aws:iam::123:role/existing")}}, nil
			}
			return nil, &smithy.GenericAPIError{Code: "NoSuchEntity"}
		},
		CreateRoleFunc: func(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "EntityAlreadyExists"}
		},
		DeleteRoleFunc: func(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "NoSuchEntity"}
		},
	}
	repo := &IAMRepository{API: mock, Log: zerolog.Nop()}
	ctx := context.Background()

	role, err := repo.GetRole(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, role)

	arn, err := repo.CreateRole(ctx, "existing")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123:role/existing", arn)

	assert.NoError(t, repo.DeleteRole(ctx, "missing"))
}

func TestCWLogsRepository_CreateLogGroupIfNotExists(t *testing.T) {
	retention := 0
	mock := &awsmock.MockCWLogs{
		CreateLogGroupFunc: func(ctx context.Context, params *cw.CreateLogGroupInput, optFns ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ResourceAlreadyExistsException"}
		},
		PutRetentionPolicyFunc: func(ctx context.Context, params *cw.PutRetentionPolicyInput, optFns ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error) {
			retention++
			if retention == 1 {
				return nil, &smithy.GenericAPIError{Code: "OperationAbortedException"}
			}
			assert.Equal(t, int32(14), aws.ToInt32(params.RetentionInDays))
			return &cw.PutRetentionPolicyOutput{}, nil
		},
	}
	repo := &CWLogsRepository{API: mock, Log: zerolog.Nop(), Retry: fastRetry}

	require.NoError(t, repo.CreateLogGroupIfNotExists(context.Background(), "/aws/lambda/users", 14))
	assert.Equal(t, 2, retention)
}
