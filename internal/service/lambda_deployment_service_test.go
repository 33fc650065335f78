package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
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
	"github.com/raywall/apigateway-kit/internal/repository"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

type staticAccount string

func (a staticAccount) ResolveAccountID(context.Context) (string, error) { return string(a), nil }

type deploymentMocks struct {
	apigw  *awsmock.MockAPIGateway
	iam    *awsmock.MockIAM
	lambda *awsmock.MockLambda
	logs   *awsmock.MockCWLogs
	calls  []string
}

func newDeploymentMocks() *deploymentMocks {
	m := &deploymentMocks{}
	record := func(name string) { m.calls = append(m.calls, name) }

	m.iam = &awsmock.MockIAM{
		GetRoleFunc: func(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
			return &iam.GetRoleOutput{Role: &iamtypes.Role{Arn: aws.String("arn:aws:iam::123456789012:role/users-execution-role")}}, nil
		},
		AttachRolePolicyFunc: func(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
			record("iam:attach " + aws.ToString(params.PolicyArn))
			return &iam.AttachRolePolicyOutput{}, nil
		},
		DetachRolePolicyFunc: func(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error) {
			record("iam:detach " + aws.ToString(params.PolicyArn))
			return &iam.DetachRolePolicyOutput{}, nil
		},
		DeleteRoleFunc: func(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error) {
			record("iam:delete-role")
			return &iam.DeleteRoleOutput{}, nil
		},
	}
	m.lambda = &awsmock.MockLambda{
		GetFunctionFunc: func(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException"}
		},
		CreateFunctionFunc: func(ctx context.Context, params *lambda.CreateFunctionInput, optFns ...func(*lambda.Options)) (*lambda.CreateFunctionOutput, error) {
			record("lambda:create")
			return &lambda.CreateFunctionOutput{FunctionArn: aws.String("arn:aws:lambda:us-east-1:123456789012:function:users")}, nil
		},
		GetFunctionConfigurationFunc: func(ctx context.Context, params *lambda.GetFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionConfigurationOutput, error) {
			return &lambda.GetFunctionConfigurationOutput{State: lambdatypes.StateActive}, nil
		},
		AddPermissionFunc: func(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
			record("lambda:permission " + aws.ToString(params.SourceArn))
			return &lambda.AddPermissionOutput{}, nil
		},
		RemovePermissionFunc: func(ctx context.Context, params *lambda.RemovePermissionInput, optFns ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error) {
			record("lambda:remove-permission")
			return &lambda.RemovePermissionOutput{}, nil
		},
		DeleteFunctionFunc: func(ctx context.Context, params *lambda.DeleteFunctionInput, optFns ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error) {
			record("lambda:delete")
			return nil, errors.New("throttled by test")
		},
	}
	m.logs = &awsmock.MockCWLogs{
		CreateLogGroupFunc: func(ctx context.Context, params *cw.CreateLogGroupInput, optFns ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error) {
			record("logs:create " + aws.ToString(params.LogGroupName))
			return &cw.CreateLogGroupOutput{}, nil
		},
		PutRetentionPolicyFunc: func(ctx context.Context, params *cw.PutRetentionPolicyInput, optFns ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error) {
			return &cw.PutRetentionPolicyOutput{}, nil
		},
		DeleteLogGroupFunc: func(ctx context.Context, params *cw.DeleteLogGroupInput, optFns ...func(*cw.Options)) (*cw.DeleteLogGroupOutput, error) {
			record("logs:delete")
			return &cw.DeleteLogGroupOutput{}, nil
		},
	}
	m.apigw = &awsmock.MockAPIGateway{
		GetResourcesFunc: func(ctx context.Context, params *apigw.GetResourcesInput, optFns ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error) {
			return &apigw.GetResourcesOutput{Items: []apigwtypes.Resource{
				{Id: aws.String("root"), Path: aws.String("/")},
				{Id: aws.String("u1"), Path: aws.String("/users")},
			}}, nil
		},
		PutMethodFunc: func(ctx context.Context, params *apigw.PutMethodInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodOutput, error) {
			record("apigw:method " + aws.ToString(params.HttpMethod))
			return &apigw.PutMethodOutput{}, nil
		},
		PutIntegrationFunc: func(ctx context.Context, params *apigw.PutIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error) {
			return &apigw.PutIntegrationOutput{}, nil
		},
		PutMethodResponseFunc: func(ctx context.Context, params *apigw.PutMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error) {
			return &apigw.PutMethodResponseOutput{}, nil
		},
		PutIntegrationResponseFunc: func(ctx context.Context, params *apigw.PutIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error) {
			return &apigw.PutIntegrationResponseOutput{}, nil
		},
		CreateDeploymentFunc: func(ctx context.Context, params *apigw.CreateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error) {
			record("apigw:deploy " + aws.ToString(params.StageName))
			return &apigw.CreateDeploymentOutput{Id: aws.String("dep1")}, nil
		},
		DeleteMethodFunc: func(ctx context.Context, params *apigw.DeleteMethodInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error) {
			record("apigw:delete-method")
			return &apigw.DeleteMethodOutput{}, nil
		},
		DeleteResourceFunc: func(ctx context.Context, params *apigw.DeleteResourceInput, optFns ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error) {
			record("apigw:delete-resource " + aws.ToString(params.ResourceId))
			return &apigw.DeleteResourceOutput{}, nil
		},
	}
	return m
}

func (m *deploymentMocks) service() *LambdaDeploymentService {
	log := zerolog.Nop()
	return &LambdaDeploymentService{
		IAMService:        &IAMService{IAMRepo: &repository.IAMRepository{API: m.iam, Log: log}, Log: log},
		CWLogsService:     &CWLogsService{CWLogsRepo: &repository.CWLogsRepository{API: m.logs, Log: log, Retry: fastRetry}},
		APIGatewayService: &APIGatewayService{APIGWRepo: newAPIGWRepo(m.apigw), Region: "us-east-1", Log: log},
		LambdaRepo:        &repository.LambdaRepository{API: m.lambda, Log: log, Retry: fastRetry},
		Account:           staticAccount("123456789012"),
		Region:            "us-east-1",
		Log:               log,
	}
}

func TestLambdaDeploymentService_EnsureDeployment(t *testing.T) {
	zip := filepath.Join(t.TempDir(), "bootstrap.zip")
	require.NoError(t, os.WriteFile(zip, []byte("PK"), 0o600))
	m := newDeploymentMocks()

	state, err := m.service().EnsureDeployment(context.Background(), "a1b2", "prod", &dto.LambdaConfig{
		FunctionName: "users",
		Runtime:      "provided.al2023",
		Handler:      "bootstrap",
		ZipPath:      zip,
	}, []dto.RouteConfig{{Path: "/users", Method: "GET"}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"iam:attach " + basicExecutionPolicyArn,
		"lambda:create",
		"logs:create /aws/lambda/users",
		"lambda:permission arn:aws:execute-api:us-east-1:123456789012:a1b2/*/*/*",
		"apigw:method GET",
		"apigw:deploy prod",
	}, m.calls)

	assert.Equal(t, "users-execution-role", state.RoleName)
	assert.Equal(t, "arn:aws:lambda:us-east-1:123456789012:function:users", state.FunctionArn)
	assert.Equal(t, "dep1", state.DeploymentID)
	assert.Equal(t, "/aws/lambda/users", state.LogGroup)
	require.Len(t, state.Routes, 1)
	assert.Equal(t, dto.RouteState{Path: "/users", Method: "GET", Authorization: "NONE", ResourceID: "u1"}, state.Routes[0])
	assert.Equal(t, "u1", state.Resources["/users"].ResourceID)
}

func TestLambdaDeploymentService_DeleteDeploymentContinuesOnFailure(t *testing.T) {
	m := newDeploymentMocks()

	err := m.service().DeleteDeployment(context.Background(), &dto.ResourceState{
		RoleName:     "users-execution-role",
		FunctionName: "users",
		APIGatewayID: "a1b2",
		LogGroup:     "/aws/lambda/users",
		Routes:       []dto.RouteState{{Path: "/users", Method: "GET", ResourceID: "u1"}},
		Resources:    map[string]dto.ResourceInfo{"/users": {ResourceID: "u1", PathPart: "users"}},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "lambda deletion failed")

	assert.Equal(t, []string{
		"apigw:delete-method",
		"apigw:delete-resource u1",
		"lambda:remove-permission",
		"lambda:delete",
		"iam:detach " + basicExecutionPolicyArn,
		"iam:delete-role",
		"logs:delete",
	}, m.calls)
}

func TestLambdaDeploymentService_CheckResourceExistence(t *testing.T) {
	m := newDeploymentMocks()

	exists, err := m.service().CheckResourceExistence(context.Background(), &dto.ResourceState{RoleName: "users-execution-role", FunctionName: "users"})
	require.NoError(t, err)
	assert.False(t, exists)
}
