package awsmock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// MockLambda implementa os métodos Lambda usados pelos repositórios. Métodos sem
// função configurada retornam ErrNotStubbed.
type MockLambda struct {
	GetFunctionFunc                 func(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error)
	GetFunctionConfigurationFunc    func(ctx context.Context, params *lambda.GetFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionConfigurationOutput, error)
	CreateFunctionFunc              func(ctx context.Context, params *lambda.CreateFunctionInput, optFns ...func(*lambda.Options)) (*lambda.CreateFunctionOutput, error)
	UpdateFunctionConfigurationFunc func(ctx context.Context, params *lambda.UpdateFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionConfigurationOutput, error)
	UpdateFunctionCodeFunc          func(ctx context.Context, params *lambda.UpdateFunctionCodeInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionCodeOutput, error)
	AddPermissionFunc               func(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error)
	RemovePermissionFunc            func(ctx context.Context, params *lambda.RemovePermissionInput, optFns ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error)
	DeleteFunctionFunc              func(ctx context.Context, params *lambda.DeleteFunctionInput, optFns ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error)
}

func (m *MockLambda) GetFunction(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	if m.GetFunctionFunc == nil {
		return nil, notStubbed("GetFunction")
	}
	return m.GetFunctionFunc(ctx, params, optFns...)
}

func (m *MockLambda) GetFunctionConfiguration(ctx context.Context, params *lambda.GetFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionConfigurationOutput, error) {
	if m.GetFunctionConfigurationFunc == nil {
		return nil, notStubbed("GetFunctionConfiguration")
	}
	return m.GetFunctionConfigurationFunc(ctx, params, optFns...)
}

func (m *MockLambda) CreateFunction(ctx context.Context, params *lambda.CreateFunctionInput, optFns ...func(*lambda.Options)) (*lambda.CreateFunctionOutput, error) {
	if m.CreateFunctionFunc == nil {
		return nil, notStubbed("CreateFunction")
	}
	return m.CreateFunctionFunc(ctx, params, optFns...)
}

func (m *MockLambda) UpdateFunctionConfiguration(ctx context.Context, params *lambda.UpdateFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionConfigurationOutput, error) {
	if m.UpdateFunctionConfigurationFunc == nil {
		return nil, notStubbed("UpdateFunctionConfiguration")
	}
	return m.UpdateFunctionConfigurationFunc(ctx, params, optFns...)
}

func (m *MockLambda) UpdateFunctionCode(ctx context.Context, params *lambda.UpdateFunctionCodeInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionCodeOutput, error) {
	if m.UpdateFunctionCodeFunc == nil {
		return nil, notStubbed("UpdateFunctionCode")
	}
	return m.UpdateFunctionCodeFunc(ctx, params, optFns...)
}

func (m *MockLambda) AddPermission(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
	if m.AddPermissionFunc == nil {
		return nil, notStubbed("AddPermission")
	}
	return m.AddPermissionFunc(ctx, params, optFns...)
}

func (m *MockLambda) RemovePermission(ctx context.Context, params *lambda.RemovePermissionInput, optFns ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error) {
	if m.RemovePermissionFunc == nil {
		return nil, notStubbed("RemovePermission")
	}
	return m.RemovePermissionFunc(ctx, params, optFns...)
}

func (m *MockLambda) DeleteFunction(ctx context.Context, params *lambda.DeleteFunctionInput, optFns ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error) {
	if m.DeleteFunctionFunc == nil {
		return nil, notStubbed("DeleteFunction")
	}
	return m.DeleteFunctionFunc(ctx, params, optFns...)
}
