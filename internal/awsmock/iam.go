package awsmock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// MockIAM implementa os métodos IAM usados pelos repositórios. Métodos sem
// função configurada retornam ErrNotStubbed.
type MockIAM struct {
	GetRoleFunc          func(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	CreateRoleFunc       func(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	AttachRolePolicyFunc func(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
	DetachRolePolicyFunc func(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error)
	DeleteRoleFunc       func(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error)
}

func (m *MockIAM) GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	if m.GetRoleFunc == nil {
		return nil, notStubbed("GetRole")
	}
	return m.GetRoleFunc(ctx, params, optFns...)
}

func (m *MockIAM) CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	if m.CreateRoleFunc == nil {
		return nil, notStubbed("CreateRole")
	}
	return m.CreateRoleFunc(ctx, params, optFns...)
}

func (m *MockIAM) AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
	if m.AttachRolePolicyFunc == nil {
		return nil, notStubbed("AttachRolePolicy")
	}
	return m.AttachRolePolicyFunc(ctx, params, optFns...)
}

func (m *MockIAM) DetachRolePolicy(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error) {
	if m.DetachRolePolicyFunc == nil {
		return nil, notStubbed("DetachRolePolicy")
	}
	return m.DetachRolePolicyFunc(ctx, params, optFns...)
}

func (m *MockIAM) DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error) {
	if m.DeleteRoleFunc == nil {
		return nil, notStubbed("DeleteRole")
	}
	return m.DeleteRoleFunc(ctx, params, optFns...)
}
