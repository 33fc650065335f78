package awsmock

import (
	"context"

	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// MockCWLogs implementa os métodos CloudWatch Logs usados pelos repositórios.
// Métodos sem função configurada retornam ErrNotStubbed.
type MockCWLogs struct {
	CreateLogGroupFunc     func(ctx context.Context, params *cw.CreateLogGroupInput, optFns ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error)
	PutRetentionPolicyFunc func(ctx context.Context, params *cw.PutRetentionPolicyInput, optFns ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error)
	DeleteLogGroupFunc     func(ctx context.Context, params *cw.DeleteLogGroupInput, optFns ...func(*cw.Options)) (*cw.DeleteLogGroupOutput, error)
}

func (m *MockCWLogs) CreateLogGroup(ctx context.Context, params *cw.CreateLogGroupInput, optFns ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error) {
	if m.CreateLogGroupFunc == nil {
		return nil, notStubbed("CreateLogGroup")
	}
	return m.CreateLogGroupFunc(ctx, params, optFns...)
}

func (m *MockCWLogs) PutRetentionPolicy(ctx context.Context, params *cw.PutRetentionPolicyInput, optFns ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error) {
	if m.PutRetentionPolicyFunc == nil {
		return nil, notStubbed("PutRetentionPolicy")
	}
	return m.PutRetentionPolicyFunc(ctx, params, optFns...)
}

func (m *MockCWLogs) DeleteLogGroup(ctx context.Context, params *cw.DeleteLogGroupInput, optFns ...func(*cw.Options)) (*cw.DeleteLogGroupOutput, error) {
	if m.DeleteLogGroupFunc == nil {
		return nil, notStubbed("DeleteLogGroup")
	}
	return m.DeleteLogGroupFunc(ctx, params, optFns...)
}
