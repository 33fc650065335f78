package awsmock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MockS3 implementa os métodos S3 usados pelos repositórios. Métodos sem
// função configurada retornam ErrNotStubbed.
type MockS3 struct {
	GetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObjectFunc func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func (m *MockS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.GetObjectFunc == nil {
		return nil, notStubbed("GetObject")
	}
	return m.GetObjectFunc(ctx, params, optFns...)
}

func (m *MockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.PutObjectFunc == nil {
		return nil, notStubbed("PutObject")
	}
	return m.PutObjectFunc(ctx, params, optFns...)
}
