package repository

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/awsmock"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw     string
		want    Location
		wantErr bool
	}{
		{raw: "s3://specs/petstore/openapi.yaml", want: Location{Bucket: "specs", Key: "petstore/openapi.yaml"}},
		{raw: "./openapi.yaml", want: Location{Path: "./openapi.yaml"}},
		{raw: "  keys.csv ", want: Location{Path: "keys.csv"}},
		{raw: "s3://bucket-only", wantErr: true},
		{raw: "s3:///key", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLocation(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentRepository_LocalFiles(t *testing.T) {
	repo := &DocumentRepository{Log: zerolog.Nop()}
	path := filepath.Join(t.TempDir(), "exports", "prod.json")

	require.NoError(t, repo.Store(context.Background(), path, []byte(`{"openapi":"3.0.1"}`), "application/json"))

	got, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi":"3.0.1"}`, string(got))

	_, err = repo.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocumentRepository_S3(t *testing.T) {
	var put *s3.PutObjectInput
	var putBody []byte
	mock := &awsmock.MockS3{
		GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			if aws.ToString(params.Key) != "keys.csv" {
				return nil, errors.New("NoSuchKey")
			}
			return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("key,name\nabc,demo\n"))}, nil
		},
		PutObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			put = params
			putBody, _ = io.ReadAll(params.Body)
			return &s3.PutObjectOutput{}, nil
		},
	}
	repo := &DocumentRepository{S3: mock, Log: zerolog.Nop()}

	got, err := repo.Load(context.Background(), "s3://bucket/keys.csv")
	require.NoError(t, err)
	assert.Equal(t, "key,name\nabc,demo\n", string(got))

	_, err = repo.Load(context.Background(), "s3://bucket/other.csv")
	assert.ErrorContains(t, err, "GetObject s3://bucket/other.csv")

	require.NoError(t, repo.Store(context.Background(), "s3://bucket/exports/prod.yaml", []byte("openapi: 3.0.1\n"), "application/yaml"))
	assert.Equal(t, "bucket", aws.ToString(put.Bucket))
	assert.Equal(t, "exports/prod.yaml", aws.ToString(put.Key))
	assert.Equal(t, "application/yaml", aws.ToString(put.ContentType))
	assert.Equal(t, "openapi: 3.0.1\n", string(putBody))
}

func TestDocumentRepository_S3NotConfigured(t *testing.T) {
	repo := &DocumentRepository{Log: zerolog.Nop()}
	_, err := repo.Load(context.Background(), "s3://bucket/key")
	assert.ErrorContains(t, err, "s3 client not configured")
}
