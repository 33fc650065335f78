package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectStore é o subconjunto do cliente S3 usado por DocumentRepository.
type ObjectStore interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// DocumentRepository lê e grava documentos (definições OpenAPI, CSVs de API
// keys, exports) em s3://bucket/key ou no sistema de arquivos local.
type DocumentRepository struct {
	S3  ObjectStore
	Log zerolog.Logger
}

// Location é um endereço de documento já interpretado.
type Location struct {
	Bucket string
	Key    string
	Path   string
}

// IsS3 informa se o documento está no S3.
func (l Location) IsS3() bool { return l.Bucket != "" }

func (l Location) String() string {
	if l.IsS3() {
		return "s3://" + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// ParseLocation interpreta "s3://bucket/key" ou um caminho local.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, fmt.Errorf("empty document location")
	}
	rest, ok := strings.CutPrefix(raw, "s3://")
	if !ok {
		return Location{Path: raw}, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return Location{}, fmt.Errorf("invalid s3 location %q: expected s3://bucket/key", raw)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// Load lê o documento inteiro.
func (r *DocumentRepository) Load(ctx context.Context, raw string) ([]byte, error) {
	loc, err := ParseLocation(raw)
	if err != nil {
		return nil, err
	}
	if !loc.IsS3() {
		bs, err := os.ReadFile(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", loc.Path, err)
		}
		return bs, nil
	}

	if r.S3 == nil {
		return nil, fmt.Errorf("reading %s: s3 client not configured", loc)
	}
	r.Log.Debug().Str("location", loc.String()).Msg("loading document")
	out, err := r.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("GetObject %s: %w", loc, err)
	}
	defer out.Body.Close()

	bs, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", loc, err)
	}
	return bs, nil
}

// Store grava body no destino. contentType só é usado no S3.
func (r *DocumentRepository) Store(ctx context.Context, raw string, body []byte, contentType string) error {
	loc, err := ParseLocation(raw)
	if err != nil {
		return err
	}
	if !loc.IsS3() {
		if dir := filepath.Dir(loc.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(loc.Path, body, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", loc.Path, err)
		}
		return nil
	}

	if r.S3 == nil {
		return fmt.Errorf("writing %s: s3 client not configured", loc)
	}
	in := &s3.PutObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	r.Log.Debug().Str("location", loc.String()).Int("bytes", len(body)).Msg("storing document")
	if _, err := r.S3.PutObject(ctx, in); err != nil {
		return fmt.Errorf("PutObject %s: %w", loc, err)
	}
	return nil
}
