package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/rs/zerolog"
)

// CWLogsAPI é o subconjunto do cliente CloudWatch Logs usado pelo repositório.
type CWLogsAPI interface {
	CreateLogGroup(ctx context.Context, params *cw.CreateLogGroupInput, optFns ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error)
	PutRetentionPolicy(ctx context.Context, params *cw.PutRetentionPolicyInput, optFns ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error)
	DeleteLogGroup(ctx context.Context, params *cw.DeleteLogGroupInput, optFns ...func(*cw.Options)) (*cw.DeleteLogGroupOutput, error)
}

// CWLogsRepository encapsula operações da AWS CloudWatch Logs.
type CWLogsRepository struct {
	API   CWLogsAPI
	Log   zerolog.Logger
	Retry RetryPolicy
}

// CreateLogGroupIfNotExists cria um Log Group e define a retenção.
func (r *CWLogsRepository) CreateLogGroupIfNotExists(ctx context.Context, name string, retentionDays int32) error {
	_, err := r.API.CreateLogGroup(ctx, &cw.CreateLogGroupInput{LogGroupName: aws.String(name)})
	if err != nil && !isAPIErrorCode(err, "ResourceAlreadyExistsException") {
		return fmt.Errorf("CreateLogGroup: %w", err)
	}

	// O log group recém-criado pode ainda não estar visível para a retenção.
	err = retry(ctx, r.Retry, func(err error) bool {
		return isAPIErrorCode(err, "ResourceNotFoundException", "OperationAbortedException")
	}, func() error {
		_, perr := r.API.PutRetentionPolicy(ctx, &cw.PutRetentionPolicyInput{
			LogGroupName:    aws.String(name),
			RetentionInDays: aws.Int32(retentionDays),
		})
		return perr
	})
	if err != nil {
		return fmt.Errorf("PutRetentionPolicy failed after retries: %w", err)
	}
	r.Log.Debug().Str("log_group", name).Int32("retention_days", retentionDays).Msg("log group ready")
	return nil
}

// DeleteLogGroup deleta o Log Group.
func (r *CWLogsRepository) DeleteLogGroup(ctx context.Context, logGroupName string) error {
	_, err := r.API.DeleteLogGroup(ctx, &cw.DeleteLogGroupInput{
		LogGroupName: aws.String(logGroupName),
	})
	if err != nil && !isAPIErrorCode(err, "ResourceNotFoundException") {
		return fmt.Errorf("DeleteLogGroup failed: %w", err)
	}
	return nil
}
