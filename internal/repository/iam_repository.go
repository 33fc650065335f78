package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/rs/zerolog"
)

const lambdaAssumeRolePolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"Service":"lambda.amazonaws.com"},"Action":"sts:AssumeRole"}]}`

// IAMAPI é o subconjunto do cliente IAM usado pelo repositório.
type IAMAPI interface {
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
	DetachRolePolicy(ctx context.Context, params *iam.DetachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.DetachRolePolicyOutput, error)
	DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, optFns ...func(*iam.Options)) (*iam.DeleteRoleOutput, error)
}

// IAMRepository encapsula operações IAM de baixo nível.
type IAMRepository struct {
	API IAMAPI
	Log zerolog.Logger
}

// GetRole busca uma Role IAM. Retorna nil, nil se não for encontrada.
func (r *IAMRepository) GetRole(ctx context.Context, roleName string) (*iamtypes.Role, error) {
	out, err := r.API.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(roleName)})
	if err != nil {
		if isAPIErrorCode(err, "NoSuchEntity") {
			return nil, nil
		}
		return nil, fmt.Errorf("GetRole failed: %w", err)
	}
	return out.Role, nil
}

// CreateRole cria a Role com a política de confiança da Lambda.
func (r *IAMRepository) CreateRole(ctx context.Context, roleName string) (string, error) {
	out, err := r.API.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(roleName),
		AssumeRolePolicyDocument: aws.String(lambdaAssumeRolePolicy),
	})
	if err != nil {
		if isAPIErrorCode(err, "EntityAlreadyExists") {
			if role, _ := r.GetRole(ctx, roleName); role != nil {
				return aws.ToString(role.Arn), nil
			}
		}
		return "", fmt.Errorf("CreateRole failed: %w", err)
	}
	r.Log.Debug().Str("role", roleName).Msg("role created")
	return aws.ToString(out.Role.Arn), nil
}

// AttachPolicy anexa uma política à Role.
func (r *IAMRepository) AttachPolicy(ctx context.Context, roleName, policyArn string) error {
	_, err := r.API.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  aws.String(roleName),
		PolicyArn: aws.String(policyArn),
	})
	if err != nil && !isAPIErrorCode(err, "EntityAlreadyExists") {
		return fmt.Errorf("AttachPolicy failed: %w", err)
	}
	return nil
}

// DetachPolicy desanexa uma política da Role.
func (r *IAMRepository) DetachPolicy(ctx context.Context, roleName, policyArn string) error {
	_, err := r.API.DetachRolePolicy(ctx, &iam.DetachRolePolicyInput{
		RoleName:  aws.String(roleName),
		PolicyArn: aws.String(policyArn),
	})
	if err != nil && !isAPIErrorCode(err, "NoSuchEntity") {
		return fmt.Errorf("DetachPolicy failed: %w", err)
	}
	return nil
}

// DeleteRole deleta a Role.
func (r *IAMRepository) DeleteRole(ctx context.Context, roleName string) error {
	_, err := r.API.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: aws.String(roleName)})
	if err != nil && !isAPIErrorCode(err, "NoSuchEntity") {
		return fmt.Errorf("DeleteRole failed: %w", err)
	}
	return nil
}
