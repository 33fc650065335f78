package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog"

	"github.com/raywall/apigateway-kit/internal/repository"
)

const basicExecutionPolicyArn = "arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"

// IAMService manipula a lógica de negócio para Roles e Policies.
type IAMService struct {
	IAMRepo *repository.IAMRepository
	Log     zerolog.Logger

	// PropagationDelay é a espera após criar a role, antes de usá-la.
	PropagationDelay time.Duration
}

// RoleName retorna o nome da role de execução de uma função.
func RoleName(functionName string) string {
	return fmt.Sprintf("%s-execution-role", functionName)
}

// CheckRoleExists informa se a role existe.
func (s *IAMService) CheckRoleExists(ctx context.Context, roleName string) (bool, error) {
	role, err := s.IAMRepo.GetRole(ctx, roleName)
	if err != nil {
		return false, err
	}
	return role != nil, nil
}

// EnsureRole garante que a role de execução exista com a política básica da
// Lambda e as políticas informadas.
func (s *IAMService) EnsureRole(ctx context.Context, functionName string, policyARNs []string) (string, error) {
	roleName := RoleName(functionName)

	role, err := s.IAMRepo.GetRole(ctx, roleName)
	if err != nil {
		return "", err
	}

	var roleArn string
	created := role == nil
	if created {
		roleArn, err = s.IAMRepo.CreateRole(ctx, roleName)
		if err != nil {
			return "", err
		}
	} else {
		roleArn = aws.ToString(role.Arn)
	}

	for _, arn := range append([]string{basicExecutionPolicyArn}, policyARNs...) {
		if err := s.IAMRepo.AttachPolicy(ctx, roleName, arn); err != nil {
			return "", fmt.Errorf("failed to attach policy %s: %w", arn, err)
		}
	}

	if created && s.PropagationDelay > 0 {
		s.Log.Info().Str("role", roleName).Dur("delay", s.PropagationDelay).Msg("waiting for IAM role propagation")
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.PropagationDelay):
		}
	}

	return roleArn, nil
}

// DeleteRoleAndPolicies desanexa as políticas e deleta a role.
func (s *IAMService) DeleteRoleAndPolicies(ctx context.Context, roleName string, policyARNs []string) error {
	var errs []error
	for _, arn := range append(append([]string(nil), policyARNs...), basicExecutionPolicyArn) {
		if err := s.IAMRepo.DetachPolicy(ctx, roleName, arn); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.IAMRepo.DeleteRole(ctx, roleName); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
