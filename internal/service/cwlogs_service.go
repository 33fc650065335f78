package service

import (
	"context"
	"fmt"

	"github.com/raywall/apigateway-kit/internal/repository"
)

const defaultLogRetentionDays = 14

// CWLogsService manipula a lógica de negócio para CloudWatch Logs.
type CWLogsService struct {
	CWLogsRepo *repository.CWLogsRepository
}

// LogGroupName retorna o log group padrão de uma função.
func LogGroupName(functionName string) string {
	return fmt.Sprintf("/aws/lambda/%s", functionName)
}

// EnsureLogGroup garante que o log group da Lambda exista com a retenção
// informada (14 dias quando zero).
func (s *CWLogsService) EnsureLogGroup(ctx context.Context, functionName string, retentionDays int32) (string, error) {
	if retentionDays <= 0 {
		retentionDays = defaultLogRetentionDays
	}
	name := LogGroupName(functionName)
	if err := s.CWLogsRepo.CreateLogGroupIfNotExists(ctx, name, retentionDays); err != nil {
		return "", err
	}
	return name, nil
}

// DeleteLogGroup remove o log group.
func (s *CWLogsService) DeleteLogGroup(ctx context.Context, name string) error {
	return s.CWLogsRepo.DeleteLogGroup(ctx, name)
}
