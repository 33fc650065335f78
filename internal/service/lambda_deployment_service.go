package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/raywall/apigateway-kit/internal/repository"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

// AccountResolver resolve a conta das credenciais atuais.
type AccountResolver interface {
	ResolveAccountID(ctx context.Context) (string, error)
}

// LambdaDeploymentService orquestra role, função, log group, permissão e
// rotas de uma API servida por uma Lambda.
type LambdaDeploymentService struct {
	IAMService        *IAMService
	CWLogsService     *CWLogsService
	APIGatewayService *APIGatewayService
	LambdaRepo        *repository.LambdaRepository
	Account           AccountResolver
	Region            string
	Log               zerolog.Logger
}

// ExecuteAPISourceArn é o ARN que autoriza qualquer stage, método e caminho
// da API a invocar a função.
func ExecuteAPISourceArn(region, accountID, apiID string) string {
	return fmt.Sprintf("arn:aws:execute-api:%s:%s:%s/*/*/*", region, accountID, apiID)
}

// CheckResourceExistence informa se a role e a função do estado ainda existem.
func (s *LambdaDeploymentService) CheckResourceExistence(ctx context.Context, st *dto.ResourceState) (bool, error) {
	roleExists, err := s.IAMService.CheckRoleExists(ctx, st.RoleName)
	if err != nil || !roleExists {
		return false, err
	}

	fn, err := s.LambdaRepo.GetFunction(ctx, st.FunctionName)
	if err != nil {
		return false, err
	}
	return fn != nil, nil
}

// EnsureDeployment cria ou atualiza todos os componentes e retorna o estado.
func (s *LambdaDeploymentService) EnsureDeployment(ctx context.Context, apiID, stage string, lc *dto.LambdaConfig, routes []dto.RouteConfig) (*dto.ResourceState, error) {
	log := s.Log.With().Str("api_id", apiID).Str("function", lc.FunctionName).Logger()

	roleArn, err := s.IAMService.EnsureRole(ctx, lc.FunctionName, lc.PolicyARNs)
	if err != nil {
		return nil, fmt.Errorf("IAM role setup failed: %w", err)
	}

	fnArn, err := s.LambdaRepo.EnsureFunction(ctx, lc, roleArn)
	if err != nil {
		return nil, fmt.Errorf("lambda function setup failed: %w", err)
	}
	log.Debug().Str("function_arn", fnArn).Msg("function ready")

	logGroup, err := s.CWLogsService.EnsureLogGroup(ctx, lc.FunctionName, lc.LogRetentionDays)
	if err != nil {
		return nil, fmt.Errorf("log group setup failed: %w", err)
	}

	accountID, err := s.Account.ResolveAccountID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.LambdaRepo.AddPermission(ctx, lc.FunctionName, apiID, ExecuteAPISourceArn(s.Region, accountID, apiID)); err != nil {
		return nil, fmt.Errorf("lambda permission failed: %w", err)
	}

	apigwState, err := s.APIGatewayService.EnsureRoutesAndDeploy(ctx, apiID, stage, fnArn, routes)
	if err != nil {
		return nil, fmt.Errorf("APIGW route setup failed: %w", err)
	}
	log.Info().Int("routes", len(apigwState.Routes)).Str("deployment_id", apigwState.DeploymentID).Msg("deployment finished")

	return &dto.ResourceState{
		RoleName:           RoleName(lc.FunctionName),
		FunctionName:       lc.FunctionName,
		FunctionArn:        fnArn,
		APIGatewayID:       apigwState.APIGatewayID,
		StageName:          apigwState.StageName,
		DeploymentID:       apigwState.DeploymentID,
		Routes:             apigwState.Routes,
		LogGroup:           logGroup,
		Resources:          apigwState.Resources,
		AttachedPolicyARNs: lc.PolicyARNs,
	}, nil
}

// DeleteDeployment remove os componentes do estado. Falhas em etapas
// independentes não interrompem as seguintes e são devolvidas juntas.
func (s *LambdaDeploymentService) DeleteDeployment(ctx context.Context, st *dto.ResourceState) error {
	var errs []error

	if err := s.APIGatewayService.DeleteRoutes(ctx, st.APIGatewayID, st.Routes, st.Resources); err != nil {
		errs = append(errs, fmt.Errorf("APIGW deletion failed: %w", err))
	}

	if err := s.LambdaRepo.RemovePermission(ctx, st.FunctionName, st.APIGatewayID); err != nil {
		s.Log.Warn().Err(err).Str("function", st.FunctionName).Msg("failed to remove lambda permission")
	}

	if err := s.LambdaRepo.DeleteFunction(ctx, st.FunctionName); err != nil {
		errs = append(errs, fmt.Errorf("lambda deletion failed: %w", err))
	}

	if err := s.IAMService.DeleteRoleAndPolicies(ctx, st.RoleName, st.AttachedPolicyARNs); err != nil {
		errs = append(errs, fmt.Errorf("IAM role deletion failed: %w", err))
	}

	if st.LogGroup != "" {
		if err := s.CWLogsService.DeleteLogGroup(ctx, st.LogGroup); err != nil {
			s.Log.Warn().Err(err).Str("log_group", st.LogGroup).Msg("failed to delete log group")
		}
	}

	return errors.Join(errs...)
}
