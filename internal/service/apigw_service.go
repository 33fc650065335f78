package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/raywall/apigateway-kit/internal/repository"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

// APIGatewayService manipula a lógica de negócio das rotas de uma API.
type APIGatewayService struct {
	APIGWRepo *repository.APIGWRepository
	Region    string
	Log       zerolog.Logger
}

// EnsureRoutesAndDeploy garante caminhos, métodos e integrações Lambda de
// todas as rotas e publica um deployment no stage.
func (s *APIGatewayService) EnsureRoutesAndDeploy(ctx context.Context, apiID, stage, functionArn string, routes []dto.RouteConfig) (*dto.APIGWState, error) {
	rootID, err := s.APIGWRepo.GetRootResourceID(ctx, apiID)
	if err != nil {
		return nil, fmt.Errorf("getting root resource ID: %w", err)
	}

	state := &dto.APIGWState{
		APIGatewayID: apiID,
		StageName:    stage,
		Resources:    make(map[string]dto.ResourceInfo),
		Routes:       make([]dto.RouteState, 0, len(routes)),
	}
	uri := repository.LambdaIntegrationURI(s.Region, functionArn)

	for _, r := range routes {
		resourceID, pathResources, err := s.APIGWRepo.EnsurePath(ctx, apiID, rootID, r.Path)
		if err != nil {
			return nil, fmt.Errorf("ensure path %s: %w", r.Path, err)
		}
		for k, v := range pathResources {
			state.Resources[k] = v
		}

		if err := s.APIGWRepo.PutMethodAndIntegration(ctx, apiID, resourceID, r, uri); err != nil {
			return nil, fmt.Errorf("put method/integration %s %s: %w", r.Method, r.Path, err)
		}
		s.Log.Debug().Str("api_id", apiID).Str("method", r.Method).Str("path", r.Path).Msg("route ready")

		state.Routes = append(state.Routes, dto.RouteState{
			Path:           r.Path,
			Method:         r.Method,
			Authorization:  r.AuthorizationType(),
			AuthorizerID:   r.AuthorizerID,
			APIKeyRequired: r.APIKeyRequired,
			ResourceID:     resourceID,
		})
	}

	deploymentID, err := s.APIGWRepo.DeployAPI(ctx, apiID, stage, "")
	if err != nil {
		return nil, fmt.Errorf("deploy api failed: %w", err)
	}
	state.DeploymentID = deploymentID

	return state, nil
}

// DeleteRoutes deleta os métodos das rotas e depois os recursos criados.
func (s *APIGatewayService) DeleteRoutes(ctx context.Context, apiID string, routes []dto.RouteState, resources map[string]dto.ResourceInfo) error {
	var errs []error
	for _, route := range routes {
		if err := s.APIGWRepo.RemoveMethod(ctx, apiID, route.ResourceID, route.Method); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", route.Method, route.Path, err))
		}
	}

	if err := s.APIGWRepo.DeleteResources(ctx, apiID, resources); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
