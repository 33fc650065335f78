package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/raywall/apigateway-kit/internal/repository"
	"github.com/raywall/apigateway-kit/pkg/model"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

// RestAPIService importa, atualiza, publica e exporta definições OpenAPI.
type RestAPIService struct {
	APIGWRepo *repository.APIGWRepository
	Documents *repository.DocumentRepository
	Log       zerolog.Logger
}

// RestAPIState resume a API após import/put e deploy opcional.
type RestAPIState struct {
	ID             string
	Name           string
	RootResourceID string
	DeploymentID   string
	BodyHash       string
	Warnings       []string
}

// BodyHash identifica o conteúdo de uma definição para detectar mudanças.
func BodyHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Import cria uma nova API a partir do documento e publica no stage, se houver.
func (s *RestAPIService) Import(ctx context.Context, cfg *dto.RestAPIDefinitionConfig) (*RestAPIState, error) {
	body, err := s.Documents.Load(ctx, cfg.BodyLocation)
	if err != nil {
		return nil, err
	}

	req := new(model.ImportRestApiRequest).SetBody(body).SetFailOnWarnings(cfg.FailOnWarnings)
	if len(cfg.Parameters) > 0 {
		req.SetParameters(cfg.Parameters)
	}
	out, err := s.APIGWRepo.ImportRestApi(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("importing rest api from %s: %w", cfg.BodyLocation, err)
	}

	state := &RestAPIState{
		ID:             out.GetId(),
		Name:           out.GetName(),
		RootResourceID: out.GetRootResourceId(),
		BodyHash:       BodyHash(body),
		Warnings:       out.GetWarnings(),
	}
	s.logWarnings(state)

	if err := s.deploy(ctx, state, cfg); err != nil {
		return state, err
	}
	return state, nil
}

// Put substitui ou mescla a definição de uma API existente.
func (s *RestAPIService) Put(ctx context.Context, id string, cfg *dto.RestAPIDefinitionConfig) (*RestAPIState, error) {
	body, err := s.Documents.Load(ctx, cfg.BodyLocation)
	if err != nil {
		return nil, err
	}

	mode, err := putMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	req := new(model.PutRestApiRequest).
		SetRestApiId(id).
		SetMode(mode).
		SetBody(body).
		SetFailOnWarnings(cfg.FailOnWarnings)
	if len(cfg.Parameters) > 0 {
		req.SetParameters(cfg.Parameters)
	}
	out, err := s.APIGWRepo.PutRestApi(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("putting rest api %s from %s: %w", id, cfg.BodyLocation, err)
	}

	state := &RestAPIState{
		ID:             out.GetId(),
		Name:           out.GetName(),
		RootResourceID: out.GetRootResourceId(),
		BodyHash:       BodyHash(body),
		Warnings:       out.GetWarnings(),
	}
	s.logWarnings(state)

	if err := s.deploy(ctx, state, cfg); err != nil {
		return state, err
	}
	return state, nil
}

// Read devolve a API, ou nil quando ela não existe mais.
func (s *RestAPIService) Read(ctx context.Context, id string) (*model.GetRestApiResult, error) {
	out, err := s.APIGWRepo.GetRestApi(ctx, new(model.GetRestApiRequest).SetRestApiId(id))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// Export grava a definição publicada em um stage no destino informado.
// exportType é "oas30" ou "swagger"; accepts escolhe JSON ou YAML.
func (s *RestAPIService) Export(ctx context.Context, id, stage, exportType, accepts, destination string) error {
	req := new(model.GetExportRequest).SetRestApiId(id).SetStageName(stage).SetExportType(exportType)
	if accepts != "" {
		req.SetAccepts(accepts)
	}
	out, err := s.APIGWRepo.GetExport(ctx, req)
	if err != nil {
		return fmt.Errorf("exporting %s/%s: %w", id, stage, err)
	}

	contentType := out.GetContentType()
	if contentType == "" {
		contentType = accepts
	}
	return s.Documents.Store(ctx, destination, out.GetBody(), contentType)
}

// Delete remove a API; uma API já inexistente não é erro.
func (s *RestAPIService) Delete(ctx context.Context, id string) error {
	err := s.APIGWRepo.DeleteRestApi(ctx, new(model.DeleteRestApiRequest).SetRestApiId(id))
	if err != nil && !repository.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *RestAPIService) deploy(ctx context.Context, state *RestAPIState, cfg *dto.RestAPIDefinitionConfig) error {
	if cfg.StageName == "" {
		return nil
	}
	deploymentID, err := s.APIGWRepo.DeployAPI(ctx, state.ID, cfg.StageName, cfg.Description)
	if err != nil {
		return fmt.Errorf("deploying %s to %s: %w", state.ID, cfg.StageName, err)
	}
	state.DeploymentID = deploymentID
	return nil
}

func (s *RestAPIService) logWarnings(state *RestAPIState) {
	for _, w := range state.Warnings {
		s.Log.Warn().Str("api_id", state.ID).Msg(w)
	}
}

func putMode(raw string) (model.PutMode, error) {
	if raw == "" {
		return model.PutModeOverwrite, nil
	}
	mode := model.PutMode(strings.ToLower(raw))
	if !mode.IsKnown() {
		return "", fmt.Errorf("invalid put mode %q: expected one of %v", raw, mode.Values())
	}
	return mode, nil
}
