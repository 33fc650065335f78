package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/raywall/apigateway-kit/internal/repository"
	"github.com/raywall/apigateway-kit/pkg/model"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

// APIKeyService mantém API keys avulsas e importações em lote.
type APIKeyService struct {
	APIGWRepo *repository.APIGWRepository
	Documents *repository.DocumentRepository
	Region    string
	Log       zerolog.Logger
}

// APIKeyArn monta o ARN de uma API key para operações de tag.
func APIKeyArn(region, id string) string {
	return fmt.Sprintf("arn:aws:apigateway:%s::/apikeys/%s", region, id)
}

// Create cria a key e devolve id e valor gerado (ou informado).
func (s *APIKeyService) Create(ctx context.Context, cfg *dto.APIKeyConfig) (string, string, error) {
	req := new(model.CreateApiKeyRequest).SetName(cfg.Name).SetEnabled(cfg.Enabled)
	if cfg.Description != "" {
		req.SetDescription(cfg.Description)
	}
	if cfg.Value != "" {
		req.SetValue(cfg.Value)
	}
	if cfg.CustomerID != "" {
		req.SetCustomerId(cfg.CustomerID)
	}
	if len(cfg.Tags) > 0 {
		req.SetTags(cfg.Tags)
	}

	out, err := s.APIGWRepo.CreateApiKey(ctx, req)
	if err != nil {
		return "", "", fmt.Errorf("creating api key %s: %w", cfg.Name, err)
	}
	s.Log.Info().Str("api_key_id", out.GetId()).Str("name", cfg.Name).Msg("api key created")
	return out.GetId(), out.GetValue(), nil
}

// Read devolve a key com o valor, ou nil quando ela foi removida.
func (s *APIKeyService) Read(ctx context.Context, id string) (*dto.APIKeyConfig, error) {
	out, err := s.APIGWRepo.GetApiKey(ctx, new(model.GetApiKeyRequest).SetApiKey(id).SetIncludeValue(true))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.APIKeyConfig{
		Name:        out.GetName(),
		Description: out.GetDescription(),
		Enabled:     out.GetEnabled(),
		Value:       out.GetValue(),
		CustomerID:  out.GetCustomerId(),
		Tags:        out.GetTags(),
	}, nil
}

// Update aplica as mudanças de atributos e tags.
func (s *APIKeyService) Update(ctx context.Context, id string, old, desired *dto.APIKeyConfig) error {
	if ops := APIKeyPatches(old, desired); len(ops) > 0 {
		req := new(model.UpdateApiKeyRequest).SetApiKey(id).SetPatchOperations(ops)
		if _, err := s.APIGWRepo.UpdateApiKey(ctx, req); err != nil {
			return fmt.Errorf("updating api key %s: %w", id, err)
		}
	}

	return syncTags(ctx, s.APIGWRepo, APIKeyArn(s.Region, id), old.Tags, desired.Tags)
}

// Delete remove a key; uma key já inexistente não é erro.
func (s *APIKeyService) Delete(ctx context.Context, id string) error {
	err := s.APIGWRepo.DeleteApiKey(ctx, new(model.DeleteApiKeyRequest).SetApiKey(id))
	if err != nil && !repository.IsNotFound(err) {
		return err
	}
	return nil
}

// Import carrega um CSV de keys de um arquivo local ou s3:// e o importa.
func (s *APIKeyService) Import(ctx context.Context, location string, failOnWarnings bool) ([]string, error) {
	body, err := s.Documents.Load(ctx, location)
	if err != nil {
		return nil, err
	}

	out, err := s.APIGWRepo.ImportApiKeys(ctx, new(model.ImportApiKeysRequest).
		SetBody(body).
		SetFormat(model.ApiKeysFormatCsv).
		SetFailOnWarnings(failOnWarnings))
	if err != nil {
		return nil, fmt.Errorf("importing api keys from %s: %w", location, err)
	}
	for _, w := range out.GetWarnings() {
		s.Log.Warn().Str("location", location).Msg(w)
	}
	return out.GetIds(), nil
}

// APIKeyPatches calcula as operações de UpdateApiKey. O valor da key é imutável.
func APIKeyPatches(old, desired *dto.APIKeyConfig) []*model.PatchOperation {
	var ops []*model.PatchOperation
	if old.Name != desired.Name {
		ops = append(ops, patch(model.OpReplace, "/name", desired.Name))
	}
	if old.Description != desired.Description {
		ops = append(ops, patch(model.OpReplace, "/description", desired.Description))
	}
	if old.Enabled != desired.Enabled {
		ops = append(ops, patch(model.OpReplace, "/enabled", strconv.FormatBool(desired.Enabled)))
	}
	if old.CustomerID != desired.CustomerID {
		ops = append(ops, patch(model.OpReplace, "/customerId", desired.CustomerID))
	}
	return ops
}
