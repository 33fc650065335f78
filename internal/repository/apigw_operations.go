package repository

import (
	"context"

	"github.com/raywall/apigateway-kit/pkg/model"
)

// --- API keys ---

// CreateApiKey cria uma API key.
func (r *APIGWRepository) CreateApiKey(ctx context.Context, in *model.CreateApiKeyRequest) (*model.CreateApiKeyResult, error) {
	return invoke[model.CreateApiKeyResult](ctx, r, "CreateApiKey", in, r.API.CreateApiKey)
}

func (r *APIGWRepository) GetApiKey(ctx context.Context, in *model.GetApiKeyRequest) (*model.GetApiKeyResult, error) {
	return invoke[model.GetApiKeyResult](ctx, r, "GetApiKey", in, r.API.GetApiKey)
}

// GetApiKeys lista uma página de API keys.
func (r *APIGWRepository) GetApiKeys(ctx context.Context, in *model.GetApiKeysRequest) (*model.GetApiKeysResult, error) {
	return invoke[model.GetApiKeysResult](ctx, r, "GetApiKeys", in, r.API.GetApiKeys)
}

// UpdateApiKey aplica patch operations a uma API key.
func (r *APIGWRepository) UpdateApiKey(ctx context.Context, in *model.UpdateApiKeyRequest) (*model.UpdateApiKeyResult, error) {
	return invoke[model.UpdateApiKeyResult](ctx, r, "UpdateApiKey", in, r.API.UpdateApiKey)
}

func (r *APIGWRepository) DeleteApiKey(ctx context.Context, in *model.DeleteApiKeyRequest) error {
	return invokeNoResult(ctx, r, "DeleteApiKey", in, r.API.DeleteApiKey)
}

// ImportApiKeys importa API keys de um CSV.
func (r *APIGWRepository) ImportApiKeys(ctx context.Context, in *model.ImportApiKeysRequest) (*model.ImportApiKeysResult, error) {
	return invoke[model.ImportApiKeysResult](ctx, r, "ImportApiKeys", in, r.API.ImportApiKeys)
}

// --- Usage plans ---

func (r *APIGWRepository) CreateUsagePlan(ctx context.Context, in *model.CreateUsagePlanRequest) (*model.CreateUsagePlanResult, error) {
	return invoke[model.CreateUsagePlanResult](ctx, r, "CreateUsagePlan", in, r.API.CreateUsagePlan)
}

func (r *APIGWRepository) GetUsagePlan(ctx context.Context, in *model.GetUsagePlanRequest) (*model.GetUsagePlanResult, error) {
	return invoke[model.GetUsagePlanResult](ctx, r, "GetUsagePlan", in, r.API.GetUsagePlan)
}

func (r *APIGWRepository) GetUsagePlans(ctx context.Context, in *model.GetUsagePlansRequest) (*model.GetUsagePlansResult, error) {
	return invoke[model.GetUsagePlansResult](ctx, r, "GetUsagePlans", in, r.API.GetUsagePlans)
}

// UpdateUsagePlan aplica patch operations ao usage plan.
func (r *APIGWRepository) UpdateUsagePlan(ctx context.Context, in *model.UpdateUsagePlanRequest) (*model.UpdateUsagePlanResult, error) {
	return invoke[model.UpdateUsagePlanResult](ctx, r, "UpdateUsagePlan", in, r.API.UpdateUsagePlan)
}

func (r *APIGWRepository) DeleteUsagePlan(ctx context.Context, in *model.DeleteUsagePlanRequest) error {
	return invokeNoResult(ctx, r, "DeleteUsagePlan", in, r.API.DeleteUsagePlan)
}

func (r *APIGWRepository) CreateUsagePlanKey(ctx context.Context, in *model.CreateUsagePlanKeyRequest) (*model.CreateUsagePlanKeyResult, error) {
	return invoke[model.CreateUsagePlanKeyResult](ctx, r, "CreateUsagePlanKey", in, r.API.CreateUsagePlanKey)
}

func (r *APIGWRepository) GetUsagePlanKeys(ctx context.Context, in *model.GetUsagePlanKeysRequest) (*model.GetUsagePlanKeysResult, error) {
	return invoke[model.GetUsagePlanKeysResult](ctx, r, "GetUsagePlanKeys", in, r.API.GetUsagePlanKeys)
}

func (r *APIGWRepository) DeleteUsagePlanKey(ctx context.Context, in *model.DeleteUsagePlanKeyRequest) error {
	return invokeNoResult(ctx, r, "DeleteUsagePlanKey", in, r.API.DeleteUsagePlanKey)
}

// GetUsage retorna o uso diário das keys de um usage plan.
func (r *APIGWRepository) GetUsage(ctx context.Context, in *model.GetUsageRequest) (*model.GetUsageResult, error) {
	return invoke[model.GetUsageResult](ctx, r, "GetUsage", in, r.API.GetUsage)
}

// --- REST APIs ---

func (r *APIGWRepository) CreateRestApi(ctx context.Context, in *model.CreateRestApiRequest) (*model.CreateRestApiResult, error) {
	return invoke[model.CreateRestApiResult](ctx, r, "CreateRestApi", in, r.API.CreateRestApi)
}

func (r *APIGWRepository) GetRestApi(ctx context.Context, in *model.GetRestApiRequest) (*model.GetRestApiResult, error) {
	return invoke[model.GetRestApiResult](ctx, r, "GetRestApi", in, r.API.GetRestApi)
}

func (r *APIGWRepository) DeleteRestApi(ctx context.Context, in *model.DeleteRestApiRequest) error {
	return invokeNoResult(ctx, r, "DeleteRestApi", in, r.API.DeleteRestApi)
}

// PutRestApi mescla ou sobrescreve uma API com uma definição OpenAPI.
func (r *APIGWRepository) PutRestApi(ctx context.Context, in *model.PutRestApiRequest) (*model.PutRestApiResult, error) {
	return invoke[model.PutRestApiResult](ctx, r, "PutRestApi", in, r.API.PutRestApi)
}

// ImportRestApi cria uma API a partir de uma definição OpenAPI.
func (r *APIGWRepository) ImportRestApi(ctx context.Context, in *model.ImportRestApiRequest) (*model.ImportRestApiResult, error) {
	return invoke[model.ImportRestApiResult](ctx, r, "ImportRestApi", in, r.API.ImportRestApi)
}

// --- Recursos e métodos ---

// GetResources lista uma página dos recursos de uma API.
func (r *APIGWRepository) GetResources(ctx context.Context, in *model.GetResourcesRequest) (*model.GetResourcesResult, error) {
	return invoke[model.GetResourcesResult](ctx, r, "GetResources", in, r.API.GetResources)
}

func (r *APIGWRepository) CreateResource(ctx context.Context, in *model.CreateResourceRequest) (*model.CreateResourceResult, error) {
	return invoke[model.CreateResourceResult](ctx, r, "CreateResource", in, r.API.CreateResource)
}

func (r *APIGWRepository) DeleteResource(ctx context.Context, in *model.DeleteResourceRequest) error {
	return invokeNoResult(ctx, r, "DeleteResource", in, r.API.DeleteResource)
}

func (r *APIGWRepository) PutMethod(ctx context.Context, in *model.PutMethodRequest) (*model.PutMethodResult, error) {
	return invoke[model.PutMethodResult](ctx, r, "PutMethod", in, r.API.PutMethod)
}

func (r *APIGWRepository) DeleteMethod(ctx context.Context, in *model.DeleteMethodRequest) error {
	return invokeNoResult(ctx, r, "DeleteMethod", in, r.API.DeleteMethod)
}

func (r *APIGWRepository) PutIntegration(ctx context.Context, in *model.PutIntegrationRequest) (*model.PutIntegrationResult, error) {
	return invoke[model.PutIntegrationResult](ctx, r, "PutIntegration", in, r.API.PutIntegration)
}

func (r *APIGWRepository) PutMethodResponse(ctx context.Context, in *model.PutMethodResponseRequest) (*model.PutMethodResponseResult, error) {
	return invoke[model.PutMethodResponseResult](ctx, r, "PutMethodResponse", in, r.API.PutMethodResponse)
}

func (r *APIGWRepository) PutIntegrationResponse(ctx context.Context, in *model.PutIntegrationResponseRequest) (*model.PutIntegrationResponseResult, error) {
	return invoke[model.PutIntegrationResponseResult](ctx, r, "PutIntegrationResponse", in, r.API.PutIntegrationResponse)
}

// --- Deployments e stages ---

func (r *APIGWRepository) CreateDeployment(ctx context.Context, in *model.CreateDeploymentRequest) (*model.CreateDeploymentResult, error) {
	return invoke[model.CreateDeploymentResult](ctx, r, "CreateDeployment", in, r.API.CreateDeployment)
}

func (r *APIGWRepository) GetDeployment(ctx context.Context, in *model.GetDeploymentRequest) (*model.GetDeploymentResult, error) {
	return invoke[model.GetDeploymentResult](ctx, r, "GetDeployment", in, r.API.GetDeployment)
}

func (r *APIGWRepository) CreateStage(ctx context.Context, in *model.CreateStageRequest) (*model.CreateStageResult, error) {
	return invoke[model.CreateStageResult](ctx, r, "CreateStage", in, r.API.CreateStage)
}

func (r *APIGWRepository) GetStage(ctx context.Context, in *model.GetStageRequest) (*model.GetStageResult, error) {
	return invoke[model.GetStageResult](ctx, r, "GetStage", in, r.API.GetStage)
}

// FlushStageCache limpa o cache do stage.
func (r *APIGWRepository) FlushStageCache(ctx context.Context, in *model.FlushStageCacheRequest) error {
	return invokeNoResult(ctx, r, "FlushStageCache", in, r.API.FlushStageCache)
}

// --- Documentação, tags, conta e export ---

func (r *APIGWRepository) CreateDocumentationPart(ctx context.Context, in *model.CreateDocumentationPartRequest) (*model.CreateDocumentationPartResult, error) {
	return invoke[model.CreateDocumentationPartResult](ctx, r, "CreateDocumentationPart", in, r.API.CreateDocumentationPart)
}

func (r *APIGWRepository) TagResource(ctx context.Context, in *model.TagResourceRequest) error {
	return invokeNoResult(ctx, r, "TagResource", in, r.API.TagResource)
}

func (r *APIGWRepository) UntagResource(ctx context.Context, in *model.UntagResourceRequest) error {
	return invokeNoResult(ctx, r, "UntagResource", in, r.API.UntagResource)
}

func (r *APIGWRepository) GetTags(ctx context.Context, in *model.GetTagsRequest) (*model.GetTagsResult, error) {
	return invoke[model.GetTagsResult](ctx, r, "GetTags", in, r.API.GetTags)
}

// GetAccount retorna as configurações da conta no API Gateway.
func (r *APIGWRepository) GetAccount(ctx context.Context, in *model.GetAccountRequest) (*model.GetAccountResult, error) {
	return invoke[model.GetAccountResult](ctx, r, "GetAccount", in, r.API.GetAccount)
}

// GetExport exporta um stage publicado (OpenAPI, Swagger).
func (r *APIGWRepository) GetExport(ctx context.Context, in *model.GetExportRequest) (*model.GetExportResult, error) {
	return invoke[model.GetExportResult](ctx, r, "GetExport", in, r.API.GetExport)
}
