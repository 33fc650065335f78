package repository

import (
	"context"

	"github.com/raywall/apigateway-kit/pkg/model"
)

// Operações usadas apenas via Invoke; seguem a mesma conversão e retry.

func (r *APIGWRepository) CreateAuthorizer(ctx context.Context, in *model.CreateAuthorizerRequest) (*model.CreateAuthorizerResult, error) {
	return invoke[model.CreateAuthorizerResult](ctx, r, "CreateAuthorizer", in, r.API.CreateAuthorizer)
}

func (r *APIGWRepository) CreateBasePathMapping(ctx context.Context, in *model.CreateBasePathMappingRequest) (*model.CreateBasePathMappingResult, error) {
	return invoke[model.CreateBasePathMappingResult](ctx, r, "CreateBasePathMapping", in, r.API.CreateBasePathMapping)
}

func (r *APIGWRepository) CreateDomainName(ctx context.Context, in *model.CreateDomainNameRequest) (*model.CreateDomainNameResult, error) {
	return invoke[model.CreateDomainNameResult](ctx, r, "CreateDomainName", in, r.API.CreateDomainName)
}

func (r *APIGWRepository) CreateModel(ctx context.Context, in *model.CreateModelRequest) (*model.CreateModelResult, error) {
	return invoke[model.CreateModelResult](ctx, r, "CreateModel", in, r.API.CreateModel)
}

func (r *APIGWRepository) CreateRequestValidator(ctx context.Context, in *model.CreateRequestValidatorRequest) (*model.CreateRequestValidatorResult, error) {
	return invoke[model.CreateRequestValidatorResult](ctx, r, "CreateRequestValidator", in, r.API.CreateRequestValidator)
}

func (r *APIGWRepository) CreateVpcLink(ctx context.Context, in *model.CreateVpcLinkRequest) (*model.CreateVpcLinkResult, error) {
	return invoke[model.CreateVpcLinkResult](ctx, r, "CreateVpcLink", in, r.API.CreateVpcLink)
}

func (r *APIGWRepository) DeleteAuthorizer(ctx context.Context, in *model.DeleteAuthorizerRequest) error {
	return invokeNoResult(ctx, r, "DeleteAuthorizer", in, r.API.DeleteAuthorizer)
}

func (r *APIGWRepository) DeleteBasePathMapping(ctx context.Context, in *model.DeleteBasePathMappingRequest) error {
	return invokeNoResult(ctx, r, "DeleteBasePathMapping", in, r.API.DeleteBasePathMapping)
}

func (r *APIGWRepository) DeleteClientCertificate(ctx context.Context, in *model.DeleteClientCertificateRequest) error {
	return invokeNoResult(ctx, r, "DeleteClientCertificate", in, r.API.DeleteClientCertificate)
}

func (r *APIGWRepository) DeleteDeployment(ctx context.Context, in *model.DeleteDeploymentRequest) error {
	return invokeNoResult(ctx, r, "DeleteDeployment", in, r.API.DeleteDeployment)
}

func (r *APIGWRepository) DeleteDocumentationPart(ctx context.Context, in *model.DeleteDocumentationPartRequest) error {
	return invokeNoResult(ctx, r, "DeleteDocumentationPart", in, r.API.DeleteDocumentationPart)
}

func (r *APIGWRepository) DeleteDomainName(ctx context.Context, in *model.DeleteDomainNameRequest) error {
	return invokeNoResult(ctx, r, "DeleteDomainName", in, r.API.DeleteDomainName)
}

func (r *APIGWRepository) DeleteGatewayResponse(ctx context.Context, in *model.DeleteGatewayResponseRequest) error {
	return invokeNoResult(ctx, r, "DeleteGatewayResponse", in, r.API.DeleteGatewayResponse)
}

func (r *APIGWRepository) DeleteIntegration(ctx context.Context, in *model.DeleteIntegrationRequest) error {
	return invokeNoResult(ctx, r, "DeleteIntegration", in, r.API.DeleteIntegration)
}

func (r *APIGWRepository) DeleteIntegrationResponse(ctx context.Context, in *model.DeleteIntegrationResponseRequest) error {
	return invokeNoResult(ctx, r, "DeleteIntegrationResponse", in, r.API.DeleteIntegrationResponse)
}

func (r *APIGWRepository) DeleteMethodResponse(ctx context.Context, in *model.DeleteMethodResponseRequest) error {
	return invokeNoResult(ctx, r, "DeleteMethodResponse", in, r.API.DeleteMethodResponse)
}

func (r *APIGWRepository) DeleteModel(ctx context.Context, in *model.DeleteModelRequest) error {
	return invokeNoResult(ctx, r, "DeleteModel", in, r.API.DeleteModel)
}

func (r *APIGWRepository) DeleteRequestValidator(ctx context.Context, in *model.DeleteRequestValidatorRequest) error {
	return invokeNoResult(ctx, r, "DeleteRequestValidator", in, r.API.DeleteRequestValidator)
}

func (r *APIGWRepository) DeleteStage(ctx context.Context, in *model.DeleteStageRequest) error {
	return invokeNoResult(ctx, r, "DeleteStage", in, r.API.DeleteStage)
}

func (r *APIGWRepository) DeleteVpcLink(ctx context.Context, in *model.DeleteVpcLinkRequest) error {
	return invokeNoResult(ctx, r, "DeleteVpcLink", in, r.API.DeleteVpcLink)
}

func (r *APIGWRepository) GenerateClientCertificate(ctx context.Context, in *model.GenerateClientCertificateRequest) (*model.GenerateClientCertificateResult, error) {
	return invoke[model.GenerateClientCertificateResult](ctx, r, "GenerateClientCertificate", in, r.API.GenerateClientCertificate)
}

func (r *APIGWRepository) GetAuthorizer(ctx context.Context, in *model.GetAuthorizerRequest) (*model.GetAuthorizerResult, error) {
	return invoke[model.GetAuthorizerResult](ctx, r, "GetAuthorizer", in, r.API.GetAuthorizer)
}

func (r *APIGWRepository) GetAuthorizers(ctx context.Context, in *model.GetAuthorizersRequest) (*model.GetAuthorizersResult, error) {
	return invoke[model.GetAuthorizersResult](ctx, r, "GetAuthorizers", in, r.API.GetAuthorizers)
}

func (r *APIGWRepository) GetBasePathMapping(ctx context.Context, in *model.GetBasePathMappingRequest) (*model.GetBasePathMappingResult, error) {
	return invoke[model.GetBasePathMappingResult](ctx, r, "GetBasePathMapping", in, r.API.GetBasePathMapping)
}

func (r *APIGWRepository) GetBasePathMappings(ctx context.Context, in *model.GetBasePathMappingsRequest) (*model.GetBasePathMappingsResult, error) {
	return invoke[model.GetBasePathMappingsResult](ctx, r, "GetBasePathMappings", in, r.API.GetBasePathMappings)
}

func (r *APIGWRepository) GetClientCertificate(ctx context.Context, in *model.GetClientCertificateRequest) (*model.GetClientCertificateResult, error) {
	return invoke[model.GetClientCertificateResult](ctx, r, "GetClientCertificate", in, r.API.GetClientCertificate)
}

func (r *APIGWRepository) GetClientCertificates(ctx context.Context, in *model.GetClientCertificatesRequest) (*model.GetClientCertificatesResult, error) {
	return invoke[model.GetClientCertificatesResult](ctx, r, "GetClientCertificates", in, r.API.GetClientCertificates)
}

func (r *APIGWRepository) GetDeployments(ctx context.Context, in *model.GetDeploymentsRequest) (*model.GetDeploymentsResult, error) {
	return invoke[model.GetDeploymentsResult](ctx, r, "GetDeployments", in, r.API.GetDeployments)
}

func (r *APIGWRepository) GetDocumentationPart(ctx context.Context, in *model.GetDocumentationPartRequest) (*model.GetDocumentationPartResult, error) {
	return invoke[model.GetDocumentationPartResult](ctx, r, "GetDocumentationPart", in, r.API.GetDocumentationPart)
}

func (r *APIGWRepository) GetDocumentationParts(ctx context.Context, in *model.GetDocumentationPartsRequest) (*model.GetDocumentationPartsResult, error) {
	return invoke[model.GetDocumentationPartsResult](ctx, r, "GetDocumentationParts", in, r.API.GetDocumentationParts)
}

func (r *APIGWRepository) GetDomainName(ctx context.Context, in *model.GetDomainNameRequest) (*model.GetDomainNameResult, error) {
	return invoke[model.GetDomainNameResult](ctx, r, "GetDomainName", in, r.API.GetDomainName)
}

func (r *APIGWRepository) GetDomainNames(ctx context.Context, in *model.GetDomainNamesRequest) (*model.GetDomainNamesResult, error) {
	return invoke[model.GetDomainNamesResult](ctx, r, "GetDomainNames", in, r.API.GetDomainNames)
}

func (r *APIGWRepository) GetGatewayResponse(ctx context.Context, in *model.GetGatewayResponseRequest) (*model.GetGatewayResponseResult, error) {
	return invoke[model.GetGatewayResponseResult](ctx, r, "GetGatewayResponse", in, r.API.GetGatewayResponse)
}

func (r *APIGWRepository) GetGatewayResponses(ctx context.Context, in *model.GetGatewayResponsesRequest) (*model.GetGatewayResponsesResult, error) {
	return invoke[model.GetGatewayResponsesResult](ctx, r, "GetGatewayResponses", in, r.API.GetGatewayResponses)
}

func (r *APIGWRepository) GetIntegration(ctx context.Context, in *model.GetIntegrationRequest) (*model.GetIntegrationResult, error) {
	return invoke[model.GetIntegrationResult](ctx, r, "GetIntegration", in, r.API.GetIntegration)
}

func (r *APIGWRepository) GetIntegrationResponse(ctx context.Context, in *model.GetIntegrationResponseRequest) (*model.GetIntegrationResponseResult, error) {
	return invoke[model.GetIntegrationResponseResult](ctx, r, "GetIntegrationResponse", in, r.API.GetIntegrationResponse)
}

func (r *APIGWRepository) GetMethod(ctx context.Context, in *model.GetMethodRequest) (*model.GetMethodResult, error) {
	return invoke[model.GetMethodResult](ctx, r, "GetMethod", in, r.API.GetMethod)
}

func (r *APIGWRepository) GetMethodResponse(ctx context.Context, in *model.GetMethodResponseRequest) (*model.GetMethodResponseResult, error) {
	return invoke[model.GetMethodResponseResult](ctx, r, "GetMethodResponse", in, r.API.GetMethodResponse)
}

func (r *APIGWRepository) GetModel(ctx context.Context, in *model.GetModelRequest) (*model.GetModelResult, error) {
	return invoke[model.GetModelResult](ctx, r, "GetModel", in, r.API.GetModel)
}

func (r *APIGWRepository) GetModelTemplate(ctx context.Context, in *model.GetModelTemplateRequest) (*model.GetModelTemplateResult, error) {
	return invoke[model.GetModelTemplateResult](ctx, r, "GetModelTemplate", in, r.API.GetModelTemplate)
}

func (r *APIGWRepository) GetModels(ctx context.Context, in *model.GetModelsRequest) (*model.GetModelsResult, error) {
	return invoke[model.GetModelsResult](ctx, r, "GetModels", in, r.API.GetModels)
}

func (r *APIGWRepository) GetRequestValidator(ctx context.Context, in *model.GetRequestValidatorRequest) (*model.GetRequestValidatorResult, error) {
	return invoke[model.GetRequestValidatorResult](ctx, r, "GetRequestValidator", in, r.API.GetRequestValidator)
}

func (r *APIGWRepository) GetRequestValidators(ctx context.Context, in *model.GetRequestValidatorsRequest) (*model.GetRequestValidatorsResult, error) {
	return invoke[model.GetRequestValidatorsResult](ctx, r, "GetRequestValidators", in, r.API.GetRequestValidators)
}

func (r *APIGWRepository) GetResource(ctx context.Context, in *model.GetResourceRequest) (*model.GetResourceResult, error) {
	return invoke[model.GetResourceResult](ctx, r, "GetResource", in, r.API.GetResource)
}

func (r *APIGWRepository) GetRestApis(ctx context.Context, in *model.GetRestApisRequest) (*model.GetRestApisResult, error) {
	return invoke[model.GetRestApisResult](ctx, r, "GetRestApis", in, r.API.GetRestApis)
}

func (r *APIGWRepository) GetSdk(ctx context.Context, in *model.GetSdkRequest) (*model.GetSdkResult, error) {
	return invoke[model.GetSdkResult](ctx, r, "GetSdk", in, r.API.GetSdk)
}

func (r *APIGWRepository) GetSdkType(ctx context.Context, in *model.GetSdkTypeRequest) (*model.GetSdkTypeResult, error) {
	return invoke[model.GetSdkTypeResult](ctx, r, "GetSdkType", in, r.API.GetSdkType)
}

func (r *APIGWRepository) GetSdkTypes(ctx context.Context, in *model.GetSdkTypesRequest) (*model.GetSdkTypesResult, error) {
	return invoke[model.GetSdkTypesResult](ctx, r, "GetSdkTypes", in, r.API.GetSdkTypes)
}

func (r *APIGWRepository) GetStages(ctx context.Context, in *model.GetStagesRequest) (*model.GetStagesResult, error) {
	return invoke[model.GetStagesResult](ctx, r, "GetStages", in, r.API.GetStages)
}

func (r *APIGWRepository) GetUsagePlanKey(ctx context.Context, in *model.GetUsagePlanKeyRequest) (*model.GetUsagePlanKeyResult, error) {
	return invoke[model.GetUsagePlanKeyResult](ctx, r, "GetUsagePlanKey", in, r.API.GetUsagePlanKey)
}

func (r *APIGWRepository) GetVpcLink(ctx context.Context, in *model.GetVpcLinkRequest) (*model.GetVpcLinkResult, error) {
	return invoke[model.GetVpcLinkResult](ctx, r, "GetVpcLink", in, r.API.GetVpcLink)
}

func (r *APIGWRepository) GetVpcLinks(ctx context.Context, in *model.GetVpcLinksRequest) (*model.GetVpcLinksResult, error) {
	return invoke[model.GetVpcLinksResult](ctx, r, "GetVpcLinks", in, r.API.GetVpcLinks)
}

func (r *APIGWRepository) ImportDocumentationParts(ctx context.Context, in *model.ImportDocumentationPartsRequest) (*model.ImportDocumentationPartsResult, error) {
	return invoke[model.ImportDocumentationPartsResult](ctx, r, "ImportDocumentationParts", in, r.API.ImportDocumentationParts)
}

func (r *APIGWRepository) PutGatewayResponse(ctx context.Context, in *model.PutGatewayResponseRequest) (*model.PutGatewayResponseResult, error) {
	return invoke[model.PutGatewayResponseResult](ctx, r, "PutGatewayResponse", in, r.API.PutGatewayResponse)
}

func (r *APIGWRepository) TestInvokeMethod(ctx context.Context, in *model.TestInvokeMethodRequest) (*model.TestInvokeMethodResult, error) {
	return invoke[model.TestInvokeMethodResult](ctx, r, "TestInvokeMethod", in, r.API.TestInvokeMethod)
}

func (r *APIGWRepository) UpdateAccount(ctx context.Context, in *model.UpdateAccountRequest) (*model.UpdateAccountResult, error) {
	return invoke[model.UpdateAccountResult](ctx, r, "UpdateAccount", in, r.API.UpdateAccount)
}

func (r *APIGWRepository) UpdateAuthorizer(ctx context.Context, in *model.UpdateAuthorizerRequest) (*model.UpdateAuthorizerResult, error) {
	return invoke[model.UpdateAuthorizerResult](ctx, r, "UpdateAuthorizer", in, r.API.UpdateAuthorizer)
}

func (r *APIGWRepository) UpdateBasePathMapping(ctx context.Context, in *model.UpdateBasePathMappingRequest) (*model.UpdateBasePathMappingResult, error) {
	return invoke[model.UpdateBasePathMappingResult](ctx, r, "UpdateBasePathMapping", in, r.API.UpdateBasePathMapping)
}

func (r *APIGWRepository) UpdateClientCertificate(ctx context.Context, in *model.UpdateClientCertificateRequest) (*model.UpdateClientCertificateResult, error) {
	return invoke[model.UpdateClientCertificateResult](ctx, r, "UpdateClientCertificate", in, r.API.UpdateClientCertificate)
}

func (r *APIGWRepository) UpdateDeployment(ctx context.Context, in *model.UpdateDeploymentRequest) (*model.UpdateDeploymentResult, error) {
	return invoke[model.UpdateDeploymentResult](ctx, r, "UpdateDeployment", in, r.API.UpdateDeployment)
}

func (r *APIGWRepository) UpdateDocumentationPart(ctx context.Context, in *model.UpdateDocumentationPartRequest) (*model.UpdateDocumentationPartResult, error) {
	return invoke[model.UpdateDocumentationPartResult](ctx, r, "UpdateDocumentationPart", in, r.API.UpdateDocumentationPart)
}

func (r *APIGWRepository) UpdateDomainName(ctx context.Context, in *model.UpdateDomainNameRequest) (*model.UpdateDomainNameResult, error) {
	return invoke[model.UpdateDomainNameResult](ctx, r, "UpdateDomainName", in, r.API.UpdateDomainName)
}

func (r *APIGWRepository) UpdateGatewayResponse(ctx context.Context, in *model.UpdateGatewayResponseRequest) (*model.UpdateGatewayResponseResult, error) {
	return invoke[model.UpdateGatewayResponseResult](ctx, r, "UpdateGatewayResponse", in, r.API.UpdateGatewayResponse)
}

func (r *APIGWRepository) UpdateIntegration(ctx context.Context, in *model.UpdateIntegrationRequest) (*model.UpdateIntegrationResult, error) {
	return invoke[model.UpdateIntegrationResult](ctx, r, "UpdateIntegration", in, r.API.UpdateIntegration)
}

func (r *APIGWRepository) UpdateIntegrationResponse(ctx context.Context, in *model.UpdateIntegrationResponseRequest) (*model.UpdateIntegrationResponseResult, error) {
	return invoke[model.UpdateIntegrationResponseResult](ctx, r, "UpdateIntegrationResponse", in, r.API.UpdateIntegrationResponse)
}

func (r *APIGWRepository) UpdateMethod(ctx context.Context, in *model.UpdateMethodRequest) (*model.UpdateMethodResult, error) {
	return invoke[model.UpdateMethodResult](ctx, r, "UpdateMethod", in, r.API.UpdateMethod)
}

func (r *APIGWRepository) UpdateMethodResponse(ctx context.Context, in *model.UpdateMethodResponseRequest) (*model.UpdateMethodResponseResult, error) {
	return invoke[model.UpdateMethodResponseResult](ctx, r, "UpdateMethodResponse", in, r.API.UpdateMethodResponse)
}

func (r *APIGWRepository) UpdateModel(ctx context.Context, in *model.UpdateModelRequest) (*model.UpdateModelResult, error) {
	return invoke[model.UpdateModelResult](ctx, r, "UpdateModel", in, r.API.UpdateModel)
}

func (r *APIGWRepository) UpdateRequestValidator(ctx context.Context, in *model.UpdateRequestValidatorRequest) (*model.UpdateRequestValidatorResult, error) {
	return invoke[model.UpdateRequestValidatorResult](ctx, r, "UpdateRequestValidator", in, r.API.UpdateRequestValidator)
}

func (r *APIGWRepository) UpdateResource(ctx context.Context, in *model.UpdateResourceRequest) (*model.UpdateResourceResult, error) {
	return invoke[model.UpdateResourceResult](ctx, r, "UpdateResource", in, r.API.UpdateResource)
}

func (r *APIGWRepository) UpdateRestApi(ctx context.Context, in *model.UpdateRestApiRequest) (*model.UpdateRestApiResult, error) {
	return invoke[model.UpdateRestApiResult](ctx, r, "UpdateRestApi", in, r.API.UpdateRestApi)
}

func (r *APIGWRepository) UpdateStage(ctx context.Context, in *model.UpdateStageRequest) (*model.UpdateStageResult, error) {
	return invoke[model.UpdateStageResult](ctx, r, "UpdateStage", in, r.API.UpdateStage)
}

func (r *APIGWRepository) UpdateUsage(ctx context.Context, in *model.UpdateUsageRequest) (*model.UpdateUsageResult, error) {
	return invoke[model.UpdateUsageResult](ctx, r, "UpdateUsage", in, r.API.UpdateUsage)
}

func (r *APIGWRepository) UpdateVpcLink(ctx context.Context, in *model.UpdateVpcLinkRequest) (*model.UpdateVpcLinkResult, error) {
	return invoke[model.UpdateVpcLinkResult](ctx, r, "UpdateVpcLink", in, r.API.UpdateVpcLink)
}
