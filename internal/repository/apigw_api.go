package repository

import (
	"context"

	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
)

// APIGatewayAPI é o subconjunto do cliente API Gateway usado pelo repositório.
// *apigw.Client satisfaz esta interface.
type APIGatewayAPI interface {
	CreateApiKey(ctx context.Context, params *apigw.CreateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateApiKeyOutput, error)
	GetApiKey(ctx context.Context, params *apigw.GetApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeyOutput, error)
	GetApiKeys(ctx context.Context, params *apigw.GetApiKeysInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeysOutput, error)
	UpdateApiKey(ctx context.Context, params *apigw.UpdateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.UpdateApiKeyOutput, error)
	DeleteApiKey(ctx context.Context, params *apigw.DeleteApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteApiKeyOutput, error)
	ImportApiKeys(ctx context.Context, params *apigw.ImportApiKeysInput, optFns ...func(*apigw.Options)) (*apigw.ImportApiKeysOutput, error)

	CreateUsagePlan(ctx context.Context, params *apigw.CreateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanOutput, error)
	GetUsagePlan(ctx context.Context, params *apigw.GetUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanOutput, error)
	GetUsagePlans(ctx context.Context, params *apigw.GetUsagePlansInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlansOutput, error)
	UpdateUsagePlan(ctx context.Context, params *apigw.UpdateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.UpdateUsagePlanOutput, error)
	DeleteUsagePlan(ctx context.Context, params *apigw.DeleteUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.DeleteUsagePlanOutput, error)
	CreateUsagePlanKey(ctx context.Context, params *apigw.CreateUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanKeyOutput, error)
	GetUsagePlanKeys(ctx context.Context, params *apigw.GetUsagePlanKeysInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanKeysOutput, error)
	DeleteUsagePlanKey(ctx context.Context, params *apigw.DeleteUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteUsagePlanKeyOutput, error)
	GetUsage(ctx context.Context, params *apigw.GetUsageInput, optFns ...func(*apigw.Options)) (*apigw.GetUsageOutput, error)

	CreateRestApi(ctx context.Context, params *apigw.CreateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error)
	GetRestApi(ctx context.Context, params *apigw.GetRestApiInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error)
	DeleteRestApi(ctx context.Context, params *apigw.DeleteRestApiInput, optFns ...func(*apigw.Options)) (*apigw.DeleteRestApiOutput, error)
	PutRestApi(ctx context.Context, params *apigw.PutRestApiInput, optFns ...func(*apigw.Options)) (*apigw.PutRestApiOutput, error)
	ImportRestApi(ctx context.Context, params *apigw.ImportRestApiInput, optFns ...func(*apigw.Options)) (*apigw.ImportRestApiOutput, error)

	GetResources(ctx context.Context, params *apigw.GetResourcesInput, optFns ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error)
	CreateResource(ctx context.Context, params *apigw.CreateResourceInput, optFns ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error)
	DeleteResource(ctx context.Context, params *apigw.DeleteResourceInput, optFns ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error)
	PutMethod(ctx context.Context, params *apigw.PutMethodInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodOutput, error)
	DeleteMethod(ctx context.Context, params *apigw.DeleteMethodInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error)
	PutIntegration(ctx context.Context, params *apigw.PutIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error)
	PutMethodResponse(ctx context.Context, params *apigw.PutMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error)
	PutIntegrationResponse(ctx context.Context, params *apigw.PutIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error)

	CreateDeployment(ctx context.Context, params *apigw.CreateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error)
	GetDeployment(ctx context.Context, params *apigw.GetDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.GetDeploymentOutput, error)
	CreateStage(ctx context.Context, params *apigw.CreateStageInput, optFns ...func(*apigw.Options)) (*apigw.CreateStageOutput, error)
	GetStage(ctx context.Context, params *apigw.GetStageInput, optFns ...func(*apigw.Options)) (*apigw.GetStageOutput, error)
	FlushStageCache(ctx context.Context, params *apigw.FlushStageCacheInput, optFns ...func(*apigw.Options)) (*apigw.FlushStageCacheOutput, error)

	CreateDocumentationPart(ctx context.Context, params *apigw.CreateDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.CreateDocumentationPartOutput, error)
	TagResource(ctx context.Context, params *apigw.TagResourceInput, optFns ...func(*apigw.Options)) (*apigw.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *apigw.UntagResourceInput, optFns ...func(*apigw.Options)) (*apigw.UntagResourceOutput, error)
	GetTags(ctx context.Context, params *apigw.GetTagsInput, optFns ...func(*apigw.Options)) (*apigw.GetTagsOutput, error)
	GetAccount(ctx context.Context, params *apigw.GetAccountInput, optFns ...func(*apigw.Options)) (*apigw.GetAccountOutput, error)
	GetExport(ctx context.Context, params *apigw.GetExportInput, optFns ...func(*apigw.Options)) (*apigw.GetExportOutput, error)

	// Demais operações do modelo, expostas por Invoke.
	CreateAuthorizer(ctx context.Context, params *apigw.CreateAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.CreateAuthorizerOutput, error)
	CreateBasePathMapping(ctx context.Context, params *apigw.CreateBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.CreateBasePathMappingOutput, error)
	CreateDomainName(ctx context.Context, params *apigw.CreateDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.CreateDomainNameOutput, error)
	CreateModel(ctx context.Context, params *apigw.CreateModelInput, optFns ...func(*apigw.Options)) (*apigw.CreateModelOutput, error)
	CreateRequestValidator(ctx context.Context, params *apigw.CreateRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.CreateRequestValidatorOutput, error)
	CreateVpcLink(ctx context.Context, params *apigw.CreateVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.CreateVpcLinkOutput, error)
	DeleteAuthorizer(ctx context.Context, params *apigw.DeleteAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.DeleteAuthorizerOutput, error)
	DeleteBasePathMapping(ctx context.Context, params *apigw.DeleteBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.DeleteBasePathMappingOutput, error)
	DeleteClientCertificate(ctx context.Context, params *apigw.DeleteClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.DeleteClientCertificateOutput, error)
	DeleteDeployment(ctx context.Context, params *apigw.DeleteDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDeploymentOutput, error)
	DeleteDocumentationPart(ctx context.Context, params *apigw.DeleteDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDocumentationPartOutput, error)
	DeleteDomainName(ctx context.Context, params *apigw.DeleteDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDomainNameOutput, error)
	DeleteGatewayResponse(ctx context.Context, params *apigw.DeleteGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteGatewayResponseOutput, error)
	DeleteIntegration(ctx context.Context, params *apigw.DeleteIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.DeleteIntegrationOutput, error)
	DeleteIntegrationResponse(ctx context.Context, params *apigw.DeleteIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteIntegrationResponseOutput, error)
	DeleteMethodResponse(ctx context.Context, params *apigw.DeleteMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodResponseOutput, error)
	DeleteModel(ctx context.Context, params *apigw.DeleteModelInput, optFns ...func(*apigw.Options)) (*apigw.DeleteModelOutput, error)
	DeleteRequestValidator(ctx context.Context, params *apigw.DeleteRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.DeleteRequestValidatorOutput, error)
	DeleteStage(ctx context.Context, params *apigw.DeleteStageInput, optFns ...func(*apigw.Options)) (*apigw.DeleteStageOutput, error)
	DeleteVpcLink(ctx context.Context, params *apigw.DeleteVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.DeleteVpcLinkOutput, error)
	GenerateClientCertificate(ctx context.Context, params *apigw.GenerateClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.GenerateClientCertificateOutput, error)
	GetAuthorizer(ctx context.Context, params *apigw.GetAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.GetAuthorizerOutput, error)
	GetAuthorizers(ctx context.Context, params *apigw.GetAuthorizersInput, optFns ...func(*apigw.Options)) (*apigw.GetAuthorizersOutput, error)
	GetBasePathMapping(ctx context.Context, params *apigw.GetBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.GetBasePathMappingOutput, error)
	GetBasePathMappings(ctx context.Context, params *apigw.GetBasePathMappingsInput, optFns ...func(*apigw.Options)) (*apigw.GetBasePathMappingsOutput, error)
	GetClientCertificate(ctx context.Context, params *apigw.GetClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.GetClientCertificateOutput, error)
	GetClientCertificates(ctx context.Context, params *apigw.GetClientCertificatesInput, optFns ...func(*apigw.Options)) (*apigw.GetClientCertificatesOutput, error)
	GetDeployments(ctx context.Context, params *apigw.GetDeploymentsInput, optFns ...func(*apigw.Options)) (*apigw.GetDeploymentsOutput, error)
	GetDocumentationPart(ctx context.Context, params *apigw.GetDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.GetDocumentationPartOutput, error)
	GetDocumentationParts(ctx context.Context, params *apigw.GetDocumentationPartsInput, optFns ...func(*apigw.Options)) (*apigw.GetDocumentationPartsOutput, error)
	GetDomainName(ctx context.Context, params *apigw.GetDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.GetDomainNameOutput, error)
	GetDomainNames(ctx context.Context, params *apigw.GetDomainNamesInput, optFns ...func(*apigw.Options)) (*apigw.GetDomainNamesOutput, error)
	GetGatewayResponse(ctx context.Context, params *apigw.GetGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetGatewayResponseOutput, error)
	GetGatewayResponses(ctx context.Context, params *apigw.GetGatewayResponsesInput, optFns ...func(*apigw.Options)) (*apigw.GetGatewayResponsesOutput, error)
	GetIntegration(ctx context.Context, params *apigw.GetIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.GetIntegrationOutput, error)
	GetIntegrationResponse(ctx context.Context, params *apigw.GetIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetIntegrationResponseOutput, error)
	GetMethod(ctx context.Context, params *apigw.GetMethodInput, optFns ...func(*apigw.Options)) (*apigw.GetMethodOutput, error)
	GetMethodResponse(ctx context.Context, params *apigw.GetMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetMethodResponseOutput, error)
	GetModel(ctx context.Context, params *apigw.GetModelInput, optFns ...func(*apigw.Options)) (*apigw.GetModelOutput, error)
	GetModelTemplate(ctx context.Context, params *apigw.GetModelTemplateInput, optFns ...func(*apigw.Options)) (*apigw.GetModelTemplateOutput, error)
	GetModels(ctx context.Context, params *apigw.GetModelsInput, optFns ...func(*apigw.Options)) (*apigw.GetModelsOutput, error)
	GetRequestValidator(ctx context.Context, params *apigw.GetRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.GetRequestValidatorOutput, error)
	GetRequestValidators(ctx context.Context, params *apigw.GetRequestValidatorsInput, optFns ...func(*apigw.Options)) (*apigw.GetRequestValidatorsOutput, error)
	GetResource(ctx context.Context, params *apigw.GetResourceInput, optFns ...func(*apigw.Options)) (*apigw.GetResourceOutput, error)
	GetRestApis(ctx context.Context, params *apigw.GetRestApisInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApisOutput, error)
	GetSdk(ctx context.Context, params *apigw.GetSdkInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkOutput, error)
	GetSdkType(ctx context.Context, params *apigw.GetSdkTypeInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkTypeOutput, error)
	GetSdkTypes(ctx context.Context, params *apigw.GetSdkTypesInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkTypesOutput, error)
	GetStages(ctx context.Context, params *apigw.GetStagesInput, optFns ...func(*apigw.Options)) (*apigw.GetStagesOutput, error)
	GetUsagePlanKey(ctx context.Context, params *apigw.GetUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanKeyOutput, error)
	GetVpcLink(ctx context.Context, params *apigw.GetVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.GetVpcLinkOutput, error)
	GetVpcLinks(ctx context.Context, params *apigw.GetVpcLinksInput, optFns ...func(*apigw.Options)) (*apigw.GetVpcLinksOutput, error)
	ImportDocumentationParts(ctx context.Context, params *apigw.ImportDocumentationPartsInput, optFns ...func(*apigw.Options)) (*apigw.ImportDocumentationPartsOutput, error)
	PutGatewayResponse(ctx context.Context, params *apigw.PutGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutGatewayResponseOutput, error)
	TestInvokeMethod(ctx context.Context, params *apigw.TestInvokeMethodInput, optFns ...func(*apigw.Options)) (*apigw.TestInvokeMethodOutput, error)
	UpdateAccount(ctx context.Context, params *apigw.UpdateAccountInput, optFns ...func(*apigw.Options)) (*apigw.UpdateAccountOutput, error)
	UpdateAuthorizer(ctx context.Context, params *apigw.UpdateAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.UpdateAuthorizerOutput, error)
	UpdateBasePathMapping(ctx context.Context, params *apigw.UpdateBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.UpdateBasePathMappingOutput, error)
	UpdateClientCertificate(ctx context.Context, params *apigw.UpdateClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.UpdateClientCertificateOutput, error)
	UpdateDeployment(ctx context.Context, params *apigw.UpdateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDeploymentOutput, error)
	UpdateDocumentationPart(ctx context.Context, params *apigw.UpdateDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDocumentationPartOutput, error)
	UpdateDomainName(ctx context.Context, params *apigw.UpdateDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDomainNameOutput, error)
	UpdateGatewayResponse(ctx context.Context, params *apigw.UpdateGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateGatewayResponseOutput, error)
	UpdateIntegration(ctx context.Context, params *apigw.UpdateIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.UpdateIntegrationOutput, error)
	UpdateIntegrationResponse(ctx context.Context, params *apigw.UpdateIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateIntegrationResponseOutput, error)
	UpdateMethod(ctx context.Context, params *apigw.UpdateMethodInput, optFns ...func(*apigw.Options)) (*apigw.UpdateMethodOutput, error)
	UpdateMethodResponse(ctx context.Context, params *apigw.UpdateMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateMethodResponseOutput, error)
	UpdateModel(ctx context.Context, params *apigw.UpdateModelInput, optFns ...func(*apigw.Options)) (*apigw.UpdateModelOutput, error)
	UpdateRequestValidator(ctx context.Context, params *apigw.UpdateRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.UpdateRequestValidatorOutput, error)
	UpdateResource(ctx context.Context, params *apigw.UpdateResourceInput, optFns ...func(*apigw.Options)) (*apigw.UpdateResourceOutput, error)
	UpdateRestApi(ctx context.Context, params *apigw.UpdateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.UpdateRestApiOutput, error)
	UpdateStage(ctx context.Context, params *apigw.UpdateStageInput, optFns ...func(*apigw.Options)) (*apigw.UpdateStageOutput, error)
	UpdateUsage(ctx context.Context, params *apigw.UpdateUsageInput, optFns ...func(*apigw.Options)) (*apigw.UpdateUsageOutput, error)
	UpdateVpcLink(ctx context.Context, params *apigw.UpdateVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.UpdateVpcLinkOutput, error)
}

var _ APIGatewayAPI = (*apigw.Client)(nil)
