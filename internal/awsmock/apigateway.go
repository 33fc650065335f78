package awsmock

import (
	"context"

	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
)

// MockAPIGateway implementa repository.APIGatewayAPI.
// Métodos sem função configurada retornam ErrNotStubbed.
type MockAPIGateway struct {
	CreateApiKeyFunc              func(ctx context.Context, params *apigw.CreateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateApiKeyOutput, error)
	GetApiKeyFunc                 func(ctx context.Context, params *apigw.GetApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeyOutput, error)
	GetApiKeysFunc                func(ctx context.Context, params *apigw.GetApiKeysInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeysOutput, error)
	UpdateApiKeyFunc              func(ctx context.Context, params *apigw.UpdateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.UpdateApiKeyOutput, error)
	DeleteApiKeyFunc              func(ctx context.Context, params *apigw.DeleteApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteApiKeyOutput, error)
	ImportApiKeysFunc             func(ctx context.Context, params *apigw.ImportApiKeysInput, optFns ...func(*apigw.Options)) (*apigw.ImportApiKeysOutput, error)
	CreateUsagePlanFunc           func(ctx context.Context, params *apigw.CreateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanOutput, error)
	GetUsagePlanFunc              func(ctx context.Context, params *apigw.GetUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanOutput, error)
	GetUsagePlansFunc             func(ctx context.Context, params *apigw.GetUsagePlansInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlansOutput, error)
	UpdateUsagePlanFunc           func(ctx context.Context, params *apigw.UpdateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.UpdateUsagePlanOutput, error)
	DeleteUsagePlanFunc           func(ctx context.Context, params *apigw.DeleteUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.DeleteUsagePlanOutput, error)
	CreateUsagePlanKeyFunc        func(ctx context.Context, params *apigw.CreateUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanKeyOutput, error)
	GetUsagePlanKeysFunc          func(ctx context.Context, params *apigw.GetUsagePlanKeysInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanKeysOutput, error)
	DeleteUsagePlanKeyFunc        func(ctx context.Context, params *apigw.DeleteUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteUsagePlanKeyOutput, error)
	GetUsageFunc                  func(ctx context.Context, params *apigw.GetUsageInput, optFns ...func(*apigw.Options)) (*apigw.GetUsageOutput, error)
	CreateRestApiFunc             func(ctx context.Context, params *apigw.CreateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error)
	GetRestApiFunc                func(ctx context.Context, params *apigw.GetRestApiInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error)
	DeleteRestApiFunc             func(ctx context.Context, params *apigw.DeleteRestApiInput, optFns ...func(*apigw.Options)) (*apigw.DeleteRestApiOutput, error)
	PutRestApiFunc                func(ctx context.Context, params *apigw.PutRestApiInput, optFns ...func(*apigw.Options)) (*apigw.PutRestApiOutput, error)
	ImportRestApiFunc             func(ctx context.Context, params *apigw.ImportRestApiInput, optFns ...func(*apigw.Options)) (*apigw.ImportRestApiOutput, error)
	GetResourcesFunc              func(ctx context.Context, params *apigw.GetResourcesInput, optFns ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error)
	CreateResourceFunc            func(ctx context.Context, params *apigw.CreateResourceInput, optFns ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error)
	DeleteResourceFunc            func(ctx context.Context, params *apigw.DeleteResourceInput, optFns ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error)
	PutMethodFunc                 func(ctx context.Context, params *apigw.PutMethodInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodOutput, error)
	DeleteMethodFunc              func(ctx context.Context, params *apigw.DeleteMethodInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error)
	PutIntegrationFunc            func(ctx context.Context, params *apigw.PutIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error)
	PutMethodResponseFunc         func(ctx context.Context, params *apigw.PutMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error)
	PutIntegrationResponseFunc    func(ctx context.Context, params *apigw.PutIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error)
	CreateDeploymentFunc          func(ctx context.Context, params *apigw.CreateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error)
	GetDeploymentFunc             func(ctx context.Context, params *apigw.GetDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.GetDeploymentOutput, error)
	CreateStageFunc               func(ctx context.Context, params *apigw.CreateStageInput, optFns ...func(*apigw.Options)) (*apigw.CreateStageOutput, error)
	GetStageFunc                  func(ctx context.Context, params *apigw.GetStageInput, optFns ...func(*apigw.Options)) (*apigw.GetStageOutput, error)
	FlushStageCacheFunc           func(ctx context.Context, params *apigw.FlushStageCacheInput, optFns ...func(*apigw.Options)) (*apigw.FlushStageCacheOutput, error)
	CreateDocumentationPartFunc   func(ctx context.Context, params *apigw.CreateDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.CreateDocumentationPartOutput, error)
	TagResourceFunc               func(ctx context.Context, params *apigw.TagResourceInput, optFns ...func(*apigw.Options)) (*apigw.TagResourceOutput, error)
	UntagResourceFunc             func(ctx context.Context, params *apigw.UntagResourceInput, optFns ...func(*apigw.Options)) (*apigw.UntagResourceOutput, error)
	GetTagsFunc                   func(ctx context.Context, params *apigw.GetTagsInput, optFns ...func(*apigw.Options)) (*apigw.GetTagsOutput, error)
	GetAccountFunc                func(ctx context.Context, params *apigw.GetAccountInput, optFns ...func(*apigw.Options)) (*apigw.GetAccountOutput, error)
	GetExportFunc                 func(ctx context.Context, params *apigw.GetExportInput, optFns ...func(*apigw.Options)) (*apigw.GetExportOutput, error)
	CreateAuthorizerFunc          func(ctx context.Context, params *apigw.CreateAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.CreateAuthorizerOutput, error)
	CreateBasePathMappingFunc     func(ctx context.Context, params *apigw.CreateBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.CreateBasePathMappingOutput, error)
	CreateDomainNameFunc          func(ctx context.Context, params *apigw.CreateDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.CreateDomainNameOutput, error)
	CreateModelFunc               func(ctx context.Context, params *apigw.CreateModelInput, optFns ...func(*apigw.Options)) (*apigw.CreateModelOutput, error)
	CreateRequestValidatorFunc    func(ctx context.Context, params *apigw.CreateRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.CreateRequestValidatorOutput, error)
	CreateVpcLinkFunc             func(ctx context.Context, params *apigw.CreateVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.CreateVpcLinkOutput, error)
	DeleteAuthorizerFunc          func(ctx context.Context, params *apigw.DeleteAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.DeleteAuthorizerOutput, error)
	DeleteBasePathMappingFunc     func(ctx context.Context, params *apigw.DeleteBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.DeleteBasePathMappingOutput, error)
	DeleteClientCertificateFunc   func(ctx context.Context, params *apigw.DeleteClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.DeleteClientCertificateOutput, error)
	DeleteDeploymentFunc          func(ctx context.Context, params *apigw.DeleteDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDeploymentOutput, error)
	DeleteDocumentationPartFunc   func(ctx context.Context, params *apigw.DeleteDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDocumentationPartOutput, error)
	DeleteDomainNameFunc          func(ctx context.Context, params *apigw.DeleteDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDomainNameOutput, error)
	DeleteGatewayResponseFunc     func(ctx context.Context, params *apigw.DeleteGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteGatewayResponseOutput, error)
	DeleteIntegrationFunc         func(ctx context.Context, params *apigw.DeleteIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.DeleteIntegrationOutput, error)
	DeleteIntegrationResponseFunc func(ctx context.Context, params *apigw.DeleteIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteIntegrationResponseOutput, error)
	DeleteMethodResponseFunc      func(ctx context.Context, params *apigw.DeleteMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodResponseOutput, error)
	DeleteModelFunc               func(ctx context.Context, params *apigw.DeleteModelInput, optFns ...func(*apigw.Options)) (*apigw.DeleteModelOutput, error)
	DeleteRequestValidatorFunc    func(ctx context.Context, params *apigw.DeleteRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.DeleteRequestValidatorOutput, error)
	DeleteStageFunc               func(ctx context.Context, params *apigw.DeleteStageInput, optFns ...func(*apigw.Options)) (*apigw.DeleteStageOutput, error)
	DeleteVpcLinkFunc             func(ctx context.Context, params *apigw.DeleteVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.DeleteVpcLinkOutput, error)
	GenerateClientCertificateFunc func(ctx context.Context, params *apigw.GenerateClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.GenerateClientCertificateOutput, error)
	GetAuthorizerFunc             func(ctx context.Context, params *apigw.GetAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.GetAuthorizerOutput, error)
	GetAuthorizersFunc            func(ctx context.Context, params *apigw.GetAuthorizersInput, optFns ...func(*apigw.Options)) (*apigw.GetAuthorizersOutput, error)
	GetBasePathMappingFunc        func(ctx context.Context, params *apigw.GetBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.GetBasePathMappingOutput, error)
	GetBasePathMappingsFunc       func(ctx context.Context, params *apigw.GetBasePathMappingsInput, optFns ...func(*apigw.Options)) (*apigw.GetBasePathMappingsOutput, error)
	GetClientCertificateFunc      func(ctx context.Context, params *apigw.GetClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.GetClientCertificateOutput, error)
	GetClientCertificatesFunc     func(ctx context.Context, params *apigw.GetClientCertificatesInput, optFns ...func(*apigw.Options)) (*apigw.GetClientCertificatesOutput, error)
	GetDeploymentsFunc            func(ctx context.Context, params *apigw.GetDeploymentsInput, optFns ...func(*apigw.Options)) (*apigw.GetDeploymentsOutput, error)
	GetDocumentationPartFunc      func(ctx context.Context, params *apigw.GetDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.GetDocumentationPartOutput, error)
	GetDocumentationPartsFunc     func(ctx context.Context, params *apigw.GetDocumentationPartsInput, optFns ...func(*apigw.Options)) (*apigw.GetDocumentationPartsOutput, error)
	GetDomainNameFunc             func(ctx context.Context, params *apigw.GetDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.GetDomainNameOutput, error)
	GetDomainNamesFunc            func(ctx context.Context, params *apigw.GetDomainNamesInput, optFns ...func(*apigw.Options)) (*apigw.GetDomainNamesOutput, error)
	GetGatewayResponseFunc        func(ctx context.Context, params *apigw.GetGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetGatewayResponseOutput, error)
	GetGatewayResponsesFunc       func(ctx context.Context, params *apigw.GetGatewayResponsesInput, optFns ...func(*apigw.Options)) (*apigw.GetGatewayResponsesOutput, error)
	GetIntegrationFunc            func(ctx context.Context, params *apigw.GetIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.GetIntegrationOutput, error)
	GetIntegrationResponseFunc    func(ctx context.Context, params *apigw.GetIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetIntegrationResponseOutput, error)
	GetMethodFunc                 func(ctx context.Context, params *apigw.GetMethodInput, optFns ...func(*apigw.Options)) (*apigw.GetMethodOutput, error)
	GetMethodResponseFunc         func(ctx context.Context, params *apigw.GetMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetMethodResponseOutput, error)
	GetModelFunc                  func(ctx context.Context, params *apigw.GetModelInput, optFns ...func(*apigw.Options)) (*apigw.GetModelOutput, error)
	GetModelTemplateFunc          func(ctx context.Context, params *apigw.GetModelTemplateInput, optFns ...func(*apigw.Options)) (*apigw.GetModelTemplateOutput, error)
	GetModelsFunc                 func(ctx context.Context, params *apigw.GetModelsInput, optFns ...func(*apigw.Options)) (*apigw.GetModelsOutput, error)
	GetRequestValidatorFunc       func(ctx context.Context, params *apigw.GetRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.GetRequestValidatorOutput, error)
	GetRequestValidatorsFunc      func(ctx context.Context, params *apigw.GetRequestValidatorsInput, optFns ...func(*apigw.Options)) (*apigw.GetRequestValidatorsOutput, error)
	GetResourceFunc               func(ctx context.Context, params *apigw.GetResourceInput, optFns ...func(*apigw.Options)) (*apigw.GetResourceOutput, error)
	GetRestApisFunc               func(ctx context.Context, params *apigw.GetRestApisInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApisOutput, error)
	GetSdkFunc                    func(ctx context.Context, params *apigw.GetSdkInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkOutput, error)
	GetSdkTypeFunc                func(ctx context.Context, params *apigw.GetSdkTypeInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkTypeOutput, error)
	GetSdkTypesFunc               func(ctx context.Context, params *apigw.GetSdkTypesInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkTypesOutput, error)
	GetStagesFunc                 func(ctx context.Context, params *apigw.GetStagesInput, optFns ...func(*apigw.Options)) (*apigw.GetStagesOutput, error)
	GetUsagePlanKeyFunc           func(ctx context.Context, params *apigw.GetUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanKeyOutput, error)
	GetVpcLinkFunc                func(ctx context.Context, params *apigw.GetVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.GetVpcLinkOutput, error)
	GetVpcLinksFunc               func(ctx context.Context, params *apigw.GetVpcLinksInput, optFns ...func(*apigw.Options)) (*apigw.GetVpcLinksOutput, error)
	ImportDocumentationPartsFunc  func(ctx context.Context, params *apigw.ImportDocumentationPartsInput, optFns ...func(*apigw.Options)) (*apigw.ImportDocumentationPartsOutput, error)
	PutGatewayResponseFunc        func(ctx context.Context, params *apigw.PutGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutGatewayResponseOutput, error)
	TestInvokeMethodFunc          func(ctx context.Context, params *apigw.TestInvokeMethodInput, optFns ...func(*apigw.Options)) (*apigw.TestInvokeMethodOutput, error)
	UpdateAccountFunc             func(ctx context.Context, params *apigw.UpdateAccountInput, optFns ...func(*apigw.Options)) (*apigw.UpdateAccountOutput, error)
	UpdateAuthorizerFunc          func(ctx context.Context, params *apigw.UpdateAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.UpdateAuthorizerOutput, error)
	UpdateBasePathMappingFunc     func(ctx context.Context, params *apigw.UpdateBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.UpdateBasePathMappingOutput, error)
	UpdateClientCertificateFunc   func(ctx context.Context, params *apigw.UpdateClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.UpdateClientCertificateOutput, error)
	UpdateDeploymentFunc          func(ctx context.Context, params *apigw.UpdateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDeploymentOutput, error)
	UpdateDocumentationPartFunc   func(ctx context.Context, params *apigw.UpdateDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDocumentationPartOutput, error)
	UpdateDomainNameFunc          func(ctx context.Context, params *apigw.UpdateDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDomainNameOutput, error)
	UpdateGatewayResponseFunc     func(ctx context.Context, params *apigw.UpdateGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateGatewayResponseOutput, error)
	UpdateIntegrationFunc         func(ctx context.Context, params *apigw.UpdateIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.UpdateIntegrationOutput, error)
	UpdateIntegrationResponseFunc func(ctx context.Context, params *apigw.UpdateIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateIntegrationResponseOutput, error)
	UpdateMethodFunc              func(ctx context.Context, params *apigw.UpdateMethodInput, optFns ...func(*apigw.Options)) (*apigw.UpdateMethodOutput, error)
	UpdateMethodResponseFunc      func(ctx context.Context, params *apigw.UpdateMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateMethodResponseOutput, error)
	UpdateModelFunc               func(ctx context.Context, params *apigw.UpdateModelInput, optFns ...func(*apigw.Options)) (*apigw.UpdateModelOutput, error)
	UpdateRequestValidatorFunc    func(ctx context.Context, params *apigw.UpdateRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.UpdateRequestValidatorOutput, error)
	UpdateResourceFunc            func(ctx context.Context, params *apigw.UpdateResourceInput, optFns ...func(*apigw.Options)) (*apigw.UpdateResourceOutput, error)
	UpdateRestApiFunc             func(ctx context.Context, params *apigw.UpdateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.UpdateRestApiOutput, error)
	UpdateStageFunc               func(ctx context.Context, params *apigw.UpdateStageInput, optFns ...func(*apigw.Options)) (*apigw.UpdateStageOutput, error)
	UpdateUsageFunc               func(ctx context.Context, params *apigw.UpdateUsageInput, optFns ...func(*apigw.Options)) (*apigw.UpdateUsageOutput, error)
	UpdateVpcLinkFunc             func(ctx context.Context, params *apigw.UpdateVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.UpdateVpcLinkOutput, error)
}

func (m *MockAPIGateway) CreateApiKey(ctx context.Context, params *apigw.CreateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateApiKeyOutput, error) {
	if m.CreateApiKeyFunc == nil {
		return nil, notStubbed("CreateApiKey")
	}
	return m.CreateApiKeyFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetApiKey(ctx context.Context, params *apigw.GetApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeyOutput, error) {
	if m.GetApiKeyFunc == nil {
		return nil, notStubbed("GetApiKey")
	}
	return m.GetApiKeyFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetApiKeys(ctx context.Context, params *apigw.GetApiKeysInput, optFns ...func(*apigw.Options)) (*apigw.GetApiKeysOutput, error) {
	if m.GetApiKeysFunc == nil {
		return nil, notStubbed("GetApiKeys")
	}
	return m.GetApiKeysFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateApiKey(ctx context.Context, params *apigw.UpdateApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.UpdateApiKeyOutput, error) {
	if m.UpdateApiKeyFunc == nil {
		return nil, notStubbed("UpdateApiKey")
	}
	return m.UpdateApiKeyFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteApiKey(ctx context.Context, params *apigw.DeleteApiKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteApiKeyOutput, error) {
	if m.DeleteApiKeyFunc == nil {
		return nil, notStubbed("DeleteApiKey")
	}
	return m.DeleteApiKeyFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) ImportApiKeys(ctx context.Context, params *apigw.ImportApiKeysInput, optFns ...func(*apigw.Options)) (*apigw.ImportApiKeysOutput, error) {
	if m.ImportApiKeysFunc == nil {
		return nil, notStubbed("ImportApiKeys")
	}
	return m.ImportApiKeysFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateUsagePlan(ctx context.Context, params *apigw.CreateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanOutput, error) {
	if m.CreateUsagePlanFunc == nil {
		return nil, notStubbed("CreateUsagePlan")
	}
	return m.CreateUsagePlanFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetUsagePlan(ctx context.Context, params *apigw.GetUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanOutput, error) {
	if m.GetUsagePlanFunc == nil {
		return nil, notStubbed("GetUsagePlan")
	}
	return m.GetUsagePlanFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetUsagePlans(ctx context.Context, params *apigw.GetUsagePlansInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlansOutput, error) {
	if m.GetUsagePlansFunc == nil {
		return nil, notStubbed("GetUsagePlans")
	}
	return m.GetUsagePlansFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateUsagePlan(ctx context.Context, params *apigw.UpdateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.UpdateUsagePlanOutput, error) {
	if m.UpdateUsagePlanFunc == nil {
		return nil, notStubbed("UpdateUsagePlan")
	}
	return m.UpdateUsagePlanFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteUsagePlan(ctx context.Context, params *apigw.DeleteUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.DeleteUsagePlanOutput, error) {
	if m.DeleteUsagePlanFunc == nil {
		return nil, notStubbed("DeleteUsagePlan")
	}
	return m.DeleteUsagePlanFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateUsagePlanKey(ctx context.Context, params *apigw.CreateUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanKeyOutput, error) {
	if m.CreateUsagePlanKeyFunc == nil {
		return nil, notStubbed("CreateUsagePlanKey")
	}
	return m.CreateUsagePlanKeyFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetUsagePlanKeys(ctx context.Context, params *apigw.GetUsagePlanKeysInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanKeysOutput, error) {
	if m.GetUsagePlanKeysFunc == nil {
		return nil, notStubbed("GetUsagePlanKeys")
	}
	return m.GetUsagePlanKeysFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteUsagePlanKey(ctx context.Context, params *apigw.DeleteUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteUsagePlanKeyOutput, error) {
	if m.DeleteUsagePlanKeyFunc == nil {
		return nil, notStubbed("DeleteUsagePlanKey")
	}
	return m.DeleteUsagePlanKeyFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetUsage(ctx context.Context, params *apigw.GetUsageInput, optFns ...func(*apigw.Options)) (*apigw.GetUsageOutput, error) {
	if m.GetUsageFunc == nil {
		return nil, notStubbed("GetUsage")
	}
	return m.GetUsageFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateRestApi(ctx context.Context, params *apigw.CreateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error) {
	if m.CreateRestApiFunc == nil {
		return nil, notStubbed("CreateRestApi")
	}
	return m.CreateRestApiFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetRestApi(ctx context.Context, params *apigw.GetRestApiInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error) {
	if m.GetRestApiFunc == nil {
		return nil, notStubbed("GetRestApi")
	}
	return m.GetRestApiFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteRestApi(ctx context.Context, params *apigw.DeleteRestApiInput, optFns ...func(*apigw.Options)) (*apigw.DeleteRestApiOutput, error) {
	if m.DeleteRestApiFunc == nil {
		return nil, notStubbed("DeleteRestApi")
	}
	return m.DeleteRestApiFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) PutRestApi(ctx context.Context, params *apigw.PutRestApiInput, optFns ...func(*apigw.Options)) (*apigw.PutRestApiOutput, error) {
	if m.PutRestApiFunc == nil {
		return nil, notStubbed("PutRestApi")
	}
	return m.PutRestApiFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) ImportRestApi(ctx context.Context, params *apigw.ImportRestApiInput, optFns ...func(*apigw.Options)) (*apigw.ImportRestApiOutput, error) {
	if m.ImportRestApiFunc == nil {
		return nil, notStubbed("ImportRestApi")
	}
	return m.ImportRestApiFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetResources(ctx context.Context, params *apigw.GetResourcesInput, optFns ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error) {
	if m.GetResourcesFunc == nil {
		return nil, notStubbed("GetResources")
	}
	return m.GetResourcesFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateResource(ctx context.Context, params *apigw.CreateResourceInput, optFns ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error) {
	if m.CreateResourceFunc == nil {
		return nil, notStubbed("CreateResource")
	}
	return m.CreateResourceFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteResource(ctx context.Context, params *apigw.DeleteResourceInput, optFns ...func(*apigw.Options)) (*apigw.DeleteResourceOutput, error) {
	if m.DeleteResourceFunc == nil {
		return nil, notStubbed("DeleteResource")
	}
	return m.DeleteResourceFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) PutMethod(ctx context.Context, params *apigw.PutMethodInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodOutput, error) {
	if m.PutMethodFunc == nil {
		return nil, notStubbed("PutMethod")
	}
	return m.PutMethodFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteMethod(ctx context.Context, params *apigw.DeleteMethodInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodOutput, error) {
	if m.DeleteMethodFunc == nil {
		return nil, notStubbed("DeleteMethod")
	}
	return m.DeleteMethodFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) PutIntegration(ctx context.Context, params *apigw.PutIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error) {
	if m.PutIntegrationFunc == nil {
		return nil, notStubbed("PutIntegration")
	}
	return m.PutIntegrationFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) PutMethodResponse(ctx context.Context, params *apigw.PutMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error) {
	if m.PutMethodResponseFunc == nil {
		return nil, notStubbed("PutMethodResponse")
	}
	return m.PutMethodResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) PutIntegrationResponse(ctx context.Context, params *apigw.PutIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error) {
	if m.PutIntegrationResponseFunc == nil {
		return nil, notStubbed("PutIntegrationResponse")
	}
	return m.PutIntegrationResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateDeployment(ctx context.Context, params *apigw.CreateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error) {
	if m.CreateDeploymentFunc == nil {
		return nil, notStubbed("CreateDeployment")
	}
	return m.CreateDeploymentFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetDeployment(ctx context.Context, params *apigw.GetDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.GetDeploymentOutput, error) {
	if m.GetDeploymentFunc == nil {
		return nil, notStubbed("GetDeployment")
	}
	return m.GetDeploymentFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateStage(ctx context.Context, params *apigw.CreateStageInput, optFns ...func(*apigw.Options)) (*apigw.CreateStageOutput, error) {
	if m.CreateStageFunc == nil {
		return nil, notStubbed("CreateStage")
	}
	return m.CreateStageFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetStage(ctx context.Context, params *apigw.GetStageInput, optFns ...func(*apigw.Options)) (*apigw.GetStageOutput, error) {
	if m.GetStageFunc == nil {
		return nil, notStubbed("GetStage")
	}
	return m.GetStageFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) FlushStageCache(ctx context.Context, params *apigw.FlushStageCacheInput, optFns ...func(*apigw.Options)) (*apigw.FlushStageCacheOutput, error) {
	if m.FlushStageCacheFunc == nil {
		return nil, notStubbed("FlushStageCache")
	}
	return m.FlushStageCacheFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateDocumentationPart(ctx context.Context, params *apigw.CreateDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.CreateDocumentationPartOutput, error) {
	if m.CreateDocumentationPartFunc == nil {
		return nil, notStubbed("CreateDocumentationPart")
	}
	return m.CreateDocumentationPartFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) TagResource(ctx context.Context, params *apigw.TagResourceInput, optFns ...func(*apigw.Options)) (*apigw.TagResourceOutput, error) {
	if m.TagResourceFunc == nil {
		return nil, notStubbed("TagResource")
	}
	return m.TagResourceFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UntagResource(ctx context.Context, params *apigw.UntagResourceInput, optFns ...func(*apigw.Options)) (*apigw.UntagResourceOutput, error) {
	if m.UntagResourceFunc == nil {
		return nil, notStubbed("UntagResource")
	}
	return m.UntagResourceFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetTags(ctx context.Context, params *apigw.GetTagsInput, optFns ...func(*apigw.Options)) (*apigw.GetTagsOutput, error) {
	if m.GetTagsFunc == nil {
		return nil, notStubbed("GetTags")
	}
	return m.GetTagsFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetAccount(ctx context.Context, params *apigw.GetAccountInput, optFns ...func(*apigw.Options)) (*apigw.GetAccountOutput, error) {
	if m.GetAccountFunc == nil {
		return nil, notStubbed("GetAccount")
	}
	return m.GetAccountFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetExport(ctx context.Context, params *apigw.GetExportInput, optFns ...func(*apigw.Options)) (*apigw.GetExportOutput, error) {
	if m.GetExportFunc == nil {
		return nil, notStubbed("GetExport")
	}
	return m.GetExportFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateAuthorizer(ctx context.Context, params *apigw.CreateAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.CreateAuthorizerOutput, error) {
	if m.CreateAuthorizerFunc == nil {
		return nil, notStubbed("CreateAuthorizer")
	}
	return m.CreateAuthorizerFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateBasePathMapping(ctx context.Context, params *apigw.CreateBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.CreateBasePathMappingOutput, error) {
	if m.CreateBasePathMappingFunc == nil {
		return nil, notStubbed("CreateBasePathMapping")
	}
	return m.CreateBasePathMappingFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateDomainName(ctx context.Context, params *apigw.CreateDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.CreateDomainNameOutput, error) {
	if m.CreateDomainNameFunc == nil {
		return nil, notStubbed("CreateDomainName")
	}
	return m.CreateDomainNameFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateModel(ctx context.Context, params *apigw.CreateModelInput, optFns ...func(*apigw.Options)) (*apigw.CreateModelOutput, error) {
	if m.CreateModelFunc == nil {
		return nil, notStubbed("CreateModel")
	}
	return m.CreateModelFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateRequestValidator(ctx context.Context, params *apigw.CreateRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.CreateRequestValidatorOutput, error) {
	if m.CreateRequestValidatorFunc == nil {
		return nil, notStubbed("CreateRequestValidator")
	}
	return m.CreateRequestValidatorFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) CreateVpcLink(ctx context.Context, params *apigw.CreateVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.CreateVpcLinkOutput, error) {
	if m.CreateVpcLinkFunc == nil {
		return nil, notStubbed("CreateVpcLink")
	}
	return m.CreateVpcLinkFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteAuthorizer(ctx context.Context, params *apigw.DeleteAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.DeleteAuthorizerOutput, error) {
	if m.DeleteAuthorizerFunc == nil {
		return nil, notStubbed("DeleteAuthorizer")
	}
	return m.DeleteAuthorizerFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteBasePathMapping(ctx context.Context, params *apigw.DeleteBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.DeleteBasePathMappingOutput, error) {
	if m.DeleteBasePathMappingFunc == nil {
		return nil, notStubbed("DeleteBasePathMapping")
	}
	return m.DeleteBasePathMappingFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteClientCertificate(ctx context.Context, params *apigw.DeleteClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.DeleteClientCertificateOutput, error) {
	if m.DeleteClientCertificateFunc == nil {
		return nil, notStubbed("DeleteClientCertificate")
	}
	return m.DeleteClientCertificateFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteDeployment(ctx context.Context, params *apigw.DeleteDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDeploymentOutput, error) {
	if m.DeleteDeploymentFunc == nil {
		return nil, notStubbed("DeleteDeployment")
	}
	return m.DeleteDeploymentFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteDocumentationPart(ctx context.Context, params *apigw.DeleteDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDocumentationPartOutput, error) {
	if m.DeleteDocumentationPartFunc == nil {
		return nil, notStubbed("DeleteDocumentationPart")
	}
	return m.DeleteDocumentationPartFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteDomainName(ctx context.Context, params *apigw.DeleteDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.DeleteDomainNameOutput, error) {
	if m.DeleteDomainNameFunc == nil {
		return nil, notStubbed("DeleteDomainName")
	}
	return m.DeleteDomainNameFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteGatewayResponse(ctx context.Context, params *apigw.DeleteGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteGatewayResponseOutput, error) {
	if m.DeleteGatewayResponseFunc == nil {
		return nil, notStubbed("DeleteGatewayResponse")
	}
	return m.DeleteGatewayResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteIntegration(ctx context.Context, params *apigw.DeleteIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.DeleteIntegrationOutput, error) {
	if m.DeleteIntegrationFunc == nil {
		return nil, notStubbed("DeleteIntegration")
	}
	return m.DeleteIntegrationFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteIntegrationResponse(ctx context.Context, params *apigw.DeleteIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteIntegrationResponseOutput, error) {
	if m.DeleteIntegrationResponseFunc == nil {
		return nil, notStubbed("DeleteIntegrationResponse")
	}
	return m.DeleteIntegrationResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteMethodResponse(ctx context.Context, params *apigw.DeleteMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.DeleteMethodResponseOutput, error) {
	if m.DeleteMethodResponseFunc == nil {
		return nil, notStubbed("DeleteMethodResponse")
	}
	return m.DeleteMethodResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteModel(ctx context.Context, params *apigw.DeleteModelInput, optFns ...func(*apigw.Options)) (*apigw.DeleteModelOutput, error) {
	if m.DeleteModelFunc == nil {
		return nil, notStubbed("DeleteModel")
	}
	return m.DeleteModelFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteRequestValidator(ctx context.Context, params *apigw.DeleteRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.DeleteRequestValidatorOutput, error) {
	if m.DeleteRequestValidatorFunc == nil {
		return nil, notStubbed("DeleteRequestValidator")
	}
	return m.DeleteRequestValidatorFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteStage(ctx context.Context, params *apigw.DeleteStageInput, optFns ...func(*apigw.Options)) (*apigw.DeleteStageOutput, error) {
	if m.DeleteStageFunc == nil {
		return nil, notStubbed("DeleteStage")
	}
	return m.DeleteStageFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) DeleteVpcLink(ctx context.Context, params *apigw.DeleteVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.DeleteVpcLinkOutput, error) {
	if m.DeleteVpcLinkFunc == nil {
		return nil, notStubbed("DeleteVpcLink")
	}
	return m.DeleteVpcLinkFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GenerateClientCertificate(ctx context.Context, params *apigw.GenerateClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.GenerateClientCertificateOutput, error) {
	if m.GenerateClientCertificateFunc == nil {
		return nil, notStubbed("GenerateClientCertificate")
	}
	return m.GenerateClientCertificateFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetAuthorizer(ctx context.Context, params *apigw.GetAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.GetAuthorizerOutput, error) {
	if m.GetAuthorizerFunc == nil {
		return nil, notStubbed("GetAuthorizer")
	}
	return m.GetAuthorizerFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetAuthorizers(ctx context.Context, params *apigw.GetAuthorizersInput, optFns ...func(*apigw.Options)) (*apigw.GetAuthorizersOutput, error) {
	if m.GetAuthorizersFunc == nil {
		return nil, notStubbed("GetAuthorizers")
	}
	return m.GetAuthorizersFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetBasePathMapping(ctx context.Context, params *apigw.GetBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.GetBasePathMappingOutput, error) {
	if m.GetBasePathMappingFunc == nil {
		return nil, notStubbed("GetBasePathMapping")
	}
	return m.GetBasePathMappingFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetBasePathMappings(ctx context.Context, params *apigw.GetBasePathMappingsInput, optFns ...func(*apigw.Options)) (*apigw.GetBasePathMappingsOutput, error) {
	if m.GetBasePathMappingsFunc == nil {
		return nil, notStubbed("GetBasePathMappings")
	}
	return m.GetBasePathMappingsFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetClientCertificate(ctx context.Context, params *apigw.GetClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.GetClientCertificateOutput, error) {
	if m.GetClientCertificateFunc == nil {
		return nil, notStubbed("GetClientCertificate")
	}
	return m.GetClientCertificateFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetClientCertificates(ctx context.Context, params *apigw.GetClientCertificatesInput, optFns ...func(*apigw.Options)) (*apigw.GetClientCertificatesOutput, error) {
	if m.GetClientCertificatesFunc == nil {
		return nil, notStubbed("GetClientCertificates")
	}
	return m.GetClientCertificatesFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetDeployments(ctx context.Context, params *apigw.GetDeploymentsInput, optFns ...func(*apigw.Options)) (*apigw.GetDeploymentsOutput, error) {
	if m.GetDeploymentsFunc == nil {
		return nil, notStubbed("GetDeployments")
	}
	return m.GetDeploymentsFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetDocumentationPart(ctx context.Context, params *apigw.GetDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.GetDocumentationPartOutput, error) {
	if m.GetDocumentationPartFunc == nil {
		return nil, notStubbed("GetDocumentationPart")
	}
	return m.GetDocumentationPartFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetDocumentationParts(ctx context.Context, params *apigw.GetDocumentationPartsInput, optFns ...func(*apigw.Options)) (*apigw.GetDocumentationPartsOutput, error) {
	if m.GetDocumentationPartsFunc == nil {
		return nil, notStubbed("GetDocumentationParts")
	}
	return m.GetDocumentationPartsFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetDomainName(ctx context.Context, params *apigw.GetDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.GetDomainNameOutput, error) {
	if m.GetDomainNameFunc == nil {
		return nil, notStubbed("GetDomainName")
	}
	return m.GetDomainNameFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetDomainNames(ctx context.Context, params *apigw.GetDomainNamesInput, optFns ...func(*apigw.Options)) (*apigw.GetDomainNamesOutput, error) {
	if m.GetDomainNamesFunc == nil {
		return nil, notStubbed("GetDomainNames")
	}
	return m.GetDomainNamesFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetGatewayResponse(ctx context.Context, params *apigw.GetGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetGatewayResponseOutput, error) {
	if m.GetGatewayResponseFunc == nil {
		return nil, notStubbed("GetGatewayResponse")
	}
	return m.GetGatewayResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetGatewayResponses(ctx context.Context, params *apigw.GetGatewayResponsesInput, optFns ...func(*apigw.Options)) (*apigw.GetGatewayResponsesOutput, error) {
	if m.GetGatewayResponsesFunc == nil {
		return nil, notStubbed("GetGatewayResponses")
	}
	return m.GetGatewayResponsesFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetIntegration(ctx context.Context, params *apigw.GetIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.GetIntegrationOutput, error) {
	if m.GetIntegrationFunc == nil {
		return nil, notStubbed("GetIntegration")
	}
	return m.GetIntegrationFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetIntegrationResponse(ctx context.Context, params *apigw.GetIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetIntegrationResponseOutput, error) {
	if m.GetIntegrationResponseFunc == nil {
		return nil, notStubbed("GetIntegrationResponse")
	}
	return m.GetIntegrationResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetMethod(ctx context.Context, params *apigw.GetMethodInput, optFns ...func(*apigw.Options)) (*apigw.GetMethodOutput, error) {
	if m.GetMethodFunc == nil {
		return nil, notStubbed("GetMethod")
	}
	return m.GetMethodFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetMethodResponse(ctx context.Context, params *apigw.GetMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.GetMethodResponseOutput, error) {
	if m.GetMethodResponseFunc == nil {
		return nil, notStubbed("GetMethodResponse")
	}
	return m.GetMethodResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetModel(ctx context.Context, params *apigw.GetModelInput, optFns ...func(*apigw.Options)) (*apigw.GetModelOutput, error) {
	if m.GetModelFunc == nil {
		return nil, notStubbed("GetModel")
	}
	return m.GetModelFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetModelTemplate(ctx context.Context, params *apigw.GetModelTemplateInput, optFns ...func(*apigw.Options)) (*apigw.GetModelTemplateOutput, error) {
	if m.GetModelTemplateFunc == nil {
		return nil, notStubbed("GetModelTemplate")
	}
	return m.GetModelTemplateFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetModels(ctx context.Context, params *apigw.GetModelsInput, optFns ...func(*apigw.Options)) (*apigw.GetModelsOutput, error) {
	if m.GetModelsFunc == nil {
		return nil, notStubbed("GetModels")
	}
	return m.GetModelsFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetRequestValidator(ctx context.Context, params *apigw.GetRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.GetRequestValidatorOutput, error) {
	if m.GetRequestValidatorFunc == nil {
		return nil, notStubbed("GetRequestValidator")
	}
	return m.GetRequestValidatorFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetRequestValidators(ctx context.Context, params *apigw.GetRequestValidatorsInput, optFns ...func(*apigw.Options)) (*apigw.GetRequestValidatorsOutput, error) {
	if m.GetRequestValidatorsFunc == nil {
		return nil, notStubbed("GetRequestValidators")
	}
	return m.GetRequestValidatorsFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetResource(ctx context.Context, params *apigw.GetResourceInput, optFns ...func(*apigw.Options)) (*apigw.GetResourceOutput, error) {
	if m.GetResourceFunc == nil {
		return nil, notStubbed("GetResource")
	}
	return m.GetResourceFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetRestApis(ctx context.Context, params *apigw.GetRestApisInput, optFns ...func(*apigw.Options)) (*apigw.GetRestApisOutput, error) {
	if m.GetRestApisFunc == nil {
		return nil, notStubbed("GetRestApis")
	}
	return m.GetRestApisFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetSdk(ctx context.Context, params *apigw.GetSdkInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkOutput, error) {
	if m.GetSdkFunc == nil {
		return nil, notStubbed("GetSdk")
	}
	return m.GetSdkFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetSdkType(ctx context.Context, params *apigw.GetSdkTypeInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkTypeOutput, error) {
	if m.GetSdkTypeFunc == nil {
		return nil, notStubbed("GetSdkType")
	}
	return m.GetSdkTypeFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetSdkTypes(ctx context.Context, params *apigw.GetSdkTypesInput, optFns ...func(*apigw.Options)) (*apigw.GetSdkTypesOutput, error) {
	if m.GetSdkTypesFunc == nil {
		return nil, notStubbed("GetSdkTypes")
	}
	return m.GetSdkTypesFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetStages(ctx context.Context, params *apigw.GetStagesInput, optFns ...func(*apigw.Options)) (*apigw.GetStagesOutput, error) {
	if m.GetStagesFunc == nil {
		return nil, notStubbed("GetStages")
	}
	return m.GetStagesFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetUsagePlanKey(ctx context.Context, params *apigw.GetUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanKeyOutput, error) {
	if m.GetUsagePlanKeyFunc == nil {
		return nil, notStubbed("GetUsagePlanKey")
	}
	return m.GetUsagePlanKeyFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetVpcLink(ctx context.Context, params *apigw.GetVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.GetVpcLinkOutput, error) {
	if m.GetVpcLinkFunc == nil {
		return nil, notStubbed("GetVpcLink")
	}
	return m.GetVpcLinkFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) GetVpcLinks(ctx context.Context, params *apigw.GetVpcLinksInput, optFns ...func(*apigw.Options)) (*apigw.GetVpcLinksOutput, error) {
	if m.GetVpcLinksFunc == nil {
		return nil, notStubbed("GetVpcLinks")
	}
	return m.GetVpcLinksFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) ImportDocumentationParts(ctx context.Context, params *apigw.ImportDocumentationPartsInput, optFns ...func(*apigw.Options)) (*apigw.ImportDocumentationPartsOutput, error) {
	if m.ImportDocumentationPartsFunc == nil {
		return nil, notStubbed("ImportDocumentationParts")
	}
	return m.ImportDocumentationPartsFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) PutGatewayResponse(ctx context.Context, params *apigw.PutGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.PutGatewayResponseOutput, error) {
	if m.PutGatewayResponseFunc == nil {
		return nil, notStubbed("PutGatewayResponse")
	}
	return m.PutGatewayResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) TestInvokeMethod(ctx context.Context, params *apigw.TestInvokeMethodInput, optFns ...func(*apigw.Options)) (*apigw.TestInvokeMethodOutput, error) {
	if m.TestInvokeMethodFunc == nil {
		return nil, notStubbed("TestInvokeMethod")
	}
	return m.TestInvokeMethodFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateAccount(ctx context.Context, params *apigw.UpdateAccountInput, optFns ...func(*apigw.Options)) (*apigw.UpdateAccountOutput, error) {
	if m.UpdateAccountFunc == nil {
		return nil, notStubbed("UpdateAccount")
	}
	return m.UpdateAccountFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateAuthorizer(ctx context.Context, params *apigw.UpdateAuthorizerInput, optFns ...func(*apigw.Options)) (*apigw.UpdateAuthorizerOutput, error) {
	if m.UpdateAuthorizerFunc == nil {
		return nil, notStubbed("UpdateAuthorizer")
	}
	return m.UpdateAuthorizerFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateBasePathMapping(ctx context.Context, params *apigw.UpdateBasePathMappingInput, optFns ...func(*apigw.Options)) (*apigw.UpdateBasePathMappingOutput, error) {
	if m.UpdateBasePathMappingFunc == nil {
		return nil, notStubbed("UpdateBasePathMapping")
	}
	return m.UpdateBasePathMappingFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateClientCertificate(ctx context.Context, params *apigw.UpdateClientCertificateInput, optFns ...func(*apigw.Options)) (*apigw.UpdateClientCertificateOutput, error) {
	if m.UpdateClientCertificateFunc == nil {
		return nil, notStubbed("UpdateClientCertificate")
	}
	return m.UpdateClientCertificateFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateDeployment(ctx context.Context, params *apigw.UpdateDeploymentInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDeploymentOutput, error) {
	if m.UpdateDeploymentFunc == nil {
		return nil, notStubbed("UpdateDeployment")
	}
	return m.UpdateDeploymentFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateDocumentationPart(ctx context.Context, params *apigw.UpdateDocumentationPartInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDocumentationPartOutput, error) {
	if m.UpdateDocumentationPartFunc == nil {
		return nil, notStubbed("UpdateDocumentationPart")
	}
	return m.UpdateDocumentationPartFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateDomainName(ctx context.Context, params *apigw.UpdateDomainNameInput, optFns ...func(*apigw.Options)) (*apigw.UpdateDomainNameOutput, error) {
	if m.UpdateDomainNameFunc == nil {
		return nil, notStubbed("UpdateDomainName")
	}
	return m.UpdateDomainNameFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateGatewayResponse(ctx context.Context, params *apigw.UpdateGatewayResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateGatewayResponseOutput, error) {
	if m.UpdateGatewayResponseFunc == nil {
		return nil, notStubbed("UpdateGatewayResponse")
	}
	return m.UpdateGatewayResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateIntegration(ctx context.Context, params *apigw.UpdateIntegrationInput, optFns ...func(*apigw.Options)) (*apigw.UpdateIntegrationOutput, error) {
	if m.UpdateIntegrationFunc == nil {
		return nil, notStubbed("UpdateIntegration")
	}
	return m.UpdateIntegrationFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateIntegrationResponse(ctx context.Context, params *apigw.UpdateIntegrationResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateIntegrationResponseOutput, error) {
	if m.UpdateIntegrationResponseFunc == nil {
		return nil, notStubbed("UpdateIntegrationResponse")
	}
	return m.UpdateIntegrationResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateMethod(ctx context.Context, params *apigw.UpdateMethodInput, optFns ...func(*apigw.Options)) (*apigw.UpdateMethodOutput, error) {
	if m.UpdateMethodFunc == nil {
		return nil, notStubbed("UpdateMethod")
	}
	return m.UpdateMethodFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateMethodResponse(ctx context.Context, params *apigw.UpdateMethodResponseInput, optFns ...func(*apigw.Options)) (*apigw.UpdateMethodResponseOutput, error) {
	if m.UpdateMethodResponseFunc == nil {
		return nil, notStubbed("UpdateMethodResponse")
	}
	return m.UpdateMethodResponseFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateModel(ctx context.Context, params *apigw.UpdateModelInput, optFns ...func(*apigw.Options)) (*apigw.UpdateModelOutput, error) {
	if m.UpdateModelFunc == nil {
		return nil, notStubbed("UpdateModel")
	}
	return m.UpdateModelFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateRequestValidator(ctx context.Context, params *apigw.UpdateRequestValidatorInput, optFns ...func(*apigw.Options)) (*apigw.UpdateRequestValidatorOutput, error) {
	if m.UpdateRequestValidatorFunc == nil {
		return nil, notStubbed("UpdateRequestValidator")
	}
	return m.UpdateRequestValidatorFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateResource(ctx context.Context, params *apigw.UpdateResourceInput, optFns ...func(*apigw.Options)) (*apigw.UpdateResourceOutput, error) {
	if m.UpdateResourceFunc == nil {
		return nil, notStubbed("UpdateResource")
	}
	return m.UpdateResourceFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateRestApi(ctx context.Context, params *apigw.UpdateRestApiInput, optFns ...func(*apigw.Options)) (*apigw.UpdateRestApiOutput, error) {
	if m.UpdateRestApiFunc == nil {
		return nil, notStubbed("UpdateRestApi")
	}
	return m.UpdateRestApiFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateStage(ctx context.Context, params *apigw.UpdateStageInput, optFns ...func(*apigw.Options)) (*apigw.UpdateStageOutput, error) {
	if m.UpdateStageFunc == nil {
		return nil, notStubbed("UpdateStage")
	}
	return m.UpdateStageFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateUsage(ctx context.Context, params *apigw.UpdateUsageInput, optFns ...func(*apigw.Options)) (*apigw.UpdateUsageOutput, error) {
	if m.UpdateUsageFunc == nil {
		return nil, notStubbed("UpdateUsage")
	}
	return m.UpdateUsageFunc(ctx, params, optFns...)
}

func (m *MockAPIGateway) UpdateVpcLink(ctx context.Context, params *apigw.UpdateVpcLinkInput, optFns ...func(*apigw.Options)) (*apigw.UpdateVpcLinkOutput, error) {
	if m.UpdateVpcLinkFunc == nil {
		return nil, notStubbed("UpdateVpcLink")
	}
	return m.UpdateVpcLinkFunc(ctx, params, optFns...)
}
