package repository

import (
	"context"
	"fmt"

	"github.com/raywall/apigateway-kit/pkg/model"
)

type handler func(ctx context.Context, r *APIGWRepository, req model.Shape) (model.Shape, error)

var handlers = map[string]handler{
	"CreateApiKey":              bind((*APIGWRepository).CreateApiKey),
	"CreateAuthorizer":          bind((*APIGWRepository).CreateAuthorizer),
	"CreateBasePathMapping":     bind((*APIGWRepository).CreateBasePathMapping),
	"CreateDeployment":          bind((*APIGWRepository).CreateDeployment),
	"CreateDocumentationPart":   bind((*APIGWRepository).CreateDocumentationPart),
	"CreateDomainName":          bind((*APIGWRepository).CreateDomainName),
	"CreateModel":               bind((*APIGWRepository).CreateModel),
	"CreateRequestValidator":    bind((*APIGWRepository).CreateRequestValidator),
	"CreateResource":            bind((*APIGWRepository).CreateResource),
	"CreateRestApi":             bind((*APIGWRepository).CreateRestApi),
	"CreateStage":               bind((*APIGWRepository).CreateStage),
	"CreateUsagePlan":           bind((*APIGWRepository).CreateUsagePlan),
	"CreateUsagePlanKey":        bind((*APIGWRepository).CreateUsagePlanKey),
	"CreateVpcLink":             bind((*APIGWRepository).CreateVpcLink),
	"DeleteApiKey":              bindNoResult((*APIGWRepository).DeleteApiKey),
	"DeleteAuthorizer":          bindNoResult((*APIGWRepository).DeleteAuthorizer),
	"DeleteBasePathMapping":     bindNoResult((*APIGWRepository).DeleteBasePathMapping),
	"DeleteClientCertificate":   bindNoResult((*APIGWRepository).DeleteClientCertificate),
	"DeleteDeployment":          bindNoResult((*APIGWRepository).DeleteDeployment),
	"DeleteDocumentationPart":   bindNoResult((*APIGWRepository).DeleteDocumentationPart),
	"DeleteDomainName":          bindNoResult((*APIGWRepository).DeleteDomainName),
	"DeleteGatewayResponse":     bindNoResult((*APIGWRepository).DeleteGatewayResponse),
	"DeleteIntegration":         bindNoResult((*APIGWRepository).DeleteIntegration),
	"DeleteIntegrationResponse": bindNoResult((*APIGWRepository).DeleteIntegrationResponse),
	"DeleteMethod":              bindNoResult((*APIGWRepository).DeleteMethod),
	"DeleteMethodResponse":      bindNoResult((*APIGWRepository).DeleteMethodResponse),
	"DeleteModel":               bindNoResult((*APIGWRepository).DeleteModel),
	"DeleteRequestValidator":    bindNoResult((*APIGWRepository).DeleteRequestValidator),
	"DeleteResource":            bindNoResult((*APIGWRepository).DeleteResource),
	"DeleteRestApi":             bindNoResult((*APIGWRepository).DeleteRestApi),
	"DeleteStage":               bindNoResult((*APIGWRepository).DeleteStage),
	"DeleteUsagePlan":           bindNoResult((*APIGWRepository).DeleteUsagePlan),
	"DeleteUsagePlanKey":        bindNoResult((*APIGWRepository).DeleteUsagePlanKey),
	"DeleteVpcLink":             bindNoResult((*APIGWRepository).DeleteVpcLink),
	"FlushStageCache":           bindNoResult((*APIGWRepository).FlushStageCache),
	"GenerateClientCertificate": bind((*APIGWRepository).GenerateClientCertificate),
	"GetAccount":                bind((*APIGWRepository).GetAccount),
	"GetApiKey":                 bind((*APIGWRepository).GetApiKey),
	"GetApiKeys":                bind((*APIGWRepository).GetApiKeys),
	"GetAuthorizer":             bind((*APIGWRepository).GetAuthorizer),
	"GetAuthorizers":            bind((*APIGWRepository).GetAuthorizers),
	"GetBasePathMapping":        bind((*APIGWRepository).GetBasePathMapping),
	"GetBasePathMappings":       bind((*APIGWRepository).GetBasePathMappings),
	"GetClientCertificate":      bind((*APIGWRepository).GetClientCertificate),
	"GetClientCertificates":     bind((*APIGWRepository).GetClientCertificates),
	"GetDeployment":             bind((*APIGWRepository).GetDeployment),
	"GetDeployments":            bind((*APIGWRepository).GetDeployments),
	"GetDocumentationPart":      bind((*APIGWRepository).GetDocumentationPart),
	"GetDocumentationParts":     bind((*APIGWRepository).GetDocumentationParts),
	"GetDomainName":             bind((*APIGWRepository).GetDomainName),
	"GetDomainNames":            bind((*APIGWRepository).GetDomainNames),
	"GetExport":                 bind((*APIGWRepository).GetExport),
	"GetGatewayResponse":        bind((*APIGWRepository).GetGatewayResponse),
	"GetGatewayResponses":       bind((*APIGWRepository).GetGatewayResponses),
	"GetIntegration":            bind((*APIGWRepository).GetIntegration),
	"GetIntegrationResponse":    bind((*APIGWRepository).GetIntegrationResponse),
	"GetMethod":                 bind((*APIGWRepository).GetMethod),
	"GetMethodResponse":         bind((*APIGWRepository).GetMethodResponse),
	"GetModel":                  bind((*APIGWRepository).GetModel),
	"GetModelTemplate":          bind((*APIGWRepository).GetModelTemplate),
	"GetModels":                 bind((*APIGWRepository).GetModels),
	"GetRequestValidator":       bind((*APIGWRepository).GetRequestValidator),
	"GetRequestValidators":      bind((*APIGWRepository).GetRequestValidators),
	"GetResource":               bind((*APIGWRepository).GetResource),
	"GetResources":              bind((*APIGWRepository).GetResources),
	"GetRestApi":                bind((*APIGWRepository).GetRestApi),
	"GetRestApis":               bind((*APIGWRepository).GetRestApis),
	"GetSdk":                    bind((*APIGWRepository).GetSdk),
	"GetSdkType":                bind((*APIGWRepository).GetSdkType),
	"GetSdkTypes":               bind((*APIGWRepository).GetSdkTypes),
	"GetStage":                  bind((*APIGWRepository).GetStage),
	"GetStages":                 bind((*APIGWRepository).GetStages),
	"GetTags":                   bind((*APIGWRepository).GetTags),
	"GetUsage":                  bind((*APIGWRepository).GetUsage),
	"GetUsagePlan":              bind((*APIGWRepository).GetUsagePlan),
	"GetUsagePlanKey":           bind((*APIGWRepository).GetUsagePlanKey),
	"GetUsagePlanKeys":          bind((*APIGWRepository).GetUsagePlanKeys),
	"GetUsagePlans":             bind((*APIGWRepository).GetUsagePlans),
	"GetVpcLink":                bind((*APIGWRepository).GetVpcLink),
	"GetVpcLinks":               bind((*APIGWRepository).GetVpcLinks),
	"ImportApiKeys":             bind((*APIGWRepository).ImportApiKeys),
	"ImportDocumentationParts":  bind((*APIGWRepository).ImportDocumentationParts),
	"ImportRestApi":             bind((*APIGWRepository).ImportRestApi),
	"PutGatewayResponse":        bind((*APIGWRepository).PutGatewayResponse),
	"PutIntegration":            bind((*APIGWRepository).PutIntegration),
	"PutIntegrationResponse":    bind((*APIGWRepository).PutIntegrationResponse),
	"PutMethod":                 bind((*APIGWRepository).PutMethod),
	"PutMethodResponse":         bind((*APIGWRepository).PutMethodResponse),
	"PutRestApi":                bind((*APIGWRepository).PutRestApi),
	"TagResource":               bindNoResult((*APIGWRepository).TagResource),
	"TestInvokeMethod":          bind((*APIGWRepository).TestInvokeMethod),
	"UntagResource":             bindNoResult((*APIGWRepository).UntagResource),
	"UpdateAccount":             bind((*APIGWRepository).UpdateAccount),
	"UpdateApiKey":              bind((*APIGWRepository).UpdateApiKey),
	"UpdateAuthorizer":          bind((*APIGWRepository).UpdateAuthorizer),
	"UpdateBasePathMapping":     bind((*APIGWRepository).UpdateBasePathMapping),
	"UpdateClientCertificate":   bind((*APIGWRepository).UpdateClientCertificate),
	"UpdateDeployment":          bind((*APIGWRepository).UpdateDeployment),
	"UpdateDocumentationPart":   bind((*APIGWRepository).UpdateDocumentationPart),
	"UpdateDomainName":          bind((*APIGWRepository).UpdateDomainName),
	"UpdateGatewayResponse":     bind((*APIGWRepository).UpdateGatewayResponse),
	"UpdateIntegration":         bind((*APIGWRepository).UpdateIntegration),
	"UpdateIntegrationResponse": bind((*APIGWRepository).UpdateIntegrationResponse),
	"UpdateMethod":              bind((*APIGWRepository).UpdateMethod),
	"UpdateMethodResponse":      bind((*APIGWRepository).UpdateMethodResponse),
	"UpdateModel":               bind((*APIGWRepository).UpdateModel),
	"UpdateRequestValidator":    bind((*APIGWRepository).UpdateRequestValidator),
	"UpdateResource":            bind((*APIGWRepository).UpdateResource),
	"UpdateRestApi":             bind((*APIGWRepository).UpdateRestApi),
	"UpdateStage":               bind((*APIGWRepository).UpdateStage),
	"UpdateUsage":               bind((*APIGWRepository).UpdateUsage),
	"UpdateUsagePlan":           bind((*APIGWRepository).UpdateUsagePlan),
	"UpdateVpcLink":             bind((*APIGWRepository).UpdateVpcLink),
}

func bind[Req model.Shape, Res model.Shape](fn func(*APIGWRepository, context.Context, Req) (Res, error)) handler {
	return func(ctx context.Context, r *APIGWRepository, req model.Shape) (model.Shape, error) {
		in, ok := req.(Req)
		if !ok {
			return nil, fmt.Errorf("unexpected request type %T", req)
		}
		res, err := fn(r, ctx, in)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}

func bindNoResult[Req model.Shape](fn func(*APIGWRepository, context.Context, Req) error) handler {
	return func(ctx context.Context, r *APIGWRepository, req model.Shape) (model.Shape, error) {
		in, ok := req.(Req)
		if !ok {
			return nil, fmt.Errorf("unexpected request type %T", req)
		}
		return nil, fn(r, ctx, in)
	}
}

// Invoke executa a operação pelo nome. O resultado é nil para operações sem
// shape de saída.
func (r *APIGWRepository) Invoke(ctx context.Context, operation string, req model.Shape) (model.Shape, error) {
	if _, ok := model.LookupOperation(operation); !ok {
		return nil, fmt.Errorf("unknown operation %q", operation)
	}
	h, ok := handlers[operation]
	if !ok {
		return nil, fmt.Errorf("%s: %w", operation, ErrUnsupportedOperation)
	}
	return h(ctx, r, req)
}

// BoundOperations lista as operações aceitas por Invoke.
func BoundOperations() []string {
	out := make([]string, 0, len(handlers))
	for _, op := range model.Operations() {
		if _, ok := handlers[op.Name]; ok {
			out = append(out, op.Name)
		}
	}
	return out
}
