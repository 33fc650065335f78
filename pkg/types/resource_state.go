package types

// ResourceState é o estado interno do recurso 'raysouz_apigateway_lambda_routes',
// serializado como JSON no atributo computado "internal".
type ResourceState struct {
	RoleName           string                  `json:"role_name"`
	FunctionName       string                  `json:"function_name"`
	FunctionArn        string                  `json:"function_arn"`
	APIGatewayID       string                  `json:"api_gateway_id"`
	StageName          string                  `json:"stage_name"`
	DeploymentID       string                  `json:"deployment_id,omitempty"`
	Routes             []RouteState            `json:"routes"`
	LogGroup           string                  `json:"log_group"`
	Resources          map[string]ResourceInfo `json:"resources"`
	AttachedPolicyARNs []string                `json:"attached_policy_arns"`
}

// APIGWState armazena o resultado do provisionamento das rotas de uma API.
type APIGWState struct {
	APIGatewayID string
	StageName    string
	DeploymentID string
	Routes       []RouteState
	Resources    map[string]ResourceInfo
}
