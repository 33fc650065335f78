package models

import (
	"github.com/raywall/apigateway-kit/internal/client"
	"github.com/raywall/apigateway-kit/internal/service"
)

// ConfigurationBundle contém os Services e o Cliente AWS injetados nos Resources.
type ConfigurationBundle struct {
	DeployService *service.LambdaDeploymentService
	UsagePlans    *service.UsagePlanService
	APIKeys       *service.APIKeyService
	RestAPIs      *service.RestAPIService
	Client        *client.AWSClient
}
