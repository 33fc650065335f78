package raysouz

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	"github.com/raywall/apigateway-kit/internal/client"
	"github.com/raywall/apigateway-kit/internal/config"
	"github.com/raywall/apigateway-kit/internal/logger"
	"github.com/raywall/apigateway-kit/internal/repository"
	"github.com/raywall/apigateway-kit/internal/service"
	"github.com/raywall/apigateway-kit/provider/internal/models"
	"github.com/raywall/apigateway-kit/provider/internal/resource"
)

// iamPropagationDelay é a espera após criar uma role antes de usá-la na Lambda.
const iamPropagationDelay = 10 * time.Second

// Provider retorna o schema e resources map.
func Provider() *schema.Provider {
	return &schema.Provider{
		Schema: map[string]*schema.Schema{
			"region": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc("AWS_REGION", "us-east-1"),
				Description: "AWS region to use for resources",
			},
			"profile": {
				Type:        schema.TypeString,
				Optional:    true,
				DefaultFunc: schema.EnvDefaultFunc("AWS_PROFILE", ""),
				Description: "AWS shared config profile",
			},
			"param_validation": {
				Type:        schema.TypeBool,
				Optional:    true,
				Default:     true,
				Description: "Valida os campos obrigatórios das requisições antes de enviá-las.",
			},
			"log_level": {
				Type:         schema.TypeString,
				Optional:     true,
				DefaultFunc:  schema.EnvDefaultFunc("RAYSOUZ_LOG_LEVEL", "info"),
				ValidateFunc: validation.StringInSlice([]string{"trace", "debug", "info", "warn", "error", "disabled"}, false),
				Description:  "Nível dos logs do provider (escritos em stderr).",
			},
		},
		ResourcesMap: map[string]*schema.Resource{
			"raysouz_apigateway_lambda_routes":       resource.ResourceAPIGatewayLambdaRoutes(),
			"raysouz_apigateway_usage_plan":          resource.ResourceAPIGatewayUsagePlan(),
			"raysouz_apigateway_api_key":             resource.ResourceAPIGatewayAPIKey(),
			"raysouz_apigateway_rest_api_definition": resource.ResourceAPIGatewayRestAPIDefinition(),
		},
		ConfigureContextFunc: providerConfigure,
	}
}

// configFromResourceData traduz o bloco provider para a configuração comum.
func configFromResourceData(d *schema.ResourceData) (*config.Config, error) {
	cfg := config.Default()
	cfg.Region = d.Get("region").(string)
	cfg.Profile = d.Get("profile").(string)
	cfg.ParamValidation = d.Get("param_validation").(bool)
	cfg.Logging.Level = d.Get("log_level").(string)
	cfg.Logging.Format = "json"
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func providerConfigure(ctx context.Context, d *schema.ResourceData) (interface{}, diag.Diagnostics) {
	cfg, err := configFromResourceData(d)
	if err != nil {
		return nil, diag.FromErr(err)
	}
	log := logger.Configure(cfg.Logging)

	// 1. Inicializa o AWS Client (Base)
	awsClient, err := client.New(ctx, cfg)
	if err != nil {
		return nil, diag.FromErr(fmt.Errorf("failed to create aws client: %w", err))
	}

	// 2. Inicializa os Repositórios (Camada de Acesso a Dados)
	apigwRepo := repository.NewAPIGWRepository(awsClient, cfg, log)
	iamRepo := &repository.IAMRepository{API: awsClient.IAM, Log: log}
	lambdaRepo := &repository.LambdaRepository{API: awsClient.Lambda, Log: log, Retry: repository.DefaultRetryPolicy}
	cwLogsRepo := &repository.CWLogsRepository{API: awsClient.CWLogs, Log: log, Retry: repository.DefaultRetryPolicy}
	docRepo := &repository.DocumentRepository{S3: awsClient.S3, Log: log}

	// 3. Inicializa os Services Especializados (Camada de Lógica de Negócio)
	iamService := &service.IAMService{IAMRepo: iamRepo, Log: log, PropagationDelay: iamPropagationDelay}
	cwLogsService := &service.CWLogsService{CWLogsRepo: cwLogsRepo}
	apigwService := &service.APIGatewayService{APIGWRepo: apigwRepo, Region: awsClient.Region, Log: log}

	// 4. Inicializa o Service Orquestrador (Facade)
	deployService := &service.LambdaDeploymentService{
		IAMService:        iamService,
		CWLogsService:     cwLogsService,
		APIGatewayService: apigwService,
		LambdaRepo:        lambdaRepo,
		Account:           awsClient,
		Region:            awsClient.Region,
		Log:               log,
	}

	// 5. Retorna o Bundle para os Resources
	return &models.ConfigurationBundle{
		DeployService: deployService,
		UsagePlans:    &service.UsagePlanService{APIGWRepo: apigwRepo, Region: awsClient.Region, Log: log},
		APIKeys:       &service.APIKeyService{APIGWRepo: apigwRepo, Documents: docRepo, Region: awsClient.Region, Log: log},
		RestAPIs:      &service.RestAPIService{APIGWRepo: apigwRepo, Documents: docRepo, Log: log},
		Client:        awsClient,
	}, nil
}
