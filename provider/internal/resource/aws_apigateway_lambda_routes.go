package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	"github.com/raywall/apigateway-kit/provider/internal/models"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

var httpMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS", "ANY"}

// ResourceAPIGatewayLambdaRoutes define o schema do recurso.
func ResourceAPIGatewayLambdaRoutes() *schema.Resource {
	return &schema.Resource{
		Description:   "Publica rotas de uma API REST existente integradas a uma função Lambda gerenciada.",
		CreateContext: lambdaRoutesCreate,
		ReadContext:   lambdaRoutesRead,
		UpdateContext: lambdaRoutesUpdate,
		DeleteContext: lambdaRoutesDelete,
		Schema: map[string]*schema.Schema{
			"api_gateway_id": {Type: schema.TypeString, Required: true, ForceNew: true},
			"stage_name":     {Type: schema.TypeString, Required: true},
			"lambda_config": {
				Type:     schema.TypeList,
				MaxItems: 1,
				Required: true,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"function_name":      {Type: schema.TypeString, Required: true, ForceNew: true},
						"runtime":            {Type: schema.TypeString, Required: true},
						"handler":            {Type: schema.TypeString, Required: true},
						"zip_file":           {Type: schema.TypeString, Required: true},
						"memory_size":        {Type: schema.TypeInt, Optional: true, Default: 128},
						"timeout":            {Type: schema.TypeInt, Optional: true, Default: 30},
						"log_retention_days": {Type: schema.TypeInt, Optional: true, Default: 14},
						"attached_policy_arns": {
							Type:        schema.TypeList,
							Optional:    true,
							Description: "Lista de ARNs de políticas gerenciadas para anexar à Role de execução da Lambda.",
							Elem:        &schema.Schema{Type: schema.TypeString},
						},
						"environment_variables": {
							Type:     schema.TypeMap,
							Optional: true,
							Elem:     &schema.Schema{Type: schema.TypeString},
						},
					},
				},
			},
			"routes": {
				Type:     schema.TypeList,
				Required: true,
				MinItems: 1,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"path": {Type: schema.TypeString, Required: true},
						"method": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.StringInSlice(httpMethods, true),
						},
						"authorization":    {Type: schema.TypeString, Optional: true, Default: "NONE"},
						"authorizer_id":    {Type: schema.TypeString, Optional: true},
						"api_key_required": {Type: schema.TypeBool, Optional: true, Default: false},
					},
				},
			},
			"function_arn":  {Type: schema.TypeString, Computed: true},
			"deployment_id": {Type: schema.TypeString, Computed: true},
			"internal":      {Type: schema.TypeString, Computed: true},
		},
	}
}

// lambdaRoutesCreate (Controller) - Mapeia e chama o Service
func lambdaRoutesCreate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, ok := m.(*models.ConfigurationBundle)
	if !ok || bundle.DeployService == nil {
		return diag.FromErr(fmt.Errorf("deployment service not configured"))
	}

	apiID := extractAPIID(d.Get("api_gateway_id").(string))
	stage := d.Get("stage_name").(string)
	lc, routes := extractConfig(d)

	state, err := bundle.DeployService.EnsureDeployment(ctx, apiID, stage, lc, routes)
	if err != nil {
		return diag.FromErr(fmt.Errorf("deployment failed: %w", err))
	}

	d.SetId(fmt.Sprintf("%s/%s", state.APIGatewayID, state.FunctionName))
	return setLambdaRoutesState(d, state)
}

// lambdaRoutesRead (Controller)
func lambdaRoutesRead(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, ok := m.(*models.ConfigurationBundle)
	if !ok || bundle.DeployService == nil {
		return diag.FromErr(fmt.Errorf("deployment service not configured"))
	}

	st, err := internalState(d)
	if err != nil {
		d.SetId("")
		return diag.FromErr(fmt.Errorf("failed reading internal state: %w", err))
	}
	if st == nil {
		return nil
	}

	exists, err := bundle.DeployService.CheckResourceExistence(ctx, st)
	if err != nil {
		return diag.FromErr(fmt.Errorf("failed during existence check: %w", err))
	}
	if !exists {
		// Role ou Lambda removidas fora do Terraform: drift.
		d.SetId("")
	}
	return nil
}

// lambdaRoutesUpdate remove os métodos das rotas que saíram da configuração
// e reaplica o restante.
func lambdaRoutesUpdate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, ok := m.(*models.ConfigurationBundle)
	if !ok || bundle.DeployService == nil {
		return diag.FromErr(fmt.Errorf("deployment service not configured"))
	}

	var diags diag.Diagnostics
	if prev, err := internalState(d); err == nil && prev != nil && d.HasChange("routes") {
		_, routes := extractConfig(d)
		stale := staleRoutes(prev.Routes, routes)
		if len(stale) > 0 {
			err := bundle.DeployService.APIGatewayService.DeleteRoutes(ctx, prev.APIGatewayID, stale, nil)
			if err != nil {
				diags = append(diags, diag.Diagnostic{
					Severity: diag.Warning,
					Summary:  "failed to remove stale routes",
					Detail:   err.Error(),
				})
			}
		}
	}

	return append(diags, lambdaRoutesCreate(ctx, d, m)...)
}

// lambdaRoutesDelete (Controller) - Chama o Service para limpar
func lambdaRoutesDelete(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, ok := m.(*models.ConfigurationBundle)
	if !ok || bundle.DeployService == nil {
		return diag.FromErr(fmt.Errorf("deployment service not configured"))
	}

	st, err := internalState(d)
	if err != nil {
		return diag.FromErr(err)
	}
	if st == nil {
		d.SetId("")
		return nil
	}

	if err := bundle.DeployService.DeleteDeployment(ctx, st); err != nil {
		return diag.FromErr(fmt.Errorf("failed to delete deployment: %w", err))
	}

	d.SetId("")
	return nil
}

func setLambdaRoutesState(d *schema.ResourceData, state *dto.ResourceState) diag.Diagnostics {
	b, err := json.Marshal(state)
	if err != nil {
		return diag.FromErr(err)
	}
	if err := d.Set("internal", string(b)); err != nil {
		return diag.FromErr(err)
	}
	if err := d.Set("function_arn", state.FunctionArn); err != nil {
		return diag.FromErr(err)
	}
	if err := d.Set("deployment_id", state.DeploymentID); err != nil {
		return diag.FromErr(err)
	}
	return nil
}

// internalState lê o estado JSON do atributo "internal"; nil quando vazio.
func internalState(d *schema.ResourceData) (*dto.ResourceState, error) {
	internal := d.Get("internal").(string)
	if internal == "" {
		return nil, nil
	}
	var st dto.ResourceState
	if err := json.Unmarshal([]byte(internal), &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// staleRoutes devolve as rotas do estado que não estão mais configuradas.
func staleRoutes(prev []dto.RouteState, desired []dto.RouteConfig) []dto.RouteState {
	keep := make(map[string]bool, len(desired))
	for _, r := range desired {
		keep[r.Method+" "+r.Path] = true
	}
	var stale []dto.RouteState
	for _, r := range prev {
		if !keep[r.Method+" "+r.Path] {
			stale = append(stale, r)
		}
	}
	return stale
}

// extractAPIID aceita o ID puro ou "<prefixo>:<id>".
func extractAPIID(apiID string) string {
	parts := strings.Split(apiID, ":")
	if len(parts) > 1 {
		return parts[1]
	}
	return apiID
}

// extractConfig extrai os dados do schema para DTOs do Service.
func extractConfig(d *schema.ResourceData) (*dto.LambdaConfig, []dto.RouteConfig) {
	lcList := d.Get("lambda_config").([]interface{})
	lcMap := lcList[0].(map[string]interface{})

	lc := &dto.LambdaConfig{
		FunctionName:     lcMap["function_name"].(string),
		Runtime:          lcMap["runtime"].(string),
		Handler:          lcMap["handler"].(string),
		ZipPath:          lcMap["zip_file"].(string),
		MemorySize:       int32(lcMap["memory_size"].(int)),
		Timeout:          int32(lcMap["timeout"].(int)),
		LogRetentionDays: int32(lcMap["log_retention_days"].(int)),
		PolicyARNs:       toStringSlice(lcMap["attached_policy_arns"]),
		Environment:      toStringMap(lcMap["environment_variables"]),
	}

	routesRaw := d.Get("routes").([]interface{})
	routes := make([]dto.RouteConfig, 0, len(routesRaw))
	for _, r := range routesRaw {
		rm := r.(map[string]interface{})
		authorizerID, _ := rm["authorizer_id"].(string)
		routes = append(routes, dto.RouteConfig{
			Path:           rm["path"].(string),
			Method:         strings.ToUpper(rm["method"].(string)),
			Authorization:  rm["authorization"].(string),
			AuthorizerID:   authorizerID,
			APIKeyRequired: rm["api_key_required"].(bool),
		})
	}

	return lc, routes
}
