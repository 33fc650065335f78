package resource

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	"github.com/raywall/apigateway-kit/internal/service"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

// ResourceAPIGatewayRestAPIDefinition define uma API REST mantida a partir de
// um documento OpenAPI local ou em s3://bucket/key.
func ResourceAPIGatewayRestAPIDefinition() *schema.Resource {
	return &schema.Resource{
		Description:   "API REST importada de um documento OpenAPI/Swagger e, opcionalmente, publicada em um stage.",
		CreateContext: restAPICreate,
		ReadContext:   restAPIRead,
		UpdateContext: restAPIUpdate,
		DeleteContext: restAPIDelete,
		CustomizeDiff: restAPIBodyDiff,
		Schema: map[string]*schema.Schema{
			"body_location": {
				Type:        schema.TypeString,
				Required:    true,
				Description: "Caminho local ou s3://bucket/key do documento.",
			},
			"mode": {
				Type:         schema.TypeString,
				Optional:     true,
				Default:      "overwrite",
				ValidateFunc: validation.StringInSlice([]string{"merge", "overwrite"}, true),
			},
			"fail_on_warnings": {Type: schema.TypeBool, Optional: true, Default: false},
			"parameters": {
				Type:     schema.TypeMap,
				Optional: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"stage_name":  {Type: schema.TypeString, Optional: true},
			"description": {Type: schema.TypeString, Optional: true},

			"body_hash":        {Type: schema.TypeString, Computed: true},
			"name":             {Type: schema.TypeString, Computed: true},
			"root_resource_id": {Type: schema.TypeString, Computed: true},
			"deployment_id":    {Type: schema.TypeString, Computed: true},
			"warnings": {
				Type:     schema.TypeList,
				Computed: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
		},
	}
}

func restAPICreate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	state, err := bundle.RestAPIs.Import(ctx, restAPIConfig(d))
	if state != nil {
		d.SetId(state.ID)
	}
	if err != nil {
		return diag.FromErr(err)
	}
	return setRestAPIState(d, state)
}

func restAPIRead(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	api, err := bundle.RestAPIs.Read(ctx, d.Id())
	if err != nil {
		return diag.FromErr(fmt.Errorf("reading rest api %s: %w", d.Id(), err))
	}
	if api == nil {
		d.SetId("")
		return nil
	}
	if err := d.Set("name", api.GetName()); err != nil {
		return diag.FromErr(err)
	}
	if err := d.Set("root_resource_id", api.GetRootResourceId()); err != nil {
		return diag.FromErr(err)
	}
	return nil
}

func restAPIUpdate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	state, err := bundle.RestAPIs.Put(ctx, d.Id(), restAPIConfig(d))
	if err != nil {
		return diag.FromErr(err)
	}
	return setRestAPIState(d, state)
}

func restAPIDelete(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	if err := bundle.RestAPIs.Delete(ctx, d.Id()); err != nil {
		return diag.FromErr(fmt.Errorf("deleting rest api %s: %w", d.Id(), err))
	}
	d.SetId("")
	return nil
}

// restAPIBodyDiff marca body_hash como alterado quando o conteúdo do
// documento muda sem mudança de caminho.
func restAPIBodyDiff(ctx context.Context, diff *schema.ResourceDiff, m interface{}) error {
	bundle, err := bundleFrom(m)
	if err != nil || diff.Id() == "" {
		return nil
	}
	body, err := bundle.RestAPIs.Documents.Load(ctx, diff.Get("body_location").(string))
	if err != nil {
		return err
	}
	if hash := service.BodyHash(body); hash != diff.Get("body_hash").(string) {
		return diff.SetNewComputed("body_hash")
	}
	return nil
}

func restAPIConfig(d *schema.ResourceData) *dto.RestAPIDefinitionConfig {
	return &dto.RestAPIDefinitionConfig{
		BodyLocation:   d.Get("body_location").(string),
		Mode:           d.Get("mode").(string),
		FailOnWarnings: d.Get("fail_on_warnings").(bool),
		Parameters:     toStringMap(d.Get("parameters")),
		StageName:      d.Get("stage_name").(string),
		Description:    d.Get("description").(string),
	}
}

func setRestAPIState(d *schema.ResourceData, state *service.RestAPIState) diag.Diagnostics {
	values := map[string]interface{}{
		"body_hash":        state.BodyHash,
		"name":             state.Name,
		"root_resource_id": state.RootResourceID,
		"deployment_id":    state.DeploymentID,
		"warnings":         state.Warnings,
	}
	for k, v := range values {
		if err := d.Set(k, v); err != nil {
			return diag.FromErr(fmt.Errorf("setting %s: %w", k, err))
		}
	}
	return nil
}
