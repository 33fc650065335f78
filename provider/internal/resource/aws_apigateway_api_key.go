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

// ResourceAPIGatewayAPIKey define o schema de uma API key.
func ResourceAPIGatewayAPIKey() *schema.Resource {
	return &schema.Resource{
		Description:   "API key do API Gateway. O valor é gerado quando não informado.",
		CreateContext: apiKeyCreate,
		ReadContext:   apiKeyRead,
		UpdateContext: apiKeyUpdate,
		DeleteContext: apiKeyDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"name":        {Type: schema.TypeString, Required: true},
			"description": {Type: schema.TypeString, Optional: true},
			"enabled":     {Type: schema.TypeBool, Optional: true, Default: true},
			"customer_id": {Type: schema.TypeString, Optional: true},
			"value": {
				Type:         schema.TypeString,
				Optional:     true,
				Computed:     true,
				ForceNew:     true,
				Sensitive:    true,
				ValidateFunc: validation.StringLenBetween(20, 128),
			},
			"tags": {
				Type:     schema.TypeMap,
				Optional: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
			},
			"arn": {Type: schema.TypeString, Computed: true},
		},
	}
}

func apiKeyCreate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	id, value, err := bundle.APIKeys.Create(ctx, apiKeyConfig(d.Get))
	if err != nil {
		return diag.FromErr(err)
	}
	d.SetId(id)
	if err := d.Set("value", value); err != nil {
		return diag.FromErr(err)
	}
	return apiKeyRead(ctx, d, m)
}

func apiKeyRead(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	cfg, err := bundle.APIKeys.Read(ctx, d.Id())
	if err != nil {
		return diag.FromErr(fmt.Errorf("reading api key %s: %w", d.Id(), err))
	}
	if cfg == nil {
		d.SetId("")
		return nil
	}

	values := map[string]interface{}{
		"name":        cfg.Name,
		"description": cfg.Description,
		"enabled":     cfg.Enabled,
		"customer_id": cfg.CustomerID,
		"value":       cfg.Value,
		"tags":        cfg.Tags,
		"arn":         service.APIKeyArn(bundle.APIKeys.Region, d.Id()),
	}
	for k, v := range values {
		if err := d.Set(k, v); err != nil {
			return diag.FromErr(fmt.Errorf("setting %s: %w", k, err))
		}
	}
	return nil
}

func apiKeyUpdate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	old := apiKeyConfig(func(k string) interface{} {
		o, _ := d.GetChange(k)
		return o
	})
	if err := bundle.APIKeys.Update(ctx, d.Id(), old, apiKeyConfig(d.Get)); err != nil {
		return diag.FromErr(err)
	}
	return apiKeyRead(ctx, d, m)
}

func apiKeyDelete(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	if err := bundle.APIKeys.Delete(ctx, d.Id()); err != nil {
		return diag.FromErr(fmt.Errorf("deleting api key %s: %w", d.Id(), err))
	}
	d.SetId("")
	return nil
}

func apiKeyConfig(get func(string) interface{}) *dto.APIKeyConfig {
	return &dto.APIKeyConfig{
		Name:        get("name").(string),
		Description: get("description").(string),
		Enabled:     get("enabled").(bool),
		Value:       get("value").(string),
		CustomerID:  get("customer_id").(string),
		Tags:        toStringMap(get("tags")),
	}
}
