package resource

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/terraform-plugin-sdk/v2/diag"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/validation"

	"github.com/raywall/apigateway-kit/internal/service"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

// ResourceAPIGatewayUsagePlan define o schema do usage plan.
func ResourceAPIGatewayUsagePlan() *schema.Resource {
	return &schema.Resource{
		Description:   "Usage plan com limites de throttling, cota, stages e API keys associadas.",
		CreateContext: usagePlanCreate,
		ReadContext:   usagePlanRead,
		UpdateContext: usagePlanUpdate,
		DeleteContext: usagePlanDelete,
		Importer: &schema.ResourceImporter{
			StateContext: schema.ImportStatePassthroughContext,
		},
		Schema: map[string]*schema.Schema{
			"name":        {Type: schema.TypeString, Required: true},
			"description": {Type: schema.TypeString, Optional: true},
			"throttle": {
				Type:     schema.TypeList,
				Optional: true,
				MaxItems: 1,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"burst_limit": {Type: schema.TypeInt, Optional: true},
						"rate_limit":  {Type: schema.TypeFloat, Optional: true},
					},
				},
			},
			"quota": {
				Type:     schema.TypeList,
				Optional: true,
				MaxItems: 1,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"limit":  {Type: schema.TypeInt, Required: true},
						"offset": {Type: schema.TypeInt, Optional: true},
						"period": {
							Type:         schema.TypeString,
							Required:     true,
							ValidateFunc: validation.StringInSlice([]string{"DAY", "WEEK", "MONTH"}, false),
						},
					},
				},
			},
			"api_stages": {
				Type:     schema.TypeList,
				Optional: true,
				Elem: &schema.Resource{
					Schema: map[string]*schema.Schema{
						"api_id": {Type: schema.TypeString, Required: true},
						"stage":  {Type: schema.TypeString, Required: true},
					},
				},
			},
			"api_key_ids": {
				Type:     schema.TypeSet,
				Optional: true,
				Elem:     &schema.Schema{Type: schema.TypeString},
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

func usagePlanCreate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	id, err := bundle.UsagePlans.Create(ctx, usagePlanConfig(d.Get))
	if id != "" {
		d.SetId(id)
	}
	if err != nil {
		return diag.FromErr(err)
	}
	return usagePlanRead(ctx, d, m)
}

func usagePlanRead(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	cfg, err := bundle.UsagePlans.Read(ctx, d.Id())
	if err != nil {
		return diag.FromErr(fmt.Errorf("reading usage plan %s: %w", d.Id(), err))
	}
	if cfg == nil {
		d.SetId("")
		return nil
	}

	values := map[string]interface{}{
		"name":        cfg.Name,
		"description": cfg.Description,
		"throttle":    flattenThrottle(cfg.Throttle),
		"quota":       flattenQuota(cfg.Quota),
		"api_stages":  flattenStages(cfg.Stages),
		"api_key_ids": cfg.APIKeyIDs,
		"tags":        cfg.Tags,
		"arn":         service.UsagePlanArn(bundle.UsagePlans.Region, d.Id()),
	}
	for k, v := range values {
		if err := d.Set(k, v); err != nil {
			return diag.FromErr(fmt.Errorf("setting %s: %w", k, err))
		}
	}
	return nil
}

func usagePlanUpdate(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	old := usagePlanConfig(func(k string) interface{} {
		o, _ := d.GetChange(k)
		return o
	})
	if err := bundle.UsagePlans.Update(ctx, d.Id(), old, usagePlanConfig(d.Get)); err != nil {
		return diag.FromErr(err)
	}
	return usagePlanRead(ctx, d, m)
}

func usagePlanDelete(ctx context.Context, d *schema.ResourceData, m interface{}) diag.Diagnostics {
	bundle, err := bundleFrom(m)
	if err != nil {
		return diag.FromErr(err)
	}

	if err := bundle.UsagePlans.Delete(ctx, d.Id(), usagePlanConfig(d.Get)); err != nil {
		return diag.FromErr(fmt.Errorf("deleting usage plan %s: %w", d.Id(), err))
	}
	d.SetId("")
	return nil
}

// usagePlanConfig monta o DTO a partir de um getter do schema (d.Get ou o
// lado antigo de d.GetChange).
func usagePlanConfig(get func(string) interface{}) *dto.UsagePlanConfig {
	cfg := &dto.UsagePlanConfig{
		Name:        get("name").(string),
		Description: get("description").(string),
		APIKeyIDs:   toStringSlice(get("api_key_ids")),
		Tags:        toStringMap(get("tags")),
	}
	sort.Strings(cfg.APIKeyIDs)

	if l, ok := get("throttle").([]interface{}); ok && len(l) > 0 && l[0] != nil {
		t := l[0].(map[string]interface{})
		cfg.Throttle = &dto.ThrottleConfig{
			BurstLimit: int32(t["burst_limit"].(int)),
			RateLimit:  t["rate_limit"].(float64),
		}
	}
	if l, ok := get("quota").([]interface{}); ok && len(l) > 0 && l[0] != nil {
		q := l[0].(map[string]interface{})
		cfg.Quota = &dto.QuotaConfig{
			Limit:  int32(q["limit"].(int)),
			Offset: int32(q["offset"].(int)),
			Period: q["period"].(string),
		}
	}
	if l, ok := get("api_stages").([]interface{}); ok {
		for _, raw := range l {
			st := raw.(map[string]interface{})
			cfg.Stages = append(cfg.Stages, dto.StageConfig{
				APIID: st["api_id"].(string),
				Stage: st["stage"].(string),
			})
		}
	}
	return cfg
}

func flattenThrottle(t *dto.ThrottleConfig) []interface{} {
	if t == nil {
		return nil
	}
	return []interface{}{map[string]interface{}{
		"burst_limit": int(t.BurstLimit),
		"rate_limit":  t.RateLimit,
	}}
}

func flattenQuota(q *dto.QuotaConfig) []interface{} {
	if q == nil {
		return nil
	}
	return []interface{}{map[string]interface{}{
		"limit":  int(q.Limit),
		"offset": int(q.Offset),
		"period": q.Period,
	}}
}

func flattenStages(stages []dto.StageConfig) []interface{} {
	out := make([]interface{}, 0, len(stages))
	for _, st := range stages {
		out = append(out, map[string]interface{}{"api_id": st.APIID, "stage": st.Stage})
	}
	return out
}
