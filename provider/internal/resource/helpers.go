package resource

import (
	"fmt"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	"github.com/raywall/apigateway-kit/provider/internal/models"
)

func bundleFrom(m interface{}) (*models.ConfigurationBundle, error) {
	bundle, ok := m.(*models.ConfigurationBundle)
	if !ok || bundle == nil {
		return nil, fmt.Errorf("provider not configured")
	}
	return bundle, nil
}

func toStringSlice(raw interface{}) []string {
	var items []interface{}
	switch v := raw.(type) {
	case []interface{}:
		items = v
	case *schema.Set:
		items = v.List()
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toStringMap(raw interface{}) map[string]string {
	in, _ := raw.(map[string]interface{})
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
