package main

import (
	"os"
	"testing"

	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/resource"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/schema"

	raysouz "github.com/raywall/apigateway-kit/provider"
)

func readTestConfigFile(t *testing.T, filename string) string {
	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Erro ao ler o arquivo de configuração: %v", err)
	}
	return string(content)
}

// Requer TF_ACC=1 e credenciais AWS; resource.Test ignora o teste sem TF_ACC.
func TestProviderAcceptance(t *testing.T) {
	tfConfig := readTestConfigFile(t, "testdata/main.tf")

	resource.Test(t, resource.TestCase{
		ProviderFactories: map[string]func() (*schema.Provider, error){
			"raysouz": func() (*schema.Provider, error) { return raysouz.Provider(), nil },
		},
		Steps: []resource.TestStep{
			{
				Config: tfConfig,
				Check: resource.ComposeTestCheckFunc(
					resource.TestCheckResourceAttrSet("raysouz_apigateway_api_key.partner", "value"),
					resource.TestCheckResourceAttr("raysouz_apigateway_usage_plan.basic", "quota.0.period", "MONTH"),
					resource.TestCheckResourceAttr("raysouz_apigateway_usage_plan.basic", "api_key_ids.#", "1"),
				),
			},
		},
	})
}
