package main

import (
	"github.com/hashicorp/terraform-plugin-sdk/v2/plugin"

	raysouz "github.com/raywall/apigateway-kit/provider"
)

func main() {
	plugin.Serve(&plugin.ServeOpts{
		ProviderFunc: raysouz.Provider,
	})
}
