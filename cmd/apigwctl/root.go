package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raywall/apigateway-kit/internal/client"
	"github.com/raywall/apigateway-kit/internal/config"
	"github.com/raywall/apigateway-kit/internal/logger"
	"github.com/raywall/apigateway-kit/internal/repository"
	"github.com/raywall/apigateway-kit/internal/service"
	"github.com/raywall/apigateway-kit/pkg/model"
)

// Invoker executes a modelled operation by name.
type Invoker interface {
	Invoke(ctx context.Context, operation string, req model.Shape) (model.Shape, error)
}

// backend is what the remote subcommands need from AWS.
type backend struct {
	Invoker  Invoker
	RestAPIs *service.RestAPIService
	APIKeys  *service.APIKeyService
}

// app carries the state shared by the subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        zerolog.Logger

	// connect builds the AWS backend; replaced in tests.
	connect func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error)
}

func connectAWS(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
	awsClient, err := client.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws client: %w", err)
	}
	apigwRepo := repository.NewAPIGWRepository(awsClient, cfg, log)
	docs := &repository.DocumentRepository{S3: awsClient.S3, Log: log}
	return &backend{
		Invoker:  apigwRepo,
		RestAPIs: &service.RestAPIService{APIGWRepo: apigwRepo, Documents: docs, Log: log},
		APIKeys:  &service.APIKeyService{APIGWRepo: apigwRepo, Documents: docs, Region: awsClient.Region, Log: log},
	}, nil
}

func newRootCmd(a *app) *cobra.Command {
	if a.v == nil {
		a.v = config.NewViper()
	}
	if a.connect == nil {
		a.connect = connectAWS
	}

	root := &cobra.Command{
		Use:           "apigwctl",
		Short:         "Inspect and call the API Gateway control plane through the generated model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cfg.Logging, cmd.ErrOrStderr())
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default ./apigwctl.yaml or $HOME/.apigwctl/apigwctl.yaml)")
	flags.String("region", "", "AWS region")
	flags.String("profile", "", "AWS shared config profile")
	flags.Bool("param-validation", true, "Validate required members before sending")
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.String("log-format", "", "Log format (json, console)")

	_ = a.v.BindPFlag("region", flags.Lookup("region"))
	_ = a.v.BindPFlag("profile", flags.Lookup("profile"))
	_ = a.v.BindPFlag("paramValidation", flags.Lookup("param-validation"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	root.AddCommand(
		newShapesCmd(),
		newOperationsCmd(),
		newRenderCmd(),
		newInvokeCmd(a),
		newExportCmd(a),
		newImportKeysCmd(a),
	)
	return root
}
