// Command modelgen renders the pkg/model shapes from the YAML service model.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/raywall/apigateway-kit/internal/codegen"
)

func newRootCmd() *cobra.Command {
	var (
		modelPath string
		outDir    string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:          "modelgen",
		Short:        "Generate the API Gateway model package from a YAML service model",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()

			api, err := codegen.Load(modelPath)
			if err != nil {
				return err
			}

			var files []codegen.File
			if dryRun {
				files, err = codegen.Render(api)
			} else {
				files, err = codegen.Write(api, outDir)
			}
			if err != nil {
				return err
			}

			log.Info().
				Str("service", api.Service).
				Int("shapes", len(api.Shapes)).
				Int("operations", len(api.Operations)).
				Int("files", len(files)).
				Bool("dry_run", dryRun).
				Msg("model generated")
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "api/apigateway.yaml", "Path to the YAML service model")
	cmd.Flags().StringVar(&outDir, "out", "pkg/model", "Output directory for the generated package")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render without writing files")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
