package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raywall/apigateway-kit/pkg/model"
)

func readAllStdin() ([]byte, error) { return io.ReadAll(os.Stdin) }

func newInvokeCmd(a *app) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "invoke <Operation>",
		Short: "Send a request document to an operation and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operation := args[0]
			req, ok := model.NewRequest(operation)
			if !ok {
				return fmt.Errorf("unknown operation %q", operation)
			}
			if file != "" {
				data, err := readInput(file)
				if err != nil {
					return err
				}
				if err := model.DecodeYAML(data, req); err != nil {
					return err
				}
			}

			b, err := a.connect(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return err
			}
			res, err := b.Invoker.Invoke(cmd.Context(), operation, req)
			if err != nil {
				return err
			}
			a.log.Debug().Str("operation", operation).Msg("operation succeeded")
			if res == nil {
				return nil
			}
			return printShape(cmd.OutOrStdout(), res, output)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Request document in YAML or JSON (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json, yaml, text)")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var apiID, stage, exportType, accepts, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a deployed stage as OpenAPI/Swagger to a file or s3://bucket/key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.connect(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return err
			}
			if err := b.RestAPIs.Export(cmd.Context(), apiID, stage, exportType, accepts, out); err != nil {
				return err
			}
			a.log.Info().Str("api_id", apiID).Str("stage", stage).Str("destination", out).Msg("export written")
			return nil
		},
	}
	cmd.Flags().StringVar(&apiID, "api-id", "", "REST API id")
	cmd.Flags().StringVar(&stage, "stage", "", "Stage name")
	cmd.Flags().StringVar(&exportType, "type", "oas30", "Export type (oas30, swagger)")
	cmd.Flags().StringVar(&accepts, "accepts", "application/yaml", "Content type (application/json, application/yaml)")
	cmd.Flags().StringVar(&out, "out", "", "Destination path or s3://bucket/key")
	_ = cmd.MarkFlagRequired("api-id")
	_ = cmd.MarkFlagRequired("stage")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newImportKeysCmd(a *app) *cobra.Command {
	var (
		file           string
		failOnWarnings bool
	)

	cmd := &cobra.Command{
		Use:   "import-keys",
		Short: "Import API keys from a CSV file or s3://bucket/key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.connect(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return err
			}
			ids, err := b.APIKeys.Import(cmd.Context(), file, failOnWarnings)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV location")
	cmd.Flags().BoolVar(&failOnWarnings, "fail-on-warnings", false, "Reject the import on any warning")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// printShape writes a result as indented JSON, YAML or the shape's String form.
func printShape(w io.Writer, shape model.Shape, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, shape.String())
		return err
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	data, err := json.MarshalIndent(shape, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
