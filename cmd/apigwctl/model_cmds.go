package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raywall/apigateway-kit/internal/repository"
	"github.com/raywall/apigateway-kit/pkg/model"
)

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes [prefix]",
		Short: "List the modelled shapes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			for _, name := range model.ShapeNames() {
				if strings.HasPrefix(name, prefix) {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
			return nil
		},
	}
}

func newOperationsCmd() *cobra.Command {
	var boundOnly bool

	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List the modelled operations and their HTTP bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bound := make(map[string]bool)
			for _, name := range repository.BoundOperations() {
				bound[name] = true
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OPERATION\tMETHOD\tURI\tINPUT\tOUTPUT\tINVOKE")
			for _, op := range model.Operations() {
				if boundOnly && !bound[op.Name] {
					continue
				}
				output := op.Output
				if output == "" {
					output = "-"
				}
				invoke := ""
				if bound[op.Name] {
					invoke = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", op.Name, op.HTTPMethod, op.RequestURI, op.Input, output, invoke)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&boundOnly, "invokable", false, "Only list operations accepted by invoke")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		file     string
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "render <Shape>",
		Short: "Decode a YAML/JSON document into a shape and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := model.NewShape(args[0])
			if !ok {
				return fmt.Errorf("unknown shape %q", args[0])
			}
			shape, ok := v.(model.Shape)
			if !ok {
				return fmt.Errorf("%s is not a renderable shape", args[0])
			}

			if file != "" {
				data, err := readInput(file)
				if err != nil {
					return err
				}
				if err := model.DecodeYAML(data, shape); err != nil {
					return err
				}
			}
			if validate {
				if err := shape.Validate(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), shape.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Document to decode (- for stdin)")
	cmd.Flags().BoolVar(&validate, "validate", false, "Check required members")
	return cmd
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		data, err := readAllStdin()
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return data, nil
}
