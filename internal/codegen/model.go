package codegen

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// API is the YAML shape model of a service.
type API struct {
	Service    string                 `yaml:"service"`
	APIVersion string                 `yaml:"apiVersion"`
	Package    string                 `yaml:"package"`
	Enums      map[string][]EnumValue `yaml:"enums"`
	Shapes     map[string]*Shape      `yaml:"shapes"`
	Operations []*Operation           `yaml:"operations"`
}

// EnumValue is a single enum entry. The YAML form is either the bare value
// or a mapping with an explicit Go constant suffix.
type EnumValue struct {
	Value string `yaml:"value"`
	Name  string `yaml:"name"`
}

// UnmarshalYAML accepts both `VALUE` and `{value: VALUE, name: Suffix}`.
func (e *EnumValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Value = node.Value
		return nil
	}
	type plain EnumValue
	return node.Decode((*plain)(e))
}

// Shape is a structure of the model.
type Shape struct {
	Doc       string     `yaml:"doc"`
	Mirror    string     `yaml:"mirror"`
	Exception *Exception `yaml:"exception"`
	Members   []*Member  `yaml:"members"`
}

// Exception marks a shape returned as a service fault.
type Exception struct {
	Code  string `yaml:"code"`
	Fault string `yaml:"fault"`
}

// Member is a field of a shape.
type Member struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Location string `yaml:"loc"`
	Wire     string `yaml:"wire"`
	Required bool   `yaml:"required"`
	Doc      string `yaml:"doc"`
}

// Operation binds an HTTP route to its request and result shapes.
type Operation struct {
	Name   string `yaml:"name"`
	HTTP   string `yaml:"http"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Load reads and checks a YAML model file.
func Load(path string) (*API, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML model and resolves mirrored shapes.
func Parse(data []byte) (*API, error) {
	var api API
	if err := yaml.Unmarshal(data, &api); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	if api.Package == "" {
		api.Package = "model"
	}
	for name, s := range api.Shapes {
		if s == nil {
			return nil, fmt.Errorf("shape %s has no definition", name)
		}
		if s.Mirror == "" {
			continue
		}
		src, ok := api.Shapes[s.Mirror]
		if !ok {
			return nil, fmt.Errorf("shape %s mirrors unknown shape %s", name, s.Mirror)
		}
		if src.Mirror != "" {
			return nil, fmt.Errorf("shape %s mirrors %s, which is itself a mirror", name, s.Mirror)
		}
		s.Members = src.Members
		if s.Doc == "" {
			s.Doc = src.Doc
		}
	}
	for _, op := range api.Operations {
		if _, ok := api.Shapes[op.Input]; !ok {
			return nil, fmt.Errorf("operation %s: unknown input shape %q", op.Name, op.Input)
		}
		if op.Output != "" {
			if _, ok := api.Shapes[op.Output]; !ok {
				return nil, fmt.Errorf("operation %s: unknown output shape %q", op.Name, op.Output)
			}
		}
	}
	return &api, nil
}

// ShapeNames returns the shape names in lexical order.
func (a *API) ShapeNames() []string {
	names := make([]string, 0, len(a.Shapes))
	for name := range a.Shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnumNames returns the enum names in lexical order.
func (a *API) EnumNames() []string {
	names := make([]string, 0, len(a.Enums))
	for name := range a.Enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *API) isEnum(name string) bool {
	_, ok := a.Enums[name]
	return ok
}

func (a *API) isShape(name string) bool {
	_, ok := a.Shapes[name]
	return ok
}
