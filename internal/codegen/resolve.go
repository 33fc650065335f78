package codegen

import (
	"fmt"
	"strings"
)

const docWidth = 72

var scalarTypes = map[string]string{
	"string":    "string",
	"boolean":   "bool",
	"integer":   "int32",
	"long":      "int64",
	"double":    "float64",
	"timestamp": "time.Time",
	"blob":      "[]byte",
}

var zeroValues = map[string]string{
	"string":    `""`,
	"bool":      "false",
	"int32":     "0",
	"int64":     "0",
	"float64":   "0",
	"time.Time": "time.Time{}",
}

type shapeView struct {
	Package   string
	Name      string
	Doc       []string
	Imports   []string
	Members   []*memberView
	Exception *exceptionView
}

type exceptionView struct {
	Code  string
	Fault string
}

type memberView struct {
	Name      string
	GoName    string
	FieldType string
	ValueType string
	MapValue  string
	Zero      string
	Tag       string
	Pointer   bool
	Doc       []string
}

type enumView struct {
	Name   string
	Width  int
	Values []enumValueView
}

type enumValueView struct {
	Const string
	Value string
}

type operationView struct {
	Name       string
	HTTPMethod string
	RequestURI string
	Input      string
	Output     string
}

// goType resolves a model type expression to the Go type used for values and
// container elements.
func (a *API) goType(expr string) (string, error) {
	switch {
	case strings.HasPrefix(expr, "list<") && strings.HasSuffix(expr, ">"):
		elem, err := a.goType(expr[len("list<") : len(expr)-1])
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case strings.HasPrefix(expr, "map<") && strings.HasSuffix(expr, ">"):
		elem, err := a.goType(expr[len("map<") : len(expr)-1])
		if err != nil {
			return "", err
		}
		return "map[string]" + elem, nil
	}
	if t, ok := scalarTypes[expr]; ok {
		return t, nil
	}
	if a.isEnum(expr) {
		return expr, nil
	}
	if a.isShape(expr) {
		return "*" + expr, nil
	}
	return "", fmt.Errorf("unknown type %q", expr)
}

func (a *API) memberView(shape string, m *Member) (*memberView, error) {
	valueType, err := a.goType(m.Type)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", shape, m.Name, err)
	}
	v := &memberView{
		Name:      m.Name,
		GoName:    exportedName(m.Name),
		ValueType: valueType,
		FieldType: valueType,
	}
	if zero, ok := zeroValues[valueType]; ok {
		v.Pointer = true
		v.Zero = zero
	} else if a.isEnum(m.Type) {
		v.Pointer = true
		v.Zero = `""`
	}
	if v.Pointer {
		v.FieldType = "*" + valueType
	}
	if strings.HasPrefix(valueType, "map[string]") {
		v.MapValue = strings.TrimPrefix(valueType, "map[string]")
	}

	tag := fmt.Sprintf(`json:"%s,omitempty"`, m.Name)
	if m.Location != "" {
		tag += fmt.Sprintf(` location:"%s"`, m.Location)
	}
	if m.Wire != "" {
		tag += fmt.Sprintf(` locationName:"%s"`, m.Wire)
	}
	if m.Required {
		tag += ` validate:"required"`
	}
	v.Tag = tag

	for _, line := range wrap(m.Doc, docWidth) {
		v.Doc = append(v.Doc, "// "+line)
	}
	if m.Required {
		if len(v.Doc) > 0 {
			v.Doc = append(v.Doc, "//")
		}
		v.Doc = append(v.Doc, "// "+v.GoName+" is a required field")
	}
	return v, nil
}

func (a *API) shapeView(name string) (*shapeView, error) {
	s := a.Shapes[name]
	view := &shapeView{Package: a.Package, Name: name}

	var lead string
	switch {
	case strings.HasSuffix(name, "Request"):
		lead = fmt.Sprintf("%s is the input of the %s operation.", name, strings.TrimSuffix(name, "Request"))
	case strings.HasSuffix(name, "Result"):
		lead = fmt.Sprintf("%s is the output of the %s operation.", name, strings.TrimSuffix(name, "Result"))
	}
	for _, line := range wrap(lead, docWidth) {
		view.Doc = append(view.Doc, "// "+line)
	}
	if s.Doc != "" {
		if len(view.Doc) > 0 {
			view.Doc = append(view.Doc, "//")
		}
		for _, line := range wrap(s.Doc, docWidth) {
			view.Doc = append(view.Doc, "// "+line)
		}
	}

	usesTime := false
	for _, m := range s.Members {
		mv, err := a.memberView(name, m)
		if err != nil {
			return nil, err
		}
		if strings.Contains(mv.ValueType, "time.Time") {
			usesTime = true
		}
		view.Members = append(view.Members, mv)
	}

	if s.Exception != nil {
		fault := "FaultClient"
		if s.Exception.Fault == "server" {
			fault = "FaultServer"
		}
		code := s.Exception.Code
		if code == "" {
			code = name
		}
		view.Exception = &exceptionView{Code: code, Fault: fault}
		view.Imports = append(view.Imports, "fmt")
		if usesTime {
			view.Imports = append(view.Imports, "time")
		}
		view.Imports = append(view.Imports, "", "github.com/aws/smithy-go")
	} else if usesTime {
		view.Imports = append(view.Imports, "time")
	}
	return view, nil
}

func (a *API) enumViews() []enumView {
	var views []enumView
	for _, name := range a.EnumNames() {
		ev := enumView{Name: name}
		for _, v := range a.Enums[name] {
			c := enumConstName(name, v)
			if len(c) > ev.Width {
				ev.Width = len(c)
			}
			ev.Values = append(ev.Values, enumValueView{Const: c, Value: v.Value})
		}
		views = append(views, ev)
	}
	return views
}

func (a *API) operationViews() ([]operationView, error) {
	views := make([]operationView, 0, len(a.Operations))
	for _, op := range a.Operations {
		method, uri, ok := strings.Cut(op.HTTP, " ")
		if !ok {
			return nil, fmt.Errorf("operation %s: http binding %q is not \"METHOD /uri\"", op.Name, op.HTTP)
		}
		views = append(views, operationView{
			Name:       op.Name,
			HTTPMethod: method,
			RequestURI: uri,
			Input:      op.Input,
			Output:     op.Output,
		})
	}
	return views, nil
}
