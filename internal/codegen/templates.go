package codegen

import "text/template"

const header = "// Code generated by modelgen. DO NOT EDIT.\n"

var shapeTmpl = template.Must(template.New("shape").Parse(header + `
package {{ .Package }}
{{ if .Imports }}
import (
{{- range .Imports }}
{{ if . }}	"{{ . }}"{{ end }}
{{- end }}
)
{{ end }}
{{ range .Doc }}{{ . }}
{{ end -}}
{{ if not .Members -}}
type {{ .Name }} struct{}
{{- else -}}
type {{ .Name }} struct {
{{- range $i, $m := .Members }}
{{- if $i }}
{{ end }}
{{- range $m.Doc }}
	{{ . }}
{{- end }}
	{{ $m.GoName }} {{ $m.FieldType }} ` + "`{{ $m.Tag }}`" + `
{{- end }}
}
{{- end }}

// String returns the string representation.
func (s {{ .Name }}) String() string {
	return stringify(s)
}

// GoString returns the string representation.
func (s {{ .Name }}) GoString() string {
	return s.String()
}
{{- range .Members }}

// Get{{ .GoName }} returns the value of {{ .GoName }}, or its zero value when unset.
func (s *{{ $.Name }}) Get{{ .GoName }}() {{ .ValueType }} {
{{- if .Pointer }}
	if s == nil || s.{{ .GoName }} == nil {
		return {{ .Zero }}
	}
	return *s.{{ .GoName }}
{{- else }}
	if s == nil {
		return nil
	}
	return s.{{ .GoName }}
{{- end }}
}

// Set{{ .GoName }} sets the {{ .GoName }} field's value.
func (s *{{ $.Name }}) Set{{ .GoName }}(v {{ .ValueType }}) *{{ $.Name }} {
{{- if .Pointer }}
	s.{{ .GoName }} = &v
{{- else }}
	s.{{ .GoName }} = v
{{- end }}
	return s
}
{{- if .MapValue }}

// Add{{ .GoName }}Entry adds an entry to {{ .GoName }}. It returns a *DuplicateKeyError
// and leaves the map unchanged when key is already present.
func (s *{{ $.Name }}) Add{{ .GoName }}Entry(key string, value {{ .MapValue }}) error {
	if s.{{ .GoName }} == nil {
		s.{{ .GoName }} = make({{ .ValueType }})
	}
	if _, ok := s.{{ .GoName }}[key]; ok {
		return &DuplicateKeyError{Shape: "{{ $.Name }}", Member: "{{ .Name }}", Key: key}
	}
	s.{{ .GoName }}[key] = value
	return nil
}

// Clear{{ .GoName }}Entries removes every entry of {{ .GoName }}.
func (s *{{ $.Name }}) Clear{{ .GoName }}Entries() *{{ $.Name }} {
	s.{{ .GoName }} = nil
	return s
}
{{- end }}
{{- end }}

// Equal reports whether s and other hold the same values.
func (s *{{ .Name }}) Equal(other *{{ .Name }}) bool {
	return equalShapes(s, other)
}

// Hash returns a hash code consistent with Equal.
func (s *{{ .Name }}) Hash() int32 {
	return hashShape(s)
}

// Copy returns a deep copy of s.
func (s *{{ .Name }}) Copy() *{{ .Name }} {
	return copyShape(s)
}

// Validate checks that every required field is set.
func (s *{{ .Name }}) Validate() error {
	return validateShape("{{ .Name }}", s)
}
{{- with .Exception }}

// Error satisfies the error interface.
func (s *{{ $.Name }}) Error() string {
	return fmt.Sprintf("%s: %s", s.ErrorCode(), s.ErrorMessage())
}

// ErrorCode returns the service error code.
func (s *{{ $.Name }}) ErrorCode() string {
	return "{{ .Code }}"
}

// ErrorMessage returns the message reported by the service.
func (s *{{ $.Name }}) ErrorMessage() string {
	return s.GetMessage()
}

// ErrorFault reports whether the client or the service is at fault.
func (s *{{ $.Name }}) ErrorFault() smithy.ErrorFault {
	return smithy.{{ .Fault }}
}
{{- end }}
`))

var enumsTmpl = template.Must(template.New("enums").Parse(header + `
package {{ .Package }}
{{ range $e := .Enums }}
// {{ .Name }} enumerates the modelled values of {{ .Name }}.
type {{ .Name }} string

// Enum values for {{ .Name }}.
const (
{{- range .Values }}
	{{ printf "%-*s" $e.Width .Const }} {{ $e.Name }} = "{{ .Value }}"
{{- end }}
)

// Values returns every modelled {{ .Name }} value.
func ({{ .Name }}) Values() []{{ .Name }} {
	return []{{ .Name }}{
{{- range .Values }}
		"{{ .Value }}",
{{- end }}
	}
}

// IsKnown reports whether e is one of the modelled values.
func (e {{ .Name }}) IsKnown() bool {
	for _, v := range e.Values() {
		if v == e {
			return true
		}
	}
	return false
}

// String returns the wire value.
func (e {{ .Name }}) String() string {
	return string(e)
}
{{ end -}}
`))

var operationsTmpl = template.Must(template.New("operations").Parse(header + `
package {{ .Package }}

var operations = []Operation{
{{- range .Operations }}
	{Name: "{{ .Name }}", HTTPMethod: "{{ .HTTPMethod }}", RequestURI: "{{ .RequestURI }}", Input: "{{ .Input }}"{{ if .Output }}, Output: "{{ .Output }}"{{ end }}},
{{- end }}
}

var shapeNames = []string{
{{- range .Shapes }}
	"{{ . }}",
{{- end }}
}

// NewShape returns a new zero value of the named shape.
func NewShape(name string) (interface{}, bool) {
	switch name {
{{- range .Shapes }}
	case "{{ . }}":
		return new({{ . }}), true
{{- end }}
	}
	return nil, false
}
`))
