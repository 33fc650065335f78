package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

// File is a rendered, gofmt-ed source file.
type File struct {
	Name    string
	Content []byte
}

// Render produces every generated source file of the model.
func Render(api *API) ([]File, error) {
	var files []File
	for _, name := range api.ShapeNames() {
		view, err := api.shapeView(name)
		if err != nil {
			return nil, err
		}
		f, err := render(shapeTmpl, "model_"+snakeCase(name)+".go", view)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	f, err := render(enumsTmpl, "enums.go", map[string]interface{}{
		"Package": api.Package,
		"Enums":   api.enumViews(),
	})
	if err != nil {
		return nil, err
	}
	files = append(files, f)

	ops, err := api.operationViews()
	if err != nil {
		return nil, err
	}
	f, err = render(operationsTmpl, "operations.go", map[string]interface{}{
		"Package":    api.Package,
		"Operations": ops,
		"Shapes":     api.ShapeNames(),
	})
	if err != nil {
		return nil, err
	}
	return append(files, f), nil
}

// Write renders the model into dir, replacing existing files.
func Write(api *API, dir string) ([]File, error) {
	files, err := Render(api)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	return files, nil
}

func render(tmpl *template.Template, name string, data interface{}) (File, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return File{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("formatting %s: %w\n%s", name, err, buf.String())
	}
	return File{Name: name, Content: src}, nil
}
