package model

import "sort"

// Operation describes the REST binding of a control-plane operation.
type Operation struct {
	Name       string
	HTTPMethod string
	RequestURI string
	Input      string
	Output     string
}

// Operations returns the modelled operations sorted by name.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupOperation returns the operation with the given name.
func LookupOperation(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// ShapeNames returns the names of every generated shape in lexical order.
func ShapeNames() []string {
	out := make([]string, len(shapeNames))
	copy(out, shapeNames)
	return out
}

// NewRequest returns a new, empty request shape for the named operation.
func NewRequest(operation string) (Shape, bool) {
	op, ok := LookupOperation(operation)
	if !ok {
		return nil, false
	}
	s, ok := NewShape(op.Input)
	if !ok {
		return nil, false
	}
	return s.(Shape), true
}
