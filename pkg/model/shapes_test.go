package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// populate sets every exported member of v to a non-zero sample, descending
// into nested shapes up to a fixed depth.
func populate(v reflect.Value, depth int) {
	if depth > 4 {
		return
	}
	switch v.Kind() {
	case reflect.Ptr:
		p := reflect.New(v.Type().Elem())
		populate(p.Elem(), depth+1)
		v.Set(p)
	case reflect.String:
		v.SetString("sample")
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int32, reflect.Int64:
		v.SetInt(7)
	case reflect.Float64:
		v.SetFloat(2.5)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			v.SetBytes([]byte("payload"))
			return
		}
		s := reflect.MakeSlice(v.Type(), 1, 1)
		populate(s.Index(0), depth+1)
		v.Set(s)
	case reflect.Map:
		m := reflect.MakeMap(v.Type())
		val := reflect.New(v.Type().Elem()).Elem()
		populate(val, depth+1)
		m.SetMapIndex(reflect.ValueOf("key").Convert(v.Type().Key()), val)
		v.Set(m)
	case reflect.Struct:
		if v.Type() == timeType {
			v.Set(reflect.ValueOf(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).PkgPath == "" {
				populate(v.Field(i), depth+1)
			}
		}
	}
}

func call(t *testing.T, v reflect.Value, method string, args ...reflect.Value) []reflect.Value {
	t.Helper()
	m := v.MethodByName(method)
	require.True(t, m.IsValid(), "%s has no %s", v.Type(), method)
	return m.Call(args)
}

func checkContracts(t *testing.T, shape reflect.Value) {
	t.Helper()
	assert.True(t, call(t, shape, "Equal", shape)[0].Bool(), "Equal is not reflexive")

	cp := call(t, shape, "Copy")[0]
	assert.NotEqual(t, shape.Pointer(), cp.Pointer())
	assert.True(t, call(t, shape, "Equal", cp)[0].Bool(), "copy differs from the original")
	assert.True(t, call(t, cp, "Equal", shape)[0].Bool())
	assert.Equal(t, call(t, shape, "Hash")[0].Int(), call(t, cp, "Hash")[0].Int())
}

func TestShapes_Contracts(t *testing.T) {
	names := ShapeNames()
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			v, ok := NewShape(name)
			require.True(t, ok)
			zero := reflect.ValueOf(v)

			checkContracts(t, zero)
			assert.Equal(t, "{}", v.(fmt.Stringer).String())

			full := reflect.New(zero.Type().Elem())
			populate(full.Elem(), 0)
			checkContracts(t, full)
			if full.Elem().NumField() > 0 {
				assert.NotEqual(t, "{}", full.Interface().(fmt.Stringer).String())
				assert.False(t, call(t, zero, "Equal", full)[0].Bool())
			}
		})
	}
}

func TestShapes_MapEntryGuards(t *testing.T) {
	checked := 0
	for _, name := range ShapeNames() {
		v, _ := NewShape(name)
		shape := reflect.ValueOf(v)

		for i := 0; i < shape.NumMethod(); i++ {
			method := shape.Type().Method(i).Name
			if !strings.HasPrefix(method, "Add") || !strings.HasSuffix(method, "Entry") {
				continue
			}
			member := strings.TrimSuffix(strings.TrimPrefix(method, "Add"), "Entry")
			checked++

			t.Run(name+"."+member, func(t *testing.T) {
				add := shape.MethodByName(method)
				key := reflect.ValueOf("k")
				value := reflect.Zero(add.Type().In(1))

				assert.Nil(t, add.Call([]reflect.Value{key, value})[0].Interface())

				err, _ := add.Call([]reflect.Value{key, value})[0].Interface().(error)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrDuplicateKey))
				assert.Equal(t, 1, call(t, shape, "Get"+member)[0].Len())

				call(t, shape, "Clear"+member+"Entries")
				assert.True(t, call(t, shape, "Get"+member)[0].IsNil())
			})
		}
	}
	assert.Positive(t, checked)
}
