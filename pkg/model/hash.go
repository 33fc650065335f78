package model

import (
	"reflect"
	"time"
	"unicode/utf16"
)

const hashPrime = 31

// hashShape folds every member into h = 31*h + hash(member), starting at 1.
// Unset members contribute 0. The member hashes follow the JVM conventions
// (string, boolean, list and map hashing) so that values hash identically
// across the service SDKs.
func hashShape(v interface{}) int32 {
	return hashValue(reflect.ValueOf(v))
}

func hashValue(v reflect.Value) int32 {
	switch v.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())
	case reflect.String:
		return hashString(v.String())
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237
	case reflect.Int32:
		return int32(v.Int())
	case reflect.Int, reflect.Int64:
		x := uint64(v.Int())
		return int32(x ^ (x >> 32))
	case reflect.Float32, reflect.Float64:
		bits := floatBits(v.Float())
		return int32(bits ^ (bits >> 32))
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return hashBytes(v.Bytes())
		}
		h := int32(1)
		for i := 0; i < v.Len(); i++ {
			h = hashPrime*h + hashValue(v.Index(i))
		}
		return h
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		var h int32
		iter := v.MapRange()
		for iter.Next() {
			h += hashValue(iter.Key()) ^ hashValue(iter.Value())
		}
		return h
	case reflect.Struct:
		if v.Type() == timeType {
			ms := uint64(v.Interface().(time.Time).UnixMilli())
			return int32(ms ^ (ms >> 32))
		}
		h := int32(1)
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).PkgPath != "" {
				continue
			}
			h = hashPrime*h + hashValue(v.Field(i))
		}
		return h
	}
	return 0
}

func hashString(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = hashPrime*h + int32(c)
	}
	return h
}

// hashBytes walks the buffer from the end, like a heap byte buffer does.
func hashBytes(b []byte) int32 {
	h := int32(1)
	for i := len(b) - 1; i >= 0; i-- {
		h = hashPrime*h + int32(int8(b[i]))
	}
	return h
}
