package model

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var bytesType = reflect.TypeOf([]byte(nil))

// Decode fills shape, a pointer to a generated shape, from a generic map
// keyed by wire member names, as produced by YAML or JSON decoders.
// Timestamps are RFC 3339 strings and blobs are base64 strings. Unknown keys
// are an error.
func Decode(input map[string]interface{}, shape interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           shape,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			base64BlobHook,
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("decoding %T: %w", shape, err)
	}
	return nil
}

// DecodeYAML decodes a YAML (or JSON) document into shape.
func DecodeYAML(data []byte, shape interface{}) error {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return Decode(raw, shape)
}

func base64BlobHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != bytesType {
		return data, nil
	}
	b, err := base64.StdEncoding.DecodeString(data.(string))
	if err != nil {
		return nil, fmt.Errorf("blob is not valid base64: %w", err)
	}
	return b, nil
}
