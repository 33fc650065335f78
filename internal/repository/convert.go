package repository

import (
	"encoding/json"
	"fmt"
)

// convert copia in para um novo *Out casando campos pelo nome. Os tipos do
// SDK não têm tags json, então o encoding/json associa os nomes camelCase do
// modelo aos nomes Go do SDK sem diferenciar maiúsculas. Ponteiros e valores,
// enums e blobs (base64) se convertem nos dois sentidos.
func convert[Out any](in interface{}) (*Out, error) {
	out := new(Out)
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", in, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("decoding into %T: %w", out, err)
	}
	return out, nil
}
