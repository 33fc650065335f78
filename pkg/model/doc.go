// Package model holds the request, result and shared shapes of the Amazon API
// Gateway (REST) control-plane API.
//
// Shapes are generated from api/apigateway.yaml. Every member is optional at
// the type level: scalars are pointers, enums are pointers to a named string
// type, and lists, maps and blobs are nil when unset. Each shape exposes
// nil-safe getters, fluent setters, AddXEntry/ClearXEntries for map members,
// String, Equal, Hash, Copy and Validate.
//
//	req := new(model.CreateApiKeyRequest).SetName("demo").SetEnabled(true)
//	if err := req.AddTagsEntry("env", "prod"); err != nil {
//		return err
//	}
//
// Shapes are plain values and are not safe for concurrent mutation.
package model

//go:generate go run ../../cmd/modelgen --model ../../api/apigateway.yaml --out .
