// Package api holds the HTTP contract of the service: the OpenAPI document and
// the models and echo ServerInterface generated from it into api.gen.go.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.1 --config=oapi-codegen.yaml openapi.yaml

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiYAML []byte

var (
	loadOnce sync.Once
	loaded   *openapi3.T
	loadErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The document is
// parsed once; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openapiYAML)
		if err != nil {
			loadErr = err
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			loadErr = err
			return
		}
		loaded = doc
	})
	return loaded, loadErr
}
