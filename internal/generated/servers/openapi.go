package servers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawDocument []byte

var (
	swaggerOnce   sync.Once
	loadedSwagger *openapi3.T
	swaggerErr    error
)

// GetSwagger returns the parsed OpenAPI document. The result is shared; do
// not mutate it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		loadedSwagger, swaggerErr = loader.LoadFromData(rawDocument)
		if swaggerErr != nil {
			swaggerErr = fmt.Errorf("error loading Swagger: %w", swaggerErr)
		}
	})
	return loadedSwagger, swaggerErr
}

// swaggerDoc serves the document to echo-swagger through the swag registry.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	loaded, err := GetSwagger()
	if err != nil {
		return "{}"
	}
	doc, err := json.Marshal(loaded)
	if err != nil {
		return "{}"
	}
	return string(doc)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
