package http

import (
	"fmt"
	"net/http"
	"sync"

	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// apiDocs serves the embedded OpenAPI document as JSON and registers it
// with swag so echo-swagger's UI reads the same document.
type apiDocs struct {
	json []byte
}

var registerOnce sync.Once

func newAPIDocs() (*apiDocs, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	docs := &apiDocs{json: doc}
	registerOnce.Do(func() {
		swag.Register(swag.Name, docs)
	})
	return docs, nil
}

// ReadDoc implements swag.Swagger.
func (d *apiDocs) ReadDoc() string {
	return string(d.json)
}

func (d *apiDocs) serveJSON(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, d.json)
}
