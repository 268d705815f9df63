package docs

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "2.0", parsed.Swagger)
	assert.Equal(t, SwaggerInfo.Title, parsed.Info.Title)

	expected := map[string][]string{
		"/livros":           {"get", "post"},
		"/livros/{id}":      {"put", "delete"},
		"/clientes":         {"get", "post"},
		"/clientes/{id}":    {"put", "delete"},
		"/emprestimos":      {"get", "post"},
		"/emprestimos/{id}": {"delete"},
		"/health":           {"get"},
	}
	for path, methods := range expected {
		require.Contains(t, parsed.Paths, path)
		for _, method := range methods {
			assert.Contains(t, parsed.Paths[path], method, "%s %s", method, path)
		}
	}
	assert.NotContains(t, parsed.Paths["/emprestimos/{id}"], "put", "loans have no update")

	for _, name := range []string{"entities.Book", "entities.Customer", "entities.Loan", "http.ErrorResponse"} {
		assert.Contains(t, parsed.Definitions, name)
	}
}

func TestSwaggerDocument_BodyParameters(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]map[string]struct {
			Parameters []struct {
				Name        string `json:"name"`
				In          string `json:"in"`
				Description string `json:"description"`
			} `json:"parameters"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	expected := map[string]string{
		"post /livros":       "Book",
		"put /livros/{id}":   "Book",
		"post /clientes":     "Customer",
		"put /clientes/{id}": "Customer",
		"post /emprestimos":  "Loan",
	}
	for route, description := range expected {
		var method, path string
		_, _ = fmt.Sscanf(route, "%s %s", &method, &path)
		op, ok := parsed.Paths[path][method]
		require.True(t, ok, route)

		var found bool
		for _, p := range op.Parameters {
			if p.In == "body" {
				found = true
				assert.Equal(t, description, p.Description, route)
			}
		}
		assert.True(t, found, "%s has a body parameter", route)
	}
}
