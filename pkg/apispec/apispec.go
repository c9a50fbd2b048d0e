// Package apispec embeds the OpenAPI description of the HTTP surface and
// exposes it parsed through kin-openapi.
package apispec

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// ContentType is served with the raw document.
const ContentType = "application/yaml"

// Operation identifies one documented route.
type Operation struct {
	ID     string
	Method string
	Path   string
}

// Raw returns a copy of the embedded document.
func Raw() []byte {
	out := make([]byte, len(document))
	copy(out, document)
	return out
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	return Parse(ctx, document)
}

// Parse parses and validates data as an OpenAPI 3 document. External
// references are refused.
func Parse(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("apispec: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("apispec: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("apispec: validate: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("apispec: document does not contain any paths")
	}
	return spec, nil
}

// Operations lists the documented operations sorted by path then method.
// Operations without an operationId get "<method>:<path>".
func Operations(spec *openapi3.T) []Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}

	var out []Operation
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = method + ":" + path
			}
			out = append(out, Operation{ID: id, Method: method, Path: path})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// Handler serves the embedded document.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(document)
	})
}
