package graphql

import (
	_ "embed"
	"sync"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var schemaSource string

// Operation pairs a named GraphQL document with the name the server logs
// it under. All operations this package can issue are declared as package
// vars via newOperation, so tests can validate every document against the
// embedded schema.
type Operation struct {
	Name     string
	Document string
}

var operations []Operation

func newOperation(name, document string) Operation {
	op := Operation{Name: name, Document: document}
	operations = append(operations, op)
	return op
}

// Operations returns every operation this package defines.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	copy(out, operations)
	return out
}

// SchemaSource returns the embedded schema document, shared with the
// sandbox backend so client and test server cannot drift apart.
func SchemaSource() string {
	return schemaSource
}

var (
	schemaOnce sync.Once
	schema     *ast.Schema
	schemaErr  error
)

// Schema parses the embedded schema once.
func Schema() (*ast.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gqlparser.LoadSchema(&ast.Source{
			Name:  "schema.graphql",
			Input: schemaSource,
		})
	})
	return schema, schemaErr
}

// Validate parses and validates the operation document against the
// embedded schema.
func (op Operation) Validate() error {
	s, err := Schema()
	if err != nil {
		return err
	}
	if _, errs := gqlparser.LoadQuery(s, op.Document); len(errs) > 0 {
		return errs
	}
	return nil
}
