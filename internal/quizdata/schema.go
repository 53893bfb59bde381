package quizdata

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

type schemaSet struct {
	attempt    *jsonschema.Schema
	quizDetail *jsonschema.Schema
}

var loadSchemas = sync.OnceValues(func() (*schemaSet, error) {
	c := jsonschema.NewCompiler()
	attempt, err := compileSchema(c, "attempt.json")
	if err != nil {
		return nil, err
	}
	quizDetail, err := compileSchema(c, "quiz_detail.json")
	if err != nil {
		return nil, err
	}
	return &schemaSet{attempt: attempt, quizDetail: quizDetail}, nil
})

func compileSchema(c *jsonschema.Compiler, name string) (*jsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}
	url := "schema://quizdata/" + name
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return compiled, nil
}
