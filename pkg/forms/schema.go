package forms

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// schemaField is the YAML shape of a single field declaration.
type schemaField struct {
	Name        string            `yaml:"name"`
	Kind        string            `yaml:"kind"`
	Label       string            `yaml:"label"`
	Placeholder string            `yaml:"placeholder"`
	Attrs       []schemaAttr      `yaml:"attrs"`
	MinLength   int               `yaml:"min_length"`
	MaxLength   int               `yaml:"max_length"`
	Required    bool              `yaml:"required"`
}

// schemaAttr keeps HTML attributes as a list so document order is
// preserved (a YAML mapping would not guarantee it).
type schemaAttr struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type schemaDoc struct {
	Fields []schemaField `yaml:"fields"`
}

// FromSchema builds a form from a declarative YAML schema:
//
//	fields:
//	  - name: email
//	    kind: email
//	    required: true
//	  - name: bio
//	    kind: long_text
//	    max_length: 500
//
// Field order in the document is declaration order. Unknown kinds are
// rejected rather than silently defaulted, since a schema is an
// explicit declaration, not an inference input.
func FromSchema(data []byte, opts ...Option) (*Form, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields declared", ErrInvalidSchema)
	}

	f := New(opts...)
	for _, sf := range doc.Fields {
		if sf.Name == "" {
			return nil, fmt.Errorf("%w: field with empty name", ErrInvalidSchema)
		}
		kind, ok := KindFromName(sf.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: unknown kind %q for field %q", ErrInvalidSchema, sf.Kind, sf.Name)
		}

		fieldOpts := make([]FieldOption, 0, 4)
		if sf.Required {
			fieldOpts = append(fieldOpts, Required())
		}
		if sf.MinLength > 0 {
			fieldOpts = append(fieldOpts, MinLength(sf.MinLength))
		}
		if sf.MaxLength > 0 {
			fieldOpts = append(fieldOpts, MaxLength(sf.MaxLength))
		}
		if sf.Label != "" {
			fieldOpts = append(fieldOpts, WithLabel(sf.Label))
		}
		if sf.Placeholder != "" {
			fieldOpts = append(fieldOpts, Placeholder(sf.Placeholder))
		}
		for _, attr := range sf.Attrs {
			fieldOpts = append(fieldOpts, WithAttr(attr.Key, attr.Value))
		}
		f.Declare(sf.Name, kind, fieldOpts...)
	}
	return f, nil
}
