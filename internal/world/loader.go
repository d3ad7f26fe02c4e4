package world

import (
	"bytes"
	"io"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
)

// ValidateDocument checks a decoded YAML or JSON document against the world
// schema. Every schema violation is reported as a field error.
func ValidateDocument(doc interface{}) error {
	schema, err := compiledSchema()
	if err != nil {
		return errors.Wrap(err, "failed to compile world schema")
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to validate world document")
	}
	if result.Valid() {
		return nil
	}

	vb := errors.NewValidationBuilder()
	for _, desc := range result.Errors() {
		vb.Field(desc.Field(), desc.Description())
	}
	return vb.Build()
}

// Decode parses a YAML (or JSON) world document, validates it against the
// schema and returns the definition. It does not link the world; call Build
// for that.
func Decode(data []byte) (*Definition, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse world document")
	}
	if doc == nil {
		return nil, errors.InvalidArgument("world document is empty")
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode world document")
	}
	return &def, nil
}

// Load reads, validates and links a world document
func Load(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read world document")
	}

	def, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Build(def)
}

// LoadFile loads a world from a YAML file on disk
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("world file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open world file %s", path)
	}
	defer f.Close()

	return Load(f)
}
