package world

import (
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/KirkDiggler/rpg-perception/internal/geometry"
)

// definitionSchema checks the shape of a world document before it is decoded.
// Cross references (portal endpoints, group members) are left to Build.
const definitionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "rooms"],
  "additionalProperties": false,
  "definitions": {
    "id": {"type": "string", "format": "entity_id"},
    "vector": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "x": {"type": "integer"},
        "y": {"type": "integer"},
        "z": {"type": "integer"}
      }
    },
    "multipliers": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
    }
  },
  "properties": {
    "id": {"$ref": "#/definitions/id"},
    "name": {"type": "string"},
    "rooms": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id"],
        "additionalProperties": false,
        "properties": {
          "id": {"$ref": "#/definitions/id"},
          "name": {"type": "string"},
          "position": {"$ref": "#/definitions/vector"},
          "flags": {"type": "string"},
          "multipliers": {"$ref": "#/definitions/multipliers"},
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "name"],
              "additionalProperties": false,
              "properties": {
                "id": {"$ref": "#/definitions/id"},
                "name": {"type": "string", "minLength": 1},
                "plural": {"type": "string"},
                "offset": {"$ref": "#/definitions/vector"},
                "attachment": {"enum": ["", "wall", "ceiling"]}
              }
            }
          }
        }
      }
    },
    "portals": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "a", "b"],
        "additionalProperties": false,
        "properties": {
          "id": {"$ref": "#/definitions/id"},
          "name": {"type": "string"},
          "a": {"$ref": "#/definitions/id"},
          "b": {"$ref": "#/definitions/id"},
          "side_a": {"type": "string"},
          "side_b": {"type": "string"},
          "open": {"type": "boolean"},
          "multipliers": {"$ref": "#/definitions/multipliers"}
        }
      }
    },
    "characters": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "room"],
        "additionalProperties": false,
        "properties": {
          "id": {"$ref": "#/definitions/id"},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "plural": {"type": "string"},
          "gender": {"enum": ["", "male", "female"]},
          "race": {"type": "string"},
          "animal": {"type": "boolean"},
          "room": {"$ref": "#/definitions/id"},
          "facing": {"type": "string", "format": "direction"},
          "action": {
            "type": "object",
            "additionalProperties": false,
            "properties": {
              "kind": {"enum": ["", "walking", "running", "fighting", "guarding"]},
              "direction": {"type": "string", "format": "direction"},
              "target": {"type": "string"}
            }
          }
        }
      }
    },
    "groups": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "leader"],
        "additionalProperties": false,
        "properties": {
          "id": {"$ref": "#/definitions/id"},
          "name": {"type": "string"},
          "leader": {"$ref": "#/definitions/id"},
          "members": {"type": "array", "items": {"$ref": "#/definitions/id"}}
        }
      }
    }
  }
}`

type entityIDFormatChecker struct{}

// IsFormat accepts non-empty ids made of letters, digits, dots, dashes and underscores
func (entityIDFormatChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok || s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("._-", r):
		default:
			return false
		}
	}
	return true
}

type directionFormatChecker struct{}

// IsFormat accepts an empty string or any named direction
func (directionFormatChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return false
	}
	if s == "" {
		return true
	}
	_, ok = geometry.DirectionByName(s)
	return ok
}

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	gojsonschema.FormatCheckers.Add("entity_id", entityIDFormatChecker{})
	gojsonschema.FormatCheckers.Add("direction", directionFormatChecker{})
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(definitionSchema))
})
