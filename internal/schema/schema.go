// Package schema validates a candidate configuration document against the
// fixed Perch config schema before it is persisted.
//
// The schema is a static, versioned JSON Schema describing the recognized
// top-level and nested config keys. Validation is a hook point, not a
// general schema language: callers either run the candidate through
// Validate or bypass it explicitly with --no-validate.
package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/perchhub/perch-config/internal/document"
	perrors "github.com/perchhub/perch-config/internal/errors"
)

// Version identifies the config schema revision.
const Version = "1"

// configSchema describes the recognized shape of a Perch config document.
// Unknown top-level keys are allowed so that deployments can carry
// site-local settings; recognized keys must have the right types.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "perch-config schema v` + Version + `",
  "type": "object",
  "properties": {
    "base_url": {"type": "string"},
    "auth": {
      "type": "object",
      "properties": {
        "type": {"type": "string"}
      }
    },
    "users": {
      "type": "object",
      "properties": {
        "allowed": {"type": "array", "items": {"type": "string"}},
        "banned": {"type": "array", "items": {"type": "string"}},
        "admin": {"type": "array", "items": {"type": "string"}},
        "extra_user_groups": {
          "type": "object",
          "additionalProperties": {"type": "array", "items": {"type": "string"}}
        }
      },
      "additionalProperties": false
    },
    "limits": {
      "type": "object",
      "properties": {
        "memory": {"type": ["string", "null"]},
        "cpu": {"type": ["number", "null"]}
      },
      "additionalProperties": false
    },
    "http": {
      "type": "object",
      "properties": {
        "address": {"type": "string"},
        "port": {"type": "integer"}
      },
      "additionalProperties": false
    },
    "https": {
      "type": "object",
      "properties": {
        "enabled": {"type": "boolean"},
        "address": {"type": "string"},
        "port": {"type": "integer"},
        "tls": {
          "type": "object",
          "properties": {
            "cert": {"type": "string"},
            "key": {"type": "string"}
          },
          "additionalProperties": false
        },
        "letsencrypt": {
          "type": "object",
          "properties": {
            "email": {"type": "string"},
            "domains": {"type": "array", "items": {"type": "string"}},
            "staging": {"type": "boolean"}
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    },
    "user_environment": {
      "type": "object",
      "properties": {
        "default_app": {"type": "string", "enum": ["notebook", "lab"]}
      },
      "additionalProperties": false
    },
    "hub_environment": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "services": {"type": "object"}
  }
}`

// Validate checks a candidate document against the config schema. It
// returns nil when the document conforms, and an error wrapping
// ErrValidationFailed with the schema violation message otherwise.
func Validate(doc document.Mapping) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	documentLoader := gojsonschema.NewGoLoader(document.ToGo(doc))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("%w: %s", perrors.ErrValidationFailed, strings.Join(violations, "; "))
}
