package storage

import jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

// taskFileDoc describes the on-disk task document: a single JSON array
// of task objects. Field names and enum spellings are fixed for
// compatibility with files produced by prior versions.
const taskFileDoc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "status", "priority", "created", "updated"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "status": {"enum": ["active", "completed"]},
      "priority": {"enum": ["low", "medium", "high"]},
      "due": {"type": "string"},
      "tags": {
        "type": "array",
        "items": {"type": "string"}
      },
      "created": {"type": "string"},
      "updated": {"type": "string"},
      "subtasks": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["id", "title", "completed"],
          "properties": {
            "id": {"type": "string", "minLength": 1},
            "title": {"type": "string", "minLength": 1},
            "completed": {"type": "boolean"}
          }
        }
      }
    }
  }
}`

var taskFileSchema = jsonschema.MustCompileString("tasks.schema.json", taskFileDoc)
