package jsonfile

// Schema for the persisted jobs document. Loading rejects any file that
// parses as JSON but does not have this shape, so a truncated or
// hand-mangled store is reported as corrupt instead of being read as an
// empty collection.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["jobs"],
  "properties": {
    "jobs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "description", "category", "contact", "createdAt"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string", "minLength": 1},
          "category": {"type": "string", "minLength": 1},
          "contact": {"type": "string", "minLength": 1},
          "location": {"type": "string"},
          "price": {"type": "string"},
          "extra": {"type": "object"},
          "createdAt": {"type": "string"},
          "updatedAt": {"type": "string"}
        }
      }
    }
  }
}`
