package api

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// envelopeSchema checks the raw optimize body (the route takes it as an
// io.Reader, so huma derives no schema for it): that
// employees/shifts/startDate/endDate are present and of the right JSON
// kind, and that options.maxOptimizationTime and options.solutionCount are
// within their bounds, before the body ever reaches
// domain.ParseOptimizationRequest.
const envelopeSchema = `{
  "type": "object",
  "required": ["employees", "shifts", "startDate", "endDate"],
  "properties": {
    "employees": {"type": "array"},
    "shifts": {"type": "array"},
    "constraints": {"type": "array"},
    "currentSchedules": {"type": "array"},
    "startDate": {"type": "string"},
    "endDate": {"type": "string"},
    "options": {
      "type": "object",
      "properties": {
        "maxOptimizationTime": {"type": "integer", "minimum": 1, "maximum": 300},
        "solutionCount": {"type": "integer", "minimum": 1, "maximum": 10}
      }
    }
  }
}`

var envelopeSchemaLoader = gojsonschema.NewStringLoader(envelopeSchema)

// validateEnvelope checks the raw request body against envelopeSchema,
// returning a single combined error listing every violation found.
func validateEnvelope(body []byte) error {
	result, err := gojsonschema.Validate(envelopeSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("request body is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		messages = append(messages, e.String())
	}
	return fmt.Errorf("request failed schema validation: %s", strings.Join(messages, "; "))
}
