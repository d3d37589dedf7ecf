package catalog

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/invopop/jsonschema"
)

// PlanConfig is the structured form of a plan's question set overrides.
type PlanConfig struct {
	QuestionSetOverrides map[string]int64 `json:"question_set_overrides,omitempty" jsonschema:"description=Question set id to use per assessment type (360 or pulse)"`
}

// PlanConfigSchema describes PlanConfig for admin tooling that edits plans.
func PlanConfigSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&PlanConfig{})
	if prop, ok := schema.Properties.Get("question_set_overrides"); ok {
		prop.PropertyNames = &jsonschema.Schema{
			Enum: []any{string(model.AssessmentType360), string(model.AssessmentTypePulse)},
		}
	}
	return schema
}
