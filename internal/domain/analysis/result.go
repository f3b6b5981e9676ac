package analysis

import "encoding/json"

// Status enum
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// ConclusionKey is the single top-level key the model is prompted to emit.
const ConclusionKey = "Conclusion"

// DetailInvalidJSON is the fixed detail string used when the model's text
// does not parse as JSON.
const DetailInvalidJSON = "AI response was not valid JSON."

// Result is what one analysis run produces: exactly one of the three
// variants, chosen by Normalize. The model's JSON stays opaque
// (json.RawMessage); no shape beyond presence of the Conclusion key is
// assumed.
type Result struct {
	Status Status

	// Data holds the Conclusion value only, set on StatusSuccess.
	Data json.RawMessage

	// Raw holds the whole parsed value, set on StatusPartial.
	Raw json.RawMessage

	// Detail and AIRaw are set on StatusError; AIRaw carries the model's
	// unparseable text for debugging.
	Detail string
	AIRaw  string
}

// Normalize maps the provider's completion text onto a Result. The model is
// prompted, not forced, to answer with a top-level Conclusion key, so all
// three variants are reachable: invalid JSON is an error, a JSON object with
// the key is a success wrapping that value only, and any other valid JSON is
// a partial wrapping the whole parsed value.
func Normalize(completion string) Result {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(completion), &raw); err != nil {
		return Result{Status: StatusError, Detail: DetailInvalidJSON, AIRaw: completion}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		if conclusion, ok := obj[ConclusionKey]; ok {
			return Result{Status: StatusSuccess, Data: conclusion}
		}
	}

	return Result{Status: StatusPartial, Raw: raw}
}
