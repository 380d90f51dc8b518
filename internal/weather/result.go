package weather

import "encoding/json"

// Result is the mapping every extractor returns: either the requested
// fields or the uniform error form built by ErrorResult.
type Result map[string]interface{}

func ErrorResult(message string) Result {
	return Result{
		"status":  "error",
		"data":    nil,
		"message": message,
	}
}

func (r Result) IsError() bool {
	status, ok := r["status"].(string)
	return ok && status == "error"
}

// String renders the result as compact JSON with sorted keys.
func (r Result) String() string {
	b, err := json.Marshal(map[string]interface{}(r))
	if err != nil {
		return "{}"
	}
	return string(b)
}
