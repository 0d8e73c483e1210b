package action

import "encoding/json"

// Result is the uniform envelope every action returns. Data is an
// empty object and Error is non-empty on failure; no partial results
// leak through a failed action.
type Result struct {
	OK     bool        `json:"ok"`
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
	Error  string      `json:"error"`
}

func success(action string, data interface{}) Result {
	return Result{OK: true, Action: action, Data: data}
}

func failure(action, msg string) Result {
	return Result{Action: action, Data: struct{}{}, Error: msg}
}

// JSON serializes the envelope as a single-line JSON string. A marshal
// failure is folded into a failure envelope so callers always get
// valid JSON back.
func (r Result) JSON() string {
	out, err := json.Marshal(r)
	if err != nil {
		fallback, _ := json.Marshal(failure(r.Action, "failed to serialize result: "+err.Error()))
		return string(fallback)
	}
	return string(out)
}
