package client

import "encoding/json"

// Some endpoints wrap their payload as {"status": true, "data": ...} while
// others return the payload bare. unwrapEnvelope returns the data field when
// the payload is an object carrying a non-null one, and the raw payload
// otherwise. Callers that know their endpoint never wraps skip this step.
func unwrapEnvelope(raw []byte) []byte {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return raw
	}
	return env.Data
}
