package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. In-process events already
// carry T; payloads read back from the dead-letter log or a broker arrive
// as raw JSON or generic maps and are re-decoded.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("nil %T payload", v)
		}
		return *v, nil
	case json.RawMessage:
		return out, json.Unmarshal(v, &out)
	case []byte:
		return out, json.Unmarshal(v, &out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	return out, json.Unmarshal(data, &out)
}
