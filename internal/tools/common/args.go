package common

import (
	"encoding/json"
	"fmt"
)

// BindArguments decodes raw tool call arguments into dst, a pointer to
// the tool's argument struct. Some transports deliver arguments as a
// JSON-encoded string instead of an object; both forms are accepted.
// Fields absent from the arguments keep whatever defaults dst already
// carries, and unknown fields are ignored.
func BindArguments(raw any, dst any) error {
	switch args := raw.(type) {
	case nil:
		return nil
	case string:
		if args == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(args), dst); err != nil {
			return fmt.Errorf("arguments are not valid JSON: %w", err)
		}
		return nil
	default:
		data, err := json.Marshal(args)
		if err != nil {
			return fmt.Errorf("failed to encode arguments: %w", err)
		}
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("failed to decode arguments: %w", err)
		}
		return nil
	}
}
