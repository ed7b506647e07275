package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ID is the canonical product identifier. The catalog source serves ids as
// JSON numbers while persisted collections hold strings; everything is
// normalized to the string form once, at ingestion, so equality is plain ==.
type ID string

func (id ID) String() string {
	return string(id)
}

func ParseID(raw string) ID {
	return ID(strings.TrimSpace(raw))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ParseID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
