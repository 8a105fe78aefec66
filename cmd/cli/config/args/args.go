package args

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyRequest = errors.New("empty request")

// In is one operation request, as read from a batch line or built from
// command line arguments. Date fields hold anything dates.Parse accepts;
// JSON numbers decode as json.Number and are epoch milliseconds.
type In struct {
	// the operation name, e.g. "isoDate" or "add"
	Fn       string `json:"fn"`
	Date     any    `json:"date"`
	To       any    `json:"to,omitempty"`
	Start    any    `json:"start,omitempty"`
	End      any    `json:"end,omitempty"`
	Amount   int    `json:"amount,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Template string `json:"template,omitempty"`
}

// Out is the answer to the request found on Line.
type Out struct {
	Line   int    `json:"line"`
	Fn     string `json:"fn,omitempty"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func FromLine(line string) (*In, error) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return nil, fmt.Errorf("args: %w", ErrEmptyRequest)
	}

	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.UseNumber()

	var in *In
	err := decoder.Decode(&in)

	if err != nil {
		return nil, fmt.Errorf("args: could not deserialize data: %w. Got: %s", err, trimmed)
	}

	if in == nil {
		// This can happen if the JSON is "null"
		return nil, fmt.Errorf("args: deserialized data is nil. Got: %s", trimmed)
	}

	if in.Fn == "" {
		return nil, fmt.Errorf("args: missing fn. Got: %s", trimmed)
	}

	return in, nil
}

func (o Out) Serialize() (string, error) {
	data, err := json.Marshal(o)

	if err != nil {
		return "", fmt.Errorf("args: could not serialize data. %w", err)
	}

	return string(data), nil
}
