package agent

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Source tells where a Selection came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// FallbackReasoning is reported when the model answer could not be parsed.
const FallbackReasoning = "Used default selection due to parsing error"

var fallbackIndices = []int{0, 1, 2, 4, 5, 8, 9, 13}

// FallbackIndices returns the default selection.
func FallbackIndices() []int {
	out := make([]int, len(fallbackIndices))
	copy(out, fallbackIndices)
	return out
}

// Selection is either the filtered model answer or the fixed fallback.
type Selection struct {
	Source    Source
	Indices   []int
	Reasoning string
}

// IsFallback reports whether the default selection was used.
func (s Selection) IsFallback() bool {
	return s.Source == SourceFallback
}

func fallbackSelection() Selection {
	return Selection{Source: SourceFallback, Indices: FallbackIndices(), Reasoning: FallbackReasoning}
}

var errNotArray = errors.New("selection is not a JSON array")

// ParseSelection interprets content as a JSON array of catalog indices.
// Entries that are not integers or fail inRange are dropped. Anything that
// is not exactly one JSON array yields the fallback.
func ParseSelection(content string, inRange func(int) bool) Selection {
	values, err := decodeArray(strings.TrimSpace(content))
	if err != nil {
		return fallbackSelection()
	}

	indices := make([]int, 0, len(values))
	for _, v := range values {
		num, ok := v.(json.Number)
		if !ok {
			continue
		}
		index, err := strconv.Atoi(num.String())
		if err != nil || !inRange(index) {
			continue
		}
		indices = append(indices, index)
	}
	return Selection{Source: SourceModel, Indices: indices, Reasoning: content}
}

func decodeArray(content string) ([]any, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	values, ok := decoded.([]any)
	if !ok {
		return nil, errNotArray
	}
	return values, nil
}
