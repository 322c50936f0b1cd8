// Package utils holds parsing helpers shared by the CLI and the API:
// tolerant JSON decoding for human-written scenario files and markdown
// handling for generated commentary.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON fixes the usual damage in hand-edited or model-produced JSON:
// single quotes, unquoted keys, trailing commas, unclosed brackets, markdown
// fences around the payload.
func RepairJSON(raw string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(raw)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON decodes Hjson (comments, unquoted keys, optional commas)
// directly into the target. Scenario files on disk are written by hand, so
// this is their primary format.
func ParseHJSON(raw string, target interface{}) error {
	if err := hjson.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("hjson parse failed: %w", err)
	}
	return nil
}

// SmartParse tries strict JSON first, then repair, then Hjson. Returns the
// canonical JSON that finally decoded, for logging or re-serialization.
func SmartParse(raw string, target interface{}) (string, error) {
	if err := json.Unmarshal([]byte(raw), target); err == nil {
		return raw, nil
	}

	if repaired, err := RepairJSON(raw); err == nil {
		if err := json.Unmarshal([]byte(repaired), target); err == nil {
			return repaired, nil
		}
	}

	var loose interface{}
	if err := hjson.Unmarshal([]byte(raw), &loose); err == nil {
		canonical, err := json.Marshal(loose)
		if err == nil {
			if err := json.Unmarshal(canonical, target); err == nil {
				return string(canonical), nil
			}
		}
	}

	return "", fmt.Errorf("input is not parseable as JSON, repaired JSON or Hjson")
}
