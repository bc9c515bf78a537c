package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// snakeAliases maps the snake_case spelling of every multi-word model key to
// its wire name. Generators answer in either form.
var snakeAliases = map[string]string{
	"use_cases":           "useCases",
	"state_machines":      "stateMachines",
	"deployment_nodes":    "deploymentNodes",
	"is_static":           "isStatic",
	"is_abstract":         "isAbstract",
	"return_type":         "returnType",
	"source_cardinality":  "sourceCardinality",
	"target_cardinality":  "targetCardinality",
	"main_flow":           "mainFlow",
	"alternative_flows":   "alternativeFlows",
	"message_type":        "messageType",
	"return_message":      "returnMessage",
	"do_activity":         "doActivity",
	"provided_interfaces": "providedInterfaces",
	"required_interfaces": "requiredInterfaces",
	"nested_nodes":        "nestedNodes",
}

// opaqueKeys hold caller data whose keys are never renamed.
var opaqueKeys = map[string]bool{
	"metadata": true,
	"default":  true,
}

// DecodeModel decodes a model JSON document, accepting snake_case keys next
// to the wire names. It neither applies defaults nor validates.
func DecodeModel(data []byte) (SystemModel, error) {
	normalized, err := normalizeKeys(data)
	if err != nil {
		return SystemModel{}, err
	}

	var model SystemModel
	if err := json.Unmarshal(normalized, &model); err != nil {
		return SystemModel{}, err
	}
	return model, nil
}

// normalizeKeys rewrites snake_case aliases to wire names. When both
// spellings are present the wire name wins.
func normalizeKeys(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after json value")
	}

	return json.Marshal(renameAliases(doc))
}

func renameAliases(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			if !opaqueKeys[key] {
				item = renameAliases(item)
			}
			name, ok := snakeAliases[key]
			if !ok {
				out[key] = item
				continue
			}
			if _, taken := value[name]; !taken {
				out[name] = item
			}
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = renameAliases(item)
		}
		return out
	default:
		return v
	}
}
