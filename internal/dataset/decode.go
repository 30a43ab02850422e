package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/asteroid-belt/skillmatrix/internal/log"
	"github.com/asteroid-belt/skillmatrix/internal/models"
)

var (
	categoryTextFields = []string{"description", "medium_description", "average_description", "high_description"}
	employeeTextFields = []string{"position", "risk", "value", "potential", "salary_increase_plan", "free_comment"}
)

// DecodeCategories parses, validates and decodes a criteria document.
// The file name selects JSON or YAML parsing by extension.
func DecodeCategories(file string, raw []byte) ([]models.SkillCategory, error) {
	doc, err := parseDocument(file, raw)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(KindCriteria, file, doc); err != nil {
		return nil, err
	}

	for _, item := range asList(doc) {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		coerceText(file, entry, categoryTextFields)
		if levels, ok := entry["level_descriptions"].(map[string]any); ok {
			coerceLevelText(file, levels)
		}
		for _, sub := range asList(entry["subcategories"]) {
			if subEntry, ok := sub.(map[string]any); ok {
				coerceText(file, subEntry, categoryTextFields)
			}
		}
	}

	var categories []models.SkillCategory
	if err := remarshal(doc, &categories); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return categories, nil
}

// DecodeEmployees parses, validates and decodes a team overview document.
func DecodeEmployees(file string, raw []byte) ([]models.Employee, error) {
	doc, err := parseDocument(file, raw)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(KindTeam, file, doc); err != nil {
		return nil, err
	}

	for _, item := range asList(doc) {
		if entry, ok := item.(map[string]any); ok {
			coerceText(file, entry, employeeTextFields)
		}
	}

	var employees []models.Employee
	if err := remarshal(doc, &employees); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return employees, nil
}

// parseDocument returns a JSON-compatible tree suitable for schema validation.
func parseDocument(file string, raw []byte) (any, error) {
	switch strings.ToLower(path.Ext(file)) {
	case ".yaml", ".yml":
		var yamlDoc any
		if err := yaml.Unmarshal(raw, &yamlDoc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		// Round-trip through JSON so numbers arrive as json.Number like the JSON path.
		buf, err := json.Marshal(convertToJSONCompatible(yamlDoc))
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", file, err)
		}
		raw = buf
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return doc, nil
}

// convertToJSONCompatible rewrites yaml.v3 maps with non-string keys.
// Unquoted level keys (1: ...) decode as ints and must become "1".
func convertToJSONCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[k] = convertToJSONCompatible(v2)
		}
		return result
	case map[any]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[fmt.Sprint(k)] = convertToJSONCompatible(v2)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v2 := range val {
			result[i] = convertToJSONCompatible(v2)
		}
		return result
	default:
		return val
	}
}

// coerceText keeps optional text fields readable: scalars become strings,
// anything structured is dropped so the placeholder is shown instead.
func coerceText(file string, entry map[string]any, fields []string) {
	for _, field := range fields {
		v, ok := entry[field]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
		case json.Number:
			entry[field] = val.String()
		case bool:
			entry[field] = fmt.Sprint(val)
		default:
			log.Debugf("%s: dropping non-text %q value", file, field)
			delete(entry, field)
		}
	}
}

func coerceLevelText(file string, levels map[string]any) {
	for key, v := range levels {
		switch val := v.(type) {
		case string:
		case json.Number:
			levels[key] = val.String()
		default:
			log.Debugf("%s: dropping non-text level %s description", file, key)
			delete(levels, key)
		}
	}
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}

func remarshal(doc any, out any) error {
	buf, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, out)
}
