package calculation

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/accfmt/pkg/objutil"
	"gopkg.in/yaml.v3"
)

// decodeDocument reads a JSON or YAML document. JSON is a subset of YAML,
// so one decoder covers both.
func decodeDocument(src string) (any, error) {
	var doc any
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return doc, nil
}

func routeDocument(src, path string) (string, error) {
	doc, err := decodeDocument(src)
	if err != nil {
		return "", err
	}
	v := objutil.Route(doc, path)
	if v == nil {
		return "", fmt.Errorf("path %q not found", path)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return encodeValue(v)
}

func mergeDocuments(base, overlay string) (string, error) {
	maps := make([]map[string]any, 0, 2)
	for _, src := range []string{base, overlay} {
		doc, err := decodeDocument(src)
		if err != nil {
			return "", err
		}
		m, ok := doc.(map[string]any)
		if !ok {
			return "", fmt.Errorf("merge needs two objects, got %T", doc)
		}
		maps = append(maps, m)
	}
	return encodeValue(objutil.Merge(maps...))
}

// encodeValue renders a decoded value as compact JSON with sorted keys
func encodeValue(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(b), nil
}
