package yargs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"
)

// LoadConfigFile is the loader used for config keys declared without one.
// It picks the format from the extension: .yaml/.yml, .hcl, anything else
// is read as JSON.
func LoadConfigFile(path string) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".hcl":
		return LoadHCL(path)
	default:
		return LoadJSON(path)
	}
}

// LoadJSON reads a JSON object from path
func LoadJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if config == nil {
		return nil, fmt.Errorf("parsing %s: top level value is not an object", path)
	}
	return config, nil
}

// LoadYAML reads a YAML mapping from path
func LoadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if config == nil {
		config = map[string]any{}
	}
	return normalizeValue(config).(map[string]any), nil
}

// LoadHCL reads the top-level attributes of an HCL file. Attribute
// expressions are evaluated without variables or functions.
func LoadHCL(path string) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	config := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := ctyToNative(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		config[name] = native
	}
	return config, nil
}

// ctyToNative converts a cty.Value to plain Go values: string, float64,
// bool, []any and map[string]any. Null and unknown values become nil.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("converting number: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, fmt.Errorf("converting bool: %w", err)
		}
		return b, nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0)
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in %q: %w", key.AsString(), err)
			}
			out[key.AsString()] = native
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
	}
}
