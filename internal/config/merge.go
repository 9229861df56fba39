package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML keys ShallowMergeYAML understands.
const (
	keyCompany = "company"
	keyMapping = "mapping"
	keyOutput  = "output"
	keyLogging = "logging"
	keyDemo    = "demo"
	keyBatch   = "batch"
)

// ShallowMergeYAML reads overlayPath and replaces each section of target
// present in it. Absent sections are left unchanged and unknown keys are
// ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = mergeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// mergeSection decodes node into a zero value before assigning, so a
// section is replaced as a whole and not merged field by field.
func mergeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyCompany:
		return replace(node, &target.Company)
	case keyMapping:
		return replace(node, &target.Mapping)
	case keyOutput:
		return replace(node, &target.Output)
	case keyLogging:
		return replace(node, &target.Logging)
	case keyDemo:
		return replace(node, &target.Demo)
	case keyBatch:
		return replace(node, &target.Batch)
	default:
		return nil
	}
}

func replace[T any](node *yaml.Node, dst *T) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*dst = v
	return nil
}
