package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveFolderSet saves a folder set to a YAML file
func SaveFolderSet(set FolderSet, filePath string) error {
	// Ensure directory exists
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Ensure .yaml extension
	if !strings.HasSuffix(filePath, ".yaml") && !strings.HasSuffix(filePath, ".yml") {
		filePath = filePath + ".yaml"
	}

	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal folder set: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadFolderSet loads a folder set from a YAML file
func LoadFolderSet(filePath string) (*FolderSet, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var set FolderSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(set.Folders) == 0 {
		return nil, fmt.Errorf("folder set %s defines no folders", filepath.Base(filePath))
	}

	return &set, nil
}
