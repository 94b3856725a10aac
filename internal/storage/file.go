package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// ReadJSON reads the json document at path into out and validates it.
func ReadJSON[T ValidatingSpec](path string, out T) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	err = json.Unmarshal(data, out)
	if err != nil {
		return fmt.Errorf("unmarshalling json: %w", err)
	}

	err = out.Validate()
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	return nil
}

// WriteJSON marshals v and atomically replaces the file at path with it.
func WriteJSON(path string, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	return atomicWrite(path, jsonData, 0644)
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
