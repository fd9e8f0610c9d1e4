package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Filename builds <prefix>_<user>_<start>-<end>.<ext>.
func Filename(prefix, user, start, end, ext string) string {
	if ext == "" {
		ext = "json"
	}
	return fmt.Sprintf("%s_%s_%s-%s.%s", prefix, user, start, end, ext)
}

func WriteText(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}

	return path, nil
}

// WriteJSON writes v indented by two spaces and returns the file's path.
func WriteJSON(dir, name string, v interface{}) (string, error) {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	return WriteText(dir, name, string(bs))
}

func ReadJSON(path string, v interface{}) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read json file %s: %w", path, err)
	}

	if err := json.Unmarshal(bs, v); err != nil {
		return fmt.Errorf("failed to read json file %s: %w", path, err)
	}

	return nil
}
