package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadBreakdown reads a breakdown from a JSON or YAML file, validates it
// and checks its stored fingerprint when one is present.
func LoadBreakdown(path string) (*Breakdown, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFoundError(path)
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("read breakdown file: %s", path), err)
	}

	var b Breakdown
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, errors.NewFileUnmarshalError(path, "YAML", err)
		}
	} else {
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, errors.NewFileUnmarshalError(path, "JSON", err)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	if b.Fingerprint != "" {
		if actual := b.ComputeFingerprint(); actual != b.Fingerprint {
			return nil, errors.NewPlanFingerprintMismatchError(path, b.Fingerprint, actual)
		}
	}

	return &b, nil
}

// SaveBreakdown writes b to path as YAML for .yaml/.yml files and as
// indented JSON otherwise. The fingerprint is refreshed before writing.
func SaveBreakdown(b *Breakdown, path string) error {
	b.Fingerprint = b.ComputeFingerprint()

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(b)
	} else {
		data, err = json.MarshalIndent(b, "", "  ")
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "marshal breakdown", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("create directory: %s", dir), err)
		}
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("write breakdown file: %s", path), err)
	}

	return nil
}
