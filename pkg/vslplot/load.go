package vslplot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// plotDir is where the V plot front-end drops its documents, relative to the home directory.
var plotDir = filepath.Join(".vmodules", "vsl", "plot")

// DefaultDataPath returns the front-end's default data document location.
func DefaultDataPath() string {
	return defaultPath("data.json")
}

// DefaultLayoutPath returns the front-end's default layout document location.
func DefaultLayoutPath() string {
	return defaultPath("layout.json")
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(plotDir, name)
	}
	return filepath.Join(home, plotDir, name)
}

// LoadData reads a data document: a JSON array of trace objects.
func LoadData(path string) ([]models.Trace, error) {
	var traces []models.Trace
	if err := loadJSON(path, &traces); err != nil {
		return nil, err
	}
	if traces == nil {
		traces = []models.Trace{}
	}
	return traces, nil
}

// LoadLayout reads a layout document: a JSON object.
func LoadLayout(path string) (models.Layout, error) {
	var layout models.Layout
	if err := loadJSON(path, &layout); err != nil {
		return nil, err
	}
	if layout == nil {
		layout = models.Layout{}
	}
	return layout, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return nil
}
