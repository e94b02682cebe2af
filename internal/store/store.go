// Package store loads optional tariff overrides for the pricing table from
// YAML. With no file configured the built-in published tariffs apply.
package store

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"sjtech/spicon-recon/internal/pricing"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadTable reads a pricing table from path, layering the file's values over
// the defaults so a partial file only overrides what it names. An empty path
// or a missing file yields the defaults; a malformed file is an error.
func LoadTable(path string) (pricing.Table, error) {
	table := pricing.Default()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.WithField("file", path).Warn("Pricing file not found, using default tariffs")
		return table, nil
	}
	if err != nil {
		return table, fmt.Errorf("error reading pricing file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &table); err != nil {
		return pricing.Default(), fmt.Errorf("error parsing pricing file %s: %w", path, err)
	}

	log.WithField("file", path).Debug("Loaded pricing tariffs")
	return table, nil
}
