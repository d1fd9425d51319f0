// Package config provides configuration structures and utilities for compass.
// It defines the workbook server settings, the default export location and
// the optional .compass YAML file that overrides the built-in defaults.
package config
