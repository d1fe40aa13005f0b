// Package config loads the classbind.json configuration file.
//
// All fields are optional; absent fields take the package defaults. Load
// falls back to the full default configuration when no file exists, while
// LoadFile treats a missing file as an error (for explicit --config
// paths).
package config
