// Package configs provides embedded configuration files for the hypergraph desktop layer.
package configs

import _ "embed"

// DefaultConfigYAML contains the default configuration file content.
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// MenuYAML contains the application menu template.
//
//go:embed menu.yaml
var MenuYAML []byte
