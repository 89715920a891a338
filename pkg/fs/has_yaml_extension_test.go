//go:build unit

package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasYamlExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "config.yml", want: true},
		{name: "config.YML", want: true},
		{name: "config.yaml", want: true},
		{name: "graphs/demo.Yaml", want: true},
		{name: ".yml", want: true},
		{name: "config.yamlx", want: false},
		{name: "config.json", want: false},
		{name: "yaml", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasYamlExtension(tt.name))
			assert.Equal(t, tt.want, NewFS().HasYamlExtension(tt.name))
		})
	}
}
