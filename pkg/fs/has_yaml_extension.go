package fs

import "strings"

var yamlExtensions = []string{".yml", ".yaml"}

// HasYamlExtension checks if the name ends with .yml or .yaml, ignoring case.
func HasYamlExtension(name string) bool {
	if name == "" {
		return false
	}

	lower := strings.ToLower(name)
	for _, ext := range yamlExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// HasYamlExtension checks if the name ends with .yml or .yaml, ignoring case.
func (f *realFS) HasYamlExtension(name string) bool {
	return HasYamlExtension(name)
}
