//go:build windows
// +build windows

package config

import "golang.org/x/sys/windows/registry"

const registryPath = `SOFTWARE\GoAppBar`

func readRegistrySettings() map[string]string {
	result := make(map[string]string)

	key, err := registry.OpenKey(registry.CURRENT_USER, registryPath, registry.QUERY_VALUE)
	if err != nil {
		return result
	}
	defer key.Close()

	names := []string{"Backend", "Layout", "Debug"}
	for _, name := range names {
		if value, _, err := key.GetStringValue(name); err == nil {
			result[name] = value
		}
	}
	return result
}
