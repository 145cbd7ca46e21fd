package conf

// MergeDefaults merges the given maps into a single default config,
// prefixing every key with ns. Later maps take precedence. An empty ns
// leaves keys unchanged.
func MergeDefaults[M ~map[string]V, V any](ns string, maps ...M) DefaultConfig {
	fullCap := 0
	for _, m := range maps {
		fullCap += len(m)
	}

	merged := make(DefaultConfig, fullCap)
	for _, m := range maps {
		for key, val := range m {
			if ns != "" {
				key = ns + "." + key
			}
			merged[key] = val
		}
	}

	return merged
}

// Combine combines default configs into one. Later configs take
// precedence.
func Combine(configs ...DefaultConfig) DefaultConfig {
	return MergeDefaults("", configs...)
}
