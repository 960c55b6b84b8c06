package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *ProbeConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.URL != "" {
		target.URL = source.URL
		target.Sources["url"] = sourceType
	}
	if source.PlayerID != "" {
		target.PlayerID = source.PlayerID
		target.Sources["playerId"] = sourceType
	}
	if source.PlayerName != "" {
		target.PlayerName = source.PlayerName
		target.Sources["playerName"] = sourceType
	}
	if source.Token != "" || isSet(source, "token") {
		target.Token = source.Token
		target.Sources["token"] = sourceType
	}
	if boolIsSet(source, "trace") {
		target.Trace = source.Trace
		target.Sources["trace"] = sourceType
	}
	if boolIsSet(source, "json") {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
}

func isSet(cfg *ProbeConfig, yamlKey string) bool {
	return cfg.SetFields != nil && cfg.SetFields[yamlKey]
}

// boolIsSet reports whether the boolean field with the given YAML key was
// explicitly set in the source config. Without SetFields (a programmatic
// config) only true values count as set.
func boolIsSet(cfg *ProbeConfig, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	switch yamlKey {
	case "trace":
		return cfg.Trace
	case "json":
		return cfg.JSON
	}
	return false
}
