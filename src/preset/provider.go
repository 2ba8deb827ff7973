package preset

import "strings"

const (
	ProviderGemini = "Gemini"
	ProviderClaude = "Claude"
	ProviderGrok   = "Grok"
	ProviderOpenAI = "OpenAI"
)

// SupportedProviders lists the provider classes that have an integration.
// Adding one here requires a matching connector on the serving side.
var SupportedProviders = []string{
	ProviderGemini,
	ProviderClaude,
	ProviderGrok,
	ProviderOpenAI,
}

func IsSupportedProvider(name string) bool {
	for _, p := range SupportedProviders {
		if p == name {
			return true
		}
	}
	return false
}

// NormalizeProvider maps a loosely spelled provider name onto its provider
// class. Unrecognised names are returned unchanged with ok set to false.
func NormalizeProvider(name string) (string, bool) {
	providerName := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))

	switch providerName {
	case "gemini", "google", "googleaistudio":
		return ProviderGemini, true

	case "claude", "anthropic":
		return ProviderClaude, true

	case "grok", "xai", "x":
		return ProviderGrok, true

	case "openai", "gpt", "chatgpt":
		return ProviderOpenAI, true

	default:
		return name, false
	}
}
