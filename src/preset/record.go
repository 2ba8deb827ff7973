package preset

// Record is a validated model preset.
type Record struct {
	DisplayName        string `json:"display_name" yaml:"display_name"`
	ModelProviderClass string `json:"model_provider_class" yaml:"model_provider_class"`
	ModelName          string `json:"model_name" yaml:"model_name"`
	InitialTokensMax   int    `json:"initial_tokens_max" yaml:"initial_tokens_max"`
	LLMSystemPrompt    string `json:"llm_system_prompt" yaml:"llm_system_prompt"`
}

// RawEntry is a preset as it appears in a preset file, before validation.
// Nil fields were absent from the source. InitialTokensMax is left untyped
// because files carry it as an integer, a float or a string.
type RawEntry struct {
	DisplayName        *string `json:"display_name" yaml:"display_name"`
	ModelProviderClass *string `json:"model_provider_class" yaml:"model_provider_class"`
	ModelName          *string `json:"model_name" yaml:"model_name"`
	InitialTokensMax   any     `json:"initial_tokens_max" yaml:"initial_tokens_max"`
	LLMSystemPrompt    *string `json:"llm_system_prompt" yaml:"llm_system_prompt"`
}

// Raw converts a record back into its raw form.
func (r Record) Raw() RawEntry {
	name, provider, model, prompt := r.DisplayName, r.ModelProviderClass, r.ModelName, r.LLMSystemPrompt
	return RawEntry{
		DisplayName:        &name,
		ModelProviderClass: &provider,
		ModelName:          &model,
		InitialTokensMax:   r.InitialTokensMax,
		LLMSystemPrompt:    &prompt,
	}
}
