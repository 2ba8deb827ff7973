package preset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Registry is an immutable, validated set of presets. It is safe for
// concurrent use because nothing mutates it after Load returns.
type Registry struct {
	records  []Record
	byName   map[string]int
	revision string
}

type loadOptions struct {
	allowUnknown bool
	extra        []string
	logger       log.Interface
}

type Option func(*loadOptions)

// WithUnknownProviders accepts provider classes outside SupportedProviders
// instead of rejecting them. Each accepted entry is logged as a warning.
func WithUnknownProviders(allow bool) Option {
	return func(o *loadOptions) {
		o.allowUnknown = allow
	}
}

// WithProviders treats the given provider classes as supported for this load.
func WithProviders(providers ...string) Option {
	return func(o *loadOptions) {
		o.extra = append(o.extra, providers...)
	}
}

func WithLogger(logger log.Interface) Option {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func (o *loadOptions) known(provider string) bool {
	if IsSupportedProvider(provider) {
		return true
	}
	for _, p := range o.extra {
		if p == provider {
			return true
		}
	}
	return false
}

// Load validates entries and builds a Registry from them. The first invalid
// entry aborts the whole load with a *ValidationError; no partial registry
// is ever returned.
func Load(entries []RawEntry, opts ...Option) (*Registry, error) {
	o := &loadOptions{logger: log.Log}
	for _, opt := range opts {
		opt(o)
	}

	r := &Registry{
		records: make([]Record, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	models := make(map[string]map[string]string)

	for i, entry := range entries {
		rec, err := validateEntry(i, entry, o)
		if err != nil {
			return nil, err
		}

		if _, dup := r.byName[rec.DisplayName]; dup {
			return nil, &ValidationError{Index: i, DisplayName: rec.DisplayName, Field: "display_name", Reason: "duplicate display name"}
		}

		byModel := models[rec.ModelProviderClass]
		if byModel == nil {
			byModel = make(map[string]string)
			models[rec.ModelProviderClass] = byModel
		}
		if other, dup := byModel[rec.ModelName]; dup {
			return nil, &ValidationError{
				Index:       i,
				DisplayName: rec.DisplayName,
				Field:       "model_name",
				Reason:      fmt.Sprintf("model %q already used by %q for provider %s", rec.ModelName, other, rec.ModelProviderClass),
			}
		}
		byModel[rec.ModelName] = rec.DisplayName

		r.byName[rec.DisplayName] = len(r.records)
		r.records = append(r.records, rec)
	}

	r.revision = uuid.NewString()
	return r, nil
}

func validateEntry(i int, entry RawEntry, o *loadOptions) (Record, error) {
	var name string
	if entry.DisplayName != nil {
		name = *entry.DisplayName
	}
	fail := func(field, reason string) (Record, error) {
		return Record{}, &ValidationError{Index: i, DisplayName: name, Field: field, Reason: reason}
	}

	switch {
	case entry.DisplayName == nil:
		return fail("display_name", "missing required field")
	case entry.ModelProviderClass == nil:
		return fail("model_provider_class", "missing required field")
	case entry.ModelName == nil:
		return fail("model_name", "missing required field")
	case entry.InitialTokensMax == nil:
		return fail("initial_tokens_max", "missing required field")
	case entry.LLMSystemPrompt == nil:
		return fail("llm_system_prompt", "missing required field")
	}

	if strings.TrimSpace(name) == "" {
		return fail("display_name", "must not be empty")
	}
	if strings.TrimSpace(*entry.ModelName) == "" {
		return fail("model_name", "must not be empty")
	}

	provider := *entry.ModelProviderClass
	if !o.known(provider) {
		if !o.allowUnknown {
			return fail("model_provider_class", fmt.Sprintf("unknown provider class %q (supported: %s)", provider, strings.Join(SupportedProviders, ", ")))
		}
		o.logger.WithFields(log.Fields{
			"index":    i,
			"preset":   name,
			"provider": provider,
		}).Warn("accepting unknown provider class")
	}

	tokens, err := parseTokens(entry.InitialTokensMax)
	if err != nil {
		return fail("initial_tokens_max", err.Error())
	}
	if tokens <= 0 {
		return fail("initial_tokens_max", fmt.Sprintf("must be positive, got %d", tokens))
	}

	return Record{
		DisplayName:        name,
		ModelProviderClass: provider,
		ModelName:          *entry.ModelName,
		InitialTokensMax:   tokens,
		LLMSystemPrompt:    *entry.LLMSystemPrompt,
	}, nil
}

func parseTokens(v any) (int, error) {
	switch n := v.(type) {
	case bool:
		return 0, fmt.Errorf("expected an integer, got %v", n)
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		return int(n), nil
	case float32:
		return parseTokens(float64(n))
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %q", n.String())
		}
		return parseTokens(f)
	case string:
		return parseDecimal(n)
	}

	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
	return i, nil
}

// parseDecimal reads s as a base-10 integer. A zero fraction such as
// "300000.0" is allowed; base prefixes are not.
func parseDecimal(s string) (int, error) {
	digits := strings.TrimSpace(s)
	if whole, frac, ok := strings.Cut(digits, "."); ok && frac != "" && strings.Trim(frac, "0") == "" {
		digits = whole
	}
	i, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", s)
	}
	return int(i), nil
}

// List returns every preset in declaration order.
func (r *Registry) List() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Get returns the preset with exactly the given display name.
func (r *Registry) Get(displayName string) (Record, error) {
	i, ok := r.byName[displayName]
	if !ok {
		return Record{}, &NotFoundError{DisplayName: displayName}
	}
	return r.records[i], nil
}

// FilterByProvider returns the presets whose provider class equals provider,
// in declaration order. No match yields an empty slice.
func (r *Registry) FilterByProvider(provider string) []Record {
	out := []Record{}
	for _, rec := range r.records {
		if rec.ModelProviderClass == provider {
			out = append(out, rec)
		}
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.records)
}

func (r *Registry) DisplayNames() []string {
	names := make([]string, len(r.records))
	for i, rec := range r.records {
		names[i] = rec.DisplayName
	}
	return names
}

// Providers returns the distinct provider classes in order of first use.
func (r *Registry) Providers() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range r.records {
		if !seen[rec.ModelProviderClass] {
			seen[rec.ModelProviderClass] = true
			out = append(out, rec.ModelProviderClass)
		}
	}
	return out
}

// Default returns the first declared preset.
func (r *Registry) Default() (Record, error) {
	if len(r.records) == 0 {
		return Record{}, ErrEmptyRegistry
	}
	return r.records[0], nil
}

// Revision identifies this particular load.
func (r *Registry) Revision() string {
	return r.revision
}
