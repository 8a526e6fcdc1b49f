package protoreg

import "log/slog"

// Config controls message derivation and method-table assembly.
type Config struct {
	// SeparateRequestResponse generates distinct request and response
	// messages per serializer, with read-only fields dropped from
	// requests and write-only fields from responses.
	// Default: true.
	SeparateRequestResponse *bool

	// DefaultPagination adds pagination fields to list messages of
	// services that do not declare pagination themselves.
	// Default: false.
	DefaultPagination bool

	// DefaultListFieldName names the repeated field of generated list
	// messages when the serializer declares no override.
	// Default: "results".
	DefaultListFieldName string

	// TypeOverrides overlays the builtin field-type table.
	// e.g. map[FieldType]string{"DecimalField": "string"}
	TypeOverrides map[FieldType]string
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) Config {
	var result Config
	if cfg != nil {
		result = *cfg
	}

	if result.SeparateRequestResponse == nil {
		t := true
		result.SeparateRequestResponse = &t
	}
	if result.DefaultListFieldName == "" {
		result.DefaultListFieldName = DefaultListFieldName
	}
	if result.TypeOverrides != nil {
		overrides := make(map[FieldType]string, len(result.TypeOverrides))
		for k, v := range result.TypeOverrides {
			overrides[k] = v
		}
		result.TypeOverrides = overrides
	}
	return result
}

// lookupType resolves a field type identifier against the override
// overlay and the builtin table.
func (c *Config) lookupType(ft FieldType) (string, bool) {
	if t, ok := c.TypeOverrides[ft]; ok {
		return t, true
	}
	t, ok := protoTypes[ft]
	return t, ok
}

// WithLogger sets a custom logger for the registry.
// If not set, slog.Default() will be used.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// WithSeparateRequestResponse toggles separate request/response message
// generation. Enabled by default.
func (r *Registry) WithSeparateRequestResponse(enabled bool) *Registry {
	r.cfg.SeparateRequestResponse = &enabled
	return r
}

// WithDefaultPagination paginates list messages of services that do not
// declare pagination themselves.
func (r *Registry) WithDefaultPagination() *Registry {
	r.cfg.DefaultPagination = true
	return r
}

// WithListFieldName sets the default name for the repeated field of
// generated list messages.
func (r *Registry) WithListFieldName(name string) *Registry {
	if name != "" {
		r.cfg.DefaultListFieldName = name
	}
	return r
}

// WithTypeOverride maps a host field type identifier to a target type,
// taking precedence over the builtin table.
func (r *Registry) WithTypeOverride(ft FieldType, protoType string) *Registry {
	if r.cfg.TypeOverrides == nil {
		r.cfg.TypeOverrides = make(map[FieldType]string)
	}
	r.cfg.TypeOverrides[ft] = protoType
	return r
}

// separate reports whether separate request/response generation is on.
func (r *Registry) separate() bool {
	return *r.cfg.SeparateRequestResponse
}

// listFieldName picks the serializer's declared list field name or the
// configured default.
func (r *Registry) listFieldName(s Serializer) string {
	if name := s.ListFieldName(); name != "" {
		return name
	}
	return r.cfg.DefaultListFieldName
}
