package protoreg

import (
	"log/slog"
	"slices"
	"sync"
)

// Registry accumulates the schema for one generation pass: per-app
// controllers (method tables) and messages (ordered field lists). Fill it
// by calling RegisterService and RegisterAction for every declared
// service, then hand Export() to the renderer.
//
// Messages and methods merge differently: message registration is
// first-write-wins (re-registering a name is an idempotent no-op, and a
// differing field list only records a warning), while custom action
// registration is last-write-wins (re-declaring an action name replaces
// the method entry). Conventional method registration never overwrites:
// it skips any method name already present, so custom declarations
// preempt the conventional ones.
//
// One generation pass runs at a time per Registry; callers needing
// concurrent passes use independent instances.
type Registry struct {
	mu       sync.RWMutex
	apps     []AppEntry
	warnings []Warning
	cfg      Config
	logger   *slog.Logger

	// building tracks messages whose field lists are still being
	// assembled, keyed by "app.message". Serializer cycles re-enter
	// registration for an in-progress name and get the name back without
	// recursing.
	building map[string]bool
}

// NewRegistry creates an empty registry with default configuration.
func NewRegistry() *Registry {
	return &Registry{
		cfg:      applyConfigDefaults(nil),
		building: make(map[string]bool),
	}
}

// AppEntry is one schema namespace: the controllers and messages that end
// up in a single target IDL file. Entries keep registration order.
type AppEntry struct {
	Name        string
	Controllers []ControllerEntry
	Messages    []MessageEntry
}

// FindController looks up a controller by name. Returns nil if not found.
func (a *AppEntry) FindController(name string) *ControllerEntry {
	for i := range a.Controllers {
		if a.Controllers[i].Name == name {
			return &a.Controllers[i]
		}
	}
	return nil
}

// FindMessage looks up a message by name. Returns nil if not found.
func (a *AppEntry) FindMessage(name string) *MessageEntry {
	for i := range a.Messages {
		if a.Messages[i].Name == name {
			return &a.Messages[i]
		}
	}
	return nil
}

// ControllerEntry is the method table for one service.
type ControllerEntry struct {
	Name    string
	Methods []MethodEntry
}

// FindMethod looks up a method by name. Returns nil if not found.
func (c *ControllerEntry) FindMethod(name string) *MethodEntry {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i]
		}
	}
	return nil
}

// MethodEntry is one method in a controller's table. Name is either a
// conventional method kind or a custom action name.
type MethodEntry struct {
	Name     string
	Request  MethodIO
	Response MethodIO
}

// MethodIO is one direction of a method: the message it carries and
// whether it streams.
type MethodIO struct {
	Stream  bool
	Message string
}

// MessageEntry is a named, ordered field list forming one target type.
type MessageEntry struct {
	Name   string
	Fields []MessageField
}

// MessageField is one field of a message. Type is a scalar type name, a
// message name, or "repeated " + either.
type MessageField struct {
	Name string
	Type string
}

// Warning represents a non-fatal issue encountered during registration.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// App is the app being registered when the warning occurred.
	App string

	// TypeName is the serializer, message, or field that triggered the
	// warning, if applicable.
	TypeName string
}

const (
	// WarnUnknownFieldType is recorded when a field type identifier is
	// absent from the type table and degrades to "string".
	WarnUnknownFieldType = "unknown_field_type"

	// WarnUnknownRelation is recorded when relation metadata needed to
	// resolve a field is missing and the field degrades to "string".
	WarnUnknownRelation = "unknown_relation"

	// WarnMessageConflict is recorded when a message name is re-registered
	// with a differing field list. The first registration stays.
	WarnMessageConflict = "message_conflict"

	// WarnDuplicateRegistration is recorded when a custom action replaces
	// an existing method entry.
	WarnDuplicateRegistration = "duplicate_registration"
)

// Warnings returns the warnings collected so far.
func (r *Registry) Warnings() []Warning {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.warnings)
}

// Reset clears all registered apps and warnings, keeping the
// configuration. Use it between generation passes so entries from
// removed services never go stale.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps = nil
	r.warnings = nil
	r.building = make(map[string]bool)
}

func (r *Registry) logf() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

func (r *Registry) addWarning(w Warning) {
	r.warnings = append(r.warnings, w)
}

// ensureApp finds or creates the app entry. The returned pointer is valid
// until the next ensureApp call grows the slice, so registration entry
// points call it once up front.
func (r *Registry) ensureApp(name string) *AppEntry {
	for i := range r.apps {
		if r.apps[i].Name == name {
			return &r.apps[i]
		}
	}
	r.apps = append(r.apps, AppEntry{Name: name})
	return &r.apps[len(r.apps)-1]
}

// ensureController finds or creates the controller entry within an app.
func (r *Registry) ensureController(app *AppEntry, name string) *ControllerEntry {
	if c := app.FindController(name); c != nil {
		return c
	}
	app.Controllers = append(app.Controllers, ControllerEntry{Name: name})
	return &app.Controllers[len(app.Controllers)-1]
}

// putMessage stores a message under the app, first write wins. Writing an
// identical field list again is a no-op; a differing one keeps the
// original and records a conflict warning.
func (r *Registry) putMessage(app *AppEntry, name string, fields []MessageField) string {
	if existing := app.FindMessage(name); existing != nil {
		if !slices.Equal(existing.Fields, fields) {
			r.logf().Warn("conflicting message registration",
				slog.String("app", app.Name),
				slog.String("message", name))
			r.addWarning(Warning{
				Code:     WarnMessageConflict,
				Message:  "message " + name + " re-registered with a different field list; keeping the first",
				App:      app.Name,
				TypeName: name,
			})
		}
		return name
	}

	app.Messages = append(app.Messages, MessageEntry{Name: name, Fields: fields})
	r.logf().Debug("registered message",
		slog.String("app", app.Name),
		slog.String("message", name))
	return name
}

// putMethod records a method entry under the controller, replacing any
// entry with the same name. Conventional registration checks for presence
// before building, so a replacement here means two custom declarations
// share a name.
func (r *Registry) putMethod(app *AppEntry, ctrl *ControllerEntry, entry MethodEntry) {
	if existing := ctrl.FindMethod(entry.Name); existing != nil {
		r.logf().Warn("duplicate method registration",
			slog.String("app", app.Name),
			slog.String("controller", ctrl.Name),
			slog.String("method", entry.Name))
		r.addWarning(Warning{
			Code:     WarnDuplicateRegistration,
			Message:  "method " + entry.Name + " re-declared on " + ctrl.Name + "; replacing the previous entry",
			App:      app.Name,
			TypeName: ctrl.Name,
		})
		*existing = entry
		return
	}
	ctrl.Methods = append(ctrl.Methods, entry)
}
