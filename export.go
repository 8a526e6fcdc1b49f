package protoreg

import (
	"fmt"
	"io"
	"slices"
)

// Export returns a deep copy of the registered apps in registration
// order, for consumption by the schema renderer. Later registrations
// never show through an earlier export.
func (r *Registry) Export() []AppEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]AppEntry, 0, len(r.apps))
	for i := range r.apps {
		out = append(out, copyApp(&r.apps[i]))
	}
	return out
}

// App returns a deep copy of one registered app.
func (r *Registry) App(name string) (AppEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.apps {
		if r.apps[i].Name == name {
			return copyApp(&r.apps[i]), true
		}
	}
	return AppEntry{}, false
}

func copyApp(app *AppEntry) AppEntry {
	out := AppEntry{Name: app.Name}

	out.Controllers = make([]ControllerEntry, 0, len(app.Controllers))
	for _, c := range app.Controllers {
		out.Controllers = append(out.Controllers, ControllerEntry{
			Name:    c.Name,
			Methods: slices.Clone(c.Methods),
		})
	}

	out.Messages = make([]MessageEntry, 0, len(app.Messages))
	for _, m := range app.Messages {
		out.Messages = append(out.Messages, MessageEntry{
			Name:   m.Name,
			Fields: slices.Clone(m.Fields),
		})
	}
	return out
}

// DumpText writes an indented rendering of the registry. The output is
// deterministic for a fixed registration sequence, which makes it usable
// as golden-test material; it is not the renderer's schema output.
func (r *Registry) DumpText(w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.apps {
		app := &r.apps[i]
		if _, err := fmt.Fprintf(w, "app %s\n", app.Name); err != nil {
			return err
		}
		for _, ctrl := range app.Controllers {
			if _, err := fmt.Fprintf(w, "  controller %s\n", ctrl.Name); err != nil {
				return err
			}
			for _, m := range ctrl.Methods {
				if _, err := fmt.Fprintf(w, "    method %s\n", m.Name); err != nil {
					return err
				}
				if err := dumpIO(w, "request", m.Request); err != nil {
					return err
				}
				if err := dumpIO(w, "response", m.Response); err != nil {
					return err
				}
			}
		}
		for _, msg := range app.Messages {
			if _, err := fmt.Fprintf(w, "  message %s\n", msg.Name); err != nil {
				return err
			}
			for _, f := range msg.Fields {
				if _, err := fmt.Fprintf(w, "    %s %s\n", f.Name, f.Type); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func dumpIO(w io.Writer, direction string, m MethodIO) error {
	stream := ""
	if m.Stream {
		stream = "stream "
	}
	_, err := fmt.Fprintf(w, "      %s %s%s\n", direction, stream, m.Message)
	return err
}
