package protoreg

import "strings"

// ValidationError represents a structural problem in the registered
// schema.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the registered schema for structural issues and
// returns all findings, not just the first. Registration keeps these
// from arising on the conventional path; validation exists for the
// escape hatches — custom action type-name strings and explicit name
// overrides can reference messages that were never registered.
func (r *Registry) Validate() []error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []error

	for i := range r.apps {
		app := &r.apps[i]

		seenMessages := make(map[string]bool)
		for _, m := range app.Messages {
			if m.Name == "" {
				errs = append(errs, &ValidationError{
					Code:    "empty_message_name",
					Message: "app " + app.Name + " contains a message with an empty name",
				})
				continue
			}
			if seenMessages[m.Name] {
				errs = append(errs, &ValidationError{
					Code:    "duplicate_message",
					Message: "duplicate message name in app " + app.Name + ": " + m.Name,
				})
			}
			seenMessages[m.Name] = true
		}

		for _, ctrl := range app.Controllers {
			seenMethods := make(map[string]bool)
			for _, method := range ctrl.Methods {
				if seenMethods[method.Name] {
					errs = append(errs, &ValidationError{
						Code:    "duplicate_method",
						Message: "duplicate method name in controller " + ctrl.Name + ": " + method.Name,
					})
				}
				seenMethods[method.Name] = true

				errs = append(errs, validateMethodIO(app, ctrl.Name, method.Name, "request", method.Request, seenMessages)...)
				errs = append(errs, validateMethodIO(app, ctrl.Name, method.Name, "response", method.Response, seenMessages)...)
			}
		}
	}

	return errs
}

// validateMethodIO checks that one direction of a method entry names a
// resolvable message: registered in the app or well-known, with at most
// one repeated marker.
func validateMethodIO(app *AppEntry, ctrl, method, direction string, io MethodIO, messages map[string]bool) []error {
	var errs []error

	ref := io.Message
	if ref == "" {
		return []error{&ValidationError{
			Code:    "empty_message_reference",
			Message: "method " + ctrl + "." + method + " has an empty " + direction + " message",
		}}
	}

	ref = strings.TrimPrefix(ref, repeatedPrefix)
	if strings.HasPrefix(ref, repeatedPrefix) {
		errs = append(errs, &ValidationError{
			Code:    "double_repeated",
			Message: "method " + ctrl + "." + method + " " + direction + " carries more than one repeated marker: " + io.Message,
		})
		for strings.HasPrefix(ref, repeatedPrefix) {
			ref = strings.TrimPrefix(ref, repeatedPrefix)
		}
	}

	if !messages[ref] && !IsWellKnown(ref) {
		errs = append(errs, &ValidationError{
			Code:    "missing_message_reference",
			Message: "method " + ctrl + "." + method + " " + direction + " references unknown message: " + ref,
		})
	}
	return errs
}
