package protoreg

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared across action registrations; validator instances
// cache struct metadata.
var validate = validator.New()

// Action declares a custom method outside the conventional set.
//
// Request and Response each hold one of three specs:
//   - []ActionField: a literal ordered field list. An empty list means
//     the well-known empty type and registers nothing.
//   - string: an existing target type name, used verbatim.
//   - Serializer: registered as a message with the direction's
//     read/write visibility.
type Action struct {
	// Name keys the method entry in the controller. Re-declaring a name
	// replaces the previous entry.
	Name string `validate:"required"`

	Request  any `validate:"required"`
	Response any `validate:"required"`

	// RequestStream and ResponseStream mark either direction as
	// streaming; custom actions may set both.
	RequestStream  bool
	ResponseStream bool

	// UseRequestList and UseResponseList wrap the resolved message in a
	// generated list message, exactly as the conventional List method
	// wraps its response.
	UseRequestList  bool
	UseResponseList bool

	// RequestName and ResponseName override the derived message names.
	// ResponseName is also forced onto the method entry after list
	// wrapping; RequestName names the pre-wrap message only.
	RequestName  string
	ResponseName string
}

// ActionField is one field in a literal custom-action spec. Type is a
// final target type string, used verbatim.
type ActionField struct {
	Name string
	Type string
}

// RegisterAction registers a custom action's messages and method entry
// under the app. Unlike message registration, the method entry is
// last-write-wins: re-declaring an action name replaces it.
func (r *Registry) RegisterAction(app string, svc Service, act Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	serviceName := svc.ServiceName()
	if err := validate.Struct(act); err != nil {
		e := Errorf(CodeInvalidAction, "invalid action declaration: %v", err)
		return e.In(app, serviceName, act.Name, "")
	}

	a := r.ensureApp(app)
	paginated := svc.Paginated() || r.cfg.DefaultPagination

	reqMsg, reqListField, err := r.resolveActionMessage(a, serviceName, act.Name, act.Request, true, act.RequestName)
	if err != nil {
		return annotate(err, app, serviceName, act.Name)
	}
	if act.UseRequestList {
		base := r.actionListBase(serviceName, act.Name, reqMsg, true)
		reqMsg = r.registerListMessage(a, base, reqListField, reqMsg, act.RequestName, true, paginated)
	}

	respMsg, respListField, err := r.resolveActionMessage(a, serviceName, act.Name, act.Response, false, act.ResponseName)
	if err != nil {
		return annotate(err, app, serviceName, act.Name)
	}
	if act.UseResponseList {
		base := r.actionListBase(serviceName, act.Name, respMsg, false)
		respMsg = r.registerListMessage(a, base, respListField, respMsg, act.ResponseName, false, paginated)
	}
	if act.ResponseName != "" {
		respMsg = act.ResponseName
	}

	ctrl := r.ensureController(a, serviceName+"Controller")
	r.putMethod(a, ctrl, MethodEntry{
		Name:     act.Name,
		Request:  MethodIO{Stream: act.RequestStream, Message: reqMsg},
		Response: MethodIO{Stream: act.ResponseStream, Message: respMsg},
	})
	return nil
}

// resolveActionMessage resolves one direction of a custom action spec.
// It returns the message name and the list field name to use if the
// caller wraps the result in a list message.
func (r *Registry) resolveActionMessage(app *AppEntry, serviceName, actionName string, spec any, isRequest bool, explicitName string) (string, string, error) {
	switch m := spec.(type) {
	case []ActionField:
		if len(m) == 0 {
			return EmptyType, r.cfg.DefaultListFieldName, nil
		}
		fields := make([]MessageField, 0, len(m))
		for _, f := range m {
			fields = append(fields, MessageField{Name: f.Name, Type: f.Type})
		}
		name := explicitName
		if name == "" {
			name = serviceName + actionName + directionSuffix(isRequest)
		}
		return r.putMessage(app, name, fields), r.cfg.DefaultListFieldName, nil

	case string:
		return m, r.cfg.DefaultListFieldName, nil

	case Serializer:
		name, err := r.registerMessage(app, m, explicitName, isRequest)
		if err != nil {
			return "", "", err
		}
		return name, r.listFieldName(m), nil

	default:
		direction := "response"
		if isRequest {
			direction = "request"
		}
		err := Errorf(CodeInvalidAction,
			"%s spec for action %s is not a field list, a type name, or a serializer", direction, actionName)
		return "", "", err
	}
}

// actionListBase derives the base name for a custom action's list
// wrapper. Well-known types have no name to strip, so the service and
// action names substitute; for an action named like the conventional
// List method the action name adds nothing.
func (r *Registry) actionListBase(serviceName, actionName, msg string, isRequest bool) string {
	if IsWellKnown(msg) {
		if actionName == string(MethodList) {
			return serviceName
		}
		return serviceName + actionName
	}
	return baseNameForList(msg, isRequest)
}
