package protoreg

import (
	"errors"
	"slices"
)

// MethodKind identifies one conventional service method.
type MethodKind string

const (
	MethodList          MethodKind = "List"
	MethodCreate        MethodKind = "Create"
	MethodRetrieve      MethodKind = "Retrieve"
	MethodUpdate        MethodKind = "Update"
	MethodPartialUpdate MethodKind = "PartialUpdate"
	MethodDestroy       MethodKind = "Destroy"
	MethodStream        MethodKind = "Stream"
)

// conventionalMethods is the fixed walk order for conventional
// registration; generated method tables list methods in this order
// regardless of how the service declares them.
var conventionalMethods = []MethodKind{
	MethodList,
	MethodCreate,
	MethodRetrieve,
	MethodUpdate,
	MethodPartialUpdate,
	MethodDestroy,
	MethodStream,
}

// Service is the engine's view of one host service to register.
type Service interface {
	// ServiceName returns the service name; the controller is named
	// after it.
	ServiceName() string

	// Serializer returns the serializer for an action, which is either a
	// conventional MethodKind or a custom action name. Services may
	// return different serializers per action.
	Serializer(action string) (Serializer, error)

	// LookupField names the serializer field used to address a single
	// entity in Retrieve and Destroy requests.
	LookupField() string

	// Methods lists the conventional methods the service implements.
	Methods() []MethodKind

	// Paginated reports whether the service declares its own pagination.
	// List messages gain pagination fields when it does, or when the
	// registry-wide default is on.
	Paginated() bool
}

// RegisterService registers a service's conventional methods under the
// app. Conventional kinds walk in a fixed order; a kind already present
// in the controller's method table — a custom action declared first —
// is left untouched. A registration error aborts this service only:
// already-committed apps, controllers, and messages stay intact.
func (r *Registry) RegisterService(app string, svc Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := r.ensureApp(app)
	serviceName := svc.ServiceName()
	declared := svc.Methods()

	for _, kind := range declared {
		if !slices.Contains(conventionalMethods, kind) {
			err := Errorf(CodeUnsupportedMethod,
				"service %s declares method %s which is not in the supported set %v", serviceName, kind, conventionalMethods)
			return err.In(app, serviceName, string(kind), "")
		}
	}

	ctrl := r.ensureController(a, serviceName+"Controller")

	for _, kind := range conventionalMethods {
		if !slices.Contains(declared, kind) {
			continue
		}
		if ctrl.FindMethod(string(kind)) != nil {
			continue
		}

		entry, err := r.buildConventional(a, svc, kind)
		if err != nil {
			return annotate(err, app, serviceName, string(kind))
		}
		r.putMethod(a, ctrl, entry)
	}
	return nil
}

// buildConventional derives the request/response pair for one
// conventional method kind.
func (r *Registry) buildConventional(app *AppEntry, svc Service, kind MethodKind) (MethodEntry, error) {
	ser, err := svc.Serializer(string(kind))
	if err != nil {
		return MethodEntry{}, Errorf(CodeUnknownSerializer,
			"no serializer for method %s: %v", kind, err)
	}

	entry := MethodEntry{Name: string(kind)}
	base := trimSerializerSuffix(ser.Name())

	switch kind {
	case MethodCreate, MethodUpdate, MethodPartialUpdate:
		req, err := r.registerMessage(app, ser, "", true)
		if err != nil {
			return MethodEntry{}, err
		}
		resp, err := r.registerMessage(app, ser, "", false)
		if err != nil {
			return MethodEntry{}, err
		}
		entry.Request = MethodIO{Message: req}
		entry.Response = MethodIO{Message: resp}

	case MethodList:
		child, err := r.registerMessage(app, ser, "", false)
		if err != nil {
			return MethodEntry{}, err
		}
		req := r.putMessage(app, base+listToken+requestSuffix, nil)
		paginated := svc.Paginated() || r.cfg.DefaultPagination
		resp := r.registerListMessage(app, base, r.listFieldName(ser), child, "", false, paginated)
		entry.Request = MethodIO{Message: req}
		entry.Response = MethodIO{Message: resp}

	case MethodRetrieve:
		field, err := r.lookupRequestField(app, svc, ser)
		if err != nil {
			return MethodEntry{}, err
		}
		req := r.putMessage(app, base+string(MethodRetrieve)+requestSuffix, []MessageField{field})
		resp, err := r.registerMessage(app, ser, "", false)
		if err != nil {
			return MethodEntry{}, err
		}
		entry.Request = MethodIO{Message: req}
		entry.Response = MethodIO{Message: resp}

	case MethodDestroy:
		field, err := r.lookupRequestField(app, svc, ser)
		if err != nil {
			return MethodEntry{}, err
		}
		req := r.putMessage(app, base+string(MethodDestroy)+requestSuffix, []MessageField{field})
		entry.Request = MethodIO{Message: req}
		entry.Response = MethodIO{Message: EmptyType}

	case MethodStream:
		req := r.putMessage(app, base+string(MethodStream)+requestSuffix, nil)
		resp, err := r.registerMessage(app, ser, "", false)
		if err != nil {
			return MethodEntry{}, err
		}
		entry.Request = MethodIO{Message: req}
		entry.Response = MethodIO{Stream: true, Message: resp}
	}

	return entry, nil
}

// lookupRequestField resolves the service's lookup field into the single
// field of a Retrieve or Destroy request message. The field must be
// declared on the serializer.
func (r *Registry) lookupRequestField(app *AppEntry, svc Service, ser Serializer) (MessageField, error) {
	name := svc.LookupField()
	fd, ok := findField(ser, name)
	if !ok {
		err := Errorf(CodeUnknownLookupField,
			"lookup field %s is not declared on serializer %s", name, ser.Name())
		err.Field = name
		return MessageField{}, err
	}
	return MessageField{Name: name, Type: r.primitiveType(app, fd.FieldType, name)}, nil
}

// annotate attaches registration context to an *Error, leaving other
// error types unchanged.
func annotate(err error, app, service, method string) error {
	var e *Error
	if errors.As(err, &e) {
		return e.In(app, service, method, "")
	}
	return err
}
