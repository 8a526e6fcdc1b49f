package protoreg

import "strings"

const (
	requestSuffix  = "Request"
	responseSuffix = "Response"
	listToken      = "List"
)

// DefaultListFieldName is the field name used for the repeated element of
// generated list messages when neither the serializer nor the
// configuration overrides it.
const DefaultListFieldName = "results"

// rreplace replaces the last occurrence of old in s.
func rreplace(s, old, new string) string {
	i := strings.LastIndex(s, old)
	if i < 0 {
		return s
	}
	return s[:i] + new + s[i+len(old):]
}

// trimSerializerSuffix strips a schema-wrapper serializer suffix from a
// class name, rightmost occurrence, once. "ProtoSerializer" is preferred
// over the generic "Serializer".
func trimSerializerSuffix(name string) string {
	if strings.Contains(name, "ProtoSerializer") {
		return rreplace(name, "ProtoSerializer", "")
	}
	if strings.Contains(name, "Serializer") {
		return rreplace(name, "Serializer", "")
	}
	return name
}

func directionSuffix(isRequest bool) string {
	if isRequest {
		return requestSuffix
	}
	return responseSuffix
}

// messageNameFor derives the message name for a serializer. With separate
// request/response generation and appendType set, the direction suffix is
// appended.
func messageNameFor(s Serializer, isRequest, separate, appendType bool) string {
	name := trimSerializerSuffix(s.Name())
	if separate && appendType {
		name += directionSuffix(isRequest)
	}
	return name
}

// listWrapperName names a generated list message. An explicit name gets
// the "List" token inserted before its direction suffix when it carries
// one, appended otherwise. Without an explicit name the wrapper is
// base + "List" + direction suffix.
func listWrapperName(explicit, base string, isRequest, separate bool) string {
	if explicit != "" {
		if !separate {
			return explicit + listToken
		}
		suffix := directionSuffix(isRequest)
		if strings.HasSuffix(explicit, suffix) {
			return explicit[:len(explicit)-len(suffix)] + listToken + suffix
		}
		return explicit + listToken
	}
	return base + listToken + directionSuffix(isRequest)
}

// baseNameForList re-derives the base name for a list wrapper from an
// already-suffixed message name. An existing "List"+suffix combination is
// removed first so the wrapper never doubles the token.
func baseNameForList(name string, isRequest bool) string {
	suffix := directionSuffix(isRequest)
	if listSuffix := listToken + suffix; strings.Contains(name, listSuffix) {
		return rreplace(name, listSuffix, "")
	}
	return rreplace(name, suffix, "")
}
