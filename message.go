package protoreg

// registerMessage produces the message for a serializer, storing it under
// the derived (or explicit) name unless it already exists. Well-known
// external type names pass through without being stored. The field list
// is built fully in memory and committed in one append, so a failed
// registration never leaves a partial message behind.
func (r *Registry) registerMessage(app *AppEntry, s Serializer, explicitName string, isRequest bool) (string, error) {
	name := explicitName
	if name == "" {
		name = messageNameFor(s, isRequest, r.separate(), true)
	}
	if IsWellKnown(name) {
		return name, nil
	}

	// A serializer cycle re-enters here for a name still being built;
	// returning the name breaks the recursion and the outer call commits
	// the message.
	key := app.Name + "." + name
	if r.building[key] {
		return name, nil
	}
	r.building[key] = true
	defer delete(r.building, key)

	// The primary key is always kept: hosts mark it read-only, but the
	// wire needs it in both directions.
	pkName := ""
	if m := s.Model(); m != nil {
		pkName = m.PrimaryKey.Name
	}

	var fields []MessageField
	for _, fd := range s.Fields() {
		if fd.Hidden {
			continue
		}
		if r.separate() && fd.Name != pkName {
			if isRequest && fd.ReadOnly {
				continue
			}
			if !isRequest && fd.WriteOnly {
				continue
			}
		}
		t, err := r.resolveField(app, fd, s, isRequest)
		if err != nil {
			return "", err
		}
		fields = append(fields, MessageField{Name: fd.Name, Type: t})
	}

	return r.putMessage(app, name, fields), nil
}

// registerListMessage stores the wrapper message for a list method or a
// list-flagged custom action: a repeated field of the child message plus,
// when paginated, an int32 count.
func (r *Registry) registerListMessage(app *AppEntry, base, listField, childMsg, explicitName string, isRequest, paginated bool) string {
	fields := []MessageField{{Name: listField, Type: repeatedPrefix + childMsg}}
	if paginated {
		fields = append(fields, MessageField{Name: "count", Type: "int32"})
	}
	name := listWrapperName(explicitName, base, isRequest, r.separate())
	return r.putMessage(app, name, fields)
}
