package manager

// Operation semantics over the decoded document. The document stays a
// generic JSON object here: the manager must round-trip fields it does not
// know about, and the schema gate owns shape enforcement.

var sectionNames = map[string]bool{
	"bio":      true,
	"services": true,
	"projects": true,
	"contact":  true,
}

func applyOperation(op string, current, patch map[string]any) (map[string]any, error) {
	switch op {
	case "replace":
		return patch, nil
	case "append":
		return applyAppend(current, patch)
	case "delete":
		return applyDelete(current, patch)
	}
	return nil, updateErrf("unsupported operation")
}

func sectionPatch(patch map[string]any) (string, map[string]any, error) {
	section, _ := patch["section"].(string)
	if !sectionNames[section] {
		return "", nil, updateErrf("operation requires 'section' (bio|services|projects|contact)")
	}
	data, ok := patch["data"].(map[string]any)
	if !ok {
		return "", nil, updateErrf("operation requires 'data' object")
	}
	return section, data, nil
}

func applyAppend(current, patch map[string]any) (map[string]any, error) {
	section, data, err := sectionPatch(patch)
	if err != nil {
		return nil, err
	}
	updated := shallowCopy(current)

	switch section {
	case "bio":
		bio := objectAt(updated, "bio")
		for _, key := range []string{"summary", "highlights"} {
			if v, ok := data[key]; ok {
				items, ok := v.([]any)
				if !ok {
					return nil, updateErrf("bio append requires '%s' as array", key)
				}
				bio[key] = append(listAt(bio, key), items...)
			}
		}
		for _, key := range []string{"name", "title", "location"} {
			if s, ok := data[key].(string); ok {
				bio[key] = s
			}
		}
		updated["bio"] = bio
		return updated, nil

	case "services", "projects":
		block := objectAt(updated, section)
		arrayKey := section // both sections nest their items under their own name

		if intro, ok := data["intro"].(string); ok {
			block["intro"] = intro
		}
		v, ok := data[arrayKey]
		if !ok {
			return nil, updateErrf("%s append requires '%s' array in data", section, arrayKey)
		}
		items, ok := v.([]any)
		if !ok {
			return nil, updateErrf("'%s' must be an array", arrayKey)
		}
		block[arrayKey] = append(listAt(block, arrayKey), items...)
		updated[section] = block
		return updated, nil

	case "contact":
		contact := objectAt(updated, "contact")
		for key, value := range data {
			s, ok := value.(string)
			if !ok {
				return nil, updateErrf("contact fields must be strings")
			}
			contact[key] = s
		}
		updated["contact"] = contact
		return updated, nil
	}
	return nil, updateErrf("append not supported")
}

func applyDelete(current, patch map[string]any) (map[string]any, error) {
	section, data, err := sectionPatch(patch)
	if err != nil {
		return nil, err
	}
	updated := shallowCopy(current)

	switch section {
	case "services", "projects":
		block := objectAt(updated, section)
		arrayKey := section

		names, err := deleteNames(data)
		if err != nil {
			return nil, err
		}
		kept := make([]any, 0)
		for _, item := range listAt(block, arrayKey) {
			obj, ok := item.(map[string]any)
			if ok {
				if name, _ := obj["name"].(string); names[name] {
					continue
				}
			}
			kept = append(kept, item)
		}
		block[arrayKey] = kept
		updated[section] = block
		return updated, nil

	case "bio":
		bio := objectAt(updated, "bio")
		for _, key := range []string{"summary", "highlights"} {
			v, ok := data[key]
			if !ok {
				continue
			}
			remove, err := stringSet(v)
			if err != nil {
				return nil, updateErrf("bio delete requires data.%s as string[]", key)
			}
			kept := make([]any, 0)
			for _, item := range listAt(bio, key) {
				if s, ok := item.(string); ok && remove[s] {
					continue
				}
				kept = append(kept, item)
			}
			bio[key] = kept
		}
		updated["bio"] = bio
		return updated, nil

	case "contact":
		contact := objectAt(updated, "contact")
		for key := range data {
			contact[key] = ""
		}
		updated["contact"] = contact
		return updated, nil
	}
	return nil, updateErrf("delete not supported")
}

// deleteNames accepts data.name (string) or data.names (string[]) as the
// natural key for card removal.
func deleteNames(data map[string]any) (map[string]bool, error) {
	if name, ok := data["name"].(string); ok {
		return map[string]bool{name: true}, nil
	}
	if v, ok := data["names"]; ok {
		set, err := stringSet(v)
		if err == nil {
			return set, nil
		}
	}
	return nil, updateErrf("delete requires data.name (string) or data.names (string[])")
}

func stringSet(v any) (map[string]bool, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, updateErrf("expected an array of strings")
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, updateErrf("expected an array of strings")
		}
		set[s] = true
	}
	return set, nil
}

func shallowCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// objectAt returns a copy of the object under key, or an empty object.
func objectAt(m map[string]any, key string) map[string]any {
	if obj, ok := m[key].(map[string]any); ok {
		return shallowCopy(obj)
	}
	return map[string]any{}
}

// listAt returns the list under key, or an empty list.
func listAt(m map[string]any, key string) []any {
	if items, ok := m[key].([]any); ok {
		return items
	}
	return []any{}
}
