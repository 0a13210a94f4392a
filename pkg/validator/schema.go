package validator

// Entry binds a schema key (literal field name or delimited pattern) to a rule.
type Entry struct {
	Key  string
	Rule Rule
}

// Schema is an ordered list of entries. Keys must be unique.
type Schema []Entry

// Field creates a schema entry.
func Field(key string, rule Rule) Entry {
	return Entry{Key: key, Rule: rule}
}

// Keys returns the schema keys in order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}
	return keys
}

// Lookup returns the rule for key.
func (s Schema) Lookup(key string) (Rule, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Rule, true
		}
	}
	return Rule{}, false
}
