package repository

// validString reports whether a body field is present, string-typed and
// non-empty. Request bodies are decoded into map[string]any, so a missing
// field, a null, a number and an empty string all fail the same way.
func validString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}
