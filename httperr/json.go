package httperr

import (
	"bytes"
	"encoding/json"
	"mime"
	"strings"
)

// bodyJSON implements the BodyJSON attachment rule for FailedResponseError:
// decode only when the Content-Type says JSON, keep only a top-level object,
// and drop top-level null entries. Every failure mode yields nil; a broken
// body never escalates past the status failure that got us here.
func bodyJSON(ex *Exchange) map[string]any {
	if len(ex.Body) == 0 || !isJSONType(contentTypeOf(ex.Header)) {
		return nil
	}

	// Decode with UseNumber so numbers aren't forced to float64.
	dec := json.NewDecoder(bytes.NewReader(ex.Body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return nil
	}

	obj, ok := v.(map[string]any)
	if !ok {
		// array, string, number, bool or null at the top level
		return nil
	}
	for k, val := range obj {
		if val == nil {
			delete(obj, k) // shallow only: nested nulls stay as-is
		}
	}
	return obj
}

// isJSONType reports whether ct names a JSON-encoded body: application/json
// or any +json suffix type. A missing Content-Type counts as non-JSON.
func isJSONType(ct string) bool {
	if ct == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
