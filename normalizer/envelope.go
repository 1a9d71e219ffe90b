package normalizer

import (
	"bytes"
	"encoding/json"
)

// envelope recognizes one backend wrapper shape and returns the elements it carries.
type envelope func(payload any) ([]any, bool)

// envelopes are tried in order; the first that matches wins.
var envelopes = []envelope{
	bareArray,
	arrayField("data"),
	arrayField("items"),
	singleObject,
}

func bareArray(payload any) ([]any, bool) {
	arr, ok := payload.([]any)
	return arr, ok
}

func arrayField(key string) envelope {
	return func(payload any) ([]any, bool) {
		obj, ok := payload.(map[string]any)
		if !ok {
			return nil, false
		}
		arr, ok := obj[key].([]any)
		return arr, ok
	}
}

func singleObject(payload any) ([]any, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	return []any{obj}, true
}

// Elements extracts the list carried by a listing response. Payloads that are
// neither arrays nor objects yield an empty list.
func Elements(payload any) []any {
	for _, parse := range envelopes {
		if elems, ok := parse(payload); ok {
			return elems
		}
	}
	return nil
}

// Decode parses a response body into a generic JSON value. Numbers are kept as
// json.Number so integer ids survive unchanged. Malformed bodies decode to nil.
func Decode(body []byte) any {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
