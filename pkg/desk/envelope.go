package desk

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// BuildPath joins path segments with "/" into a server-relative path.
// String segments are percent-encoded; integer segments are rendered
// verbatim, so numeric identifiers round-trip without coercion
// ("tags", 5 → "/tags/5").
func BuildPath(segments ...interface{}) (string, error) {
	parts := make([]string, 0, len(segments))

	for _, segment := range segments {
		switch s := segment.(type) {
		case string:
			parts = append(parts, url.PathEscape(s))
		case int:
			parts = append(parts, strconv.Itoa(s))
		case int64:
			parts = append(parts, strconv.FormatInt(s, 10))
		case uint64:
			parts = append(parts, strconv.FormatUint(s, 10))
		default:
			return "", fmt.Errorf("%w: %T", ErrInvalidPathSegment, segment)
		}
	}

	return "/" + strings.Join(parts, "/"), nil
}

// UnmarshalEnvelope decodes a single entity wrapped under the named
// top-level key. A body that is not a JSON object, or an object without the
// key, is a DecodeError.
func UnmarshalEnvelope[T any](body []byte, key string) (T, error) {
	var zero T

	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return zero, &DecodeError{Key: key, Err: err}
	}

	raw, ok := envelope[key]
	if !ok {
		return zero, &DecodeError{Key: key, Err: ErrMissingEnvelopeKey}
	}

	var value T

	err = json.Unmarshal(raw, &value)
	if err != nil {
		return zero, &DecodeError{Key: key, Err: err}
	}

	return value, nil
}

// UnmarshalList decodes one page of a list response: the entities under the
// named envelope key plus whichever pagination fields the server included.
func UnmarshalList[T any](body []byte, key string) (*ListResponse[T], error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, &DecodeError{Key: key, Err: err}
	}

	raw, ok := envelope[key]
	if !ok {
		return nil, &DecodeError{Key: key, Err: ErrMissingEnvelopeKey}
	}

	list := &ListResponse[T]{}

	err = json.Unmarshal(raw, &list.Items)
	if err != nil {
		return nil, &DecodeError{Key: key, Err: err}
	}

	if raw, ok := envelope["count"]; ok {
		_ = json.Unmarshal(raw, &list.Count)
	}

	if raw, ok := envelope["next_page"]; ok {
		_ = json.Unmarshal(raw, &list.NextPage)
	}

	if raw, ok := envelope["previous_page"]; ok {
		_ = json.Unmarshal(raw, &list.PreviousPage)
	}

	if raw, ok := envelope["meta"]; ok {
		_ = json.Unmarshal(raw, &list.Meta)
	}

	if raw, ok := envelope["links"]; ok {
		_ = json.Unmarshal(raw, &list.Links)
	}

	return list, nil
}
