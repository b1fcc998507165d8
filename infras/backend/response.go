package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// Response is a completed backend exchange with its body already read.
type Response struct {
	*http.Response
	Body []byte
}

// Decode unmarshals the body into target.
func (r *Response) Decode(target any) error {
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}

	return nil
}

// Empty reports whether the body carries no usable document.
func (r *Response) Empty() bool {
	body := bytes.TrimSpace(r.Body)

	return len(body) == 0 || bytes.Equal(body, []byte("null")) || bytes.Equal(body, []byte("{}"))
}

// Page is one normalized page of a list endpoint.
type Page struct {
	Results json.RawMessage
	Next    string
}

type envelope struct {
	Results json.RawMessage `json:"results"`
	Next    *string         `json:"next"`
}

// UnwrapList normalizes the two list shapes the backend produces: a bare JSON array, or a
// paginated object whose `results` field holds the array.
func UnwrapList(body []byte) (Page, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Page{}, fmt.Errorf("empty list body: %w", ErrUnexpectedShape)
	}

	switch body[0] {
	case '[':
		return Page{Results: body}, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return Page{}, fmt.Errorf("failed to decode list envelope: %w", err)
		}

		results := bytes.TrimSpace(env.Results)
		if len(results) == 0 || results[0] != '[' {
			return Page{}, fmt.Errorf("list envelope without results: %w", ErrUnexpectedShape)
		}

		page := Page{Results: results}
		if env.Next != nil {
			page.Next = *env.Next
		}

		return page, nil
	default:
		return Page{}, fmt.Errorf("list body is neither array nor object: %w", ErrUnexpectedShape)
	}
}

// DecodeList unwraps a list response into a typed slice.
func DecodeList[T any](body []byte) ([]T, string, error) {
	page, err := UnwrapList(body)
	if err != nil {
		return nil, "", err
	}

	items := []T{}
	if err := json.Unmarshal(page.Results, &items); err != nil {
		return nil, "", fmt.Errorf("failed to decode list items: %w", err)
	}

	return items, page.Next, nil
}
