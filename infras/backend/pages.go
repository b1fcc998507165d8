package backend

import (
	"context"
	"fmt"
	"net/url"
)

// maxPages bounds how many `next` links ListAll follows.
const maxPages = 200

// List fetches one page of path and decodes its items, whichever list shape the backend uses.
func List[T any](ctx context.Context, client Client, session Session, path string, query url.Values) ([]T, error) {
	resp, err := client.Get(ctx, session, path, query)
	if err != nil {
		return nil, err
	}

	items, _, err := DecodeList[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return items, nil
}

// ListAll fetches path and follows `next` links until the backend stops handing them out.
func ListAll[T any](ctx context.Context, client Client, session Session, path string, query url.Values) ([]T, error) {
	resp, err := client.Get(ctx, session, path, query)
	if err != nil {
		return nil, err
	}

	all := []T{}

	for page := 0; ; page++ {
		items, next, err := DecodeList[T](resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}

		all = append(all, items...)

		if next == "" {
			return all, nil
		}

		if page+1 >= maxPages {
			return nil, fmt.Errorf("%s: more than %d pages", path, maxPages)
		}

		if resp, err = client.GetURL(ctx, session, next); err != nil {
			return nil, err
		}
	}
}

// Decode unmarshals a single-object response.
func Decode[T any](resp *Response) (T, error) {
	var out T
	if err := resp.Decode(&out); err != nil {
		return out, err
	}

	return out, nil
}
