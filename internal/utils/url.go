package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildURL joins baseURL and path and attaches params. No "?" is appended when
// params is empty.
func BuildURL(baseURL, path string, params url.Values) (string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + path)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}
