package common

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidateNotEmpty validates that a string is not empty or whitespace only
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateURI validates that uri has a scheme, e.g. file://localhost or smb://host
func ValidateURI(uri string) error {
	if uri == "" {
		return fmt.Errorf("uri cannot be empty")
	}
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid uri %s: %w", uri, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("uri has no scheme: %s", uri)
	}
	return nil
}

// ParseOrder parses the add position argument. Empty means 0.
func ParseOrder(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	order, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid order: %s", value)
	}
	if order < 0 {
		return 0, fmt.Errorf("order cannot be negative: %d", order)
	}
	return order, nil
}

// ShareLocalPath parses uri+path into the filesystem location checked
// before adding a share. An absolute URL path is used on its own, e.g.
// "smb://nas" + "/media" becomes "/media"; otherwise the network location
// (userinfo and host) is joined in front, relative to the working directory.
func ShareLocalPath(uri, path string, abs func(string) (string, error)) (string, error) {
	u, err := url.Parse(uri + path)
	if err != nil {
		return "", fmt.Errorf("invalid share url %s%s: %w", uri, path, err)
	}
	if filepath.IsAbs(u.Path) {
		return abs(u.Path)
	}
	netloc := u.Host
	if u.User != nil {
		netloc = u.User.String() + "@" + u.Host
	}
	return abs(filepath.Join(netloc, u.Path))
}
