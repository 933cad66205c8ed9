package api

import (
	"net/url"
	"strings"
)

// PlaceholderImage is the asset shown when an entity has no file reference.
const PlaceholderImage = "/volunteer-center-1.jpg"

// FileURL resolves a file reference coming from the backend. Absolute and
// data URLs are returned as-is; server-relative paths are composed onto
// the public file retrieval endpoint; an empty reference resolves to the
// placeholder asset.
func FileURL(baseURL, path string) string {
	if path == "" {
		return PlaceholderImage
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "data:") {
		return path
	}

	return strings.TrimRight(baseURL, "/") + "/public/files?file_path=" + url.QueryEscape(path)
}
