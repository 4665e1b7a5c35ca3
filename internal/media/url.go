package media

import (
	"net/http"
	"net/url"
	"strings"
)

// URLResolver turns stored paths into the URLs clients fetch them from.
type URLResolver struct {
	prefix string
}

func NewURLResolver(mediaURL string) *URLResolver {
	if !strings.HasSuffix(mediaURL, "/") {
		mediaURL += "/"
	}
	return &URLResolver{prefix: mediaURL}
}

// Path returns the relative media URL for a stored file.
func (u *URLResolver) Path(stored string) string {
	if stored == "" {
		return ""
	}
	return u.prefix + strings.TrimPrefix(stored, "/")
}

// Resolve returns an absolute URL when r is present and the relative path otherwise.
func (u *URLResolver) Resolve(r *http.Request, stored string) string {
	p := u.Path(stored)
	if r == nil || p == "" {
		return p
	}

	// MEDIA_URL may already point at a CDN.
	if parsed, err := url.Parse(p); err == nil && parsed.IsAbs() {
		return p
	}

	abs := url.URL{Scheme: requestScheme(r), Host: r.Host, Path: p}
	return abs.String()
}

func requestScheme(r *http.Request) string {
	// Only http and https are honoured from the proxy header.
	proto := strings.ToLower(strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-Proto"), ",")[0]))
	if proto == "http" || proto == "https" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
