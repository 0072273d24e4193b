package archive

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// StatusError is returned when the archive host answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.URL, e.StatusCode)
}

// acceptedContentTypes lists the media types a zip download may be served as.
// An absent Content-Type is tolerated.
var acceptedContentTypes = map[string]bool{
	"application/zip":              true,
	"application/x-zip-compressed": true,
	"application/octet-stream":     true,
}

// Fetcher retrieves archives over HTTP.
type Fetcher struct {
	httpClient *http.Client
	host       string
	userAgent  string
	logger     *zap.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithHost sets the base URL archives are requested from.
func WithHost(host string) Option {
	return func(f *Fetcher) {
		f.host = strings.TrimRight(host, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

// New creates a Fetcher targeting github.com unless overridden.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: http.DefaultClient,
		host:       "https://github.com",
		userAgent:  "create-kapp",
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the branch snapshot archive URL for owner and branch.
func (f *Fetcher) URL(owner, branch string) string {
	return fmt.Sprintf("%s/%s/archive/refs/heads/%s.zip", f.host, owner, branch)
}

// Fetch issues a single GET for url and returns the fully buffered body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating download request")
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/zip")

	f.logger.Debug("requesting archive", zap.String("url", url))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "downloading %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.WithStack(&StatusError{URL: url, StatusCode: resp.StatusCode})
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || !acceptedContentTypes[mediaType] {
			return nil, errors.Newf("unexpected content type %q from %s", ct, url)
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading download stream")
	}

	f.logger.Debug("archive downloaded", zap.String("url", url), zap.Int("bytes", len(body)))
	return body, nil
}

// UserAgent builds a User-Agent value from the CLI name and build version.
// Versions that are not valid semver (e.g. "dev") are reported as-is.
func UserAgent(name, version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return name + "/" + version
	}
	return name + "/" + v.String()
}
