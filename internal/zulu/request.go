// Package zulu is a client for the Azul Zulu metadata API.
// It builds package queries, maps the returned packages and resolves their checksums.
package zulu

import "net/url"

// Request defaults for the optional positional arguments
const (
	DefaultOS            = "linux-glibc"
	DefaultArch          = "x64"
	DefaultJavaFXBundled = "false"

	// EAVersion is the Java version that is only published as early access
	EAVersion = "25"
)

// Request describes which package to look up. Values are passed to the API
// unvalidated; the API is the judge of what is acceptable.
type Request struct {
	JavaVersion   string
	OS            string
	Arch          string
	JavaFXBundled string
}

// ParseArgs maps positional arguments onto a Request.
// Only the Java version is required.
func ParseArgs(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{}, ErrUsage
	}

	req := Request{
		JavaVersion:   args[0],
		OS:            DefaultOS,
		Arch:          DefaultArch,
		JavaFXBundled: DefaultJavaFXBundled,
	}
	if len(args) > 1 {
		req.OS = args[1]
	}
	if len(args) > 2 {
		req.Arch = args[2]
	}
	if len(args) > 3 {
		req.JavaFXBundled = args[3]
	}
	return req, nil
}

// ReleaseStatus returns "ea" for the early access version and "ga" otherwise.
func (r Request) ReleaseStatus() string {
	if r.JavaVersion == EAVersion {
		return "ea"
	}
	return "ga"
}

// Query returns the packages endpoint query parameters for r.
func (r Request) Query() url.Values {
	q := url.Values{}
	q.Set("java_version", r.JavaVersion)
	q.Set("os", r.OS)
	q.Set("arch", r.Arch)
	q.Set("hw_bitness", "64")
	q.Set("javafx_bundled", r.JavaFXBundled)
	q.Set("crac_supported", "false")
	q.Set("archive_type", "tar.gz")
	q.Set("release_status", r.ReleaseStatus())
	q.Set("java_package_type", "jdk")
	q.Set("latest", "true")
	return q
}
