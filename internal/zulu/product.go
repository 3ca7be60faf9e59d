package zulu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Product is one package entry returned by the packages endpoint
type Product struct {
	Product       string
	Latest        bool
	Name          string
	UUID          string // Key for the checksum lookup
	JavaVersion   string // Dotted, e.g. 24.0.1
	DistroVersion string // Dotted, e.g. 24.38.21
	DownloadURL   string
}

// rawProduct mirrors the API fields we read. Version arrays stay raw so a
// wrongly shaped field is reported instead of silently dropped.
type rawProduct struct {
	Product       string          `json:"product"`
	Latest        bool            `json:"latest"`
	Name          string          `json:"name"`
	PackageUUID   string          `json:"package_uuid"`
	JavaVersion   json.RawMessage `json:"java_version"`
	DistroVersion json.RawMessage `json:"distro_version"`
	DownloadURL   string          `json:"download_url"`
}

// ProductFromJSON maps one package object onto a Product
func ProductFromJSON(raw json.RawMessage) (Product, error) {
	var rp rawProduct
	if err := json.Unmarshal(raw, &rp); err != nil {
		return Product{}, fmt.Errorf("%w: decoding package: %v", ErrInvalidInput, err)
	}

	javaVersion, err := JoinVersion(rp.JavaVersion)
	if err != nil {
		return Product{}, fmt.Errorf("java_version: %w", err)
	}
	distroVersion, err := JoinVersion(rp.DistroVersion)
	if err != nil {
		return Product{}, fmt.Errorf("distro_version: %w", err)
	}

	return Product{
		Product:       rp.Product,
		Latest:        rp.Latest,
		Name:          rp.Name,
		UUID:          rp.PackageUUID,
		JavaVersion:   javaVersion,
		DistroVersion: distroVersion,
		DownloadURL:   rp.DownloadURL,
	}, nil
}

// JoinVersion joins a JSON array of version components with dots:
// [24,0,1] -> "24.0.1". A missing or null field yields "".
func JoinVersion(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}

	var elems []json.RawMessage
	if trimmed[0] != '[' || json.Unmarshal(trimmed, &elems) != nil {
		return "", fmt.Errorf("%w: expected an array, got %s", ErrInvalidInput, trimmed)
	}

	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		parts = append(parts, componentText(e))
	}
	return strings.Join(parts, "."), nil
}

// componentText renders a single array element as text. Strings are unquoted,
// everything else keeps its JSON literal form.
func componentText(e json.RawMessage) string {
	e = bytes.TrimSpace(e)
	if len(e) > 0 && e[0] == '"' {
		if s, err := strconv.Unquote(string(e)); err == nil {
			return s
		}
	}
	return string(e)
}

// MatchesMajor reports whether the product's Java version has the given major
// version. Unparseable versions never match.
func (p Product) MatchesMajor(major string) bool {
	want, err := semver.NewVersion(major)
	if err != nil {
		return false
	}
	got, err := semver.NewVersion(p.JavaVersion)
	if err != nil {
		return false
	}
	return got.Major() == want.Major()
}
