package zulu

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"

	"github.com/dustin/go-humanize"
)

// ChecksumPrefix is prepended to the base64 digest, as in Subresource Integrity strings
const ChecksumPrefix = "sha256-"

// packageDetails is the subset of the per-package endpoint we use
type packageDetails struct {
	SHA256Hash string `json:"sha256_hash"`
	Size       int64  `json:"size"`
}

// Checksum fetches the details of the package with the given UUID and returns
// its SHA-256 digest as "sha256-<base64>". Nothing is cached.
func (c *Client) Checksum(ctx context.Context, uuid string) (string, error) {
	detailsURL := c.baseURL + "/" + url.PathEscape(uuid)

	var details packageDetails
	if err := c.getJSON(ctx, detailsURL, &details); err != nil {
		return "", fmt.Errorf("fetching checksum for %s: %w", uuid, err)
	}

	c.log.WithField("uuid", uuid).Debugf("package size %s", humanize.Bytes(uint64(max(details.Size, 0))))

	sum, err := EncodeChecksum(details.SHA256Hash)
	if err != nil {
		return "", fmt.Errorf("checksum for %s: %w", uuid, err)
	}
	return sum, nil
}

// EncodeChecksum re-encodes a hex digest as standard base64 with the sha256- prefix.
// Odd-length input or non-hex characters are rejected.
func EncodeChecksum(hexDigest string) (string, error) {
	raw, err := hex.DecodeString(hexDigest)
	if err != nil {
		return "", fmt.Errorf("%w: sha256_hash %q: %v", ErrInvalidInput, hexDigest, err)
	}
	return ChecksumPrefix + base64.StdEncoding.EncodeToString(raw), nil
}
