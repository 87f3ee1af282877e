// Package pem implements the textual envelope used for key material and
// other binary artifacts: base64 content framed by BEGIN/END marker lines.
package pem

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Markers used for stored RSA key material.
const (
	MarkerPrivateKey = "RSA PRIVATE KEY"
	MarkerPublicKey  = "RSA PUBLIC KEY"
)

const lineWidth = 64

func markers(marker string) (start, end string) {
	return "-----BEGIN " + marker + "-----", "-----END " + marker + "-----"
}

// Encode wraps contents in a PEM envelope with the given marker. The body is
// base64 encoded and broken into 64-character lines.
func Encode(contents []byte, marker string) string {
	start, end := markers(marker)

	b64 := base64.StdEncoding.EncodeToString(contents)

	lines := []string{start}
	for offset := 0; offset < len(b64); offset += lineWidth {
		tail := offset + lineWidth
		if tail > len(b64) {
			tail = len(b64)
		}
		lines = append(lines, b64[offset:tail])
	}
	lines = append(lines, end, "")

	return strings.Join(lines, "\n")
}

// Decode extracts and base64-decodes the content between the start and end
// markers. Text outside the markers is ignored.
func Decode(contents string, marker string) ([]byte, error) {
	start, end := markers(marker)

	var body []string
	inEnvelope := false
	closed := false

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)

		if line == start {
			if inEnvelope {
				return nil, fmt.Errorf("seen start marker %q twice", start)
			}
			inEnvelope = true
			continue
		}

		if !inEnvelope {
			continue
		}

		if line == end {
			inEnvelope = false
			closed = true
			break
		}

		body = append(body, line)
	}

	if !closed && !inEnvelope {
		return nil, fmt.Errorf("no start marker %q found", start)
	}
	if inEnvelope {
		return nil, fmt.Errorf("no end marker %q found", end)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("envelope %q is empty", marker)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.Join(body, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to decode envelope body: %w", err)
	}
	return decoded, nil
}
