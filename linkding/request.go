package linkding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// uploadField is the multipart part name the asset upload endpoint reads.
const uploadField = "file"

// newRequest resolves e against the base URL and attaches the default
// headers, the token and body. contentType overrides the endpoint's
// Content-Type when set.
func (c *Client) newRequest(ctx context.Context, e Endpoint, body io.Reader, contentType string) (*http.Request, error) {
	rel, err := parseRequestURI(e.RequestURI())
	if err != nil {
		return nil, newError(KindInvalidURL, e.op, err)
	}

	reqURL := *c.baseURL
	reqURL.Path = rel.Path
	reqURL.RawPath = rel.RawPath
	reqURL.RawQuery = rel.RawQuery
	reqURL.ForceQuery = false
	reqURL.Fragment = ""
	reqURL.RawFragment = ""

	req, err := http.NewRequestWithContext(ctx, e.Method(), reqURL.String(), body)
	if err != nil {
		return nil, newError(KindURLBuild, e.op, err)
	}

	for key, values := range e.Header() {
		req.Header[key] = values
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// parseRequestURI parses a path with optional query. The query is sent
// verbatim; characters that cannot appear in a URI are rejected.
func parseRequestURI(s string) (*url.URL, error) {
	for i := 0; i < len(s); i++ {
		if !isURIChar(s[i]) {
			return nil, fmt.Errorf("invalid character %q at offset %d in %q", s[i], i, s)
		}
	}
	return url.ParseRequestURI(s)
}

// isURIChar reports whether b is an unreserved, reserved or percent
// character per RFC 3986. '#' is excluded since a request URI has no
// fragment.
func isURIChar(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	return strings.IndexByte("-._~:/?[]@!$&'()*+,;=%", b) >= 0
}

func encodeJSON(op Operation, v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, newError(KindRequestSerialize, op, err)
	}
	return bytes.NewReader(data), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart wraps data in a multipart form with a single "file"
// part. The part's Content-Type is sniffed from data.
func encodeMultipart(op Operation, filename string, data []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, uploadField, quoteEscaper.Replace(filename)))
	header.Set("Content-Type", mimetype.Detect(data).String())

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", newError(KindRequestSerialize, op, fmt.Errorf("failed to create form file: %w", err))
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", newError(KindRequestSerialize, op, fmt.Errorf("failed to write file content: %w", err))
	}
	if err := writer.Close(); err != nil {
		return nil, "", newError(KindRequestSerialize, op, fmt.Errorf("failed to close multipart writer: %w", err))
	}
	return &buf, writer.FormDataContentType(), nil
}
