package backend

import (
	"mime"
	"net/url"
	"strings"
)

// FilenameFromContentDisposition extracts the attachment filename from a
// Content-Disposition header. The RFC 5987 `filename*=UTF-8''...` form is
// tried before the plain `filename="..."` form; when neither yields a name
// the caller-supplied fallback is returned.
func FilenameFromContentDisposition(header, fallback string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}

	if name := extendedFilename(header); name != "" {
		return name
	}

	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := strings.TrimSpace(params["filename"]); name != "" {
			return name
		}
	}
	return fallback
}

// extendedFilename handles the filename*=charset''value form, percent-decoded.
func extendedFilename(header string) string {
	lower := strings.ToLower(header)
	idx := strings.Index(lower, "filename*=")
	if idx == -1 {
		return ""
	}
	value := header[idx+len("filename*="):]
	if semi := strings.IndexByte(value, ';'); semi != -1 {
		value = value[:semi]
	}
	value = strings.Trim(strings.TrimSpace(value), `"`)

	// charset''value; only the UTF-8 charset is expected from the backend.
	parts := strings.SplitN(value, "''", 2)
	if len(parts) == 2 {
		value = parts[1]
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(decoded)
}
