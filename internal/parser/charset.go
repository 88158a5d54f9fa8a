package parser

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps body so that it yields UTF-8 regardless of the charset declared
// in contentType (e.g. "application/json; charset=iso-8859-1").
//
// TVmaze answers in UTF-8, and JSON without a charset parameter is UTF-8 by
// definition, so in the common case body is returned unchanged.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	cs := strings.ToLower(strings.TrimSpace(params["charset"]))
	if cs == "" || cs == "utf-8" || cs == "utf8" {
		return body, nil
	}

	return charset.NewReader(body, contentType)
}
