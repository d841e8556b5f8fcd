// Package message turns a raw email into the plain text handed to the
// classifier: decoded From and Subject headers followed by the text body.
package message

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Extract builds the classification input from a raw message. Input that
// does not parse as an email is passed through unchanged so the classifier
// still sees something.
func Extract(raw string) string {
	msg, err := mail.ReadMessage(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	from := decodeHeader(msg.Header.Get("From"))
	subject := decodeHeader(msg.Header.Get("Subject"))
	body := extractText(msg)

	return fmt.Sprintf("From: %s\nSubject: %s\n\n%s", from, subject, body)
}

// decodeHeader decodes MIME encoded-words, falling back to the raw value
func decodeHeader(value string) string {
	dec := mime.WordDecoder{CharsetReader: charsetReader}
	decoded, err := dec.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}

// charsetReader resolves non-UTF-8 charsets by name
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		// Unknown charset, pass the bytes through
		return input, nil
	}
	return enc.NewDecoder().Reader(input), nil
}

// decodeCharset converts body bytes declared with a charset parameter
func decodeCharset(data []byte, charset string) string {
	if charset == "" {
		return string(data)
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return string(data)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

// extractText returns the text content of a message. Multipart bodies
// contribute their text/plain parts; attachments and nested multiparts
// are skipped.
func extractText(msg *mail.Message) string {
	contentType := msg.Header.Get("Content-Type")

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return readSingleBody(msg.Body, params)
	}

	boundary, ok := params["boundary"]
	if !ok {
		return readSingleBody(msg.Body, nil)
	}

	mr := multipart.NewReader(msg.Body, boundary)

	var textContent bytes.Buffer
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}

		partType, partParams, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}
		if partType != "text/plain" {
			continue
		}

		partBytes, err := io.ReadAll(part)
		if err != nil {
			continue
		}
		textContent.WriteString(decodeCharset(partBytes, partParams["charset"]))
		textContent.WriteString("\n")
	}

	if textContent.Len() > 0 {
		return textContent.String()
	}
	return "[No text content found in multipart message]"
}

// readSingleBody reads a non-multipart body, decoding a declared charset
func readSingleBody(r io.Reader, params map[string]string) string {
	data, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	charset := ""
	if params != nil {
		charset = params["charset"]
	}
	return decodeCharset(data, charset)
}
