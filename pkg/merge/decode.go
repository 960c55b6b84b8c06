package merge

import (
	"bytes"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// Placeholders written in place of content that cannot be produced.
const (
	undecodablePlaceholder = "[error: cannot read file %s, it may not be a text file]"
	readErrorPlaceholder   = "[error: failed to read file %s - %v]"
)

// textDecoder converts raw bytes to text, failing on any invalid sequence.
type textDecoder struct {
	name   string
	decode func([]byte) (string, error)
}

// textDecoders are tried in order; the first one that succeeds wins.
var textDecoders = []textDecoder{
	{name: "utf-8", decode: decodeUTF8},
	{name: "gbk", decode: decodeGBK},
}

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errInvalidEncoding
	}
	return string(b), nil
}

// decodeGBK decodes b as GBK. The x/text decoder substitutes U+FFFD for
// invalid input instead of failing, and GBK has no mapping for U+FFFD, so any
// replacement character in the output means b was not GBK.
func decodeGBK(b []byte) (string, error) {
	if hasLoneEuroByte(b) {
		return "", errInvalidEncoding
	}
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errInvalidEncoding
	}
	return string(out), nil
}

// hasLoneEuroByte reports whether b holds 0x80 in lead-byte position. The
// x/text decoder maps it to the euro sign (a CP936 extension) but strict GBK
// leaves it undefined.
func hasLoneEuroByte(b []byte) bool {
	for i := 0; i < len(b); {
		switch c := b[i]; {
		case c == 0x80:
			return true
		case c < 0x80 || c == 0xff:
			i++
		default:
			i += 2
		}
	}
	return false
}

// decodeText runs the decoder chain over data and reports the encoding that
// succeeded.
func decodeText(data []byte) (text, encoding string, ok bool) {
	for _, d := range textDecoders {
		s, err := d.decode(data)
		if err == nil {
			return s, d.name, true
		}
	}
	return "", "", false
}

// ReadFileContent returns the text of the named file. It never fails: an
// undecodable file or a read error yields a placeholder naming the file.
func ReadFileContent(fsys fs.FS, name string) string {
	text, _ := readText(fsys, name)
	return text
}

// readText is ReadFileContent that also reports which encoding decoded the
// file, or "" when a placeholder was returned.
func readText(fsys fs.FS, name string) (text, encoding string) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Sprintf(readErrorPlaceholder, name, err), ""
	}
	text, encoding, ok := decodeText(data)
	if !ok {
		return fmt.Sprintf(undecodablePlaceholder, name), ""
	}
	return text, encoding
}
