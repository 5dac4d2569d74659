package dictionary

import (
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// decoders maps chardet charset names to the encodings word files actually
// show up in. Legacy Chinese encodings matter most here: the classic
// sensitive-word lists circulate as GB18030 text.
var decoders = map[string]encoding.Encoding{
	"GB-18030":     simplifiedchinese.GB18030,
	"GB18030":      simplifiedchinese.GB18030,
	"GBK":          simplifiedchinese.GBK,
	"Big5":         traditionalchinese.Big5,
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"ISO-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// decodeText converts raw word-file bytes to a UTF-8 string, sniffing the
// charset when the bytes are not already valid UTF-8. Returns the decoded
// text and the charset it was decoded from.
func decodeText(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return string(data), "UTF-8", nil
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", "", fmt.Errorf("charset detection failed: %w", err)
	}

	enc, ok := decoders[result.Charset]
	if !ok {
		return "", "", fmt.Errorf("unsupported charset %q (confidence %d)", result.Charset, result.Confidence)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("decoding %s: %w", result.Charset, err)
	}
	return string(decoded), result.Charset, nil
}
