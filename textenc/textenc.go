// Package textenc registers the extended (non UTF-8) text encodings used when
// decoding delimited worksheet exports, and resolves them by name.
package textenc

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	once     sync.Once
	registry map[string]encoding.Encoding
)

// Register builds the process-wide encoding table. It runs at most once and
// is safe to call from any number of goroutines, any number of times.
func Register() {
	once.Do(func() {
		reg := make(map[string]encoding.Encoding)
		sets := [][]encoding.Encoding{
			charmap.All,
			japanese.All,
			korean.All,
			simplifiedchinese.All,
			traditionalchinese.All,
			unicode.All,
		}
		for _, set := range sets {
			for _, e := range set {
				if name, err := ianaindex.IANA.Name(e); err == nil && name != "" {
					reg[normalize(name)] = e
				}
				if s, ok := e.(fmt.Stringer); ok {
					reg[normalize(s.String())] = e
				}
			}
		}
		reg["utf8"] = unicode.UTF8
		reg["utf-8"] = unicode.UTF8
		registry = reg
	})
}

// Registered reports how many names the table resolves.
func Registered() int {
	Register()
	return len(registry)
}

// Lookup resolves an encoding by IANA name or alias ("windows-1252",
// "ISO-8859-1", "Shift_JIS", "utf-16le" ...). An empty name means UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	Register()
	if strings.TrimSpace(name) == "" {
		return unicode.UTF8, nil
	}
	if e, ok := registry[normalize(name)]; ok {
		return e, nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if e == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return e, nil
}

// NewReader wraps r so that it yields UTF-8 decoded from the named encoding.
// A leading byte order mark overrides the named encoding.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(e.NewDecoder())), nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
