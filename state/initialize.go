package state

import (
	"fmt"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// SetCodePage selects character set used to decode input documents which do
// not start with unicode BOM. Empty name resets it, input is expected to be
// UTF-8 then.
func (e *LocalEnv) SetCodePage(name string) error {
	if len(name) == 0 {
		e.CodePage = nil
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// WHATWG labels ("cp1251", "latin1") are not IANA names
		if enc, _ = charset.Lookup(name); enc == nil {
			if err == nil {
				// known to IANA, but not supported by x/text
				return fmt.Errorf("unsupported character set %q", name)
			}
			return fmt.Errorf("unknown character set %q: %w", name, err)
		}
	}
	e.CodePage = enc
	return nil
}

// CodePageName returns IANA name of selected character set.
func (e *LocalEnv) CodePageName() string {
	if e.CodePage == nil {
		return ""
	}
	n, _ := ianaindex.IANA.Name(e.CodePage)
	return n
}
