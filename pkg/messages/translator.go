package messages

// Translator resolves an error kind plus its validator parameters into
// display text. *Catalog is the bundled implementation; callers with their
// own localisation layer implement this instead.
type Translator interface {
	Resolve(kind string, params map[string]string) (string, bool)
}

// MissingMessageHandler produces the text shown when no message resolves for
// an error kind.
type MissingMessageHandler func(kind string, params map[string]string) string

// MissingMessageDefault echoes the kind so an unmapped failure stays
// visible.
func MissingMessageDefault(kind string, _ map[string]string) string {
	return kind
}

type fallbackTranslator struct {
	primary   Translator
	onMissing MissingMessageHandler
}

// WithFallback wraps a translator so every kind resolves: misses route
// through onMissing instead of reporting false. A nil handler uses
// MissingMessageDefault; a nil translator resolves everything through the
// handler.
func WithFallback(t Translator, onMissing MissingMessageHandler) Translator {
	if onMissing == nil {
		onMissing = MissingMessageDefault
	}
	return &fallbackTranslator{primary: t, onMissing: onMissing}
}

func (f *fallbackTranslator) Resolve(kind string, params map[string]string) (string, bool) {
	if f.primary != nil {
		if text, ok := f.primary.Resolve(kind, params); ok {
			return text, true
		}
	}
	return f.onMissing(kind, params), true
}
