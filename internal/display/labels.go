package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	keyUnknownTitle  = "Unknown title"
	keyUnknownArtist = "Unknown artist"
	keyUnknownAlbum  = "Unknown album"
	keyBuffering     = "Buffering..."
	keyVolume        = "Volume %d%%"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		keyUnknownTitle:  "Unknown title",
		keyUnknownArtist: "Unknown artist",
		keyUnknownAlbum:  "Unknown album",
		keyBuffering:     "Buffering...",
		keyVolume:        "Volume %d%%",
	},
	language.Italian: {
		keyUnknownTitle:  "Titolo sconosciuto",
		keyUnknownArtist: "Artista sconosciuto",
		keyUnknownAlbum:  "Album sconosciuto",
		keyBuffering:     "Caricamento...",
		keyVolume:        "Volume %d%%",
	},
}

// Field names a text field that can fall back to a placeholder label
type Field int

const (
	FieldTitle Field = iota
	FieldArtist
	FieldAlbum
)

// Labels produces the localized placeholder and volume strings
type Labels struct {
	printer *message.Printer
}

// NewLabels builds the label set for a BCP 47 language tag.
// Unknown or unsupported languages use English.
func NewLabels(lang string) *Labels {
	cat := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// keys are constants, SetString only fails on malformed messages
			_ = cat.SetString(tag, key, msg)
		}
	}

	return &Labels{
		printer: message.NewPrinter(matchLanguage(lang), message.Catalog(cat)),
	}
}

func matchLanguage(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	base, _ := tag.Base()
	for supported := range translations {
		if b, _ := supported.Base(); b == base {
			return supported
		}
	}
	return language.English
}

// Fallback returns value, or the placeholder for field when value is empty.
// The buffering placeholder replaces the unknown one while buffering.
func (l *Labels) Fallback(field Field, value string, buffering bool) string {
	if value != "" {
		return value
	}
	if buffering {
		return l.Buffering()
	}
	switch field {
	case FieldTitle:
		return l.printer.Sprintf(keyUnknownTitle)
	case FieldArtist:
		return l.printer.Sprintf(keyUnknownArtist)
	default:
		return l.printer.Sprintf(keyUnknownAlbum)
	}
}

// Buffering returns the label shown in place of metadata while buffering
func (l *Labels) Buffering() string {
	return l.printer.Sprintf(keyBuffering)
}

// Volume formats a volume percentage
func (l *Labels) Volume(percent int) string {
	return l.printer.Sprintf(keyVolume, percent)
}
