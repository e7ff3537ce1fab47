package display

import "testing"

func TestLabels_Languages(t *testing.T) {
	tests := []struct {
		lang      string
		title     string
		buffering string
	}{
		{"en", "Unknown title", "Buffering..."},
		{"it", "Titolo sconosciuto", "Caricamento..."},
		{"it-IT", "Titolo sconosciuto", "Caricamento..."},
		{"fr", "Unknown title", "Buffering..."},
		{"not a tag", "Unknown title", "Buffering..."},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			labels := NewLabels(tt.lang)

			if got := labels.Fallback(FieldTitle, "", false); got != tt.title {
				t.Errorf("expected %q, got %q", tt.title, got)
			}
			if got := labels.Buffering(); got != tt.buffering {
				t.Errorf("expected %q, got %q", tt.buffering, got)
			}
		})
	}
}

func TestLabels_Fallback(t *testing.T) {
	labels := NewLabels("en")

	tests := []struct {
		field     Field
		value     string
		buffering bool
		want      string
	}{
		{FieldArtist, "Air", false, "Air"},
		{FieldArtist, "Air", true, "Air"},
		{FieldArtist, "", false, "Unknown artist"},
		{FieldAlbum, "", false, "Unknown album"},
		{FieldAlbum, "", true, "Buffering..."},
		{FieldTitle, "", true, "Buffering..."},
	}

	for _, tt := range tests {
		if got := labels.Fallback(tt.field, tt.value, tt.buffering); got != tt.want {
			t.Errorf("Fallback(%v, %q, %v) = %q, want %q", tt.field, tt.value, tt.buffering, got, tt.want)
		}
	}
}

func TestLabels_Volume(t *testing.T) {
	if got := NewLabels("it").Volume(42); got != "Volume 42%" {
		t.Errorf("unexpected volume label %q", got)
	}
}
