// Package catalog holds the static language/speaker/voice table used for
// speech synthesis. A catalog is built once at startup and read-only
// afterwards, so lookups need no synchronization.
package catalog

import "errors"

type Speaker struct {
	Name  string
	Voice string
}

// Voice is a fully resolved synthesis target.
type Voice struct {
	Language string
	Speaker  string
	ID       string
}

type language struct {
	speakers []Speaker
	index    map[string]string
}

type Catalog struct {
	fallback  string
	languages map[string]language
}

// New builds a catalog. Every language needs at least one speaker, and the
// fallback language must be part of the table.
func New(fallback string, speakers map[string][]Speaker) (*Catalog, error) {
	if len(speakers) == 0 {
		return nil, errors.New("catalog has no languages")
	}

	languages := make(map[string]language, len(speakers))

	for name, list := range speakers {
		if len(list) == 0 {
			return nil, errors.New("language has no speakers: " + name)
		}

		index := make(map[string]string, len(list))

		for _, s := range list {
			index[s.Name] = s.Voice
		}

		languages[name] = language{
			speakers: list,
			index:    index,
		}
	}

	if _, ok := languages[fallback]; !ok {
		return nil, errors.New("fallback language not in catalog: " + fallback)
	}

	return &Catalog{
		fallback:  fallback,
		languages: languages,
	}, nil
}

// Resolve maps a requested language and optional speaker to a voice. Unknown
// languages fall back to the catalog's fallback language, unknown or omitted
// speakers to the language's first speaker. Resolution is total: every input
// yields a voice.
func (c *Catalog) Resolve(lang, speaker string) Voice {
	entry, ok := c.languages[lang]

	if !ok {
		lang = c.fallback
		entry = c.languages[lang]
	}

	if speaker != "" {
		if id, ok := entry.index[speaker]; ok {
			return Voice{
				Language: lang,
				Speaker:  speaker,
				ID:       id,
			}
		}
	}

	first := entry.speakers[0]

	return Voice{
		Language: lang,
		Speaker:  first.Name,
		ID:       first.Voice,
	}
}

func (c *Catalog) Fallback() string {
	return c.fallback
}

// Default returns the built-in neural voice table.
func Default() *Catalog {
	c, _ := New("English", map[string][]Speaker{
		"English": {
			{Name: "Jenny", Voice: "en-US-JennyNeural"},
			{Name: "Guy", Voice: "en-US-GuyNeural"},
		},
		"Hindi": {
			{Name: "Madhur", Voice: "hi-IN-MadhurNeural"},
			{Name: "Swara", Voice: "hi-IN-SwaraNeural"},
		},
		"Tamil": {
			{Name: "Pallavi", Voice: "ta-IN-PallaviNeural"},
			{Name: "Valluvar", Voice: "ta-IN-ValluvarNeural"},
		},
		"Telugu": {
			{Name: "Mohan", Voice: "te-IN-MohanNeural"},
			{Name: "Shruti", Voice: "te-IN-ShrutiNeural"},
		},
		"Kannada": {
			{Name: "Gagan", Voice: "kn-IN-GaganNeural"},
			{Name: "Sapna", Voice: "kn-IN-SapnaNeural"},
		},
		"Malayalam": {
			{Name: "Midhun", Voice: "ml-IN-MidhunNeural"},
			{Name: "Sobhana", Voice: "ml-IN-SobhanaNeural"},
		},
		"Marathi": {
			{Name: "Aarohi", Voice: "mr-IN-AarohiNeural"},
			{Name: "Manohar", Voice: "mr-IN-ManoharNeural"},
		},
		"Gujarati": {
			{Name: "Dhwani", Voice: "gu-IN-DhwaniNeural"},
			{Name: "Niranjan", Voice: "gu-IN-NiranjanNeural"},
		},
		"Bengali": {
			{Name: "Nabanita", Voice: "bn-BD-NabanitaNeural"},
			{Name: "Bashkar", Voice: "bn-IN-BashkarNeural"},
		},
		"Urdu": {
			{Name: "Gul", Voice: "ur-IN-GulNeural"},
			{Name: "Salman", Voice: "ur-IN-SalmanNeural"},
		},
	})

	return c
}
