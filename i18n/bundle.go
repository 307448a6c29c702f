package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/jibsen/goarg/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrDefaultLanguageNotFound            = errors.New("default " + ErrLanguageNotFound.Error())
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle holds the message templates of every supported language. The default
// language is the one used when rendering error messages.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	supported    []language.Tag
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundle()
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the process-wide bundle loaded from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded from the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations whose default language is English
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dirPrefix. The English file is
// loaded first and every other language must define exactly the same keys.
func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()

	if err := b.loadEmbeddedWithFS(fs, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}

	if p := b.printers[b.defaultLang]; p != nil {
		return p.Sprintf(key, args...)
	}

	if len(args) > 0 {
		return fmt.Sprintf(key, args...)
	}

	return key
}

// Message returns the raw template for key in the default language, falling back
// to English and finally to the key itself
func (b *Bundle) Message(key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[b.defaultLang][key]; ok {
		return msg
	}

	if msg, ok := b.translations[language.English][key]; ok {
		return msg
	}

	return key
}

// AddLanguage adds a new language to the bundle or merges into an existing one
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	original := b.translations[lang]
	b.translations[lang] = merged

	var errs []error
	if original == nil {
		errs = b.validateLanguage(lang)
	}

	if len(errs) > 0 {
		if original == nil {
			delete(b.translations, lang)
		} else {
			b.translations[lang] = original
		}
		return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			delete(merged, key)
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	if original == nil {
		b.supported = append(b.supported, lang)
		b.matcher = language.NewMatcher(b.supported)
	}
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

// SetDefaultLanguage selects the language used for messages. Tags which are not loaded
// are resolved to the closest supported language; ErrLanguageNotFound is returned when
// nothing matches and the default is left unchanged.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) (language.Tag, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.translations[lang]; exists {
		b.defaultLang = lang
		return lang, nil
	}

	if b.matcher == nil {
		return b.defaultLang, fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}

	_, idx, confidence := b.matcher.Match(lang)
	if confidence == language.No {
		return b.defaultLang, fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}

	b.defaultLang = b.supported[idx]

	return b.defaultLang, nil
}

// GetDefaultLanguage returns the language currently used for messages
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

func (b *Bundle) loadEmbeddedWithFS(fs embed.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return err
	}

	langEntries := make([]types.KeyValue[language.Tag, string], 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang := strings.TrimSuffix(entry.Name(), ".json")
		parsedLang, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		// embed.FS paths always use forward slashes
		filePath := path.Join(dirPrefix, entry.Name())
		if parsedLang != b.defaultLang {
			langEntries = append(langEntries, types.KeyValue[language.Tag, string]{
				Key:   parsedLang,
				Value: filePath,
			})
		} else if err := b.processLangFile(fs, parsedLang, filePath); err != nil {
			return err
		}
	}

	for _, langEntry := range langEntries {
		if err := b.processLangFile(fs, langEntry.Key, langEntry.Value); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) processLangFile(fs embed.FS, lang language.Tag, filePath string) error {
	data, err := fs.ReadFile(filePath)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations := b.translations[lang]
	if len(translations) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	if lang == b.defaultLang {
		return errs
	}

	defaultTranslations, exists := b.translations[b.defaultLang]
	if !exists {
		return append(errs, fmt.Errorf("%w: %s", ErrDefaultLanguageNotFound, b.defaultLang))
	}

	for key := range defaultTranslations {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	for key := range translations {
		if _, exists := defaultTranslations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}
