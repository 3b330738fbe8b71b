package i18n

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/assertkit/pkg/assert"
	"github.com/dmitrymomot/assertkit/pkg/humanize"
)

// DefaultLanguage is used when no language is requested or none matches.
const DefaultLanguage = "en"

// headerKey holds the "Invalid <field>: <value>." part of a message.
const headerKey = "validation.invalid"

// Translator renders validation errors in the languages of its catalog.
// It is immutable after NewTranslator and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	langs          []string
	matcher        language.Matcher
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads the adapter's catalog.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.ChainAdapter{
//		i18n.DefaultAdapter(),
//		i18n.NewFSAdapter(os.DirFS("."), "translations"),
//	})
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	t.translations = translations

	// The matcher falls back to its first tag, so the default language leads.
	t.langs = make([]string, 0, len(translations)+1)
	t.langs = append(t.langs, t.defaultLang)
	for lang := range translations {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	slices.Sort(t.langs[1:])

	tags := make([]language.Tag, len(t.langs))
	for i, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguage, err)
		}
		tags[i] = tag
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// SupportedLanguages returns the language codes of the catalog, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// T translates key into lang, substituting %{name} placeholders from params.
// A key whose translation holds "zero", "one" and "other" forms is pluralised
// by the integer "count" parameter. Missing keys fall back to the default
// language and then to the key itself.
func (t *Translator) T(lang, key string, params map[string]any) string {
	if s, ok := t.translate(lang, key, params); ok {
		return s
	}
	return key
}

// Message renders one validation error in lang.
func (t *Translator) Message(lang string, ve assert.ValidationError) string {
	params := t.params(ve)
	return t.header(lang, params) + " " + t.reason(lang, ve, params)
}

// Reason renders only the reason sentence of a validation error, for example
// "It cannot be empty.", which suits messages shown next to a form field.
func (t *Translator) Reason(lang string, ve assert.ValidationError) string {
	return t.reason(lang, ve, t.params(ve))
}

// Error renders every validation error carried by err in lang, separated by
// spaces. Other errors are returned as err.Error().
func (t *Translator) Error(lang string, err error) string {
	if err == nil {
		return ""
	}

	errs := assert.ExtractValidationErrors(err)
	if len(errs) == 0 {
		return err.Error()
	}

	parts := make([]string, len(errs))
	for i := range errs {
		parts[i] = t.Message(lang, errs[i])
	}
	return strings.Join(parts, " ")
}

// Fields groups the translated reasons of err by field name.
func (t *Translator) Fields(lang string, err error) map[string][]string {
	errs := assert.ExtractValidationErrors(err)
	if len(errs) == 0 {
		return nil
	}

	out := make(map[string][]string, len(errs))
	for i := range errs {
		out[errs[i].Field] = append(out[errs[i].Field], t.Reason(lang, errs[i]))
	}
	return out
}

// ErrorContext is Error with the language taken from ctx.
func (t *Translator) ErrorContext(ctx context.Context, err error) string {
	return t.Error(GetLocale(ctx), err)
}

func (t *Translator) params(ve assert.ValidationError) map[string]any {
	params := make(map[string]any, len(ve.TranslationValues)+2)
	for k, v := range ve.TranslationValues {
		params[k] = v
	}
	params["field"] = ve.Field
	params["value"] = humanize.Value(ve.Value)
	return params
}

func (t *Translator) header(lang string, params map[string]any) string {
	if s, ok := t.translate(lang, headerKey, params); ok {
		return s
	}
	return "Invalid " + param(params["field"]) + ": " + param(params["value"]) + "."
}

func (t *Translator) reason(lang string, ve assert.ValidationError, params map[string]any) string {
	if ve.TranslationKey != "" {
		if s, ok := t.translate(lang, ve.TranslationKey, params); ok {
			return s
		}
	}
	return ve.Message
}

func (t *Translator) translate(lang, key string, params map[string]any) (string, bool) {
	val, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		if t.missingLogMode {
			t.logger.Warn("translation not found, using default language",
				slog.String("lang", lang), slog.String("key", key))
		}
		val, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return substitute(v, params), true
	case map[string]any:
		if form, ok := plural(v, params["count"]); ok {
			return substitute(form, params), true
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation is not a string", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// lookup walks the dot separated key through the nested catalog of lang.
func (t *Translator) lookup(lang, key string) (any, bool) {
	var current any = t.translations[lang]
	for part := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, current != nil
}

// plural picks the "zero", "one" or "other" form for count.
func plural(forms map[string]any, count any) (string, bool) {
	n, ok := count.(int)
	if !ok {
		return "", false
	}

	var candidates []string
	switch n {
	case 0:
		candidates = []string{"zero", "other"}
	case 1:
		candidates = []string{"one", "other"}
	default:
		candidates = []string{"other"}
	}
	for _, c := range candidates {
		if s, ok := forms[c].(string); ok {
			return s, true
		}
	}
	return "", false
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the named parameter. Unknown placeholders
// are left in place.
func substitute(tmpl string, params map[string]any) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return param(v)
		}
		return match
	})
}

// param renders a placeholder value. Strings are inserted verbatim, other
// values the way error messages render them.
func param(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return humanize.Value(v)
}
