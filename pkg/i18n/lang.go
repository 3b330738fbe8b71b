package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength bounds the header accepted by Match.
const maxAcceptLanguageLength = 4096

// Match picks the supported language that best fits an Accept-Language
// header such as "fr-CA,fr;q=0.9,en;q=0.5". Regional variants match their base
// language. Unparseable headers and headers with no match yield the default
// language.
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLang
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.langs[index]
}
