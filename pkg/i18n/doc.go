// Package i18n translates validation errors from package assert.
//
// Every *assert.ValidationError carries a TranslationKey such as
// "validation.string.min_length" and TranslationValues such as
// {"field": "name", "count": 3}. A Translator looks the key up in a catalog,
// substitutes %{name} placeholders and renders the result as
// "<header> <reason>", where the header comes from the "validation.invalid"
// key. Keys with "zero", "one" and "other" forms are pluralised by the "count"
// value.
//
// The bundled English catalog (DefaultAdapter) reproduces the messages of
// assert exactly, so other languages only need to supply the keys they change.
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx, i18n.ChainAdapter{
//	    i18n.DefaultAdapter(),
//	    i18n.NewFSAdapter(os.DirFS("."), "translations"), // fr.yaml, de.json, ...
//	})
//	if err != nil {
//	    return err
//	}
//
//	lang := tr.Match(r.Header.Get("Accept-Language"))
//	if _, err := assert.StringMinLength(form["name"], 3, assert.Field("name")); err != nil {
//	    msg := tr.Error(lang, err)
//	}
//
// Catalogs are YAML or JSON files whose top level keys are language codes:
//
//	fr:
//	  validation:
//	    invalid: "%{field} invalide : %{value}."
//	    string:
//	      min_length:
//	        one: "Au moins %{count} caractère."
//	        other: "Au moins %{count} caractères."
//
// Missing keys fall back to the default language and then to the English
// message stored on the error.
package i18n
