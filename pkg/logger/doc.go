// Package logger builds *slog.Logger values from functional options and adds
// attribute helpers for reporting validation failures.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it in a LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "signup"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	if _, err := assert.StringNonWhitespace(form["name"], assert.Field("name")); err != nil {
//	    log.WarnContext(ctx, "rejected signup", logger.Validation(err))
//	}
//
// With the JSON handler the record above carries
//
//	"validation":{"kind":"range","field":"name","value":"\"   \"","message":"It cannot be all whitespace."}
//
// # Options
//
//   - WithDevelopment, WithProduction and WithEnvironment set level, format and
//     service attributes together.
//   - WithFormat, WithTextFormatter and WithJSONFormatter override the format.
//   - WithLevel and WithHandlerOptions tune the slog handler.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors and WithContextValue add attributes from context.
//
// Error, Errors and Validation return an empty Attr for nil errors, so they
// can be passed unconditionally.
package logger
