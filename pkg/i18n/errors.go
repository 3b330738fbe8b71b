package i18n

import "errors"

var (
	ErrNilAdapter       = errors.New("translation adapter is nil")
	ErrInvalidLanguage  = errors.New("invalid language code")
	ErrParsingCancelled = errors.New("translation parsing cancelled")

	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	ErrFailedToReadFile = errors.New("failed to read translation file")
	ErrFailedToReadDir  = errors.New("failed to read translation directory")
	ErrLoadingCancelled = errors.New("loading translations cancelled")
)
