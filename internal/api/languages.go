package api

// Language is one supported translation target.
type Language struct {
	Code string
	Name string
}

// SourceLang is the only supported source language. The backend's
// translation models are all en→X pairs.
const SourceLang = "en"

// Targets is the closed set of supported translation targets, in the
// order they appear in the picker. Target selection is a closed
// choice; free-text codes are not representable in the UI.
var Targets = []Language{
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "nl", Name: "Dutch"},
	{Code: "ru", Name: "Russian"},
	{Code: "zh", Name: "Chinese"},
}

// LookupTarget returns the Language for the given code.
func LookupTarget(code string) (Language, bool) {
	for _, l := range Targets {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}
