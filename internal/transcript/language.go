package transcript

// Language is a transcript language.
type Language struct {
	Code string
	Name string
}

var (
	English = Language{Code: "en", Name: "English"}
	Hindi   = Language{Code: "hi", Name: "Hindi"}
)

// Preference is the ordered pair of languages to try.
type Preference struct {
	Primary   Language
	Secondary Language
}

// PreferenceFor returns Hindi then English for "hi", and English then Hindi
// for anything else.
func PreferenceFor(code string) Preference {
	if code == Hindi.Code {
		return Preference{Primary: Hindi, Secondary: English}
	}
	return Preference{Primary: English, Secondary: Hindi}
}

// Codes returns the language codes in preference order.
func (p Preference) Codes() []string {
	return []string{p.Primary.Code, p.Secondary.Code}
}
