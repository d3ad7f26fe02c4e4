package language

import "strings"

// Gender selects pronouns and the anonymous token used for someone who
// cannot be made out clearly
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)

// ParseGender accepts "male", "female" or an empty string
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	case GenderUnspecified, "unspecified":
		return GenderUnspecified, true
	}
	return GenderUnspecified, false
}

// Anonymous tokens for people seen too faintly to recognise
const (
	TokenMan     = "a man"
	TokenWoman   = "a woman"
	TokenSomeone = "someone"
)

// GenderToken returns "a man", "a woman" or "someone"
func GenderToken(g Gender) string {
	switch g {
	case GenderMale:
		return TokenMan
	case GenderFemale:
		return TokenWoman
	default:
		return TokenSomeone
	}
}
