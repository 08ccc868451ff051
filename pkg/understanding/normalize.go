package understanding

import "strings"

var letterFolder = strings.NewReplacer(
	"أ", "ا", "إ", "ا", "آ", "ا",
	"ة", "ه",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

// Normalize lowercases text, folds alef variants and taa marbuta, converts
// Arabic-Indic digits to ASCII and collapses whitespace.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = letterFolder.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

// FoldDigits converts Arabic-Indic and Persian digits to ASCII and leaves
// everything else untouched.
func FoldDigits(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}
		return r
	}, text)
}
