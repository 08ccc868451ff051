package ranking

import "strings"

// seasonOccasionTokens folds spelling variants, dialect synonyms and
// separators of seasons and occasions onto one token.
var seasonOccasionTokens = map[string]string{
	"رمضان": "ramadan", "ramadan": "ramadan", "رمضان كريم": "ramadan", "ramdan": "ramadan", "رمضان2025": "ramadan",

	"عيد الفطر": "eid-al-fitr", "عيد الفطر المبارك": "eid-al-fitr", "eid-al-fitr": "eid-al-fitr", "eid": "eid-al-fitr",
	"el3id": "eid-al-fitr", "العيد الصغير": "eid-al-fitr", "العيد": "eid-al-fitr",

	"عيد الأضحى": "eid-al-adha", "عيد الاضحى": "eid-al-adha", "eid-al-adha": "eid-al-adha", "العيد الكبير": "eid-al-adha",
	"el3id elkbeer": "eid-al-adha",

	"المولد النبوي": "mawlid", "mawlid": "mawlid", "المولد": "mawlid", "elmawlid": "mawlid",

	"شم النسيم": "sham-el-nessim", "sham-el-nessim": "sham-el-nessim", "sham el nessim": "sham-el-nessim", "sham": "sham-el-nessim",

	"عيد الحب": "valentine", "valentine": "valentine", "فالنتين": "valentine", "فالنتاين": "valentine", "valantine": "valentine",
	"عيد العشاق": "valentine", "val": "valentine",

	"عيد الأم": "mothers-day", "عيد الام": "mothers-day", "mothers-day": "mothers-day", "عيد الامهات": "mothers-day",
	"mother's day": "mothers-day", "mothers day": "mothers-day",

	"رأس السنة": "new-year", "رأس السنه": "new-year", "new-year": "new-year", "راس السنه": "new-year", "راس السنة": "new-year",
	"راس السنه الميلاديه": "new-year", "راس السنة الميلادية": "new-year", "ny": "new-year", "new year": "new-year",

	"الكريسماس": "christmas", "christmas": "christmas", "xmas": "christmas", "كريسماس": "christmas", "عيد الكريسماس": "christmas",

	"الكل": "all", "all": "all", "كل المناسبات": "all", "اي مناسبة": "all",

	"عيد الزواج": "wedding", "wedding": "wedding", "anniversary": "wedding", "anniv": "wedding", "عيد جواز": "wedding", "عيد زواج": "wedding",

	"عيد ميلاد": "birthday", "عيد الميلاد": "birthday", "birthday": "birthday", "bday": "birthday", "عيد ميلادي": "birthday",
	"عيد ميلاد سعيد": "birthday",

	"الصيف": "summer", "صيف": "summer", "الشتاء": "winter", "شتاء": "winter", "الشتا": "winter", "شتا": "winter",
	"الربيع": "spring", "ربيع": "spring", "الخريف": "fall", "خريف": "fall", "autumn": "fall",
}

// Canonical lowercases and trims val, turns "_" and "–" into "-", then maps
// known variants to their canonical token. Unknown values pass through.
func Canonical(val string) string {
	val = strings.ToLower(strings.TrimSpace(val))
	if val == "" {
		return ""
	}
	val = strings.NewReplacer("_", "-", "–", "-").Replace(val)
	if token, ok := seasonOccasionTokens[val]; ok {
		return token
	}
	return val
}

func canonicalSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if c := Canonical(v); c != "" {
			set[c] = struct{}{}
		}
	}
	return set
}
