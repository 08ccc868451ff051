package message

const (
	StyleEnthusiastic = "حماسي"
	StyleFriendly     = "ودود"
	StylePlayful      = "مرح"
	StyleHelpful      = "مساعد"
	StylePractical    = "عملي"
)

var allStyles = []string{StyleEnthusiastic, StyleFriendly, StylePlayful, StyleHelpful, StylePractical}

const (
	periodMorning   = "صباح"
	periodNoon      = "ظهر"
	periodEvening   = "مساء"
	periodNight     = "ليل"
	fewProducts     = 3
	greetingChance  = 0.7
	maxSuggestions  = 2
	fallbackClosing = "قولي بس انت عايز إيه بالظبط وأنا هظبطك على الآخر!"
)

var greetings = map[string][]string{
	periodMorning: {"صباح الخير", "صباح الفل", "صباحو", "صباح النور"},
	periodNoon:    {"ظهر الخير", "يسعد أوقاتك", "هاي", "أهلاً بيك"},
	periodEvening: {"مساء الخير", "مساء الفل", "مساء النور", "مساء السعادة"},
	periodNight:   {"مساء الخير", "ليلة سعيدة", "أهلاً بيك", "هاي"},
}

type introSet struct {
	few  []string
	many []string
}

var intros = map[string]introSet{
	StyleEnthusiastic: {
		few:  []string{"جبتلك أحلى كام حاجة", "شوف أروع اختيارات", "عندنا تحف هتعجبك أوي"},
		many: []string{"جبتلك كنز من الاختيارات الجامدة", "شوف الروعة دي كلها", "دي تشكيلة تجنن بجد!"},
	},
	StyleFriendly: {
		few:  []string{"جمعتلك كام حاجة حلوة", "شوف دول كده", "عندي كام اقتراح هيعجبوك"},
		many: []string{"جبتلك مجموعة جميلة وشيك", "شوف الجمال ده كله", "عندنا اختيارات كتير هتفرحك"},
	},
	StylePlayful: {
		few:  []string{"بص بص دول عسل أوي!", "شوف شوف الحاجات الحلوة دي", "يا واد شوف التحف دي"},
		many: []string{"أوبااا! شوف الخير الكتير ده!", "ياااه! كل ده عشانك يا باشا!", "مقدرتش أقاوم، جبتلك كل ده!"},
	},
	StyleHelpful: {
		few:  []string{"اخترتلك بعناية كام اقتراح", "شوف الحاجات دي ممكن تناسبك", "بناءً على طلبك، دول أفضل اختيارات"},
		many: []string{"دي أفضل منتجات تناسب طلبك", "جمعتلك اختيارات متنوعة بتناسب احتياجاتك", "هتلاقي ضمن المجموعة دي كل اللي محتاجه"},
	},
	StylePractical: {
		few:  []string{"إليك هذه الاختيارات", "وجدت هذه المنتجات لك", "هذه بعض الاقتراحات المناسبة"},
		many: []string{"إليك مجموعة متكاملة من المنتجات", "هذه قائمة شاملة بالاختيارات المتاحة", "وجدت لك هذه المجموعة المتنوعة"},
	},
}

// keyed by a substring of the occasion name
var occasionPhrases = []struct {
	key     string
	phrases []string
}{
	{"عيد ميلاد", []string{"هتخلي عيد الميلاد مش هيتنسى أبدًا", "تسعد صاحب عيد الميلاد", "مناسبة تمامًا للاحتفال بعيد الميلاد"}},
	{"زواج", []string{"تناسب الفرحة الكبيرة دي", "تسعد قلب العروسين", "تكون بداية حلوة لحياتهم"}},
	{"تخرج", []string{"تليق بالإنجاز الكبير ده", "تكمل فرحة التخرج", "تناسب الخريج الجديد وطموحاته"}},
	{"مولود", []string{"للبيبي اللطيف والأهل", "تفرح قلب الأسرة الجديدة", "هيفرحوا الأهل والمولود الجديد"}},
	{"خطوب", []string{"تسعد المخطوبين", "تناسب فرحة الخطوبة", "هيبهروا المخطوبين بجد"}},
	{"عيد الأم", []string{"تفرح ست الحبايب", "تعبر عن حبك لأمك", "تليق بأغلى أم"}},
}

var recipientPhrases = []struct {
	key     string
	phrases []string
}{
	{"بنت", []string{"للبنات بس", "تناسب البنوتات", "حصريًا للبنات الشيك"}},
	{"ولد", []string{"للأولاد الكول", "خصيصًا للشباب", "تناسب الرجالة بس"}},
	{"زوجة", []string{"لمراتك الغالية", "تسعد الزوجة", "لشريكة حياتك"}},
	{"زوج", []string{"لجوزك الغالي", "تسعد الزوج", "لشريك حياتك"}},
	{"أم", []string{"لأمك الغالية", "للوالدة الحبيبة", "لأغلى أم"}},
	{"أب", []string{"لأبوك العزيز", "للوالد الكبير", "لأغلى أب"}},
	{"صديقة", []string{"لصحبتك المقربة", "لأعز صاحبة", "لأقرب صديقة عندك"}},
	{"صديق", []string{"لصاحبك المقرب", "لأعز صديق", "للصديق العزيز"}},
	{"أخت", []string{"لأختك العزيزة", "لأقرب الناس ليك"}},
	{"أخ", []string{"لأخوك العزيز", "لأقرب الناس ليك"}},
}

var pricePhrases = map[string][]string{
	StyleEnthusiastic: {"وكل ده في حدود %s بس!", "بأحلى سعر (%s) عشان نفرحك"},
	StyleFriendly:     {"على قد ميزانيتك (%s)", "بتكلفة معقولة (%s)"},
	StylePlayful:      {"في نطاق %s - يعني مش هتبيع الليلة عشانها", "وسعرها %s يعني مش هتضرب في الحساب 😉"},
	StyleHelpful:      {"ضمن نطاق السعر المطلوب (%s)", "بما يناسب ميزانيتك المحددة (%s)"},
	StylePractical:    {"متوفرة بسعر %s", "في حدود الميزانية المحددة %s"},
}

var urgentPhrases = []string{
	"وكلها متاحة للتوصيل السريع",
	"وتقدر تلحقها في الوقت المناسب",
	"ومتوفرة حالاً",
}

var noResults = map[string][]string{
	StyleEnthusiastic: {"للأسف مفيش حاجات متوفرة دلوقتي بس متقلقش! 💪 أنا هنا عشان أساعدك نلاقي أحلى هدية!"},
	StyleFriendly:     {"آسف يا صديقي، البحث مش لاقي حاجة دلوقتي 🙁 بس تعالى نفكر سوا في حلول تانية.."},
	StylePlayful:      {"يا لهوي! دورت في كل حتة ومش لاقي حاجة بالضبط كده! 😄 بس عندي كام فكرة مجنونة تانية!"},
	StyleHelpful:      {"للأسف مش لاقي حاجة مطابقة لطلبك حاليًا 🔍 ممكن تديني معلومات أكتر أو نغير شوية في المواصفات؟"},
	StylePractical:    {"مفيش نتايج متطابقة. خلينا نضبط البحث: ممكن نغير نطاق السعر أو نشوف فئات تانية؟"},
}

var suggestionIntros = []string{"طب ما تفكر في: ", "أقترح عليك: ", "ممكن تشوف: ", "فكرة كويسة: "}

var encouragements = []string{" إيه رأيك؟", " تحب أقترح حاجات تانية؟", " أعتقد دي هتعجبك."}

var femaleIdeas = []string{"شنطة ماركة من الكوليكشن الجديد", "سكارف حرير أنيق وعملي", "عطر فرنساوي من أحدث التشكيلات"}

var maleIdeas = []string{"محفظة جلد ماركة أصلية", "ساعة يد كلاسيك أو رياضية", "بيرفيوم رجالي فاخر"}

// preference and catalog tokens shown to the user
var categoryNames = map[string]string{
	"watches":     "ساعات",
	"wallets":     "محافظ",
	"sunglasses":  "نظارات شمس",
	"perfumes":    "عطور",
	"spray":       "سبراي",
	"accessories": "إكسسوارات",
	"kids_toys":   "ألعاب أطفال",
	"kids":        "أطفال",
	"teddy_bears": "دباديب",
	"handbags":    "شنط",
	"bags":        "شنط",
	"gifts":       "هدايا",
	"men":         "رجالي",
	"women":       "حريمي",
	"unisex":      "للجميع",
	"all":         "الكل",
}
