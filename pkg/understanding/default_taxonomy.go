package understanding

const (
	GenderMale   = "ذكر"
	GenderFemale = "أنثى"
)

const (
	AgeGroupChild     = "طفل"
	AgeGroupTeen      = "مراهق"
	AgeGroupYoung     = "شاب/ة"
	AgeGroupMiddleAge = "متوسط العمر"
	AgeGroupSenior    = "كبير السن"
)

const (
	OccasionBirthday   = "عيد ميلاد"
	OccasionMothersDay = "عيد الأم"
	OccasionFathersDay = "عيد الأب"
	OccasionEidFitr    = "عيد الفطر"
	OccasionEidAdha    = "عيد الأضحى"
	OccasionRamadan    = "رمضان"
	OccasionGraduation = "تخرج"
	OccasionWedding    = "زواج"
	OccasionEngagement = "خطوبة"
	OccasionValentine  = "فالنتاين"
)

const (
	BudgetCheap     = "رخيص"
	BudgetMid       = "متوسط"
	BudgetExpensive = "غالي"
	BudgetOpen      = "مفتوح"
)

const UrgencyUrgent = "عاجل"

// DefaultTaxonomy returns the built-in Egyptian Arabic keyword tables.
// A fresh copy is returned on every call.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Occasions: []Category{
			{OccasionBirthday, []string{"عيد ميلاد", "عيد الميلاد", "ميلاد", "بيرث داي", "بيرثداي", "عيد ميلاده", "عيد ميلادها"}},
			{OccasionMothersDay, []string{"عيد الام", "عيد الأم", "عيد الامهات", "عيد ماما", "يوم الام"}},
			{OccasionFathersDay, []string{"عيد الاب", "عيد الأب", "عيد بابا", "يوم الاب"}},
			{OccasionEidFitr, []string{"عيد الفطر", "فطر", "العيد الصغير"}},
			{OccasionEidAdha, []string{"عيد الاضحى", "عيد الأضحى", "اضحى", "العيد الكبير"}},
			{OccasionRamadan, []string{"رمضان", "رمضان كريم"}},
			{OccasionGraduation, []string{"تخرج", "تخرجت", "تخرجه", "تخرجها", "حفله تخرج", "حفلة تخرج"}},
			{OccasionWedding, []string{"زواج", "عرس", "فرح", "جواز", "زفاف", "كتب كتاب"}},
			{OccasionEngagement, []string{"خطوبة", "خطوبه", "مخطوبه", "مخطوبة", "خطيبها", "خطيبته"}},
			{"نجاح", []string{"نجاح", "نجحت", "نجح"}},
			{"ترقية", []string{"ترقيه", "ترقية", "اترقيت", "اترقا"}},
			{"منزل جديد", []string{"بيت جديد", "منزل جديد", "شقه جديده", "شقة جديدة"}},
			{"شفاء", []string{"سلامتك", "شفا", "حمدلله ع السلامه", "الف سلامه"}},
			{"مولود جديد", []string{"سبوع", "مولود", "بيبي جديد", "ولاده"}},
			{OccasionValentine, []string{"فالنتاين", "فلانتين", "عيد الحب"}},
			{"بدون مناسبة", []string{"اي حاجه", "اي شي", "هديه وخلاص", "بدون مناسبه"}},
		},
		RecipientTypes: []Category{
			{"بنت", []string{"بنت", "فتاه", "انثى", "انسة", "بنوته", "بنوتة", "للبنت", "لبنت", "لبنتي", "لبنتى"}},
			{"ولد", []string{"ولد", "شاب", "رجل", "رجالي", "لولد", "لشاب", "لابني", "لابنى"}},
			{"أم", []string{"ام", "أم", "والدتي", "ماما", "امي", "ست الحبايب"}},
			{"أب", []string{"اب", "أب", "والدي", "بابا", "ابويا", "ابي"}},
			{"زوجة", []string{"زوجه", "زوجة", "مراتي", "زوجتي", "المدام", "ام العيال"}},
			{"زوج", []string{"زوج", "زوجي", "جوزي", "ابو العيال"}},
			{"صديقة", []string{"صديقه", "صديقة", "صاحبه", "صاحبة", "صديقتي", "صاحبتي", "البيست فريند", "بيست فريند (بنت)"}},
			{"صديق", []string{"صديق", "صاحبي", "صديقي", "زميلي", "البيست فريند", "بيست فريند (ولد)"}},
			{"طفل", []string{"طفل", "طفله", "طفلة", "بيبي", "عيّل", "نونو", "اطفال", "للاطفال"}},
			{"أخ", []string{"اخ", "أخ", "اخويا", "اخي"}},
			{"أخت", []string{"اخت", "أخت", "اختي"}},
			{"جد", []string{"جد", "جدي", "جدو"}},
			{"جدة", []string{"جده", "جدة", "جدتي", "تيتا", "نانا"}},
			{"خطيب", []string{"خطيب", "خطيبي"}},
			{"خطيبة", []string{"خطيبه", "خطيبة", "خطيبتي"}},
			{"زميل عمل", []string{"زميل", "زميل عمل", "زميلي في الشغل"}},
			{"زميلة عمل", []string{"زميله", "زميلة عمل", "زميلتي في الشغل"}},
			{"مدير", []string{"مدير", "مديري", "المدير", "البوص"}},
			{"مديرة", []string{"مديره", "مديرتي", "المديره", "البوص"}},
			{"مدرس/ة", []string{"مدرس", "مدرسه", "معلم", "معلمه", "استاذ", "استاذه"}},
		},
		Relationships: []Category{
			{"عائلة", []string{"عائلتي", "حد من العيله", "قريبي", "قريبتي"}},
			{"زميل", []string{"زميل", "زميلي", "زميله", "زميلتي", "زمايل"}},
			{"مدير", []string{"مدير", "مديري", "مديره", "مديرتي"}},
			{"خطيب/ة", []string{"خطيب", "خطيبه", "خطيبتي", "خطيبي"}},
			{"مقرب", []string{"حد قريب", "شخص عزيز"}},
			{"رسمي", []string{"حد معرفه سطحيه", "شخص رسمي"}},
		},
		Interests: []Category{
			{"رياضة", []string{"رياضه", "رياضة", "رياضي", "رياضيه", "جيم", "كوره", "كرة قدم", "سباحه", "جري", "تمارين", "فتنس"}},
			{"موسيقى", []string{"موسيقى", "مزيكا", "اغاني", "غنا", "بيسمع اغاني", "موسيقي", "موسيقيه"}},
			{"أفلام/مسلسلات", []string{"افلام", "مسلسلات", "سينما", "بيتفرج", "نتفلكس", "مشاهده"}},
			{"قراءة/كتب", []string{"قرايه", "قراءة", "كتب", "روايات", "بيقرا", "قارئ", "قارئه"}},
			{"تكنولوجيا/ألعاب", []string{"تكنولوجيا", "جيمز", "العاب", "بلايستيشن", "كمبيوتر", "تقنيه", "مهتم بالتقنيه", "جيمنج"}},
			{"طبخ", []string{"طبخ", "مطبخ", "اكل", "وصفات", "بيطبخ", "بتطبخ"}},
			{"سفر", []string{"سفر", "رحلات", "بيسافر", "بتسافر", "ترحال"}},
			{"تصوير", []string{"تصوير", "صور", "كاميرا", "بيصور", "مصور", "مصوره"}},
			{"فنون/رسم", []string{"فنون", "رسم", "الوان", "بيرسم", "فنان", "فنانه", "اعمال يدويه"}},
			{"موضة/أزياء", []string{"موضه", "ازياء", "ملابس", "شيك", "انيقه", "انيق", "ستايل"}},
			{"عطور", []string{"عطور", "برفانات", "برفان", "ريحه حلوه", "بيرفيوم"}},
			{"مكياج/عناية بالبشرة", []string{"مكياج", "ميكب", "ميك اب", "عنايه بالبشره", "سكين كير", "ماسكات"}},
			{"نباتات/حدائق", []string{"زرع", "نباتات", "جنينه", "حديقه", "زراعه", "مهتم بالزرع"}},
			{"حيوانات أليفة", []string{"حيوانات اليفه", "قطط", "كلاب", "عنده قطه", "عنده كلب"}},
			{"سيارات", []string{"عربيات", "سيارات", "مهتم بالعربيات"}},
			{"قهوة/شاي", []string{"قهوه", "شاي", "مشروبات سخنه", "كيف قهوه"}},
			{"أعمال يدوية", []string{"اعمال يدويه", "هاند ميد", "كروشيه", "تريكو"}},
			{"ديكور", []string{"ديكور", "تزيين البيت", "اثاث"}},
		},
		AgeGroups: []Category{
			{AgeGroupChild, []string{"طفل", "طفله", "بيبي", "نونو", "صغير", "اقل من 10", "تحت 10"}},
			{AgeGroupTeen, []string{"مراهق", "مراهقه", "تينيجر", "13 سنه", "14 سنه", "15 سنه", "16 سنه", "17 سنه", "18 سنه", "في ثانوي"}},
			{AgeGroupYoung, []string{"شاب", "شابه", "عشرينات", "في الجامعه", "20+", "من 20 ل 30"}},
			{AgeGroupMiddleAge, []string{"ثلاثينات", "اربعينات", "30+", "40+", "متوسط العمر", "كبير شويه"}},
			{AgeGroupSenior, []string{"كبير", "كبيره", "كبير في السن", "عجوز", "خمسينات", "ستينات", "50+", "60+", "فوق الخمسين", "فوق الستين", "متقدم في العمر"}},
		},
		BudgetQualitative: []Category{
			{BudgetCheap, []string{"رخيص", "رخيصه", "حاجه بسيطه", "مش غاليه", "في المتناول", "اقتصادي"}},
			{BudgetMid, []string{"متوسط", "متوسطه", "معقول", "لا غالي ولا رخيص", "مش فارق السعر اوي"}},
			{BudgetExpensive, []string{"غالي", "غاليه", "فخم", "فخمه", "قيمه", "قيمة", "بريستيج"}},
			{BudgetOpen, []string{"اي سعر", "مش مهم السعر", "ميزانيه مفتوحه"}},
		},
		Urgency: []Category{
			{UrgencyUrgent, []string{"مستعجل", "ضروري", "بسرعه", "انهارده", "النهارده", "بكره", "في اقرب وقت"}},
			{"غير عاجل", []string{"براحتي", "مش مستعجل", "لسه بدري", "كمان اسبوع", "الشهر الجاي"}},
		},
		Genders: []Category{
			{GenderMale, []string{"ذكر", "راجل", "ولد", "رجل", "رجالي"}},
			{GenderFemale, []string{"انثى", "بنت", "ست", "حريمي", "نسائي"}},
		},
		GenderInference: GenderInference{
			FemaleRecipients:    []string{"بنت", "أم", "زوجة", "صديقة", "أخت", "جدة", "خطيبة", "زميلة عمل", "مديرة"},
			MaleRecipients:      []string{"ولد", "أب", "زوج", "صديق", "أخ", "جد", "خطيب", "زميل عمل", "مدير", "طفل"},
			FemaleRelationships: []string{"خطيبة"},
			MaleRelationships:   []string{"خطيب"},
		},
	}
}
