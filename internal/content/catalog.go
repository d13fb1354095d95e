package content

func picsum(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/200"
}

var sections = []Section{
	{
		Category:    CategoryHome,
		Title:       "قيم وولاء",
		Description: "تهدف مبادرة مدرسة الطريف إلى غرس قيم المواطنة وتعزيز الهوية الوطنية لديكِ، باعتباركِ ثروة الوطن، بما يتماشى مع رؤية عمان ٢٠٤٠.",
	},
	{
		Category:    CategoryRights,
		Title:       "حقوق الطفل في سلطنة عمان",
		Description: "حقوقكِ مصانة في وطننا، فهي الأساس لمستقبل مشرق. تعرفي عليها لتكوني مواطنة واعية ومسؤولة.",
		Topics: []Topic{
			{Name: "الحق في التعليم", Image: picsum("education")},
			{Name: "الحق في الرعاية الصحية", Image: picsum("health")},
			{Name: "الحق في الحماية", Image: picsum("protection")},
			{Name: "الحق في التعبير عن الرأي", Image: picsum("expression")},
		},
	},
	{
		Category:    CategoryHobbies,
		Title:       "هواياتي في خدمة وطني",
		Description: "كل موهبة لديكِ هي بذرة عطاء لوطنك. استثمري هوايتك لتكون بصمة إيجابية في مجتمعك.",
		Topics: []Topic{
			{Name: "الرسم والفن التشكيلي", Image: picsum("art")},
			{Name: "كتابة القصص والشعر", Image: picsum("writing")},
			{Name: "البرمجة والتصميم الرقمي", Image: picsum("coding")},
			{Name: "التصوير الفوتوغرافي", Image: picsum("photo")},
		},
	},
	{
		Category:    CategoryHeritage,
		Title:       "تراثنا.. فخرنا وهويتنا",
		Description: "تراثنا ليس مجرد حكايات من الماضي، بل هو جذورنا التي تمنحنا القوة والأصالة. اكتشفي كنوز أجدادنا.",
		Topics: []Topic{
			{Name: "الأزياء العمانية التقليدية", Image: picsum("fashion")},
			{Name: "صناعة الفخار في بهلاء", Image: picsum("pottery")},
			{Name: "نظام الأفلاج المائي", Image: picsum("aflaj")},
			{Name: "صناعة الحلوى العمانية", Image: picsum("halwa")},
		},
	},
	{
		Category:    CategoryFigures,
		Title:       "قدوتي العُمانية",
		Description: "في تاريخنا العريق رجال ونساء أضاؤوا دروب المجد. تعرفي على قصصهم واستلهمي من إنجازاتهم.",
		Topics: []Topic{
			{Name: "السيد سعيد بن سلطان", Image: picsum("sultan")},
			{Name: "أحمد بن ماجد", Image: picsum("majid")},
			{Name: "الطبيبة ظبية بنت محمد", Image: picsum("doctor")},
			{Name: "الإمام جابر بن زيد", Image: picsum("jabir")},
			{Name: "سير سلاطين سلطنة عمان", Image: picsum("sultans_oman")},
		},
	},
	{
		Category:    CategoryAsk,
		Title:       "اسأل حكمة",
		Description: "هل لديكِ سؤال محدد؟ اسألي 'حكمة' مباشرةً لتحصلي على إجابة.",
	},
	{
		Category:    CategoryQuiz,
		Title:       "اختبار تفاعلي",
		Description: "اختبري معلوماتكِ في رحلة ممتعة وتحدٍ شيّق عن وطنك.",
	},
}

// Catalog returns every section in navigation order. The slices are copies.
func Catalog() []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.withLabel())
	}
	return out
}

func FindSection(c Category) (Section, bool) {
	for _, s := range sections {
		if s.Category == c {
			return s.withLabel(), true
		}
	}
	return Section{}, false
}

func (s Section) withLabel() Section {
	s.Label = s.Category.Title()
	if s.Topics != nil {
		s.Topics = append([]Topic(nil), s.Topics...)
	}
	return s
}
