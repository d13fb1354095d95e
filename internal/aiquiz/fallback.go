package aiquiz

var fallbackQuestions = []Question{
	{
		Question:      "ما هو الحق الأساسي الذي يكفله قانون الطفل العماني؟",
		Options:       []string{"اللعب فقط", "التعليم والرعاية الصحية", "العمل", "امتلاك هاتف"},
		CorrectAnswer: "التعليم والرعاية الصحية",
		Explanation:   "قانون الطفل العماني يضمن حقوقاً أساسية أهمها التعليم والرعاية الصحية لينشأ جيلاً واعياً وقوياً.",
	},
	{
		Question:      "ما اسم الخنجر الذي يعد جزءاً من الزي الوطني العماني للرجال؟",
		Options:       []string{"السيف", "الخنجر العماني", "الترس", "الرمح"},
		CorrectAnswer: "الخنجر العماني",
		Explanation:   "الخنجر العماني رمز للأصالة والهوية، وهو جزء لا يتجزأ من تراثنا العريق.",
	},
	{
		Question:      "من هو البحار العماني الشهير الذي ساعد فاسكو دا غاما في الوصول إلى الهند؟",
		Options:       []string{"أحمد بن ماجد", "ابن بطوطة", "الإدريسي", "الخوارزمي"},
		CorrectAnswer: "أحمد بن ماجد",
		Explanation:   "أحمد بن ماجد، أسد البحار، ملاح عُماني فذ أذهلت خبرته العالم وأسهمت في رسم خرائط البحار.",
	},
	{
		Question:      "المحافظة على نظافة مدرستك ومجتمعك تعد من:",
		Options:       []string{"الحقوق", "الهوايات", "الواجبات الوطنية", "لا شيء مما سبق"},
		CorrectAnswer: "الواجبات الوطنية",
		Explanation:   "المواطنة الصالحة تبدأ من إحساسنا بالمسؤولية تجاه محيطنا، ونظافة وطننا تبدأ من نظافة أحيائنا ومدارسنا.",
	},
	{
		Question:      "ماذا يمثل يوم الثامن عشر من نوفمبر في سلطنة عمان؟",
		Options:       []string{"يوم الشجرة", "العيد الوطني", "يوم المعلم", "عيد الأم"},
		CorrectAnswer: "العيد الوطني",
		Explanation:   "العيد الوطني هو يوم فخر وولاء، نحتفل فيه بإنجازات وطننا الغالي ونجدد العهد على مواصلة البناء والتقدم.",
	},
}

// FallbackQuestions returns a fresh copy of the built-in question set.
func FallbackQuestions() []Question {
	return cloneAll(fallbackQuestions)
}
