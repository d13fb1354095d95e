package content

import "fmt"

const personaPreamble = "أنت مساعد ذكي تربوي ومُلهم اسمه 'حكمة'، صُممت خصيصًا لدعم مبادرة 'قيم وولاء' في مدرسة الطريف بسلطنة عمان. " +
	"تستهدف طالبات الصف السابع إلى العاشر. مهمتك هي تعزيز القيم الوطنية بأسلوب تفاعلي، محفّز، ومناسب لأعمارهن. " +
	"استخدم لغة عربية سليمة ومبسطة ونبرة دافئة ومشجعة."

// BuildPrompt returns the persona preamble followed by the instructions for
// category and the topic. Categories without instructions get the preamble only.
func BuildPrompt(category Category, topic string) string {
	switch category {
	case CategoryRights:
		return fmt.Sprintf("%s عرّفي الطالبات بحقوقهن في سلطنة عمان بأسلوب مبسط ومشوق. ركزي على حق واحد في كل مرة، واربطيه بالقانون العُماني ومثال واقعي من حياتهن اليومية. اشرحي الآن عن: %s.", personaPreamble, topic)
	case CategoryHobbies:
		return fmt.Sprintf("%s شجعي الطالبات على ربط هواياتهن بخدمة الوطن. طالبة ذكرت أن هوايتها هي \"%s\". اقترحي عليها ٣ أفكار مبتكرة لكيفية استخدام هذه الهواية في خدمة مجتمعها ووطنها عُمان، مع غرس روح الانتماء.", personaPreamble, topic)
	case CategoryHeritage:
		return fmt.Sprintf("%s قدّمي معلومات ممتعة عن تراث سلطنة عمان بأسلوب سردي مشوّق يحاكي قصص الجدات. تحدثي الآن عن: %s في عمان.", personaPreamble, topic)
	case CategoryFigures:
		return fmt.Sprintf("%s عرّفي الطالبات بشخصية عُمانية مؤثرة. اربطي إنجازاتهم بالقيم الوطنية مثل الإخلاص والشجاعة والابتكار. استخدمي أسلوب \"قدوتي العُمانية\" لتشجيعهن على الاقتداء بهم. اكتبي الآن عن: %s.", personaPreamble, topic)
	case CategoryAsk:
		return fmt.Sprintf("%s طالبة تسأل السؤال التالي. أجيبي على سؤالها بأسلوب تربوي، دقيق، ومناسب لعمرها، مع الحفاظ على نبرة 'حكمة' الدافئة والمشجعة. السؤال هو: \"%s\"", personaPreamble, topic)
	default:
		return personaPreamble
	}
}
