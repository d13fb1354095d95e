package content

type Category string

const (
	CategoryHome     Category = "home"
	CategoryRights   Category = "rights"
	CategoryHobbies  Category = "hobbies"
	CategoryHeritage Category = "heritage"
	CategoryFigures  Category = "figures"
	CategoryAsk      Category = "ask"
	CategoryQuiz     Category = "quiz"
)

var AllCategories = []Category{
	CategoryHome,
	CategoryRights,
	CategoryHobbies,
	CategoryHeritage,
	CategoryFigures,
	CategoryAsk,
	CategoryQuiz,
}

var categoryTitles = map[Category]string{
	CategoryHome:     "الرئيسية",
	CategoryRights:   "حقوق الطفل",
	CategoryHobbies:  "هواياتي وطني",
	CategoryHeritage: "تراثنا فخرنا",
	CategoryFigures:  "قدوتي العُمانية",
	CategoryAsk:      "اسأل حكمة",
	CategoryQuiz:     "اختبار تفاعلي",
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// IsContentCategory reports whether requests for c go through the content client.
// Home and quiz never do.
func (c Category) IsContentCategory() bool {
	switch c {
	case CategoryRights, CategoryHobbies, CategoryHeritage, CategoryFigures, CategoryAsk:
		return true
	}
	return false
}

func (c Category) Title() string {
	return categoryTitles[c]
}
