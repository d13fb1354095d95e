package aiquiz

import "google.golang.org/genai"

const quizPrompt = `
أنت خبير في إعداد الاختبارات التربوية لسلطنة عمان.
أنشئ اختبارًا تفاعليًا من 5 أسئلة بصيغة الاختيار من متعدد لطالبات الصف السابع إلى العاشر.
يجب أن تغطي الأسئلة المحاور التالية: حقوق الطفل في عمان، التراث العماني، شخصيات عمانية مؤثرة، وقيم المواطنة.
يجب أن تكون الأسئلة محفزة للتفكير وتناسب الفئة العمرية.
لكل سؤال، قدّم 4 خيارات، وحدد الإجابة الصحيحة بنفس نص أحد الخيارات حرفيًا، مع شرح بسيط ومحفز للإجابة الصحيحة.
أرجع الإجابة بتنسيق JSON فقط.
`

// ResponseSchema is sent with the request so the model answers in structured JSON.
var ResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type:        genai.TypeArray,
			Description: "قائمة الأسئلة",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question": {Type: genai.TypeString, Description: "نص السؤال"},
					"options": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "قائمة الخيارات الأربعة",
					},
					"correctAnswer": {Type: genai.TypeString, Description: "الإجابة الصحيحة من قائمة الخيارات"},
					"explanation":   {Type: genai.TypeString, Description: "شرح بسيط ومحفز للإجابة الصحيحة"},
				},
				Required: []string{"question", "options", "correctAnswer", "explanation"},
			},
		},
	},
	Required: []string{"questions"},
}

// responseJSONSchema mirrors ResponseSchema for local validation of what came back.
const responseJSONSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "options", "correctAnswer", "explanation"],
        "properties": {
          "question": {"type": "string"},
          "options": {"type": "array", "items": {"type": "string"}},
          "correctAnswer": {"type": "string"},
          "explanation": {"type": "string"}
        }
      }
    }
  }
}`
