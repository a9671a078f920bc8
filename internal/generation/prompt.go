package generation

const flashcardsPrompt = `
You are a flashcard creator. Take the following content and generate exactly 10 flashcards.
Each flashcard has a front and a back, and each side is a single sentence.

Return only a JSON object in the following format, with no text outside the JSON:
{
  "flashcards": [
    {
      "front": "Front of the card",
      "back": "Back of the card"
    }
  ]
}`

const quizzesPrompt = `
You are a quiz creator. Take the following content and generate exactly 5 quiz questions.
Each question has 4 multiple-choice options: one correct answer and three plausible distractors.
The "answer" field must repeat the text of the correct option exactly.

Return only a JSON object in the following format, with no text outside the JSON:
{
  "quizzes": [
    {
      "question": "Question text",
      "options": [
        "Option A",
        "Option B",
        "Option C",
        "Option D"
      ],
      "answer": "Option C"
    }
  ]
}`

const textInputPrompt = `
The content is text written or pasted by the user. Base every item only on facts stated in it.`

const transcriptInputPrompt = `
The content is the automatic caption transcript of a video. It has no punctuation or speaker labels
and may contain transcription mistakes, filler words and off-topic remarks. Ignore greetings,
sponsor messages and calls to subscribe, and focus on the educational material.`

// BuildSystemPrompt concatenates the content-type template with the input-kind template.
func BuildSystemPrompt(ct ContentType, kind InputKind) string {
	base := flashcardsPrompt
	if ct == ContentQuizzes {
		base = quizzesPrompt
	}

	input := textInputPrompt
	if kind == InputYouTube {
		input = transcriptInputPrompt
	}

	return base + "\n" + input
}
