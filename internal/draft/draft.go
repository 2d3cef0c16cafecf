package draft

// Answer captures the in-progress response to a single question: free-form
// text plus the ordered list of stored attachment paths. Attachment lists are
// append-only; entries are never reordered or removed.
type Answer struct {
	Texte string   `json:"texte"`
	Files []string `json:"files,omitempty"`
}

// Draft maps question keys to their in-progress answers for one client.
type Draft struct {
	Answers map[string]Answer `json:"answers"`
}

// NewDraft constructs an empty draft ready for mutation.
func NewDraft() Draft {
	return Draft{Answers: map[string]Answer{}}
}

// AnswerFor returns the answer stored under the provided question key, or a
// zero answer when none exists yet.
func (draft Draft) AnswerFor(questionKey string) Answer {
	if draft.Answers == nil {
		return Answer{}
	}
	return draft.Answers[questionKey]
}

// SetText merges the provided response text into the answer stored under the
// question key, preserving previously attached files.
func (draft *Draft) SetText(questionKey string, responseText string) {
	draft.ensureAnswers()
	answer := draft.Answers[questionKey]
	answer.Texte = responseText
	draft.Answers[questionKey] = answer
}

// AppendFiles appends stored attachment paths to the answer under the
// question key without touching its text.
func (draft *Draft) AppendFiles(questionKey string, storedPaths []string) {
	if len(storedPaths) == 0 {
		return
	}
	draft.ensureAnswers()
	answer := draft.Answers[questionKey]
	answer.Files = append(answer.Files, storedPaths...)
	draft.Answers[questionKey] = answer
}

func (draft *Draft) ensureAnswers() {
	if draft.Answers == nil {
		draft.Answers = map[string]Answer{}
	}
}
