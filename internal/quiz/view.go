package quiz

// Labels shown by the presentation layer.
const (
	AdvanceLabelNext   = "Next"
	AdvanceLabelFinish = "See Result"
	RestartLabel       = "Take the quiz again"
	ResultTitle        = "Your Ideal Layer‑2 Solution"
)

// AnsweringView is what a question screen needs to render.
type AnsweringView struct {
	Number       int // 1-based
	Total        int
	Text         string
	Options      []string
	Selected     string
	CanAdvance   bool
	AdvanceLabel string
}

// ResultView is what a result screen needs to render.
type ResultView struct {
	Title        string
	Name         string
	Description  string
	RestartLabel string
}

// AnsweringView returns the data for the current question.
func (s *Session) AnsweringView() AnsweringView {
	q, _ := QuestionAt(s.current)
	label := AdvanceLabelNext
	if s.current == len(questions)-1 {
		label = AdvanceLabelFinish
	}
	return AnsweringView{
		Number:       s.current + 1,
		Total:        len(questions),
		Text:         q.Text,
		Options:      q.Options,
		Selected:     s.answers[s.current],
		CanAdvance:   s.CanAdvance(),
		AdvanceLabel: label,
	}
}

// ResultView returns the data for the result screen.
func (s *Session) ResultView() (ResultView, error) {
	o, err := s.Outcome()
	if err != nil {
		return ResultView{}, err
	}
	return ResultView{
		Title:        ResultTitle,
		Name:         o.Name,
		Description:  o.Description,
		RestartLabel: RestartLabel,
	}, nil
}
