package quiz

// Question is a single multiple-choice prompt. Option order is significant.
type Question struct {
	Text    string
	Options []string
}

// Outcome is one of the possible quiz results.
type Outcome struct {
	Name        string
	Description string
}

// Outcome names in resolution order. Ties go to the earliest name.
const (
	Optimism = "Optimism"
	Arbitrum = "Arbitrum"
	Polygon  = "Polygon"
	ZkSync   = "zkSync"
	Base     = "Base"
)

var questions = []Question{
	{
		Text: "What is your primary concern when choosing a Layer‑2 solution?",
		Options: []string{
			"Low transaction fees",
			"Fast confirmation times",
			"Strong security guarantees",
		},
	},
	{
		Text: "How important is developer tooling and ecosystem support?",
		Options: []string{
			"Very important – I want many libraries and tutorials",
			"Somewhat important – I can learn on my own",
			"Not important – I only need basic functionality",
		},
	},
	{
		Text: "Do you prefer a solution that is fully decentralized or one that offers some centralization for speed?",
		Options: []string{
			"Fully decentralized",
			"Some centralization is acceptable",
			"I don't care",
		},
	},
	{
		Text: "Which type of application are you most interested in building?",
		Options: []string{
			"Gaming / NFTs",
			"DeFi / lending",
			"Enterprise / data‑heavy apps",
		},
	},
	{
		Text: "How much risk are you willing to accept for higher throughput?",
		Options: []string{
			"Low risk – I want proven security",
			"Medium risk – I can tolerate some trade‑offs",
			"High risk – I want the fastest possible throughput",
		},
	},
}

var outcomes = []Outcome{
	{
		Name:        Optimism,
		Description: "Optimism offers low fees and fast finality with a strong focus on security and a large developer community.",
	},
	{
		Name:        Arbitrum,
		Description: "Arbitrum balances speed and security, providing a robust ecosystem and excellent tooling for DeFi and gaming projects.",
	},
	{
		Name:        Polygon,
		Description: "Polygon delivers very low fees and high throughput, ideal for gaming, NFTs, and data‑heavy applications with a flexible architecture.",
	},
	{
		Name:        ZkSync,
		Description: "zkSync uses zero‑knowledge proofs for high throughput and low fees, with a focus on privacy and strong security guarantees.",
	},
	{
		Name:        Base,
		Description: "Base is a newer Optimistic Rollup with a developer‑friendly experience and strong backing from Coinbase, great for DeFi and NFT projects.",
	},
}

// QuestionCount is the fixed number of questions in a session.
var QuestionCount = len(questions)

// Questions returns a copy of the fixed question list.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = Question{
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
		}
	}
	return out
}

// QuestionAt returns the question at index i.
func QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= len(questions) {
		return Question{}, false
	}
	q := questions[i]
	return Question{Text: q.Text, Options: append([]string(nil), q.Options...)}, true
}

// Outcomes returns a copy of the fixed outcome list in resolution order.
func Outcomes() []Outcome {
	return append([]Outcome(nil), outcomes...)
}

// OutcomeByName looks up an outcome by exact name.
func OutcomeByName(name string) (Outcome, bool) {
	for _, o := range outcomes {
		if o.Name == name {
			return o, true
		}
	}
	return Outcome{}, false
}
