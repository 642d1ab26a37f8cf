package services

// academicTransitions is the fixed list of connectives the inserter
// draws from, uniformly.
var academicTransitions = []string{
	"Moreover,",
	"Additionally,",
	"Furthermore,",
	"Hence,",
	"Therefore,",
	"Consequently,",
	"Nonetheless,",
	"Nevertheless,",
	"In contrast,",
	"On the other hand,",
	"In addition,",
	"As a result,",
}

// addTransition prepends a uniformly chosen academic connective with
// probability pTrans. There is deliberately no guard against a sentence
// that already starts with a connective, so repeated runs can stack them.
func (h *HumanizerService) addTransition(sentence string, pTrans float64) string {
	if h.rand.Float64() < pTrans {
		transition := academicTransitions[h.rand.Intn(len(academicTransitions))]
		return transition + " " + sentence
	}
	return sentence
}
