package diagnosis

import (
	"testing"

	"github.com/rafaelqm/dsdetective/internal/cases"
)

func testOptions() []cases.Option {
	return []cases.Option{
		{ID: "a", Text: "wrong one", Correct: false, Feedback: "no, because reasons"},
		{ID: "b", Text: "right one", Correct: true, Feedback: "yes, exactly"},
		{ID: "c", Text: "other wrong one", Correct: false, Feedback: "also no"},
	}
}

func TestCheckAnswerCorrect(t *testing.T) {
	v := CheckAnswer(testOptions(), "b")
	if !v.Correct {
		t.Error("expected correct verdict for option b")
	}
	if v.Feedback != "yes, exactly" {
		t.Errorf("feedback = %q, want the option's feedback verbatim", v.Feedback)
	}
}

func TestCheckAnswerIncorrect(t *testing.T) {
	v := CheckAnswer(testOptions(), "a")
	if v.Correct {
		t.Error("expected incorrect verdict for option a")
	}
	if v.Feedback != "no, because reasons" {
		t.Errorf("feedback = %q, want the option's feedback verbatim", v.Feedback)
	}
}

func TestCheckAnswerUnknownID(t *testing.T) {
	for _, id := range []string{"", "z", "B"} {
		v := CheckAnswer(testOptions(), id)
		if v.Correct {
			t.Errorf("CheckAnswer(%q): expected incorrect verdict", id)
		}
		if v.Feedback != InvalidSelectionFeedback {
			t.Errorf("CheckAnswer(%q): feedback = %q, want generic invalid-selection text", id, v.Feedback)
		}
	}
}

func TestCheckAnswerEmptyOptions(t *testing.T) {
	v := CheckAnswer(nil, "a")
	if v.Correct || v.Feedback != InvalidSelectionFeedback {
		t.Errorf("CheckAnswer(nil, a) = %+v, want invalid-selection verdict", v)
	}
}

func TestCheckAnswerDeterministic(t *testing.T) {
	opts := testOptions()
	first := CheckAnswer(opts, "c")
	second := CheckAnswer(opts, "c")
	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}
