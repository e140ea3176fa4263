package funnel

import "testing"

func TestSessionsDefaults(t *testing.T) {
	s := NewSessions()
	if got := s.State(1); got != StateIdle {
		t.Fatalf("unknown user state = %q, want idle", got)
	}
	if got := s.Answer(1, "q1"); got != "" {
		t.Fatalf("unknown user answer = %q, want empty", got)
	}
}

func TestSessionsStateAndAnswers(t *testing.T) {
	s := NewSessions()
	s.SetState(7, StateQ1Sphere)
	s.SetAnswer(7, "q1", "q1_food")

	if got := s.State(7); got != StateQ1Sphere {
		t.Fatalf("state = %q, want %q", got, StateQ1Sphere)
	}
	if got := s.Answer(7, "q1"); got != "q1_food" {
		t.Fatalf("answer = %q, want q1_food", got)
	}
}

func TestSessionsReset(t *testing.T) {
	s := NewSessions()
	s.SetState(7, StateDay2)
	s.SetAnswer(7, "q1", "q1_money")

	s.Reset(7, StateCheckSubscription)

	if got := s.State(7); got != StateCheckSubscription {
		t.Fatalf("state after reset = %q, want %q", got, StateCheckSubscription)
	}
	if got := s.Answer(7, "q1"); got != "" {
		t.Fatalf("answer survived reset: %q", got)
	}
}

func TestSessionsClear(t *testing.T) {
	s := NewSessions()
	s.SetState(7, StateDay1)
	s.Clear(7)
	if got := s.State(7); got != StateIdle {
		t.Fatalf("state after clear = %q, want idle", got)
	}
}
