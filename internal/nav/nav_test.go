package nav

import "testing"

func TestState_NextClampsAtLastPage(t *testing.T) {
	const pages = 5
	s := New(pages)

	for i := 0; i < pages-1; i++ {
		s.Next()
	}
	if s.Index() != pages-1 {
		t.Fatalf("index = %d after %d increments, want %d", s.Index(), pages-1, pages-1)
	}

	s.Next()
	if s.Index() != pages-1 {
		t.Fatalf("index = %d after extra increment, want %d", s.Index(), pages-1)
	}
}

func TestState_PrevClampsAtFirstPage(t *testing.T) {
	const pages = 5
	s := New(pages)
	for i := 0; i < pages-1; i++ {
		s.Next()
	}

	for i := 0; i < pages-1; i++ {
		s.Prev()
	}
	if s.Index() != 0 {
		t.Fatalf("index = %d after walking back, want 0", s.Index())
	}

	s.Prev()
	if s.Index() != 0 {
		t.Fatalf("index = %d after extra decrement, want 0", s.Index())
	}
}

func TestState_IndexStaysInRange(t *testing.T) {
	for _, pages := range []int{0, 1, 2, 7} {
		s := New(pages)
		moves := []func(){s.Next, s.Next, s.Prev, s.Next, s.Prev, s.Prev, s.Prev, s.Next}
		for _, move := range moves {
			move()
			if pages == 0 {
				if s.Index() != 0 {
					t.Fatalf("pages=0: index = %d, want 0 (navigation inert)", s.Index())
				}
				continue
			}
			if s.Index() < 0 || s.Index() > pages-1 {
				t.Fatalf("pages=%d: index = %d out of range", pages, s.Index())
			}
		}
	}
}

func TestState_RequestQuitKeepsFirstReason(t *testing.T) {
	s := New(3)

	if reason, done := s.Done(); done {
		t.Fatalf("new state is already quitting with reason %v", reason)
	}

	s.RequestQuit(CloseKeyPressed)
	reason, done := s.Done()
	if !done {
		t.Fatal("state not quitting after RequestQuit")
	}
	if reason != CloseKeyPressed {
		t.Fatalf("reason = %v, want %v", reason, CloseKeyPressed)
	}

	// Quitting is absorbing: a second request changes nothing.
	s.RequestQuit(Interrupted)
	reason, done = s.Done()
	if !done || reason != CloseKeyPressed {
		t.Fatalf("state after second request = (%v, %v), want (%v, true)", reason, done, CloseKeyPressed)
	}
}

func TestQuitReason_Strings(t *testing.T) {
	cases := []struct {
		reason QuitReason
		want   string
	}{
		{Interrupted, "interrupt signal received"},
		{CloseKeyPressed, "close key pressed"},
		{InitCompleted, "init subcommand completed"},
		{Reason("custom cause"), "custom cause"},
	}
	for _, tc := range cases {
		if got := tc.reason.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}
