package nav

// quitKind enumerates the known causes for leaving the viewer.
type quitKind int

const (
	quitOther quitKind = iota
	quitInterrupt
	quitCloseKey
	quitInitCompleted
)

// QuitReason records why the viewer stopped. The zero value is an empty
// "other" reason; use the package variables or Reason for real causes.
type QuitReason struct {
	kind    quitKind
	message string
}

// Known quit reasons.
var (
	Interrupted     = QuitReason{kind: quitInterrupt}
	CloseKeyPressed = QuitReason{kind: quitCloseKey}
	InitCompleted   = QuitReason{kind: quitInitCompleted}
)

// Reason wraps a free-form message as a quit reason, for causes the closed
// set does not cover.
func Reason(message string) QuitReason {
	return QuitReason{kind: quitOther, message: message}
}

func (r QuitReason) String() string {
	switch r.kind {
	case quitInterrupt:
		return "interrupt signal received"
	case quitCloseKey:
		return "close key pressed"
	case quitInitCompleted:
		return "init subcommand completed"
	default:
		return r.message
	}
}

// State is the navigation state machine: a page index plus a lifecycle that
// is either running or quitting. The index is clamped by the transitions
// themselves and never leaves [0, pageCount-1]; quitting is absorbing.
type State struct {
	index     int
	pageCount int
	quitting  bool
	reason    QuitReason
}

// New returns a running state at page index 0.
func New(pageCount int) *State {
	return &State{pageCount: pageCount}
}

// Next advances to the following page. At the last page, or with no pages,
// it is a no-op; the index never wraps.
func (s *State) Next() {
	if s.pageCount == 0 || s.index == s.pageCount-1 {
		return
	}
	s.index++
}

// Prev moves back one page. At the first page it is a no-op; the index
// never wraps or underflows.
func (s *State) Prev() {
	if s.index == 0 {
		return
	}
	s.index--
}

// RequestQuit moves the state to quitting with the given reason. Once
// quitting, further requests are ignored and the first reason is kept.
func (s *State) RequestQuit(reason QuitReason) {
	if s.quitting {
		return
	}
	s.quitting = true
	s.reason = reason
}

// Index returns the current page index. It is meaningful only when the
// state was created with a non-zero page count.
func (s *State) Index() int {
	return s.index
}

// PageCount returns the total number of pages.
func (s *State) PageCount() int {
	return s.pageCount
}

// Done reports whether the state is quitting, and with which reason.
func (s *State) Done() (QuitReason, bool) {
	return s.reason, s.quitting
}
