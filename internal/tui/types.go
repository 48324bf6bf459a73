package tui

const heroHeadline = "AI Email Generator"

const heroTagline = "Transform job postings into compelling email responses."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	emailWrapPadding          = 2
)

const urlPlaceholder = "Paste your job posting URL here..."

const stallNotice = "The server is taking longer than usual. It may be waking up or busy; your email is still being generated."

type copyResultMsg struct {
	epoch uint64
	err   error
}

type keyHint struct {
	Key         string
	Description string
}
