package lifecycle

type rotateTickMsg struct {
	generation uint64
}

type stallMsg struct {
	generation uint64
}

type responseMsg struct {
	generation uint64
	snapshot   jobSnapshot
	email      string
	err        error
}

type copyRevertMsg struct {
	token uint64
}

var progressPhrases = [...]string{
	"Analyzing job posting details...",
	"Extracting key requirements...",
	"Understanding company culture...",
	"Crafting personalized introduction...",
	"Highlighting relevant experience...",
	"Polishing professional tone...",
	"Adding engaging elements...",
	"Reviewing for authenticity...",
	"Finalizing your perfect email...",
	"Almost ready to impress...",
}
