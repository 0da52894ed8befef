package parser

// Intent is one parsed console line: the resolved command verb, its
// arguments, and how confident the matcher is. A nil Clarify means the line
// can be executed as-is.
type Intent struct {
	Raw        string
	Normalised string
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

// ClarifyQuestion is surfaced in the console log when input could not be
// resolved to a single command.
type ClarifyQuestion struct {
	Prompt  string
	Options []string
}

// CommandDef registers one console command and its accepted spellings.
type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
}
