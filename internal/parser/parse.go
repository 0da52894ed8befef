package parser

import "fmt"

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) Register(c CommandDef) {
	p.registry.Register(c)
}

// Parse resolves one console line into an Intent. Ambiguous or unmatchable
// input comes back with a Clarify question instead of a verb.
func (p *Parser) Parse(raw string) Intent {
	intent := Intent{Raw: raw, Normalised: normaliseInput(raw)}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command; try help."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	best, alts := p.registry.match(tokens[0])
	if best.canonical == "" || best.score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Unknown command. Try help, heal, ammo, spawn, wave, sens, god, stats, quit.",
		}
		return intent
	}

	// Two candidates too close to call: ask rather than guess.
	if len(alts) > 0 && best.score-alts[0].score < 0.05 && alts[0].score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: []string{best.canonical, alts[0].canonical},
		}
		return intent
	}

	def, _ := p.registry.command(best.canonical)
	args := tokens[1:]
	if len(args) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs an argument.", def.Canonical)}
		return intent
	}
	if len(args) > def.MaxArgs {
		args = args[:def.MaxArgs]
	}

	intent.Verb = def.Canonical
	intent.Args = args
	intent.Confidence = best.score
	return intent
}
