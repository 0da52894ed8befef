package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
}

// Registry maps typed phrases onto canonical commands. Matching runs in four
// tiers: exact canonical, exact alias, unambiguous prefix, then bounded
// levenshtein distance for typos.
type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) Register(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	r.commands[c.Canonical] = c
	r.phrases = append(r.phrases, commandPhrase{canonical: c.Canonical, alias: c.Canonical})
	for _, a := range c.Aliases {
		if n := normaliseInput(a); n != "" {
			r.phrases = append(r.phrases, commandPhrase{canonical: c.Canonical, alias: n})
		}
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type candidate struct {
	canonical string
	score     float64
}

// match scores the first token against every registered phrase and returns
// the best candidate plus distinct runners-up.
func (r *Registry) match(token string) (candidate, []candidate) {
	if token == "" {
		return candidate{}, nil
	}
	cands := make([]candidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		switch {
		case token == phrase.alias:
			score := 1.0
			if phrase.alias != phrase.canonical {
				score = 0.97
			}
			cands = append(cands, candidate{canonical: phrase.canonical, score: score})
		case len(token) >= 2 && strings.HasPrefix(phrase.alias, token):
			cands = append(cands, candidate{canonical: phrase.canonical, score: 0.9})
		case len(token) >= 3:
			dist := levenshtein.ComputeDistance(token, phrase.alias)
			if dist > levenshteinLimit(len(phrase.alias)) {
				continue
			}
			cands = append(cands, candidate{canonical: phrase.canonical, score: 0.72 - 0.08*float64(dist)})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].canonical < cands[j].canonical
		}
		return cands[i].score > cands[j].score
	})

	if len(cands) == 0 {
		return candidate{}, nil
	}
	best := cands[0]
	seen := map[string]bool{best.canonical: true}
	var alts []candidate
	for _, c := range cands[1:] {
		if seen[c.canonical] {
			continue
		}
		seen[c.canonical] = true
		alts = append(alts, c)
		if len(alts) >= 3 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// DefaultRegistry carries the range's console vocabulary.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, MinArgs: 0, MaxArgs: 0},
		{Canonical: "heal", Aliases: []string{"hp", "restore"}, MinArgs: 0, MaxArgs: 1},
		{Canonical: "ammo", Aliases: []string{"refill", "mag"}, MinArgs: 0, MaxArgs: 0},
		{Canonical: "spawn", Aliases: []string{"add"}, MinArgs: 0, MaxArgs: 1},
		{Canonical: "wave", Aliases: []string{"w"}, MinArgs: 0, MaxArgs: 0},
		{Canonical: "sens", Aliases: []string{"sensitivity", "aimdist"}, MinArgs: 1, MaxArgs: 1},
		{Canonical: "god", Aliases: []string{"invuln"}, MinArgs: 0, MaxArgs: 0},
		{Canonical: "stats", Aliases: []string{"status"}, MinArgs: 0, MaxArgs: 0},
		{Canonical: "quit", Aliases: []string{"exit", "menu"}, MinArgs: 0, MaxArgs: 0},
	}
	for _, cmd := range commands {
		r.Register(cmd)
	}
	return r
}
