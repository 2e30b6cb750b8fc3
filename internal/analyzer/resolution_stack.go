package analyzer

import (
	"fmt"
	"strings"

	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// stackEntry is one symbol whose type is being computed.
type stackEntry struct {
	symbol  *symbols.Symbol
	valid   bool
	partial typesystem.Type // class under construction, if any
}

// resolutionStack detects self-referential declarations. Push and pop are
// strictly paired; a symbol that is pushed while already present poisons
// every entry from its first occurrence to the top.
type resolutionStack struct {
	entries []*stackEntry
}

// push returns the new entry, or false when sym is already being resolved.
// In that case nothing is pushed and the cycle members are marked invalid.
func (s *resolutionStack) push(sym *symbols.Symbol) (*stackEntry, bool) {
	for i, entry := range s.entries {
		if entry.symbol == sym {
			for _, member := range s.entries[i:] {
				member.valid = false
			}
			return nil, false
		}
	}
	entry := &stackEntry{symbol: sym, valid: true}
	s.entries = append(s.entries, entry)
	return entry, true
}

func (s *resolutionStack) pop(entry *stackEntry) {
	top := len(s.entries) - 1
	if top < 0 || s.entries[top] != entry {
		panic(fmt.Sprintf("resolution stack out of order popping %s: %s", entry.symbol, s))
	}
	s.entries[top] = nil
	s.entries = s.entries[:top]
}

func (s *resolutionStack) depth() int {
	return len(s.entries)
}

func (s *resolutionStack) String() string {
	parts := make([]string, len(s.entries))
	for i, entry := range s.entries {
		parts[i] = entry.symbol.String()
		if entry.partial != nil {
			parts[i] += " (" + entry.partial.String() + ")"
		}
		if !entry.valid {
			parts[i] += "!"
		}
	}
	return "[" + strings.Join(parts, " -> ") + "]"
}
