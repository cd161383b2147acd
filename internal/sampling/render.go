package sampling

import (
	"math/rand"

	"github.com/jonathan/list-bundler/internal/index"
)

// Kind discriminates the instruction types in a render stream.
type Kind string

const (
	// GroupHeading introduces a group; Text is the group name.
	GroupHeading Kind = "group"
	// ListHeading introduces a list; Text is the title, Path is group.key.
	ListHeading Kind = "list"
	// Item is one sampled item belonging to the preceding list heading.
	Item Kind = "item"
)

// Instruction is one step of a rendered sample. A consumer replays the
// stream in order to produce its presentation.
type Instruction struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	Path string `json:"path,omitempty"`
}

// Render flattens the grouped structure into an instruction stream with a
// fresh sample of up to k items per list. Each call replaces any previous
// rendering entirely; nothing is kept between calls. Structure (headings,
// counts) is reproducible for a given input, sampled values are whatever
// the random source yields.
func Render(grouped *index.Grouped, k int, rng *rand.Rand) []Instruction {
	k = ClampSize(k)

	var out []Instruction
	for _, group := range grouped.Groups() {
		out = append(out, Instruction{Kind: GroupHeading, Text: group})
		for _, key := range grouped.Keys(group) {
			entry, ok := grouped.Get(group, key)
			if !ok {
				continue
			}
			out = append(out, Instruction{
				Kind: ListHeading,
				Text: entry.Title,
				Path: group + "." + key,
			})
			for _, item := range Sample(entry.List, k, rng) {
				out = append(out, Instruction{Kind: Item, Text: item})
			}
		}
	}
	return out
}
