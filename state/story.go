package state

import (
	"fmt"

	"github.com/milk9111/danmaku/prefabs"
)

type Speaker string

const (
	SpeakerPlayer Speaker = "player"
	SpeakerEnemy  Speaker = "enemy"
)

type Line struct {
	Speaker Speaker
	Text    string
}

// Story is a queue of lines in display order.
type Story struct {
	lines []Line
	pos   int
}

func NewStory(lines []Line) *Story {
	return &Story{lines: append([]Line(nil), lines...)}
}

// Current returns the line on screen.
func (s *Story) Current() (Line, bool) {
	if s.Empty() {
		return Line{}, false
	}
	return s.lines[s.pos], true
}

// Pop drops the current line; it reports false when the queue was empty.
func (s *Story) Pop() bool {
	if s.Empty() {
		return false
	}
	s.pos++
	return true
}

func (s *Story) Len() int { return len(s.lines) - s.pos }

func (s *Story) Empty() bool { return s.Len() == 0 }

// LinesFromValues reads the "story" list. Items are either plain strings,
// spoken by the player, or maps with "speaker" and "text".
func LinesFromValues(v prefabs.Values) []Line {
	raw := v.List("story")
	lines := make([]Line, 0, len(raw))
	for _, item := range raw {
		switch it := item.(type) {
		case string:
			lines = append(lines, Line{Speaker: SpeakerPlayer, Text: it})
		case map[string]any:
			lines = append(lines, lineFromMap(it))
		case map[any]any:
			conv := make(map[string]any, len(it))
			for k, val := range it {
				conv[fmt.Sprint(k)] = val
			}
			lines = append(lines, lineFromMap(conv))
		}
	}
	return lines
}

func lineFromMap(m map[string]any) Line {
	item := prefabs.Values(m)
	speaker := Speaker(item.String("speaker", string(SpeakerPlayer)))
	if speaker != SpeakerEnemy {
		speaker = SpeakerPlayer
	}
	return Line{Speaker: speaker, Text: item.String("text", "")}
}
