package textproc

import (
	"strings"

	"quizcraft/internal/domain"
	"quizcraft/internal/util"
)

// DefaultSectionTitle names the implicit section used when the text
// carries no headings.
const DefaultSectionTitle = "Main Content"

// headingMarker is the character whose leading run marks a heading line.
const headingMarker = '#'

// SplitSections divides text into titled sections delimited by heading
// lines. A heading line begins with a run of '#'; the run length becomes
// the section level and the rest of the line its title. Text between
// consecutive headings (heading line stripped) becomes the preceding
// section's content. Text without any heading yields one implicit section.
func SplitSections(text string) []*domain.Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")

	type heading struct {
		line  int
		level int
		title string
	}
	var headings []heading
	for i, line := range lines {
		level := headingLevel(line)
		if level == 0 {
			continue
		}
		title := strings.TrimSpace(strings.TrimLeft(line, string(headingMarker)))
		headings = append(headings, heading{line: i, level: level, title: title})
	}

	if len(headings) == 0 {
		return []*domain.Section{newSection(DefaultSectionTitle, text, 1)}
	}

	var sections []*domain.Section

	// Text before the first heading belongs to an implicit preamble
	// section so no content is lost.
	if pre := strings.TrimSpace(strings.Join(lines[:headings[0].line], "\n")); pre != "" {
		sections = append(sections, newSection(DefaultSectionTitle, pre, 1))
	}

	for i, h := range headings {
		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].line
		}
		content := strings.TrimSpace(strings.Join(lines[h.line+1:end], "\n"))
		sections = append(sections, newSection(h.title, content, h.level))
	}
	return sections
}

func newSection(title, content string, level int) *domain.Section {
	return &domain.Section{
		ID:         util.NewULID(),
		Title:      title,
		Content:    content,
		Level:      level,
		Paragraphs: SplitParagraphs(content),
	}
}

// headingLevel returns the length of the leading heading-marker run, or 0
// when the line is not a heading. A heading requires a space or further
// text after the run ("#tag" styles still count; "####" alone does not).
func headingLevel(line string) int {
	trimmed := strings.TrimSpace(line)
	level := 0
	for _, r := range trimmed {
		if r != headingMarker {
			break
		}
		level++
	}
	if level == 0 || strings.TrimLeft(trimmed, string(headingMarker)) == "" {
		return 0
	}
	return level
}

// SplitParagraphs splits content on blank lines, dropping empties.
func SplitParagraphs(content string) []string {
	var out []string
	for _, p := range strings.Split(content, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
