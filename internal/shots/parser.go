// Package shots splits storyboard outline text into individual shots.
package shots

import (
	"regexp"
	"strconv"
	"strings"
)

type Shot struct {
	Number     int
	Title      string
	Action     string
	Camera     string
	Atmosphere string
}

type Outline struct {
	Shots []Shot
}

var (
	headingPattern = regexp.MustCompile(`(?i)^(?:shot|镜头)\s*#?\s*(\d+)\s*[:：.\-]?\s*(.*)$`)
	cnHeading      = regexp.MustCompile(`^第\s*(\d+)\s*(?:个)?镜头\s*[:：]?\s*(.*)$`)
	numberHeading  = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
	labelPattern   = regexp.MustCompile(`(?i)^(action|camera movement|camera|atmosphere|mood|动作|运镜|镜头运动|氛围)\s*[:：]\s*(.*)$`)
	listOrdinal    = regexp.MustCompile(`^\d+[.)]\s+`)

	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	underPattern  = regexp.MustCompile(`__([^_]+)__`)
	strikePattern = regexp.MustCompile(`~~([^~]+)~~`)
	// single asterisks only count as emphasis when not between word characters, so 5*3 survives
	italicPattern = regexp.MustCompile(`(^|[^\w*])\*([^*\s](?:[^*]*[^*\s])?)\*($|[^\w*])`)
)

// Parse reads outline text as returned by the storyboard generator. Text
// before the first shot heading is ignored. Lines inside a shot without a
// recognised label are appended to its action.
func Parse(text string) *Outline {
	outline := &Outline{
		Shots: make([]Shot, 0),
	}

	var current *Shot
	flush := func() {
		if current != nil {
			outline.Shots = append(outline.Shots, *current)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = cleanLine(line)
		if line == "" {
			continue
		}

		if number, title, ok := parseHeading(line); ok {
			flush()
			current = &Shot{Number: number, Title: title}
			continue
		}

		if current == nil {
			continue
		}

		if matches := labelPattern.FindStringSubmatch(line); len(matches) == 3 {
			assign(current, strings.ToLower(matches[1]), strings.TrimSpace(matches[2]))
			continue
		}

		current.Action = join(current.Action, line)
	}
	flush()

	return outline
}

// parseHeading accepts "Shot 3: Title", "镜头 3", "第3个镜头" and numbered list
// items such as "3. Title".
func parseHeading(line string) (int, string, bool) {
	matches := headingPattern.FindStringSubmatch(line)
	if len(matches) != 3 {
		matches = cnHeading.FindStringSubmatch(line)
	}
	if len(matches) != 3 {
		matches = numberHeading.FindStringSubmatch(line)
	}
	if len(matches) != 3 {
		return 0, "", false
	}

	number, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, "", false
	}
	return number, strings.TrimSpace(matches[2]), true
}

func assign(shot *Shot, label, value string) {
	switch label {
	case "action", "动作":
		shot.Action = join(shot.Action, value)
	case "camera movement", "camera", "运镜", "镜头运动":
		shot.Camera = join(shot.Camera, value)
	case "atmosphere", "mood", "氛围":
		shot.Atmosphere = join(shot.Atmosphere, value)
	}
}

func cleanLine(line string) string {
	line = stripFormatting(strings.TrimSpace(line))
	line = strings.TrimSpace(strings.TrimLeft(line, "#-•* \t"))
	return stripOrdinal(line)
}

// stripOrdinal drops a list number in front of a shot heading or a label,
// as in "1. Shot 1: Arrival" or "2) Action: ...".
func stripOrdinal(line string) string {
	loc := listOrdinal.FindStringIndex(line)
	if loc == nil {
		return line
	}
	rest := line[loc[1]:]
	if headingPattern.MatchString(rest) || cnHeading.MatchString(rest) || labelPattern.MatchString(rest) {
		return rest
	}
	return line
}

// stripFormatting removes paired markdown emphasis and leaves lone markers
// such as "~5s" alone.
func stripFormatting(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	text = underPattern.ReplaceAllString(text, "$1")
	text = strikePattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1$2$3")
	return text
}

func join(existing, next string) string {
	if existing == "" {
		return next
	}
	if next == "" {
		return existing
	}
	return existing + " " + next
}

func (o *Outline) Len() int {
	return len(o.Shots)
}

func (o *Outline) IsEmpty() bool {
	return len(o.Shots) == 0
}
