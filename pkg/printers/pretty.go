package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/video"
)

// TitleWidth is the widest title printed in lists.
const TitleWidth = 48

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

// Writer is where output goes, color.Output unless Out is set.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Writer(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.Writer(), title)
	_, _ = c.Fprintf(pp.Writer(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Writer(), " item")
	default:
		_, _ = c.Fprintln(pp.Writer(), " items")
	}
}

// Symbol is the glyph printed in front of an item.
func Symbol(k media.Kind) string {
	if k == media.KindVideo {
		return "▶"
	}
	return "▣"
}

// Items prints items as a table in the order given.
func (pp *PrettyPrint) Items(items ...media.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.Writer(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		title := truncate.StringWithTail(it.DisplayTitle(), TitleWidth, "…")
		row := []interface{}{Symbol(it.Kind), title, faint.Sprint(it.SectionName)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(it.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
	pp.NewLine()
}

// Sections prints each section with its item count.
func (pp *PrettyPrint) Sections(sections []media.Section, counts map[string]int) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Section"), bold.Sprint("Items"))
	for _, s := range sections {
		name := s.Name
		if s.IsAll() {
			name = faint.Sprint(name)
		}
		tbl.AddRow(name, counts[s.Name])
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}

// Item prints every field of one item.
func (pp *PrettyPrint) Item(it media.Item) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("id"), it.ID)
	tbl.AddRow(bold.Sprint("kind"), it.Kind)
	tbl.AddRow(bold.Sprint("title"), it.DisplayTitle())
	tbl.AddRow(bold.Sprint("section"), it.SectionName)
	tbl.AddRow(bold.Sprint("position"), it.Position)
	tbl.AddRow(bold.Sprint("created"), it.CreatedAt)
	tbl.AddRow(bold.Sprint("source"), it.SourceURL)
	if it.Kind == media.KindVideo && it.VideoID != "" {
		tbl.AddRow(bold.Sprint("embed"), video.EmbedURL(it.VideoID))
	}
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}

// Line prints a single status line, e.g. after a mutation.
func (pp *PrettyPrint) Line(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprint(pp.Writer(), msg)
}

// Warn prints a yellow warning line.
func (pp *PrettyPrint) Warn(format string, args ...interface{}) {
	w := color.New(color.FgYellow)
	_, _ = w.Fprintf(pp.Writer(), "warning: "+format+"\n", args...)
}
