package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/internal/parquet"
	"github.com/huangsam/pdpboard/schema"
)

// Card width bounds for the text detail view.
const (
	minCardWidth = 18
	maxCardWidth = 36
)

// WriteDetail outputs the detail view of one project, dispatching based on the output format configured.
func WriteDetail(result schema.ProjectDetail, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		return writeDataResult(cfg, result, cfg.Output == schema.YAMLOut)
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDetailCSV(w, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResult(cfg, func(path string) error {
			return parquet.WriteProjectScoresParquet(parquet.ConvertDetail(result), path)
		})
	case schema.HTMLOut:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeDetailCards(w, result, cfg); err != nil {
				return err
			}
			return writeFooter(w, duration)
		}, "Wrote detail")
	}
}

// cardWidth fits CardsPerRow cards into the terminal.
func cardWidth(cfg *contract.Config) int {
	// Each card adds two border cells and one gap
	w := getTermWidth(cfg)/schema.CardsPerRow - 3
	return max(minCardWidth, min(maxCardWidth, w))
}

// writeDetailCards renders the project header, the Key Innovation block and the card grid.
func writeDetailCards(w io.Writer, d schema.ProjectDetail, cfg *contract.Config) error {
	r := lipgloss.NewRenderer(w)
	width := cardWidth(cfg)
	fullWidth := (width+3)*schema.CardsPerRow - 1

	title := r.NewStyle().Bold(true)
	key := r.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(title.Render(d.Project) + "\n")
	fmt.Fprintf(&b, "%s %s\n", key.Render("Founder:"), d.Founder)
	fmt.Fprintf(&b, "%s %s\n", key.Render("Category:"), d.Category)
	fmt.Fprintf(&b, "%s %s\n", key.Render("Decision:"), d.Decision)
	fmt.Fprintf(&b, "%s %s | %s\n", key.Render("Contact:"), d.Phone, d.Email)
	if d.Description != "" {
		desc := r.NewStyle().Width(fullWidth).Render(d.Description)
		fmt.Fprintf(&b, "%s\n%s\n", key.Render("Description:"), desc)
	}
	if d.Novelty != nil {
		box := r.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(fullWidth - 2).
			Padding(0, 1)
		if cfg.UseColors {
			box = box.BorderForeground(lipgloss.Color(schema.ColorInProgress))
		}
		b.WriteString(box.Render(key.Render("💡 Key Innovation") + "\n" + *d.Novelty))
		b.WriteString("\n")
	}

	rows := d.CardRows(schema.CardsPerRow)
	for _, row := range rows {
		cards := make([]string, 0, len(row)*2)
		for i, card := range row {
			if i > 0 {
				cards = append(cards, " ")
			}
			cards = append(cards, renderCard(r, card, width, cfg.UseColors))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderCard draws one stage tile bordered in its status colour.
func renderCard(r *lipgloss.Renderer, card schema.ProgressCard, width int, useColors bool) string {
	style := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(width).
		Align(lipgloss.Center)
	status := r.NewStyle()
	if useColors {
		color := lipgloss.Color(card.Color)
		style = style.BorderForeground(color)
		status = status.Foreground(color).Bold(true)
	}
	return style.Render(contract.TruncateText(card.Stage, width) + "\n" + status.Render(card.Status))
}

func writeDetailCSV(w io.Writer, d schema.ProjectDetail) error {
	return writeCSVWithHeader(w, []string{"project", "stage", "status", "color"}, func(cw *csv.Writer) error {
		for _, card := range d.Cards {
			if err := cw.Write([]string{d.Project, card.Stage, card.Status, card.Color}); err != nil {
				return err
			}
		}
		return nil
	})
}
