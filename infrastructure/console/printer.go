// Package console imprime o relatório de retenção no terminal
package console

import (
	"io"

	"github.com/fatih/color"
	"github.com/vfg2006/retention-analysis/internal/usecases/reporting"
)

// Printer escreve documentos do relatório com cores opcionais
type Printer struct {
	out    io.Writer
	styles map[reporting.TextKind]*color.Color
}

// NewPrinter cria um Printer. Com colored=false o texto sai idêntico a Document.String()
func NewPrinter(out io.Writer, colored bool) *Printer {
	styles := map[reporting.TextKind]*color.Color{
		reporting.KindBanner: color.New(color.FgHiWhite, color.Bold),
		reporting.KindRule:   color.New(color.FgHiBlack),
		reporting.KindTitle:  color.New(color.FgCyan, color.Bold),
		reporting.KindBullet: color.New(color.FgYellow),
	}

	for _, c := range styles {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &Printer{out: out, styles: styles}
}

// PrintDocument escreve o documento renderizado na saída
func (p *Printer) PrintDocument(doc reporting.Document) error {
	_, err := io.WriteString(p.out, doc.Render(p.style))
	return err
}

func (p *Printer) style(kind reporting.TextKind, text string) string {
	c, ok := p.styles[kind]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
