package main

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jscyril/mock_music_player/internal/arc"
	"github.com/spf13/cobra"
)

// ArcParams are the flags of the arc command
type ArcParams struct {
	Progress float64 `short:"p" default:"25" help:"Progress percentage (clamped to 0..100)"`
	Radius   float64 `short:"r" default:"120" help:"Arc radius"`
}

// ArcCmd prints the progress arc geometry
func ArcCmd() *cobra.Command {
	return boa.CmdT[ArcParams]{
		Use:         "arc",
		Short:       "Print the progress arc geometry for a progress value",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *ArcParams, cmd *cobra.Command, args []string) {
			printArc(os.Stdout, params)
		},
	}.ToCobra()
}

func printArc(w io.Writer, params *ArcParams) {
	// Centre sits on the baseline so the semicircle fits a 2r x r box
	g := arc.New(params.Radius, params.Radius+20, params.Radius+20)
	p := g.At(params.Progress)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"progress", fmt.Sprintf("%.2f", p.Progress)},
		{"angle", fmt.Sprintf("%.4f", p.Angle)},
		{"dasharray", fmt.Sprintf("%.4f", p.DashArray)},
		{"dashoffset", fmt.Sprintf("%.4f", p.DashOffset)},
		{"knob.x", fmt.Sprintf("%.4f", p.KnobX)},
		{"knob.y", fmt.Sprintf("%.4f", p.KnobY)},
		{"path", g.Path()},
	})
	t.Render()
}
