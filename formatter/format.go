package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/lineflow"
	"github.com/npillmayer/lineflow/fixedfont"
	"github.com/npillmayer/uax/uax11"
)

// Config holds the output parameters for formatting a paragraph.
type Config struct {
	LineWidth int            // line length in fixed width cells
	Context   *uax11.Context // East Asian Width context for cell counting
	Breaking  *lineflow.BreakConfig
}

// Format is an interface for formatting drivers, given to Output. Drivers
// receive the visual runs of each line in order, together with directional
// signals for bidi-aware output devices.
type Format interface {
	Preamble(w io.Writer)
	Postamble(w io.Writer)
	LTR(w io.Writer)
	RTL(w io.Writer)
	StyledText(s string, font *lineflow.Font, w io.Writer)
	Newline(w io.Writer)
}

// Output flows a paragraph of styled text and formats the resulting lines
// using a given formatter.
//
// Neither para, out nor format may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
func Output(para *lineflow.Paragraph, out io.Writer, config *Config, format Format) error {
	if para == nil || config == nil || format == nil {
		return errors.New("illegal argument: nil")
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	cfg := lineflow.DefaultConfig(float64(config.LineWidth))
	if config.Breaking != nil {
		cfg = *config.Breaking
		cfg.LineWidth = float64(config.LineWidth)
	}
	layouter := lineflow.NewLayouter(cellMetrics{fm: fixedfont.New(config.Context)})
	result, err := layouter.Flow(para, cfg)
	if err != nil {
		return err
	}
	format.Preamble(out)
	for _, line := range result.Lines {
		if indent := int(line.Offset); indent > 0 {
			io.WriteString(out, strings.Repeat(" ", indent))
		}
		stretch := spaceBudget(&line)
		for _, run := range line.Runs {
			if run.Level%2 == 1 {
				format.RTL(out)
			} else {
				format.LTR(out)
			}
			text := para.Text[run.From:run.To]
			if stretch > 0 {
				text, stretch = stretchSpaces(text, stretch)
			}
			format.StyledText(text, run.Font, out)
		}
		if line.Insert != "" {
			format.StyledText(line.Insert, nil, out)
		}
		format.Newline(out)
	}
	format.Postamble(out)
	return nil
}

// Print outputs a styled paragraph to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print(para *lineflow.Paragraph, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil, nil)
	return Output(para, os.Stdout, config, consoleFmt)
}

// spaceBudget converts a line's justification into a whole number of extra
// space cells to distribute.
func spaceBudget(line *lineflow.Line) int {
	j := line.Justify
	if j == nil || j.SpaceAdjust <= 0 || j.SpaceCount == 0 {
		return 0
	}
	return int(j.SpaceAdjust*float64(j.SpaceCount) + 0.5)
}

// stretchSpaces widens space runs in text until the budget is used up and
// returns the remaining budget.
func stretchSpaces(text string, budget int) (string, int) {
	var sb strings.Builder
	inSpace := false
	for _, r := range text {
		sb.WriteRune(r)
		if r == ' ' && !inSpace && budget > 0 {
			sb.WriteByte(' ')
			budget--
		}
		inSpace = r == ' '
	}
	return sb.String(), budget
}

// cellMetrics measures text in plain cell counts, so that line widths and
// the formatter Config.LineWidth live in the same unit.
type cellMetrics struct {
	fm *fixedfont.Metrics
}

func (cm cellMetrics) Measure(text string, font *lineflow.Font) (lineflow.Size, error) {
	return lineflow.Size{
		Width:      float64(cm.fm.CellWidth(text)),
		Ascent:     1,
		LineHeight: 1,
	}, nil
}
