// Package site assembles the course page from the content, the chart images
// and the widget state, and exports it as static files.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/codesigma/internal/chart"
	"github.com/RMahshie/codesigma/internal/content"
	"github.com/RMahshie/codesigma/internal/sampling"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Artifact is one file of the static export.
type Artifact struct {
	Key         string
	ContentType string
	Body        []byte
}

// Renderer draws the page. Chart images are computed once since the
// datasets never change.
type Renderer struct {
	tmpl    *template.Template
	baseURL string
	charts  map[string]chartView
}

type chartView struct {
	Name    string
	Caption string
	SVG     template.HTML
	Raw     []byte
	Legend  []chart.Slice
}

// NewRenderer parses the page template and draws every dataset. baseURL
// prefixes the links that carry widget state; it is empty when the page is
// served by this process.
func NewRenderer(baseURL string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := &Renderer{
		tmpl:    tmpl,
		baseURL: strings.TrimRight(baseURL, "/"),
		charts:  map[string]chartView{},
	}
	for _, d := range content.Datasets() {
		var buf bytes.Buffer
		if err := d.WriteSVG(&buf); err != nil {
			return nil, fmt.Errorf("failed to draw dataset %s: %w", d.Name, err)
		}
		view := chartView{
			Name:    d.Name,
			Caption: d.Caption,
			Raw:     buf.Bytes(),
			SVG:     template.HTML(inlineSVG(buf.String())),
		}
		if d.Kind == content.KindPie {
			// Drawing succeeded, so the legend cannot fail either.
			view.Legend, _ = chart.Pie(d.Categories)
		}
		r.charts[d.Name] = view
	}
	return r, nil
}

// ChartSVG returns the standalone SVG document of a dataset.
func (r *Renderer) ChartSVG(name string) ([]byte, error) {
	v, ok := r.charts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", content.ErrUnknownDataset, name)
	}
	return v.Raw, nil
}

// Render writes the page for state to w.
func (r *Renderer) Render(w io.Writer, state PageState) error {
	view, err := r.page(state)
	if err != nil {
		return err
	}

	// Render to a buffer first so a template error never leaves half a page.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", view); err != nil {
		log.Error().Err(err).Msg("Template rendering failed")
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// Artifacts renders the page in its initial state together with every
// chart image, ready to be served as static files.
func (r *Renderer) Artifacts() ([]Artifact, error) {
	var page bytes.Buffer
	if err := r.Render(&page, ParseState(nil)); err != nil {
		return nil, err
	}
	artifacts := []Artifact{{
		Key:         "index.html",
		ContentType: "text/html; charset=utf-8",
		Body:        page.Bytes(),
	}}
	for _, d := range content.Datasets() {
		artifacts = append(artifacts, Artifact{
			Key:         "charts/" + d.Name + ".svg",
			ContentType: "image/svg+xml",
			Body:        r.charts[d.Name].Raw,
		})
	}
	return artifacts, nil
}

type pageView struct {
	Dark       bool
	Cards      map[string]int
	ThemeLink  string
	Sections   []sectionView
	Levels     []sampling.ConfidenceLevel
	Calculator calculatorView
	FormAction string
}

type sectionView struct {
	content.Section
	Rendered []blockView
}

type blockView struct {
	content.Block
	HTML  template.HTML
	Chart *chartView
	Cards []cardView
}

type cardView struct {
	content.EventCard
	Example  string
	NextLink string
}

type calculatorView struct {
	CalculatorState
	Result *sampling.Result
	Error  string
}

func (r *Renderer) page(state PageState) (*pageView, error) {
	view := &pageView{
		Dark:       state.Dark,
		Cards:      state.Cards,
		ThemeLink:  r.link(state.WithDark(!state.Dark), ""),
		Levels:     sampling.ConfidenceLevels,
		Calculator: r.calculator(state.Calculator),
		FormAction: r.baseURL + "/",
	}

	for _, s := range content.Sections() {
		sv := sectionView{Section: s}
		for _, b := range s.Blocks {
			bv := blockView{Block: b, HTML: template.HTML(content.RenderMarkdown(b.Markdown))}
			switch b.Widget {
			case content.WidgetChart:
				c, ok := r.charts[b.Dataset]
				if !ok {
					return nil, fmt.Errorf("%w: %s", content.ErrUnknownDataset, b.Dataset)
				}
				bv.Chart = &c
			case content.WidgetEventCards:
				cards, err := r.cards(state, b.Anchor)
				if err != nil {
					return nil, err
				}
				bv.Cards = cards
			}
			sv.Rendered = append(sv.Rendered, bv)
		}
		view.Sections = append(view.Sections, sv)
	}
	return view, nil
}

func (r *Renderer) calculator(state CalculatorState) calculatorView {
	view := calculatorView{CalculatorState: state}
	if !state.Submitted {
		return view
	}
	res, err := sampling.Estimate(state.Inputs)
	if err != nil {
		view.Error = err.Error()
		return view
	}
	view.Result = &res
	return view
}

func (r *Renderer) cards(state PageState, anchor string) ([]cardView, error) {
	var views []cardView
	for _, card := range content.EventCards() {
		cycle, err := card.Cycle(state.Cards[card.ID])
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", card.ID, err)
		}
		next := cycle.Advance()
		views = append(views, cardView{
			EventCard: card,
			Example:   card.Example(cycle),
			NextLink:  r.link(state.WithCard(card.ID, next.Index()), anchor),
		})
	}
	return views, nil
}

func (r *Renderer) link(state PageState, anchor string) string {
	href := r.baseURL + "/"
	if q := state.Query().Encode(); q != "" {
		href += "?" + q
	}
	if anchor != "" {
		href += "#" + anchor
	}
	return href
}

// inlineSVG drops the XML prolog so the image can sit inside HTML.
func inlineSVG(doc string) string {
	if i := strings.Index(doc, "<svg"); i >= 0 {
		return doc[i:]
	}
	return doc
}
