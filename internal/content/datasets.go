package content

import (
	"errors"
	"fmt"
	"io"

	"github.com/RMahshie/codesigma/internal/chart"
)

// ErrUnknownDataset is returned when no dataset has the requested name.
var ErrUnknownDataset = errors.New("unknown dataset")

// Kind is the chart a dataset is drawn as.
type Kind string

const (
	KindPie     Kind = "pie"
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindBar     Kind = "bar"
)

// Dataset is one of the survey result charts of the analysis section.
// Pie and bar charts use Categories, line and scatter charts use Series.
type Dataset struct {
	Name       string
	Kind       Kind
	Labels     chart.Labels
	Caption    string
	Categories []chart.CategoricalDatum
	Series     []chart.SeriesPoint
}

// WriteSVG draws the dataset.
func (d Dataset) WriteSVG(w io.Writer) error {
	switch d.Kind {
	case KindPie:
		slices, err := chart.Pie(d.Categories)
		if err != nil {
			return err
		}
		return chart.WritePie(w, slices, d.Labels)
	case KindLine:
		c, err := chart.Line(d.Series)
		if err != nil {
			return err
		}
		return chart.WriteLine(w, c, d.Labels)
	case KindScatter:
		c, err := chart.Scatter(d.Series)
		if err != nil {
			return err
		}
		return chart.WriteScatter(w, c, d.Labels)
	case KindBar:
		c, err := chart.Bar(d.Categories)
		if err != nil {
			return err
		}
		return chart.WriteBar(w, c, d.Labels)
	}
	return fmt.Errorf("dataset %s: unsupported chart kind %q", d.Name, d.Kind)
}

var datasets = []Dataset{
	{
		Name:    "carreras",
		Kind:    KindPie,
		Labels:  chart.Labels{Title: "Participación Estudiantil"},
		Caption: "Gráfico 1: Representación porcentual según carrera. La carrera de Arquitectura representa el bloque mayoritario, seguido de Diseño Gráfico.",
		Categories: []chart.CategoricalDatum{
			{Label: "Lic. en Arquitectura", Value: 45, Color: "#0f172a"},
			{Label: "Lic. Diseño Gráfico", Value: 30, Color: "#0ea5e9"},
			{Label: "Lic. Diseño de Interiores", Value: 15, Color: "#10b981"},
			{Label: "Otras", Value: 10, Color: "#f59e0b"},
		},
	},
	{
		Name:    "wifi",
		Kind:    KindBar,
		Labels:  chart.Labels{Title: "Percepción de Seguridad en Wi-Fi Universitario"},
		Caption: "Gráfico 2: Más del 75% de los encuestados percibe las redes públicas como inseguras o muy inseguras.",
		Categories: []chart.CategoricalDatum{
			{Label: "Muy Inseguro", Value: 45, Color: "#ef4444"},
			{Label: "Inseguro", Value: 30, Color: "#f97316"},
			{Label: "Neutral", Value: 15, Color: "#eab308"},
			{Label: "Seguro", Value: 8, Color: "#84cc16"},
			{Label: "Muy Seguro", Value: 2, Color: "#22c55e"},
		},
	},
	{
		Name:    "conocimiento",
		Kind:    KindLine,
		Labels:  chart.Labels{X: "Año Académico", Y: "Puntaje Promedio (1-10)"},
		Caption: "Gráfico 3: Tendencia del conocimiento en ciberseguridad. Se observa un crecimiento sostenido a lo largo de la carrera.",
		Series: []chart.SeriesPoint{
			{Label: "1° Año", Y: 3.5},
			{Label: "2° Año", Y: 4.2},
			{Label: "3° Año", Y: 5.1},
			{Label: "4° Año", Y: 6.8},
			{Label: "5° Año", Y: 7.5},
		},
	},
	{
		Name: "edad-deteccion",
		Kind: KindScatter,
		Labels: chart.Labels{
			X:     "Edad del Estudiante (Años)",
			Y:     "Puntaje de Detección (0-100)",
			XNote: "(Variable Independiente)",
			YNote: "(Variable Dependiente)",
		},
		Caption: "Gráfico 4: Edad frente a puntaje de detección de amenazas. Los estudiantes de mayor edad tienden a obtener puntajes más altos.",
		Series: []chart.SeriesPoint{
			{X: 18, Y: 40}, {X: 19, Y: 45}, {X: 20, Y: 30},
			{X: 21, Y: 60}, {X: 22, Y: 75}, {X: 23, Y: 65},
			{X: 24, Y: 80}, {X: 25, Y: 85}, {X: 20, Y: 40},
			{X: 18, Y: 35}, {X: 22, Y: 70}, {X: 26, Y: 90},
		},
	},
}

// Datasets returns every survey dataset in page order.
func Datasets() []Dataset {
	return append([]Dataset(nil), datasets...)
}

// DatasetByName looks a dataset up by name.
func DatasetByName(name string) (Dataset, error) {
	for _, d := range datasets {
		if d.Name == name {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
}
