// Package content holds the course material of the site: its sections, the
// survey datasets behind the charts and the event cards.
package content

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Widget is an interactive or generated element placed after a block's prose.
type Widget string

const (
	WidgetNone       Widget = ""
	WidgetChart      Widget = "chart"
	WidgetCalculator Widget = "calculator"
	WidgetEventCards Widget = "event-cards"
)

// Block is a run of Markdown prose under an optional anchored heading.
type Block struct {
	Anchor   string
	Heading  string
	Markdown string
	Widget   Widget
	Dataset  string // for WidgetChart
}

// Section is one entry of the sidebar.
type Section struct {
	ID       string
	Title    string
	Nav      string
	Subtitle string
	Blocks   []Block
}

// Anchors returns the blocks that have a heading, in order.
func (s Section) Anchors() []Block {
	var out []Block
	for _, b := range s.Blocks {
		if b.Anchor != "" {
			out = append(out, b)
		}
	}
	return out
}

// RenderMarkdown converts Markdown prose to HTML. Links open in a new tab.
func RenderMarkdown(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return markdown.ToHTML([]byte(md), p, r)
}

// Sections returns the course sections in sidebar order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

var sections = []Section{
	{
		ID:    "inicio",
		Title: "Inicio",
		Nav:   "🏠 Inicio",
		Blocks: []Block{{
			Markdown: `Esta página introduce el sitio web **CodeSigma: Estadística para Informáticos**, un espacio creado para presentar y explicar los principales conceptos de Probabilidad y Estadística aplicados al área de la Informática del curso **EST 226**.

Aquí encontrarás temas fundamentales del curso, ejemplos prácticos, análisis con datos reales y recursos visuales que hacen más clara la comprensión de los contenidos.`,
		}},
	},
	{
		ID:       "modulo1",
		Title:    "Estadística (Módulo 1)",
		Nav:      "📊 Estadística (Mod 1)",
		Subtitle: "Dominio de los conceptos básicos de estadística y capacidad para organizar, representar y analizar datos.",
		Blocks: []Block{
			{
				Markdown: `La estadística es la ciencia que recopila, organiza, analiza e interpreta datos con el fin de apoyar la toma de decisiones.`,
			},
			{
				Anchor:  "mod1-concepto",
				Heading: "Concepto y Clasificación",
				Markdown: `- **Descriptiva o Deductiva:** recolecta, clasifica, ordena, analiza y representa datos para obtener las características de un grupo.
- **Teoría de la Probabilidad:** proporciona las bases matemáticas para medir la incertidumbre.
- **Inferencial o Inductiva:** generaliza a la población las conclusiones obtenidas de una muestra.`,
			},
			{
				Anchor:  "mod1-fuentes",
				Heading: "Fuentes y Variables",
				Markdown: `Las fuentes pueden ser **primarias** (datos recolectados directamente) o **secundarias** (datos publicados por terceros).
Las variables se clasifican en **cualitativas** (nominales u ordinales) y **cuantitativas** (discretas o continuas).`,
			},
			{
				Anchor:  "mod1-metodo",
				Heading: "El Método Estadístico",
				Markdown: `1. Planteamiento del problema.
2. Recolección de datos.
3. Organización y presentación.
4. Análisis e interpretación.`,
			},
			{
				Anchor:   "mod1-actividad",
				Heading:  "Actividad en Clase",
				Markdown: `Identifica la población, la muestra y el tipo de cada variable en una encuesta aplicada a tu grupo.`,
			},
			{
				Anchor:  "mod1-muestra",
				Heading: "Tamaño de la Muestra",
				Markdown: "Con población finita se usa `n = (N·Z²·p·q) / (e²·(N−1) + Z²·p·q)`; con población infinita, `n = (Z²·p·q) / e²`. " +
					"Introduce el tamaño de la población para usar la fórmula finita. Si se deja vacío, se asume población infinita.",
				Widget: WidgetCalculator,
			},
			{
				Anchor:  "mod1-muestreo",
				Heading: "Clasificación de Muestreo",
				Markdown: `- **Probabilístico:** aleatorio simple, sistemático, estratificado y por conglomerados.
- **No probabilístico:** por conveniencia, por cuotas, intencional y bola de nieve.`,
			},
		},
	},
	{
		ID:       "modulo2",
		Title:    "Probabilidad (Módulo 2)",
		Nav:      "🎲 Probabilidad (Mod 2)",
		Subtitle: "Fundamentos para medir la incertidumbre.",
		Blocks: []Block{
			{
				Anchor:  "mod2-fundamentos",
				Heading: "Conceptos Fundamentales",
				Markdown: `- **Espacio muestral:** conjunto de todos los resultados posibles.
- **Evento:** subconjunto del espacio muestral.`,
			},
			{
				Anchor:   "mod2-definicion",
				Heading:  "Importancia y Definición",
				Markdown: `La probabilidad asigna a cada evento un número entre 0 y 1 que mide qué tan posible es que ocurra.`,
			},
			{
				Anchor:   "mod2-historia",
				Heading:  "Evolución Histórica",
				Markdown: `Desde la correspondencia entre Pascal y Fermat sobre juegos de azar hasta la axiomatización de Kolmogórov en 1933.`,
			},
			{
				Anchor:  "mod2-experiencias",
				Heading: "Experiencias y Eventos",
				Markdown: `- **Experiencia determinista:** se conoce el resultado antes de realizarla. *Ej: soltar una piedra.*
- **Experiencia aleatoria:** no se puede predecir el resultado, aunque se conoce el espacio muestral. *Ej: lanzar una moneda.*

### Tipos de Eventos

Haz click en cada tarjeta para ver otro ejemplo.`,
				Widget: WidgetEventCards,
			},
		},
	},
	{
		ID:       "analisis",
		Title:    "Percepción y Educación en Ciberseguridad",
		Nav:      "📋 Análisis de la Encuesta",
		Subtitle: "Análisis estadístico de la encuesta realizada a estudiantes de la Universidad de Panamá.",
		Blocks: []Block{
			{
				Anchor:  "analisis-metodologia",
				Heading: "1. Introducción y Metodología",
				Markdown: `El estudio se llevó a cabo durante noviembre de 2025 con estudiantes de la Facultad de Arquitectura, mediante **Muestreo Probabilístico Aleatorio Simple**.
El tamaño final de la muestra no alcanzó la cantidad óptima para el nivel de confianza deseado.`,
			},
			{
				Anchor:  "analisis-datos-generales",
				Heading: "2. Datos Generales de la Muestra",
				Markdown: `- **Total de Encuestados:** 68 estudiantes.
- **Rango de Edad:** 18 a 28 años.
- **Género:** 55% Femenino, 45% Masculino.`,
			},
			{
				Anchor:   "analisis-demografia",
				Heading:  "3. Distribución por Carrera",
				Markdown: `La distribución de la muestra refleja la diversidad académica de la Facultad, con mayoría de estudiantes de Arquitectura.`,
				Widget:   WidgetChart,
				Dataset:  "carreras",
			},
			{
				Anchor:   "analisis-wifi",
				Heading:  "4. Percepción de Seguridad: Redes Wi-Fi",
				Markdown: `Pregunta clave: **"¿Qué tan seguro se siente al usar las redes Wi-Fi públicas o de la universidad?"** Los resultados revelan una desconfianza generalizada.`,
				Widget:   WidgetChart,
				Dataset:  "wifi",
			},
			{
				Anchor:   "analisis-resultados",
				Heading:  "5. Nivel de Conocimiento vs. Año Académico",
				Markdown: `Evolución del conocimiento sobre prácticas seguras a medida que los estudiantes avanzan en su carrera.`,
				Widget:   WidgetChart,
				Dataset:  "conocimiento",
			},
			{
				Anchor:   "analisis-correlaciones",
				Heading:  "6. Correlaciones: Edad y Detección de Amenazas",
				Markdown: `Relación entre la edad del estudiante (variable independiente) y su capacidad para detectar amenazas digitales (variable dependiente).`,
				Widget:   WidgetChart,
				Dataset:  "edad-deteccion",
			},
		},
	},
	{
		ID:    "congreso",
		Title: "Congreso Científico",
		Nav:   "🏛️ Congreso Científico",
		Blocks: []Block{
			{
				Anchor:   "congreso-carteles",
				Heading:  "Sesión de Carteles",
				Markdown: `Presentación en formato de cartel de los resultados de la encuesta sobre ciberseguridad.`,
			},
			{
				Anchor:   "congreso-exposicion",
				Heading:  "Exposición Prof. Milagros",
				Markdown: `Exposición sobre el uso de la estadística en la investigación universitaria.`,
			},
		},
	},
	{
		ID:    "conclusiones",
		Title: "Conclusiones",
		Nav:   "📝 Conclusiones",
		Blocks: []Block{{
			Markdown: `La estadística y la probabilidad son herramientas esenciales para el informático: permiten diseñar encuestas con un tamaño de muestra adecuado, representar resultados con claridad e interpretar la incertidumbre.`,
		}},
	},
	{
		ID:    "referencias",
		Title: "Referencias",
		Nav:   "📚 Referencias",
		Blocks: []Block{{
			Markdown: `- Walpole, R. E., Myers, R. H. y Myers, S. L. *Probabilidad y estadística para ingeniería y ciencias*. Pearson.
- Triola, M. F. *Estadística*. Pearson.`,
		}},
	},
}
