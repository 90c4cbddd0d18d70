// Package charts turns aggregate results into renderer-neutral chart
// specifications. A spec names the chart kind and carries labeled data
// series; the frontend binds them to its plotting library without the
// server knowing which one.
package charts

// Kind identifies how a chart's data is meant to be rendered.
type Kind string

// Chart kinds produced by the dashboard builders.
const (
	KindPie        Kind = "pie"
	KindDonut      Kind = "donut"
	KindBar        Kind = "bar"
	KindStackedBar Kind = "stacked_bar"
	KindGroupedBar Kind = "grouped_bar"
	KindLine       Kind = "line"
	KindArea       Kind = "area"
	KindHistogram  Kind = "histogram"
	KindHeatmap    Kind = "heatmap"
	KindTreemap    Kind = "treemap"
	KindChoropleth Kind = "choropleth"
	KindBubble     Kind = "bubble"
	KindPolar      Kind = "polar"
)

// Series is one named run of values aligned to the spec's labels.
// Single-series charts use one unnamed series.
type Series struct {
	Name   string `json:"name,omitempty"`
	Values []int  `json:"values"`
}

// Point is one datum of a chart whose axes are both categorical, such
// as the country-by-rating bubble chart.
type Point struct {
	X     string `json:"x"`
	Y     string `json:"y"`
	Value int    `json:"value"`
}

// Spec is one renderable chart. Labels align with every series' values;
// point-shaped charts carry Points instead. Notice reports a partial
// degradation the renderer should surface, such as countries missing
// from the choropleth.
type Spec struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	Labels []string `json:"labels,omitempty"`
	Series []Series `json:"series,omitempty"`
	Points []Point  `json:"points,omitempty"`
	Notice string   `json:"notice,omitempty"`
}

// barOf builds a single-series categorical spec from (label, value)
// pairs.
func barOf(kind Kind, title string, labels []string, values []int) Spec {
	return Spec{
		Kind:   kind,
		Title:  title,
		Labels: labels,
		Series: []Series{{Values: values}},
	}
}
