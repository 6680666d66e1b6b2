package report

// ChartName is the file name of one chart artifact
type ChartName string

// The ten chart files, in rendering order
const (
	ChartSurvivalCounts     ChartName = "survival_counts.png"
	ChartGenderSurvival     ChartName = "gender_survival.png"
	ChartClassSurvival      ChartName = "class_survival.png"
	ChartAgeDistribution    ChartName = "age_distribution.png"
	ChartAgeSurvivalBoxplot ChartName = "age_survival_boxplot.png"
	ChartCorrelationHeatmap ChartName = "correlation_heatmap.png"
	ChartAgeFacetGrid       ChartName = "age_facetgrid.png"
	ChartPairplot           ChartName = "pairplot.png"
	ChartFareViolinplot     ChartName = "fare_violinplot.png"
	ChartMissingDataHeatmap ChartName = "missing_data_heatmap.png"
)

// ChartsBeforeTests are rendered before the hypothesis tests run
var ChartsBeforeTests = []ChartName{
	ChartSurvivalCounts,
	ChartGenderSurvival,
	ChartClassSurvival,
	ChartAgeDistribution,
	ChartAgeSurvivalBoxplot,
	ChartCorrelationHeatmap,
}

// ChartsAfterTests are rendered after the hypothesis tests
var ChartsAfterTests = []ChartName{
	ChartAgeFacetGrid,
	ChartPairplot,
	ChartFareViolinplot,
	ChartMissingDataHeatmap,
}

// AllCharts returns every chart in rendering order
func AllCharts() []ChartName {
	out := make([]ChartName, 0, len(ChartsBeforeTests)+len(ChartsAfterTests))
	out = append(out, ChartsBeforeTests...)
	return append(out, ChartsAfterTests...)
}
