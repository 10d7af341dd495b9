// Package nutrition analyzes recipe nutrition facts against recommended
// daily values and health-condition targets.
package nutrition

import (
	"fmt"
	"math"

	"github.com/platewise/v1/internal/domain/recipe"
)

// AudienceGroup selects the daily-value column used for percentages.
type AudienceGroup string

const (
	GroupAdultMale   AudienceGroup = "adult_male"
	GroupAdultFemale AudienceGroup = "adult_female"
	GroupChild       AudienceGroup = "child"
)

// dailyValues holds recommended daily intake per audience group.
// Calories in kcal, sodium in mg, the rest in grams.
var dailyValues = map[string]map[AudienceGroup]float64{
	"calories": {GroupAdultMale: 2500, GroupAdultFemale: 2000, GroupChild: 1800},
	"protein":  {GroupAdultMale: 56, GroupAdultFemale: 46, GroupChild: 34},
	"carbs":    {GroupAdultMale: 325, GroupAdultFemale: 325, GroupChild: 260},
	"fat":      {GroupAdultMale: 78, GroupAdultFemale: 65, GroupChild: 62},
	"fiber":    {GroupAdultMale: 38, GroupAdultFemale: 25, GroupChild: 25},
	"sodium":   {GroupAdultMale: 2300, GroupAdultFemale: 2300, GroupChild: 1900},
}

// Analysis is the result of analyzing one recipe's nutrition facts.
type Analysis struct {
	DailyValuePercent map[string]float64 `json:"daily_value_percentages"`
	MacroDistribution MacroDistribution  `json:"macronutrient_distribution"`
	HealthScores      map[string]float64 `json:"health_scores"`
	Recommendations   []string           `json:"recommendations"`
	Warnings          []string           `json:"warnings"`
}

// MacroDistribution is the caloric share of each macronutrient.
type MacroDistribution struct {
	ProteinPercent float64 `json:"protein_percent"`
	CarbsPercent   float64 `json:"carbs_percent"`
	FatPercent     float64 `json:"fat_percent"`
}

// Analyzer evaluates nutrition facts.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze evaluates the facts for an audience group and optional health
// goals (used only to sharpen recommendations and warnings).
func (a *Analyzer) Analyze(facts recipe.Nutrition, group AudienceGroup, healthGoals []string) Analysis {
	if _, ok := dailyValues["calories"][group]; !ok {
		group = GroupAdultMale
	}

	analysis := Analysis{
		DailyValuePercent: a.dailyValuePercent(facts, group),
		MacroDistribution: a.macroDistribution(facts),
		HealthScores:      a.healthScores(facts),
	}

	analysis.Recommendations, analysis.Warnings = a.advise(facts, analysis.DailyValuePercent, healthGoals)

	return analysis
}

func (a *Analyzer) dailyValuePercent(facts recipe.Nutrition, group AudienceGroup) map[string]float64 {
	values := map[string]float64{
		"calories": float64(facts.Calories),
		"protein":  facts.Protein,
		"carbs":    facts.Carbs,
		"fat":      facts.Fat,
		"fiber":    facts.Fiber,
		"sodium":   facts.Sodium,
	}

	percent := make(map[string]float64, len(values))
	for nutrient, value := range values {
		dv := dailyValues[nutrient][group]
		percent[nutrient] = round1(value / dv * 100)
	}
	return percent
}

func (a *Analyzer) macroDistribution(facts recipe.Nutrition) MacroDistribution {
	totalCalories := float64(facts.Calories)
	if totalCalories == 0 {
		totalCalories = 1
	}

	return MacroDistribution{
		ProteinPercent: round1(facts.Protein * 4 / totalCalories * 100),
		CarbsPercent:   round1(facts.Carbs * 4 / totalCalories * 100),
		FatPercent:     round1(facts.Fat * 9 / totalCalories * 100),
	}
}

func (a *Analyzer) healthScores(facts recipe.Nutrition) map[string]float64 {
	scores := make(map[string]float64, 4)

	calories := float64(facts.Calories)
	if calories == 0 {
		calories = 1
	}

	// Nutrient density: protein and fiber per calorie.
	scores["nutrient_density"] = math.Min(100, (facts.Protein+facts.Fiber*2)/calories*100)

	// Heart health: penalize sodium and saturated fat (estimated at 30%
	// of total fat when not broken out).
	saturatedFat := facts.Fat * 0.3
	heart := 100.0
	if facts.Sodium > 600 {
		heart -= (facts.Sodium - 600) / 20
	}
	if saturatedFat > 10 {
		heart -= (saturatedFat - 10) * 5
	}
	scores["heart_health"] = clamp(heart, 0, 100)

	// Weight management: low calorie density plus fiber and protein bonuses.
	calorieDensity := calories / 100
	fiberBonus := math.Min(20, facts.Fiber*2)
	proteinBonus := math.Min(30, facts.Protein)
	scores["weight_management"] = clamp(100-calorieDensity+fiberBonus+proteinBonus-50, 0, 100)

	// Diabetes friendliness: penalize carbs and estimated sugar, reward fiber.
	sugar := facts.Carbs * 0.2
	diabetes := 100.0
	if facts.Carbs > 30 {
		diabetes -= (facts.Carbs - 30) * 2
	}
	if sugar > 10 {
		diabetes -= (sugar - 10) * 5
	}
	diabetes += facts.Fiber * 3
	scores["diabetes_friendly"] = clamp(diabetes, 0, 100)

	for k, v := range scores {
		scores[k] = round1(v)
	}
	return scores
}

func (a *Analyzer) advise(facts recipe.Nutrition, dvPercent map[string]float64, healthGoals []string) (recommendations, warnings []string) {
	calories := float64(facts.Calories)

	if calories < 200 {
		recommendations = append(recommendations, "Consider adding healthy fats or complex carbs to increase calorie content")
	} else if calories > 600 {
		recommendations = append(recommendations, "This is a high-calorie recipe - consider reducing portion size or balancing with lighter meals")
	}

	switch proteinPct := dvPercent["protein"]; {
	case proteinPct > 30:
		recommendations = append(recommendations, "Excellent protein source! Great for muscle maintenance and satiety")
	case proteinPct < 10:
		recommendations = append(recommendations, "Consider adding protein sources like beans, nuts, or lean meat")
	}

	switch {
	case facts.Fiber > 10:
		recommendations = append(recommendations, "High fiber content promotes digestive health and satiety")
	case facts.Fiber < 3:
		recommendations = append(recommendations, "Consider adding vegetables, fruits, or whole grains for more fiber")
	}

	if dvPercent["sodium"] > 25 {
		warnings = append(warnings, "High sodium content - consider reducing salt or using herbs and spices")
	}

	if facts.Fat > 25 {
		warnings = append(warnings, "High fat content - ensure they're healthy fats from sources like olive oil, nuts, or avocado")
	}

	for _, goal := range healthGoals {
		switch goal {
		case "weight_loss":
			if calories > 400 {
				recommendations = append(recommendations, "For weight loss, consider reducing portion size or adding more vegetables")
			}
		case "diabetes":
			if facts.Carbs > 45 {
				warnings = append(warnings, "High carbohydrate content - monitor blood sugar if diabetic")
			}
		case "heart_health":
			if facts.Sodium > 400 {
				warnings = append(warnings, "Consider reducing sodium for better heart health")
			}
		}
	}

	return recommendations, warnings
}

// MealPlanTotal sums nutrition facts across a day's recipes and analyzes
// the cumulative intake.
func (a *Analyzer) MealPlanTotal(meals []recipe.Nutrition, group AudienceGroup) (recipe.Nutrition, Analysis, error) {
	if len(meals) == 0 {
		return recipe.Nutrition{}, Analysis{}, fmt.Errorf("meal plan requires at least one recipe")
	}

	var total recipe.Nutrition
	for _, facts := range meals {
		total.Calories += facts.Calories
		total.Protein += facts.Protein
		total.Carbs += facts.Carbs
		total.Fat += facts.Fat
		total.Fiber += facts.Fiber
		total.Sodium += facts.Sodium
	}

	return total, a.Analyze(total, group, nil), nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
