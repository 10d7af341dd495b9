package nutrition

// Targets is a personalized daily nutrition budget.
type Targets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// AgeGroup adjusts base targets.
type AgeGroup string

const (
	AgeGroupChild   AgeGroup = "child"
	AgeGroupAdult   AgeGroup = "adult"
	AgeGroupElderly AgeGroup = "elderly"
)

// TargetProfile carries the inputs for target calculation. Overrides, when
// non-zero, replace the computed value for that nutrient. Dietary
// restrictions do not move targets; they feed the advice strings.
type TargetProfile struct {
	AgeGroup            AgeGroup
	HealthConditions    []string
	DietaryRestrictions []string
	Overrides           Targets
}

// CalculateTargets derives daily nutrition targets from base values
// adjusted for age group and health conditions, then applies user
// overrides.
func CalculateTargets(p TargetProfile) Targets {
	targets := Targets{
		Calories: 2000,
		Protein:  50,
		Carbs:    250,
		Fat:      65,
		Fiber:    25,
		Sodium:   2300,
	}

	switch p.AgeGroup {
	case AgeGroupChild:
		targets.Calories = 1800
		targets.Protein = 34
		targets.Carbs = 225
	case AgeGroupElderly:
		// Higher protein for the elderly
		targets.Protein = 60
	}

	for _, condition := range p.HealthConditions {
		switch condition {
		case "diabetes":
			targets.Carbs = 180
			targets.Fiber = 35
		case "heart_disease":
			targets.Sodium = 1500
		case "weight_loss":
			targets.Calories = 1500
			targets.Protein = 75
		}
	}

	if p.Overrides.Calories > 0 {
		targets.Calories = p.Overrides.Calories
	}
	if p.Overrides.Protein > 0 {
		targets.Protein = p.Overrides.Protein
	}
	if p.Overrides.Carbs > 0 {
		targets.Carbs = p.Overrides.Carbs
	}
	if p.Overrides.Fat > 0 {
		targets.Fat = p.Overrides.Fat
	}
	if p.Overrides.Fiber > 0 {
		targets.Fiber = p.Overrides.Fiber
	}
	if p.Overrides.Sodium > 0 {
		targets.Sodium = p.Overrides.Sodium
	}

	return targets
}

// DietaryAdvice returns general guidance strings for the given health
// conditions and dietary restrictions.
func DietaryAdvice(healthConditions, dietaryRestrictions []string) []string {
	var advice []string

	for _, condition := range healthConditions {
		switch condition {
		case "diabetes":
			advice = append(advice,
				"Focus on low-glycemic index foods",
				"Limit simple carbohydrates and sugars",
				"Include high-fiber foods",
			)
		case "heart_disease":
			advice = append(advice,
				"Reduce sodium intake",
				"Choose lean proteins",
				"Include omega-3 rich foods",
			)
		case "weight_loss":
			advice = append(advice,
				"Focus on high-protein, low-calorie foods",
				"Increase vegetable intake",
				"Control portion sizes",
			)
		}
	}

	for _, restriction := range dietaryRestrictions {
		switch restriction {
		case "vegetarian":
			advice = append(advice, "Ensure adequate protein from plant sources")
		case "vegan":
			advice = append(advice,
				"Monitor B12 intake",
				"Include variety of plant proteins",
				"Consider calcium-rich foods",
			)
		}
	}

	return advice
}
