package substitution

// Rule describes the known replacements for one ingredient. Variants map a
// dietary restriction or health goal key to its tailored alternatives;
// Ratio is the quantity multiplier when substituting.
type Rule struct {
	Alternatives []string
	Variants     map[string][]string
	Ratio        float64
}

// Variant keys recognized in rules.
const (
	VariantVegan       = "vegan"
	VariantLowFat      = "low_fat"
	VariantLowCarb     = "low_carb"
	VariantHighFiber   = "high_fiber"
	VariantGlutenFree  = "gluten_free"
	VariantLactoseFree = "lactose_free"
	VariantDiabetic    = "diabetic"
	VariantNatural     = "natural"
	VariantBudget      = "budget"
	VariantHighHeat    = "high_heat"
	VariantLowFodmap   = "low_fodmap"
	VariantMildFlavor  = "mild_flavor"
)

func defaultRules() map[string]Rule {
	return map[string]Rule{
		// Proteins
		"chicken breast": {
			Alternatives: []string{"turkey breast", "lean pork", "firm tofu", "tempeh"},
			Variants: map[string][]string{
				VariantVegan:  {"firm tofu", "tempeh", "seitan", "jackfruit"},
				VariantLowFat: {"turkey breast", "white fish", "egg whites"},
			},
			Ratio: 1.0,
		},
		"ground beef": {
			Alternatives: []string{"ground turkey", "ground chicken", "lentils", "mushrooms"},
			Variants: map[string][]string{
				VariantVegan:  {"lentils", "black beans", "mushrooms", "walnuts"},
				VariantLowFat: {"ground turkey (93/7)", "ground chicken breast"},
			},
			Ratio: 1.0,
		},
		"salmon": {
			Alternatives: []string{"tuna", "mackerel", "trout", "chicken breast"},
			Variants: map[string][]string{
				VariantVegan:  {"firm tofu", "tempeh", "chickpeas"},
				VariantBudget: {"canned tuna", "chicken breast", "eggs"},
			},
			Ratio: 1.0,
		},

		// Dairy
		"milk": {
			Alternatives: []string{"almond milk", "oat milk", "soy milk", "coconut milk"},
			Variants: map[string][]string{
				VariantLactoseFree: {"lactose-free milk", "almond milk", "oat milk"},
				VariantLowFat:      {"skim milk", "almond milk (unsweetened)"},
			},
			Ratio: 1.0,
		},
		"butter": {
			Alternatives: []string{"olive oil", "coconut oil", "avocado oil", "applesauce"},
			Variants: map[string][]string{
				VariantVegan:  {"coconut oil", "olive oil", "vegan butter"},
				VariantLowFat: {"applesauce", "mashed banana", "greek yogurt"},
			},
			// Use 3/4 amount when substituting with oil
			Ratio: 0.75,
		},
		"heavy cream": {
			Alternatives: []string{"coconut cream", "cashew cream", "evaporated milk"},
			Variants: map[string][]string{
				VariantVegan:  {"coconut cream", "cashew cream", "silken tofu"},
				VariantLowFat: {"evaporated skim milk", "greek yogurt"},
			},
			Ratio: 1.0,
		},

		// Grains and starches
		"white rice": {
			Alternatives: []string{"brown rice", "quinoa", "cauliflower rice", "wild rice"},
			Variants: map[string][]string{
				VariantLowCarb:   {"cauliflower rice", "shirataki rice", "broccoli rice"},
				VariantHighFiber: {"brown rice", "quinoa", "wild rice"},
			},
			Ratio: 1.0,
		},
		"pasta": {
			Alternatives: []string{"whole wheat pasta", "zucchini noodles", "shirataki noodles"},
			Variants: map[string][]string{
				VariantGlutenFree: {"rice pasta", "corn pasta", "quinoa pasta"},
				VariantLowCarb:    {"zucchini noodles", "spaghetti squash", "shirataki noodles"},
			},
			Ratio: 1.0,
		},
		"bread": {
			Alternatives: []string{"whole grain bread", "sourdough", "lettuce wraps"},
			Variants: map[string][]string{
				VariantGlutenFree: {"rice bread", "almond flour bread", "corn tortillas"},
				VariantLowCarb:    {"lettuce wraps", "portobello mushroom caps", "cauliflower bread"},
			},
			Ratio: 1.0,
		},

		// Sweeteners
		"sugar": {
			Alternatives: []string{"honey", "maple syrup", "coconut sugar", "stevia"},
			Variants: map[string][]string{
				VariantDiabetic: {"stevia", "monk fruit", "erythritol"},
				VariantNatural:  {"honey", "maple syrup", "dates", "applesauce"},
			},
			// Liquid sweeteners are generally used in smaller amounts
			Ratio: 0.75,
		},

		// Fats and oils
		"olive oil": {
			Alternatives: []string{"avocado oil", "coconut oil", "canola oil"},
			Variants: map[string][]string{
				VariantHighHeat:   {"avocado oil", "canola oil", "grapeseed oil"},
				VariantMildFlavor: {"canola oil", "vegetable oil", "grapeseed oil"},
			},
			Ratio: 1.0,
		},

		// Vegetables
		"onion": {
			Alternatives: []string{"shallots", "green onions", "leeks", "fennel"},
			Variants: map[string][]string{
				VariantLowFodmap:  {"green onion tops", "chives", "fennel"},
				VariantMildFlavor: {"shallots", "sweet onion", "leeks"},
			},
			Ratio: 1.0,
		},
		"garlic": {
			Alternatives: []string{"garlic powder", "shallots", "ginger", "asafoetida"},
			Variants: map[string][]string{
				VariantLowFodmap: {"asafoetida", "garlic oil", "ginger"},
			},
			// 1 clove = 1/8 tsp powder
			Ratio: 0.125,
		},
	}
}

// nutritionNotes holds general comparison guidance per known alternative.
var nutritionNotes = map[string]string{
	"tofu":             "Lower in calories, good protein source",
	"cauliflower rice": "Much lower in carbs and calories",
	"quinoa":           "Higher in protein and fiber than rice",
	"olive oil":        "Rich in healthy monounsaturated fats",
	"stevia":           "Zero calories, suitable for diabetics",
	"almond milk":      "Lower in calories and carbs than dairy milk",
}

// genericAlternatives provides fallback suggestions per ingredient category.
var genericAlternatives = map[Category][]string{
	CategoryProtein:   {"tofu", "tempeh", "legumes"},
	CategoryVegetable: {"similar seasonal vegetables", "frozen alternative"},
	CategoryHerb:      {"dried version", "similar herbs"},
	CategorySpice:     {"similar spices", "spice blends"},
	CategoryGrain:     {"similar grains", "cauliflower rice"},
	CategoryFruit:     {"similar seasonal fruits", "frozen alternative"},
}
