package pricelist

// CacheKey is where usecases keep (and importers drop) the compiled report.
const CacheKey = "pricelist:current"

// RenameRule maps an item name containing Match onto the canonical Name the
// published list uses. An empty Name excludes the item entirely.
type RenameRule struct {
	Match string
	Name  string
}

// RuleSet is the full hand-tuned business-rule table the compiler runs on.
// It is plain configuration passed in explicitly; nothing here is global
// mutable state.
type RuleSet struct {
	// Ordered; first matching rule wins. Names that match no rule fall
	// back to their first whitespace-delimited token.
	Rename []RenameRule

	// Renamed kg families adjusted after the floor/minimum rounding.
	KgMinusOne []string
	KgPlusOne  []string

	// Renamed unit families republished per kilogram: the raw lowest
	// price is divided by the family divisor and floored.
	UnitToKg map[string]float64

	// Floor for every kg price after rounding and adjustment.
	MinKgPrice int

	Header    []string
	KgTitle   string
	UnitTitle string
	Footer    []string
}

// DefaultRuleSet is the table the shop actually publishes with. Tuned by
// hand against what sells; order matters.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Rename: []RenameRule{
			{Match: "שום קלוף בגביע", Name: ""}, // never listed
			{Match: "עגבניה שרי", Name: "עגבניה-שרי"},
			{Match: "עגבניה", Name: "עגבניה"},
			{Match: "מלפפון בייבי", Name: "מלפפון-בייבי"},
			{Match: "מלפפון", Name: "מלפפון"},
			{Match: "תפו\"א אדום", Name: "(אדום) תפו\"א"},
			{Match: "תפו\"א", Name: "תפו\"א"},
			{Match: "בצל סגול", Name: "בצל סגול"},
			{Match: "בצל ירוק", Name: "בצל ירוק"},
			{Match: "בצל", Name: "בצל"},
			{Match: "פלפל אדום", Name: "פלפל אדום"},
			{Match: "פלפל צהוב", Name: "פלפל צהוב"},
			{Match: "גזר", Name: "גזר"},
			{Match: "שום", Name: "שום"},
			{Match: "חסה", Name: "חסה"},
			{Match: "פטרוזיליה", Name: "פטרוזיליה"},
			{Match: "כוסברה", Name: "כוסברה"},
			{Match: "שמיר", Name: "שמיר"},
		},
		KgMinusOne: []string{"עגבניה", "מלפפון"},
		KgPlusOne:  []string{"פלפל אדום", "פלפל צהוב"},
		UnitToKg: map[string]float64{
			"עגבניה-שרי":   1.1,
			"מלפפון-בייבי": 1.5,
		},
		MinKgPrice: 3,
		Header: []string{
			"🍅🥒 עודפים טריים מהמשק — כל הקודם זוכה!",
			"תשלום בפייבוקס: https://payboxapp.page.link/lodfresh",
		},
		KgTitle:   "המחירים לק\"ג:",
		UnitTitle: "המחירים ליחידה:",
		Footer: []string{
			"טיפ: לשריין בהודעה מראש, המלאי מתחדש כל ערב.",
		},
	}
}
