package ai

import (
	"regexp"
	"sort"
	"strings"
)

// Intent is a classified travel intent with its confidence and the prompt
// addition it contributes.
type Intent struct {
	Type           string  `json:"type"`
	Label          string  `json:"label"`
	Confidence     float64 `json:"confidence"`
	PromptModifier string  `json:"-"`
}

const intentThreshold = 0.2

type intentDef struct {
	typ            string
	label          string
	keywords       []string
	promptModifier string
}

// intentDefs are scanned in a fixed order so equal-confidence intents sort
// deterministically.
var intentDefs = []intentDef{
	{
		typ:   "sightseeing",
		label: "Sightseeing",
		keywords: []string{
			"visit", "see", "explore", "sightseeing", "tourist", "tourism",
			"monument", "palace", "fort", "temple", "church", "mosque", "museum",
			"heritage", "historical", "landmark", "architecture", "attraction",
			"scenic", "view", "viewpoint", "sunset", "sunrise", "photo", "photography",
			"walk around", "day trip", "weekend", "things to do", "places to see",
			"must visit", "famous", "popular", "iconic", "beautiful",
		},
		promptModifier: `The user wants SIGHTSEEING recommendations. Prioritize:
- Must-visit landmarks, monuments, and scenic viewpoints
- Best photo spots and golden-hour timings
- Entry fees + timings for each attraction
- Logical visiting ORDER to minimize travel between spots
- Include lesser-known hidden gems alongside popular attractions`,
	},
	{
		typ:   "food",
		label: "Food & Cuisine",
		keywords: []string{
			"food", "eat", "restaurant", "cafe", "dhaba", "street food",
			"cuisine", "dish", "taste", "biryani", "thali", "chaat", "chai",
			"coffee", "dosa", "idli", "paneer", "chicken", "mutton", "veg",
			"nonveg", "non-veg", "breakfast", "lunch", "dinner", "snack",
			"dessert", "sweet", "mithai", "lassi", "kulfi", "paan",
			"hungry", "meal", "where to eat", "best food", "local food",
			"foodie", "culinary", "cooking", "recipe", "flavor",
		},
		promptModifier: `The user wants FOOD & CUISINE recommendations. Prioritize:
- Best local dishes and WHERE to eat them (specific stall/restaurant names)
- Price range per dish (street food vs restaurant)
- Hygiene ratings and crowd timings (avoid peak rush)
- Must-try local specialties unique to the area
- Vegetarian AND non-vegetarian options clearly labeled`,
	},
	{
		typ:   "budget",
		label: "Budget Trip",
		keywords: []string{
			"budget", "cheap", "affordable", "low cost", "free", "save money",
			"economical", "inexpensive", "backpack", "backpacking", "hostel",
			"dormitory", "under", "within", "rupees", "pocket-friendly",
			"student", "frugal", "cost-effective", "minimum spend",
			"no money", "tight budget", "shoestring",
		},
		promptModifier: `The user is on a TIGHT BUDGET. Prioritize:
- Free or extremely low-cost activities and attractions
- Cheapest transport options (local bus, shared auto, walking)
- Budget accommodation (hostels, dharamshalas, budget hotels)
- Street food over restaurants (with specific price per item in INR)
- Total estimated trip cost breakdown: transport + food + entry fees + stay
- Money-saving tips specific to this area`,
	},
	{
		typ:   "safety",
		label: "Safety Info",
		keywords: []string{
			"safe", "safety", "danger", "dangerous", "crime", "scam",
			"woman", "women", "solo", "female", "night", "late night",
			"alone", "secure", "security", "police", "emergency",
			"avoid", "risky", "precaution", "trusted", "reliable",
			"family-friendly", "kid-friendly", "children",
		},
		promptModifier: `The user has SAFETY concerns. Prioritize:
- Safety ratings for each area (safe/moderate/avoid)
- Safe travel hours and well-lit routes
- Emergency contacts: local police, women's helpline (181), tourist helpline (1363)
- Common scams in the area and how to avoid them
- Safe transport options (verified apps like Ola/Uber over random autos)
- Areas to avoid, especially at night
- If traveling solo/female, specific precautions for each suggestion`,
	},
	{
		typ:   "quick_trip",
		label: "Quick Trip",
		keywords: []string{
			"quick", "short", "few hours", "half day", "2 hours", "3 hours",
			"layover", "transit", "passing through", "short stop", "stopover",
			"limited time", "hurry", "fast", "brief", "1 day", "one day",
			"day trip", "morning", "evening", "afternoon only",
			"2-3 hours", "4 hours", "quick visit",
		},
		promptModifier: `The user has LIMITED TIME. Prioritize:
- Only the TOP 2-3 things to do (no long lists)
- Places clustered CLOSE TOGETHER to minimize travel time
- Estimated time at each spot (e.g., "30 min here is enough")
- Fastest transport between spots
- Skip anything that requires advance booking or long queues
- Provide a tight minute-by-minute itinerary`,
	},
	{
		typ:   "route",
		label: "Route / Transport",
		keywords: []string{
			"route", "how to reach", "how to go", "how to get", "travel to",
			"go to", "going to", "reach", "commute", "get to",
			"train", "metro", "local train", "bus", "cab", "auto",
			"rickshaw", "uber", "ola", "taxi", "transport",
			"from", "to", "between", "directions", "navigate",
			"fastest way", "cheapest way", "best way",
			"station", "bus stop", "airport", "terminal",
			"distance", "travel time", "how far", "how long",
			"suburban", "railway", "platform", "boarding",
		},
		promptModifier: `The user wants ROUTE/TRANSPORT analysis. You MUST return the "transportOptions" field in your JSON.
Analyze ALL available transport modes between the locations:

1. TRAIN (if applicable in metro cities like Mumbai, Delhi, Chennai, Kolkata, Bangalore, Hyderabad):
   - Nearest boarding station and destination station
   - Train type: Local/Fast/Metro/Express
   - Travel time, next departures (simulate realistic timings)
   - Peak hour warning (Morning 8-11 AM, Evening 6-9 PM)

2. BUS:
   - Bus route number, boarding stop, drop stop
   - Frequency, crowd level, travel duration

3. CAB/AUTO:
   - Price estimate in INR (Ola/Uber range)
   - Traffic condition, comfort level

4. WALK (if under 3 km)

Always recommend the BEST option and explain WHY.
Use real Indian station names, bus routes, and landmarks.`,
	},
}

// keywordPatterns holds a compiled word-boundary regexp per keyword, built
// once at package init.
var keywordPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, def := range intentDefs {
		for _, kw := range def.keywords {
			if _, ok := patterns[kw]; !ok {
				patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}
	return patterns
}()

// ClassifyIntents scores a message against every intent definition and
// returns matches sorted by confidence descending. Multi-word keywords weigh
// three times a single word since they are more specific. Confidence is the
// score normalized against five points, capped at 1.
func ClassifyIntents(message string) []Intent {
	message = strings.ToLower(strings.TrimSpace(message))
	if message == "" {
		return nil
	}

	var results []Intent
	for _, def := range intentDefs {
		score := 0
		matched := 0
		for _, kw := range def.keywords {
			if keywordPatterns[kw].MatchString(message) {
				matched++
				if strings.Contains(kw, " ") {
					score += 3
				} else {
					score++
				}
			}
		}
		if matched == 0 {
			continue
		}
		confidence := float64(score) / 5
		if confidence > 1 {
			confidence = 1
		}
		results = append(results, Intent{
			Type:           def.typ,
			Label:          def.label,
			Confidence:     confidence,
			PromptModifier: def.promptModifier,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

// PrimaryIntent returns the strongest intent at or above the confidence
// threshold, or nil when the message has no clear intent.
func PrimaryIntent(message string) *Intent {
	intents := ClassifyIntents(message)
	if len(intents) == 0 || intents[0].Confidence < intentThreshold {
		return nil
	}
	return &intents[0]
}

// BuildIntentPrompt combines the top two strong intents into a prompt
// addition, empty when nothing clears the threshold.
func BuildIntentPrompt(message string) string {
	intents := ClassifyIntents(message)
	var strong []Intent
	for _, it := range intents {
		if it.Confidence >= intentThreshold {
			strong = append(strong, it)
		}
		if len(strong) == 2 {
			break
		}
	}
	if len(strong) == 0 {
		return ""
	}

	labels := make([]string, len(strong))
	modifiers := make([]string, len(strong))
	for i, it := range strong {
		labels[i] = strings.ToUpper(it.Label)
		modifiers[i] = it.PromptModifier
	}
	return "\n\n[USER INTENT: " + strings.Join(labels, " + ") + "]\n" + strings.Join(modifiers, "\n\n")
}
