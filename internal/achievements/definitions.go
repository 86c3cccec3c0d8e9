package achievements

import (
	"fmt"

	"github.com/julianstephens/laughmeter/internal/constants"
)

// Badge accent colors, as ANSI 256 codes understood by lipgloss.
const (
	ColorBlue   = "33"
	ColorGreen  = "35"
	ColorOrange = "208"
	ColorPurple = "135"
	ColorPink   = "205"
	ColorRed    = "196"
	ColorIndigo = "63"
	ColorGray   = "245"
	ColorYellow = "220"
	ColorCyan   = "51"
	ColorMint   = "121"
)

// Definition is one named achievement. IDs are persisted by clients
// (notification history, exports) and must never be renamed or reused.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Color       string
	Rule        Rule
}

// definitions is the canonical, ordered badge table. Append new badges at
// the end; evaluation order is display order.
var definitions = []Definition{
	// Volume
	{ID: "first_smile", Title: "First Smile", Description: "Log your first laugh", Icon: "🙂", Color: ColorBlue,
		Rule: Rule{Kind: RuleTotal, Threshold: 1}},
	{ID: "giggle_rookie", Title: "Giggle Rookie", Description: "Log 10 laughs", Icon: "👶", Color: ColorBlue,
		Rule: Rule{Kind: RuleTotal, Threshold: 10}},
	{ID: "chuckle_champ", Title: "Chuckle Champ", Description: "Log 50 laughs", Icon: "🥉", Color: ColorGreen,
		Rule: Rule{Kind: RuleTotal, Threshold: 50}},
	{ID: "rofl_master", Title: "ROFL Master", Description: "Log 100 laughs", Icon: "🥈", Color: ColorOrange,
		Rule: Rule{Kind: RuleTotal, Threshold: 100}},
	{ID: "laugh_legend", Title: "Laugh Legend", Description: "Log 500 laughs", Icon: "🥇", Color: ColorPurple,
		Rule: Rule{Kind: RuleTotal, Threshold: 500}},
	{ID: "joy_junkie", Title: "Joy Junkie", Description: "Log 1,000 laughs", Icon: "💎", Color: ColorPink,
		Rule: Rule{Kind: RuleTotal, Threshold: 1000}},

	// People
	{ID: "social_butterfly", Title: "Social Butterfly", Description: "Laugh with friends 5 times", Icon: "🦋", Color: ColorPink,
		Rule: Rule{Kind: RulePersonKeyword, Keywords: []string{"friend"}, Threshold: 5}},
	{ID: "squad_goals", Title: "Squad Goals", Description: "Laugh with friends 20 times", Icon: "👯", Color: ColorPink,
		Rule: Rule{Kind: RulePersonKeyword, Keywords: []string{"friend"}, Threshold: 20}},
	{ID: "love_and_laughs", Title: "Love & Laughs", Description: "Laugh with your partner 5 times", Icon: "❤️", Color: ColorRed,
		Rule: Rule{Kind: RulePersonKeyword, Keywords: []string{"partner"}, Threshold: 5}},
	{ID: "rom_com", Title: "Rom Com", Description: "Laugh with your partner 20 times", Icon: "🍿", Color: ColorRed,
		Rule: Rule{Kind: RulePersonKeyword, Keywords: []string{"partner"}, Threshold: 20}},
	{ID: "solo_smiler", Title: "Solo Smiler", Description: "Log a laugh on your own", Icon: "🧘", Color: ColorIndigo,
		Rule: Rule{Kind: RuleSolo}},

	// Places
	{ID: "homebody", Title: "Homebody", Description: "5 laughs at home", Icon: "🏡", Color: ColorGreen,
		Rule: Rule{Kind: RuleLocationKeyword, Keywords: []string{"home"}, Threshold: 5}},
	{ID: "home_hero", Title: "Home Hero", Description: "50 laughs at home", Icon: "🏰", Color: ColorGreen,
		Rule: Rule{Kind: RuleLocationKeyword, Keywords: []string{"home"}, Threshold: 50}},
	{ID: "office_clown", Title: "Office Clown", Description: "Laugh at work 5 times", Icon: "💼", Color: ColorGray,
		Rule: Rule{Kind: RuleLocationKeyword, Keywords: []string{"work", "office"}, Threshold: 5}},
	{ID: "nature_lover", Title: "Nature Lover", Description: "Laugh outside in a park", Icon: "🌳", Color: ColorGreen,
		Rule: Rule{Kind: RuleLocationKeyword, Keywords: []string{"park"}, Threshold: 1}},

	// Time
	{ID: "early_bird", Title: "Early Bird", Description: "Laugh before noon 5 times", Icon: "☀️", Color: ColorYellow,
		Rule: Rule{Kind: RuleHourBand, FromHour: 5, ToHour: 12, Threshold: 5}},
	{ID: "night_owl", Title: "Night Owl", Description: "Laugh after 10 PM 5 times", Icon: "🌙", Color: ColorIndigo,
		Rule: Rule{Kind: RuleHourBand, FromHour: 22, ToHour: 4, Threshold: 5}},
	{ID: "lunch_break", Title: "Lunch Break", Description: "Laugh between 12 and 1 PM", Icon: "🍔", Color: ColorOrange,
		Rule: Rule{Kind: RuleExactHour, Hour: 12}},
	{ID: "weekend_warrior", Title: "Weekend Warrior", Description: "Laugh on a Saturday or Sunday", Icon: "🎉", Color: ColorPurple,
		Rule: Rule{Kind: RuleWeekend}},

	// Moods
	{ID: "tears_of_joy", Title: "Tears of Joy", Description: "Log the laugh-tears mood 10 times", Icon: "🤣", Color: ColorCyan,
		Rule: Rule{Kind: RuleMoodCount, Mood: constants.MoodLaughTears, Threshold: 10}},
	{ID: "subtle_grin", Title: "Subtle Grin", Description: "Log the smile mood 10 times", Icon: "🙂", Color: ColorMint,
		Rule: Rule{Kind: RuleMoodCount, Mood: constants.MoodSmile, Threshold: 10}},
	{ID: "dead_funny", Title: "Dead Funny", Description: "Log the dead-funny mood", Icon: "💀", Color: ColorGray,
		Rule: Rule{Kind: RuleMoodCount, Mood: constants.MoodDeadFunny, Threshold: 1}},
	{ID: "heart_warmed", Title: "Heart Warmed", Description: "Log the touched mood", Icon: "🥹", Color: ColorPink,
		Rule: Rule{Kind: RuleMoodCount, Mood: constants.MoodTouched, Threshold: 1}},

	// Habits
	{ID: "streak_starter", Title: "Streak Starter", Description: "Laugh today", Icon: "🔥", Color: ColorOrange,
		Rule: Rule{Kind: RuleLoggedToday}},
	{ID: "double_digit_day", Title: "Double Digit Day", Description: "10 laughs in one day", Icon: "🚀", Color: ColorRed,
		Rule: Rule{Kind: RuleTodayCount, Threshold: 10}},
	{ID: "note_taker", Title: "Note Taker", Description: "Add notes to 5 laughs", Icon: "📝", Color: ColorYellow,
		Rule: Rule{Kind: RuleNoted, Threshold: 5}},
	{ID: "detail_oriented", Title: "Detail Oriented", Description: "Add notes to 20 laughs", Icon: "✍️", Color: ColorYellow,
		Rule: Rule{Kind: RuleNoted, Threshold: 20}},
	{ID: "context_king", Title: "Context King", Description: "Add a person or place to 10 laughs", Icon: "🏷️", Color: ColorBlue,
		Rule: Rule{Kind: RuleContext, Threshold: 10}},
	{ID: "explorer", Title: "Explorer", Description: "Log laughs in 3 different places", Icon: "🗺️", Color: ColorGreen,
		Rule: Rule{Kind: RuleDistinctLocations, Threshold: 3}},
	{ID: "the_century", Title: "The Century", Description: "100 laughs total. You made it.", Icon: "💯", Color: ColorRed,
		Rule: Rule{Kind: RuleTotal, Threshold: 100}},
}

func init() {
	// Runtime validation: badge IDs are persisted and must be unique
	seen := make(map[string]bool, len(definitions))
	for _, d := range definitions {
		if d.ID == "" || seen[d.ID] {
			panic(fmt.Sprintf("achievements: empty or duplicate badge id %q", d.ID))
		}
		seen[d.ID] = true
	}
}

// Definitions returns a copy of the badge table in display order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition with the given ID.
func Lookup(id string) (Definition, bool) {
	for _, d := range definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
