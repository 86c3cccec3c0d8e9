package achievements

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/julianstephens/laughmeter/internal/constants"
	"github.com/julianstephens/laughmeter/internal/models"
)

var testZone = time.FixedZone("UTC-5", -5*60*60)

// Friday 2026-10-16 14:00 local.
var testNow = time.Date(2026, 10, 16, 14, 0, 0, 0, testZone)

func entryAt(t time.Time, mood constants.Mood, person, location, note string) models.Entry {
	return models.Entry{
		ID:        fmt.Sprintf("e-%d", t.UnixNano()),
		Timestamp: t,
		Mood:      mood,
		Person:    person,
		Location:  location,
		Note:      note,
		CreatedAt: t,
		UpdatedAt: t,
	}
}

func statusMap(statuses []BadgeStatus) map[string]bool {
	m := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		m[s.ID] = s.Unlocked
	}
	return m
}

func assertBadges(t *testing.T, statuses []BadgeStatus, want map[string]bool) {
	t.Helper()
	got := statusMap(statuses)
	for id, unlocked := range want {
		v, ok := got[id]
		if !ok {
			t.Errorf("badge %q missing from result", id)
			continue
		}
		if v != unlocked {
			t.Errorf("badge %q unlocked = %v, want %v", id, v, unlocked)
		}
	}
}

func TestEvaluate_OneStatusPerDefinitionInOrder(t *testing.T) {
	inputs := map[string][]models.Entry{
		"empty":  nil,
		"single": {entryAt(testNow, constants.MoodJoy, "", "", "")},
	}
	defs := Definitions()
	for name, entries := range inputs {
		t.Run(name, func(t *testing.T) {
			got := Evaluate(entries, testNow)
			if len(got) != len(defs) {
				t.Fatalf("got %d statuses, want %d", len(got), len(defs))
			}
			for i := range defs {
				if got[i].ID != defs[i].ID {
					t.Errorf("status[%d] = %q, want %q", i, got[i].ID, defs[i].ID)
				}
			}
		})
	}
}

func TestEvaluate_EmptyUnlocksNothing(t *testing.T) {
	got := Evaluate(nil, testNow)
	if n := UnlockedCount(got); n != 0 {
		t.Errorf("UnlockedCount(empty) = %d, want 0", n)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	entries := []models.Entry{
		entryAt(testNow.Add(-time.Hour), constants.MoodTouched, "Partner", "Park", "picnic"),
		entryAt(testNow.Add(-26*time.Hour), constants.MoodSmile, "", "Home", ""),
	}
	first := Evaluate(entries, testNow)
	second := Evaluate(entries, testNow)
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Unlocked != second[i].Unlocked {
			t.Fatalf("status %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	entries := []models.Entry{entryAt(testNow, constants.MoodJoy, "  Friend  ", " Park ", " note ")}
	before := entries[0]
	Evaluate(entries, testNow)
	if entries[0] != before {
		t.Errorf("entry mutated: got %+v, want %+v", entries[0], before)
	}
}

func TestEvaluate_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	people := []string{"", "Friends", "Partner", "Myself", "Work"}
	places := []string{"", "Home", "Office", "Park", "Cafe"}

	var entries []models.Entry
	prev := Evaluate(entries, testNow)
	for i := 0; i < 300; i++ {
		ts := testNow.Add(-time.Duration(rng.Intn(24*60)) * time.Hour)
		entries = append(entries, entryAt(
			ts,
			constants.Moods[rng.Intn(len(constants.Moods))],
			people[rng.Intn(len(people))],
			places[rng.Intn(len(places))],
			[]string{"", "lol"}[rng.Intn(2)],
		))
		next := Evaluate(entries, testNow)
		for j := range prev {
			if prev[j].Unlocked && !next[j].Unlocked {
				t.Fatalf("badge %q relocked after adding entry %d", prev[j].ID, i)
			}
		}
		prev = next
	}
}

func TestEvaluate_SingleFridayAfternoonEntry(t *testing.T) {
	entries := []models.Entry{entryAt(testNow, constants.MoodJoy, "Friend Alice", "", "")}
	assertBadges(t, Evaluate(entries, testNow), map[string]bool{
		"first_smile":      true,
		"streak_starter":   true,
		"giggle_rookie":    false,
		"social_butterfly": false,
		"solo_smiler":      false,
		"lunch_break":      false,
		"weekend_warrior":  false,
		"explorer":         false,
	})
}

func TestEvaluate_HundredEntriesAtHomeOffice(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 100; i++ {
		ts := time.Date(2026, 6, 1, 10, 0, 0, 0, testZone).Add(time.Duration(i) * time.Hour)
		mood := constants.MoodJoy
		if i < 6 {
			mood = constants.MoodDeadFunny
		}
		location := ""
		switch {
		case i < 30:
			location = "Home office"
		case i < 60:
			location = "home"
		}
		entries = append(entries, entryAt(ts, mood, "", location, ""))
	}
	assertBadges(t, Evaluate(entries, testNow), map[string]bool{
		"first_smile":    true,
		"giggle_rookie":  true,
		"chuckle_champ":  true,
		"rofl_master":    true,
		"the_century":    true,
		"laugh_legend":   false,
		"joy_junkie":     false,
		"homebody":       true,
		"home_hero":      true,
		"office_clown":   true,
		"dead_funny":     true,
		"heart_warmed":   false,
		"streak_starter": false,
	})
}

func TestEvaluate_NightOwl(t *testing.T) {
	day := time.Date(2026, 10, 12, 0, 0, 0, 0, testZone)
	entries := []models.Entry{
		entryAt(day.Add(23*time.Hour), constants.MoodSmile, "", "", ""),
		entryAt(day.Add(47*time.Hour), constants.MoodSmile, "", "", ""),
		entryAt(day.Add(71*time.Hour), constants.MoodSmile, "", "", ""),
		entryAt(day.Add(26*time.Hour), constants.MoodSmile, "", "", ""),
		entryAt(day.Add(50*time.Hour), constants.MoodSmile, "", "", ""),
	}
	assertBadges(t, Evaluate(entries, testNow), map[string]bool{
		"night_owl":  true,
		"early_bird": false,
	})

	// Four in the band is one short.
	assertBadges(t, Evaluate(entries[:4], testNow), map[string]bool{"night_owl": false})
}

func TestEvaluate_Explorer(t *testing.T) {
	base := testNow.Add(-72 * time.Hour)
	entries := []models.Entry{
		entryAt(base, constants.MoodSmile, "", "Home", ""),
		entryAt(base.Add(time.Hour), constants.MoodSmile, "", "", ""),
		entryAt(base.Add(2*time.Hour), constants.MoodSmile, "", "Office", ""),
		entryAt(base.Add(3*time.Hour), constants.MoodSmile, "", "   ", ""),
		entryAt(base.Add(4*time.Hour), constants.MoodSmile, "", "Home", ""),
	}
	assertBadges(t, Evaluate(entries, testNow), map[string]bool{"explorer": false})

	entries = append(entries, entryAt(base.Add(5*time.Hour), constants.MoodSmile, "", "Beach", ""))
	assertBadges(t, Evaluate(entries, testNow), map[string]bool{"explorer": true})

	entries = append(entries, entryAt(base.Add(6*time.Hour), constants.MoodSmile, "", "Cinema", ""))
	assertBadges(t, Evaluate(entries, testNow), map[string]bool{"explorer": true})
}

func TestEvaluate_ExplorerCountsLocationsAsStored(t *testing.T) {
	base := testNow.Add(-72 * time.Hour)
	tests := []struct {
		name      string
		locations []string
		want      bool
	}{
		{"case variants are distinct", []string{"Home", "home", "HOME"}, true},
		{"surrounding space is trimmed", []string{"Home", " Home ", "Home  "}, false},
		{"two places with a case variant", []string{"Park", "park", "Park "}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []models.Entry
			for i, loc := range tt.locations {
				entries = append(entries, entryAt(base.Add(time.Duration(i)*time.Hour), constants.MoodSmile, "", loc, ""))
			}
			assertBadges(t, Evaluate(entries, testNow), map[string]bool{"explorer": tt.want})
		})
	}
}

func TestEvaluate_CaseInsensitiveMatching(t *testing.T) {
	tests := []struct {
		name   string
		entry  models.Entry
		badge  string
		expect bool
	}{
		{"upper case park", entryAt(testNow, constants.MoodSmile, "x", "CENTRAL PARK", ""), "nature_lover", true},
		{"self inside person", entryAt(testNow, constants.MoodSmile, "Myself", "", ""), "solo_smiler", true},
		{"empty person is solo", entryAt(testNow, constants.MoodSmile, "", "", ""), "solo_smiler", true},
		{"blank person is solo", entryAt(testNow, constants.MoodSmile, "  ", "", ""), "solo_smiler", true},
		{"named person is not solo", entryAt(testNow, constants.MoodSmile, "Alex", "", ""), "solo_smiler", false},
		{"lunch at noon", entryAt(time.Date(2026, 10, 14, 12, 30, 0, 0, testZone), constants.MoodSmile, "a", "", ""), "lunch_break", true},
		{"lunch misses one pm", entryAt(time.Date(2026, 10, 14, 13, 0, 0, 0, testZone), constants.MoodSmile, "a", "", ""), "lunch_break", false},
		{"saturday", entryAt(time.Date(2026, 10, 17, 9, 0, 0, 0, testZone), constants.MoodSmile, "a", "", ""), "weekend_warrior", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBadges(t, Evaluate([]models.Entry{tt.entry}, testNow), map[string]bool{tt.badge: tt.expect})
		})
	}
}

func TestEvaluate_UsesNowLocationForCalendar(t *testing.T) {
	// 02:00 UTC on the 17th is still the 16th at UTC-5.
	entry := entryAt(time.Date(2026, 10, 17, 2, 0, 0, 0, time.UTC), constants.MoodSmile, "a", "", "")
	assertBadges(t, Evaluate([]models.Entry{entry}, testNow), map[string]bool{
		"streak_starter":  true,
		"weekend_warrior": false,
		"night_owl":       false,
	})

	nowUTC := time.Date(2026, 10, 17, 3, 0, 0, 0, time.UTC)
	assertBadges(t, Evaluate([]models.Entry{entry}, nowUTC), map[string]bool{
		"streak_starter":  true,
		"weekend_warrior": true,
	})
}

func TestEvaluate_DoubleDigitDay(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, entryAt(testNow.Add(-time.Duration(i)*time.Minute), constants.MoodSmile, "", "", ""))
	}
	assertBadges(t, Evaluate(entries[:9], testNow), map[string]bool{"double_digit_day": false})
	assertBadges(t, Evaluate(entries, testNow), map[string]bool{"double_digit_day": true})

	tomorrow := testNow.Add(24 * time.Hour)
	assertBadges(t, Evaluate(entries, tomorrow), map[string]bool{
		"double_digit_day": false,
		"streak_starter":   false,
	})
}

func TestEvaluate_NotesAndContext(t *testing.T) {
	var entries []models.Entry
	for i := 0; i < 10; i++ {
		note := ""
		if i < 5 {
			note = "something"
		}
		person, location := "", ""
		if i%2 == 0 {
			person = "Friends"
		} else {
			location = "Cafe"
		}
		entries = append(entries, entryAt(testNow.Add(-time.Duration(i+1)*time.Hour), constants.MoodSmile, person, location, note))
	}
	entries = append(entries, entryAt(testNow, constants.MoodSmile, "", "", "   "))
	assertBadges(t, Evaluate(entries, testNow), map[string]bool{
		"note_taker":       true,
		"detail_oriented":  false,
		"context_king":     true,
		"social_butterfly": true,
		"squad_goals":      false,
	})
}

func TestNewlyUnlocked(t *testing.T) {
	before := Evaluate(nil, testNow)
	after := Evaluate([]models.Entry{entryAt(testNow, constants.MoodTouched, "", "Park", "")}, testNow)

	got := NewlyUnlocked(before, after)
	var ids []string
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	want := []string{"first_smile", "solo_smiler", "nature_lover", "heart_warmed", "streak_starter"}
	if fmt.Sprint(ids) != fmt.Sprint(want) {
		t.Errorf("NewlyUnlocked = %v, want %v", ids, want)
	}

	if again := NewlyUnlocked(after, after); len(again) != 0 {
		t.Errorf("NewlyUnlocked(after, after) = %d badges, want 0", len(again))
	}
	if fromNil := NewlyUnlocked(nil, after); len(fromNil) != UnlockedCount(after) {
		t.Errorf("NewlyUnlocked(nil, after) = %d badges, want %d", len(fromNil), UnlockedCount(after))
	}
}

func TestInBand(t *testing.T) {
	tests := []struct {
		hour, from, to int
		want           bool
	}{
		{5, 5, 12, true},
		{11, 5, 12, true},
		{12, 5, 12, false},
		{4, 5, 12, false},
		{22, 22, 4, true},
		{23, 22, 4, true},
		{0, 22, 4, true},
		{3, 22, 4, true},
		{4, 22, 4, false},
		{21, 22, 4, false},
	}
	for _, tt := range tests {
		if got := inBand(tt.hour, tt.from, tt.to); got != tt.want {
			t.Errorf("inBand(%d, %d, %d) = %v, want %v", tt.hour, tt.from, tt.to, got, tt.want)
		}
	}
}
