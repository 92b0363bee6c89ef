package catalog

import (
	"fmt"
	"math"

	"alcyxob/runplan-app/internal/domain"
)

// The built-in plans are generated programmatically: each plan is a weekly
// template with durations and distances progressing by week number, plus a
// reduced-volume taper phase near race day for the longer plans.

func timed(day int, typ domain.WorkoutType, title, desc string, minutes int, intensity domain.Intensity) domain.Workout {
	return domain.Workout{
		Day:         day,
		Type:        typ,
		Title:       title,
		Description: desc,
		Duration:    &minutes,
		Intensity:   intensity,
	}
}

func distanceRun(day int, typ domain.WorkoutType, title, desc string, km float64, intensity domain.Intensity) domain.Workout {
	return domain.Workout{
		Day:         day,
		Type:        typ,
		Title:       title,
		Description: desc,
		Distance:    &km,
		Intensity:   intensity,
	}
}

func rest(day int) domain.Workout {
	return domain.Workout{
		Day:         day,
		Type:        domain.WorkoutRest,
		Title:       "Rest",
		Description: "Active rest day. Stretch and recover.",
		Intensity:   domain.IntensityLow,
	}
}

func cross(day, minutes int) domain.Workout {
	desc := fmt.Sprintf("%d min of cross-training: bike, swim or yoga.", minutes)
	return timed(day, domain.WorkoutCross, "Cross-training", desc, minutes, domain.IntensityLow)
}

func weekLabel(wk int, taper bool) string {
	if taper {
		return fmt.Sprintf("Week %d (Taper)", wk)
	}
	return fmt.Sprintf("Week %d", wk)
}

// Couch to 5K: walk/run intervals shifting toward continuous running.
func c25kSchedule() []domain.Week {
	weeks := make([]domain.Week, 0, 8)
	for wk := 1; wk <= 8; wk++ {
		runMin := min(10+(wk-1)*4, 30)
		walkMin := max(20-(wk-1)*3, 0)
		desc := fmt.Sprintf("Run %d min continuously", runMin)
		if walkMin > 0 {
			desc = fmt.Sprintf("Alternate %d min running with %d min walking", runMin, walkMin)
		}
		session := func(day int) domain.Workout {
			return timed(day, domain.WorkoutEasy, "Run/Walk", desc, runMin+walkMin, domain.IntensityLow)
		}
		sunday := rest(7)
		if wk >= 5 {
			sunday = timed(7, domain.WorkoutLongRun, "Long run",
				fmt.Sprintf("Run %d min at an easy pace", runMin+5), runMin+5, domain.IntensityLow)
		}
		weeks = append(weeks, domain.Week{
			WeekNumber: wk,
			Label:      weekLabel(wk, false),
			Workouts: []domain.Workout{
				session(1), rest(2), session(3), rest(4), session(5), rest(6), sunday,
			},
		})
	}
	return weeks
}

// 5K Improve: tempo and interval work on an existing 5K base.
func fiveKImproveSchedule() []domain.Week {
	weeks := make([]domain.Week, 0, 6)
	for wk := 1; wk <= 6; wk++ {
		weeks = append(weeks, domain.Week{
			WeekNumber: wk,
			Label:      weekLabel(wk, false),
			Workouts: []domain.Workout{
				timed(1, domain.WorkoutEasy, "Easy run",
					fmt.Sprintf("%d min at a comfortable pace", 25+wk), 25+wk, domain.IntensityLow),
				rest(2),
				timed(3, domain.WorkoutTempo, "Tempo",
					fmt.Sprintf("10 min warm-up + %d min at tempo pace + 10 min cool-down", 10+wk*2),
					30+wk*2, domain.IntensityModerate),
				rest(4),
				timed(5, domain.WorkoutIntervals, "Intervals",
					"8x400m at a fast pace with 90s recovery", 35, domain.IntensityHigh),
				rest(6),
				distanceRun(7, domain.WorkoutLongRun, "Long run",
					fmt.Sprintf("%d km at an easy pace", 6+wk), float64(6+wk), domain.IntensityLow),
			},
		})
	}
	return weeks
}

func tenKBeginnerSchedule() []domain.Week {
	weeks := make([]domain.Week, 0, 8)
	for wk := 1; wk <= 8; wk++ {
		weeks = append(weeks, domain.Week{
			WeekNumber: wk,
			Label:      weekLabel(wk, false),
			Workouts: []domain.Workout{
				timed(1, domain.WorkoutEasy, "Easy run",
					fmt.Sprintf("%d min easy", 30+wk), 30+wk, domain.IntensityLow),
				rest(2),
				timed(3, domain.WorkoutTempo, "Tempo",
					fmt.Sprintf("%d min at tempo pace", 15+wk), 25+wk, domain.IntensityModerate),
				timed(4, domain.WorkoutEasy, "Easy run", "25 min recovery", 25, domain.IntensityLow),
				rest(5),
				cross(6, 30),
				distanceRun(7, domain.WorkoutLongRun, "Long run",
					fmt.Sprintf("%d km at an easy pace", 6+wk), float64(6+wk), domain.IntensityLow),
			},
		})
	}
	return weeks
}

func tenKIntermediateSchedule() []domain.Week {
	weeks := make([]domain.Week, 0, 10)
	for wk := 1; wk <= 10; wk++ {
		weeks = append(weeks, domain.Week{
			WeekNumber: wk,
			Label:      weekLabel(wk, false),
			Workouts: []domain.Workout{
				timed(1, domain.WorkoutEasy, "Easy run",
					fmt.Sprintf("%d min easy", 35+wk), 35+wk, domain.IntensityLow),
				timed(2, domain.WorkoutIntervals, "Intervals",
					"10x400m fast + 60s rest", 40, domain.IntensityHigh),
				rest(3),
				timed(4, domain.WorkoutTempo, "Tempo",
					fmt.Sprintf("%d min at tempo pace", 20+wk), 30+wk, domain.IntensityModerate),
				timed(5, domain.WorkoutEasy, "Easy run", "30 min recovery", 30, domain.IntensityLow),
				rest(6),
				distanceRun(7, domain.WorkoutLongRun, "Long run",
					fmt.Sprintf("%d km at an easy pace", 8+wk), float64(8+wk), domain.IntensityLow),
			},
		})
	}
	return weeks
}

func halfMarathonSchedule() []domain.Week {
	weeks := make([]domain.Week, 0, 12)
	for wk := 1; wk <= 12; wk++ {
		longKm := float64(min(10+wk, 20))
		taper := wk >= 11

		easyMin := 35 + wk
		if taper {
			easyMin = 25
		}
		intervalsDesc, intervalsMin, intervalsEffort := "6x800m fast", 40, domain.IntensityHigh
		if taper {
			intervalsDesc, intervalsMin, intervalsEffort = "4x800m fast", 30, domain.IntensityModerate
		}
		tempoMin, tempoDur := 20+wk, 30+wk
		if taper {
			tempoMin, tempoDur = 15, 25
		}
		friday := rest(5)
		if wk <= 10 {
			friday = timed(5, domain.WorkoutEasy, "Easy run", "30 min easy", 30, domain.IntensityLow)
		}
		if taper {
			longKm = math.Max(longKm-6, 10)
		}

		weeks = append(weeks, domain.Week{
			WeekNumber: wk,
			Label:      weekLabel(wk, taper),
			Workouts: []domain.Workout{
				timed(1, domain.WorkoutEasy, "Easy run",
					fmt.Sprintf("%d min easy", easyMin), easyMin, domain.IntensityLow),
				timed(2, domain.WorkoutIntervals, "Intervals", intervalsDesc, intervalsMin, intervalsEffort),
				rest(3),
				timed(4, domain.WorkoutTempo, "Tempo",
					fmt.Sprintf("%d min tempo", tempoMin), tempoDur, domain.IntensityModerate),
				friday,
				rest(6),
				distanceRun(7, domain.WorkoutLongRun, "Long run",
					fmt.Sprintf("%.0f km", longKm), longKm, domain.IntensityLow),
			},
		})
	}
	return weeks
}

func marathonSchedule() []domain.Week {
	weeks := make([]domain.Week, 0, 16)
	for wk := 1; wk <= 16; wk++ {
		longKm := math.Min(14+float64(wk)*1.3, 35)
		taper := wk >= 14

		easyMin := 40 + wk
		if taper {
			easyMin = 30
		}
		intervalsDesc, intervalsMin, intervalsEffort := "8x800m fast", 45, domain.IntensityHigh
		if taper {
			intervalsDesc, intervalsMin, intervalsEffort = "4x800m fast", 30, domain.IntensityModerate
		}
		tempoMin, tempoDur := 20+wk, 30+wk
		if taper {
			tempoMin, tempoDur = 15, 25
		}
		if taper {
			longKm *= 0.6
		}
		longKm = math.Round(longKm)

		weeks = append(weeks, domain.Week{
			WeekNumber: wk,
			Label:      weekLabel(wk, taper),
			Workouts: []domain.Workout{
				timed(1, domain.WorkoutEasy, "Easy run",
					fmt.Sprintf("%d min easy", easyMin), easyMin, domain.IntensityLow),
				timed(2, domain.WorkoutIntervals, "Intervals", intervalsDesc, intervalsMin, intervalsEffort),
				timed(3, domain.WorkoutEasy, "Easy run", "30 min easy", 30, domain.IntensityLow),
				rest(4),
				timed(5, domain.WorkoutTempo, "Tempo",
					fmt.Sprintf("%d min tempo", tempoMin), tempoDur, domain.IntensityModerate),
				rest(6),
				distanceRun(7, domain.WorkoutLongRun, "Long run",
					fmt.Sprintf("%.0f km", longKm), longKm, domain.IntensityLow),
			},
		})
	}
	return weeks
}

func builtinPlans() []domain.TrainingPlan {
	return []domain.TrainingPlan{
		{
			ID:           "c25k",
			Name:         "Couch to 5K",
			Subtitle:     "From zero to 5K",
			Description:  "8-week program to start running from scratch. Progress from walk/run intervals to a continuous 5K.",
			Weeks:        8,
			Difficulty:   domain.DifficultyBeginner,
			WeeklyRuns:   "3-4 runs",
			WeeklyVolume: "60-120 min",
			Schedule:     c25kSchedule(),
		},
		{
			ID:           "5k-improve",
			Name:         "5K Improve",
			Subtitle:     "Beat your PB",
			Description:  "6-week plan with tempo and interval work to improve your 5K time. Requires a continuous-running base.",
			Weeks:        6,
			Difficulty:   domain.DifficultyIntermediate,
			WeeklyRuns:   "3-4 runs",
			WeeklyVolume: "90-150 min",
			Schedule:     fiveKImproveSchedule(),
		},
		{
			ID:           "10k-beginner",
			Name:         "10K Beginner",
			Subtitle:     "Your first 10K",
			Description:  "8-week program to complete your first 10K, building from a 5K base.",
			Weeks:        8,
			Difficulty:   domain.DifficultyBeginner,
			WeeklyRuns:   "4 runs",
			WeeklyVolume: "120-180 min",
			Schedule:     tenKBeginnerSchedule(),
		},
		{
			ID:           "10k-intermediate",
			Name:         "10K Intermediate",
			Subtitle:     "Speed and endurance",
			Description:  "10-week plan with speed work to improve your 10K time.",
			Weeks:        10,
			Difficulty:   domain.DifficultyIntermediate,
			WeeklyRuns:   "5 runs",
			WeeklyVolume: "150-240 min",
			Schedule:     tenKIntermediateSchedule(),
		},
		{
			ID:           "half-marathon",
			Name:         "Half Marathon",
			Subtitle:     "21.1 km",
			Description:  "12-week plan to complete a half marathon. Long-run progression up to 18-20 km with a taper phase.",
			Weeks:        12,
			Difficulty:   domain.DifficultyIntermediate,
			WeeklyRuns:   "4-5 runs",
			WeeklyVolume: "180-300 min",
			Schedule:     halfMarathonSchedule(),
		},
		{
			ID:           "marathon",
			Name:         "Marathon",
			Subtitle:     "42.195 km",
			Description:  "16-week plan to complete a marathon. Long run up to 32-35 km with periodization and a final taper.",
			Weeks:        16,
			Difficulty:   domain.DifficultyAdvanced,
			WeeklyRuns:   "5 runs",
			WeeklyVolume: "240-420 min",
			Schedule:     marathonSchedule(),
		},
	}
}
