package main

import (
	"fmt"
	"strings"

	"github.com/omarkhayat/nutrigo"
)

func renderTips(tips []nutrigo.HealthTip) string {
	if len(tips) == 0 {
		return "no tips this time"
	}
	var sb strings.Builder
	sb.WriteString("TIPS\n")
	for i, t := range tips {
		sb.WriteString(fmt.Sprintf("  %d. %s - %s\n", i+1, t.Title, t.Summary))
		sb.WriteString(faintStyle.Render("     "+t.Explanation) + "\n")
	}
	return sb.String()
}

func renderMealPlan(plan nutrigo.MealPlan) string {
	var sb strings.Builder
	sb.WriteString("MEAL PLAN\n")
	for _, entry := range []struct {
		label string
		meal  nutrigo.Meal
	}{
		{"breakfast", plan.Breakfast},
		{"lunch", plan.Lunch},
		{"dinner", plan.Dinner},
	} {
		sb.WriteString(fmt.Sprintf("  %s (%s): %s\n", entry.label, entry.meal.Time, entry.meal.Name))
		sb.WriteString(faintStyle.Render("    "+entry.meal.Description) + "\n")
	}
	return sb.String()
}

func renderBMI(r nutrigo.BMIResult) string {
	return fmt.Sprintf("BMI: %.1f - %s / %s", r.BMIValue, r.CategoryEN, r.CategoryAR)
}

func renderTestimonials(all []nutrigo.Testimonial) string {
	if len(all) == 0 {
		return "no reviews yet - /review <1-5> <quote>"
	}
	var sb strings.Builder
	sb.WriteString("REVIEWS\n")
	// newest first
	for i := len(all) - 1; i >= 0; i-- {
		t := all[i]
		sb.WriteString(fmt.Sprintf("  %s %s: %q\n", stars(t.Rating), t.Username, t.Quote))
	}
	return sb.String()
}
