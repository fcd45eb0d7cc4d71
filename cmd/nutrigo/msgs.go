package main

import "github.com/omarkhayat/nutrigo"

// ReminderMsg is delivered by the scheduler's notifier when a task reminder
// fires.
type ReminderMsg struct {
	title string
	body  string
}

type TipsMsg struct {
	tips []nutrigo.HealthTip
}

type MealPlanMsg struct {
	plan nutrigo.MealPlan
}

type BMIMsg struct {
	result nutrigo.BMIResult
}

type ErrorMsg struct {
	err error
}
