package nutrigo

import "context"

type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

type TipCategory string

const (
	TipFitness          TipCategory = "fitness"
	TipMentalWellness   TipCategory = "mentalWellness"
	TipSleepHygiene     TipCategory = "sleepHygiene"
	TipStressManagement TipCategory = "stressManagement"
)

type HealthTip struct {
	Summary     string `json:"summary"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Details     string `json:"details"`
}

type BMIResult struct {
	BMIValue   float64 `json:"bmiValue"`
	CategoryEN string  `json:"category_en"`
	CategoryAR string  `json:"category_ar"`
}

type MealPlanGoal string

const (
	GoalGain MealPlanGoal = "gain"
	GoalLoss MealPlanGoal = "loss"
)

type Meal struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

type MealPlan struct {
	Breakfast Meal `json:"breakfast"`
	Lunch     Meal `json:"lunch"`
	Dinner    Meal `json:"dinner"`
}

// AvatarGenerator is the one assistant capability the user directory depends
// on. Failures are swallowed at the call site; an account is never lost to a
// missing decoration.
type AvatarGenerator interface {
	GenerateAvatar(ctx context.Context, seed string) (string, error)
}

// ChatSession is a multi-turn conversation whose history lives with the
// assistant, opaque to this module. Image is optional JPEG/PNG bytes for
// food-photo analysis.
type ChatSession interface {
	Send(ctx context.Context, message string, image []byte) (string, error)
}

// Assistant is the opaque generative collaborator. Every method reports
// failure as an error wrapping ErrUpstreamUnavailable.
type Assistant interface {
	AvatarGenerator
	GenerateTips(ctx context.Context, lang Language, category TipCategory, query string) ([]HealthTip, error)
	ComputeBMI(ctx context.Context, weightKg, heightCm float64) (BMIResult, error)
	GenerateMealPlan(ctx context.Context, lang Language, goal MealPlanGoal) (MealPlan, error)
	StartChat(ctx context.Context) (ChatSession, error)
}
