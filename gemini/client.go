// Package gemini implements nutrigo's Assistant on Google's Gemini API.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/omarkhayat/nutrigo"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "imagen-3.0-generate-002"
)

type Client struct {
	client *genai.Client
	l      nutrigo.Logger
}

var _ nutrigo.Assistant = (*Client)(nil)

func NewClient(ctx context.Context, apiKey string, logger nutrigo.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if logger == nil {
		logger = nutrigo.NopLogger{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: client, l: logger}, nil
}

var tipPrompts = map[nutrigo.TipCategory]string{
	nutrigo.TipFitness:          "fitness tips for absolute beginners that require no equipment.",
	nutrigo.TipMentalWellness:   "mental wellness tips for improving mood and mindfulness.",
	nutrigo.TipSleepHygiene:     "sleep hygiene tips for getting a better night's rest.",
	nutrigo.TipStressManagement: "stress management techniques for immediate relief.",
}

func langInstruction(lang nutrigo.Language) string {
	if lang == nutrigo.LangArabic {
		return "in Arabic"
	}
	return "in English"
}

// GenerateTips asks for five tips in the category, optionally narrowed by a
// free-text query. Off-topic queries fall back to general category tips on
// the model side.
func (c *Client) GenerateTips(ctx context.Context, lang nutrigo.Language, category nutrigo.TipCategory, query string) ([]nutrigo.HealthTip, error) {
	categoryPrompt, ok := tipPrompts[category]
	if !ok {
		categoryPrompt = tipPrompts[nutrigo.TipFitness]
	}
	var searchInstruction string
	if query != "" {
		searchInstruction = fmt.Sprintf("that specifically focus on %q", query)
	}
	prompt := fmt.Sprintf(
		"Provide 5 diverse and effective %s %s %s. Each tip must have a brief one-sentence 'summary', a short 'title', a 2-3 sentence 'explanation', and a 'details' section with clear, step-by-step instructions. If the search query is too specific or unrelated to the category, provide general tips for the category instead.",
		categoryPrompt, searchInstruction, langInstruction(lang),
	)

	tipSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":     {Type: genai.TypeString},
			"title":       {Type: genai.TypeString},
			"explanation": {Type: genai.TypeString},
			"details":     {Type: genai.TypeString},
		},
		Required: []string{"summary", "title", "explanation", "details"},
	}
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tips": {Type: genai.TypeArray, Items: tipSchema},
		},
		Required: []string{"tips"},
	}

	var out struct {
		Tips []nutrigo.HealthTip `json:"tips"`
	}
	if err := c.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nil, err
	}
	return out.Tips, nil
}

// ComputeBMI delegates the BMI narrative to the model so the category names
// come back localized in both languages.
func (c *Client) ComputeBMI(ctx context.Context, weightKg, heightCm float64) (nutrigo.BMIResult, error) {
	prompt := fmt.Sprintf(
		`Calculate the Body Mass Index (BMI) for a person with a weight of %.1f kg and a height of %.1f cm. Use the formula: BMI = weight (kg) / (height (m))^2. Return a JSON object containing: 'bmiValue' (the calculated BMI as a number, rounded to one decimal place), 'category_en' (the corresponding English category: "Underweight", "Normal weight", "Overweight", or "Obese"), and 'category_ar' (the Arabic translation of the category).`,
		weightKg, heightCm,
	)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"bmiValue":    {Type: genai.TypeNumber},
			"category_en": {Type: genai.TypeString},
			"category_ar": {Type: genai.TypeString},
		},
		Required: []string{"bmiValue", "category_en", "category_ar"},
	}

	var out nutrigo.BMIResult
	if err := c.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nutrigo.BMIResult{}, err
	}
	return out, nil
}

func (c *Client) GenerateMealPlan(ctx context.Context, lang nutrigo.Language, goal nutrigo.MealPlanGoal) (nutrigo.MealPlan, error) {
	goalInstruction := "weight loss"
	if goal == nutrigo.GoalGain {
		goalInstruction = "weight gain"
	}
	prompt := fmt.Sprintf(
		`Create a simple, healthy, and balanced one-day meal plan for %s %s. Provide one option each for breakfast, lunch, and dinner. For each meal, provide a name, a recommended time (e.g., "8:00 AM"), and a short 1-2 sentence description.`,
		goalInstruction, langInstruction(lang),
	)

	mealSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"time":        {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
		},
		Required: []string{"name", "time", "description"},
	}
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"breakfast": mealSchema,
			"lunch":     mealSchema,
			"dinner":    mealSchema,
		},
		Required: []string{"breakfast", "lunch", "dinner"},
	}

	var out nutrigo.MealPlan
	if err := c.generateJSON(ctx, prompt, schema, &out); err != nil {
		return nutrigo.MealPlan{}, err
	}
	return out, nil
}

// GenerateAvatar produces an abstract profile image for the seed and returns
// it as a PNG data URL.
func (c *Client) GenerateAvatar(ctx context.Context, seed string) (string, error) {
	prompt := fmt.Sprintf(
		"A minimalist, modern, flat-design avatar representing a user named '%s'. The avatar should be a simple, abstract logo or symbol on a clean, solid background. Avoid realistic faces. Use a vibrant and friendly color palette like greens, blues, and yellows. Make it circular in shape.",
		seed,
	)

	resp, err := c.client.Models.GenerateImages(ctx, imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/png",
		AspectRatio:    "1:1",
	})
	if err != nil {
		return "", fmt.Errorf("avatar generation failed: %w: %v", nutrigo.ErrUpstreamUnavailable, err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", fmt.Errorf("no image was generated: %w", nutrigo.ErrUpstreamUnavailable)
	}

	encoded := base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes)
	return "data:image/png;base64," + encoded, nil
}

func (c *Client) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	resp, err := c.client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w: %v", nutrigo.ErrUpstreamUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if err := json.Unmarshal([]byte(text), out); err != nil {
		c.l.Warn("model returned malformed JSON", "error", err)
		return fmt.Errorf("malformed model response: %w", nutrigo.ErrUpstreamUnavailable)
	}
	return nil
}

func (c *Client) Close() error {
	return nil
}
