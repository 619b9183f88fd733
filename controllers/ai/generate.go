package aiController

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"coursehub/middleware"
	"coursehub/utils"
)

// CourseSuggestion is the suggestion document returned to the caller.
type CourseSuggestion struct {
	Description      string   `json:"description"`
	Duration         string   `json:"duration"`
	LearningOutcomes []string `json:"learning_outcomes"`
	Prerequisites    string   `json:"prerequisites"`
	DifficultyLevel  string   `json:"difficulty_level"`
	SuggestedPrice   string   `json:"suggested_price"`
}

// fallbackSuggestions is used whenever the remote backend is missing
// or fails. Unknown categories get the Leadership template.
var fallbackSuggestions = map[string]CourseSuggestion{
	"Leadership": {
		Description:      "Develop essential leadership skills through practical exercises, case studies, and expert guidance. This comprehensive program covers strategic thinking, team management, and organizational transformation.",
		Duration:         "3-6 months",
		LearningOutcomes: []string{"Strategic Leadership", "Team Management", "Decision Making", "Communication Skills"},
		Prerequisites:    "Basic management experience preferred",
		DifficultyLevel:  "intermediate",
		SuggestedPrice:   "1500-3000",
	},
	"Technical": {
		Description:      "Master cutting-edge technical skills with hands-on training and real-world projects. Stay ahead of industry trends and build practical expertise.",
		Duration:         "4-12 weeks",
		LearningOutcomes: []string{"Technical Expertise", "Problem Solving", "Innovation", "Implementation"},
		Prerequisites:    "Basic technical background",
		DifficultyLevel:  "intermediate",
		SuggestedPrice:   "1000-2500",
	},
}

// GenerateController produces AI (or canned) course suggestions.
type GenerateController struct {
	client *utils.ChatClient
}

func NewGenerateController(client *utils.ChatClient) *GenerateController {
	return &GenerateController{client: client}
}

// GenerateCourse answers with a suggestion document and a flag naming
// which path produced it. Remote failures fall back silently.
func (ctrl *GenerateController) GenerateCourse(c *fiber.Ctx) error {
	reqData := new(struct {
		Title    string `json:"title"`
		Category string `json:"category"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(reqData.Title) == "" {
		return middleware.ErrorJSON(c, fiber.StatusBadRequest, "Course title is required")
	}
	category := reqData.Category
	if category == "" {
		category = "General"
	}

	if ctrl.client.Enabled() {
		if suggestions, err := ctrl.remoteSuggestions(reqData.Title, category); err == nil {
			return c.JSON(fiber.Map{"suggestions": suggestions, "ai_powered": true})
		} else {
			log.Warn().Err(err).Msg("AI generation failed, using fallback suggestions")
		}
	}

	suggestion, ok := fallbackSuggestions[category]
	if !ok {
		suggestion = fallbackSuggestions["Leadership"]
	}
	return c.JSON(fiber.Map{"suggestions": suggestion, "ai_powered": false})
}

func (ctrl *GenerateController) remoteSuggestions(title, category string) (map[string]interface{}, error) {
	prompt := fmt.Sprintf(`Generate a comprehensive course description and metadata for:
Title: %s
Category: %s

Provide a JSON response with:
- description: detailed course description (100-150 words)
- duration: suggested duration
- learning_outcomes: list of 4-5 key learning outcomes
- prerequisites: course prerequisites
- difficulty_level: beginner/intermediate/advanced
- suggested_price: price range`, title, category)

	content, err := ctrl.client.Complete([]utils.ChatMessage{
		{Role: "user", Content: prompt},
	}, 500, 0.7)
	if err != nil {
		return nil, err
	}

	// The model may wrap the JSON object in prose; take the outermost
	// braces.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in completion")
	}

	var suggestions map[string]interface{}
	if err := json.Unmarshal([]byte(content[start:end+1]), &suggestions); err != nil {
		return nil, fmt.Errorf("malformed completion JSON: %w", err)
	}
	return suggestions, nil
}
