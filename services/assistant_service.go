package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"backend/apperror"
	"backend/models"

	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"
)

// The Hugging Face router speaks the OpenAI chat-completions protocol, so
// the stock client works with a swapped base URL.
const (
	assistantBaseURL = "https://router.huggingface.co/v1"
	assistantModel   = "meta-llama/Llama-3.2-3B-Instruct"
	fallbackReply    = "No response from AI."
)

const chatSystemPrompt = `You are a friendly assistant for a fitness app. Guidelines:
- Answer questions about the app (like how to sign up, reset password, navigate features) in a clear, concise, and friendly way.
- If the question is about fitness, training, nutrition, or recovery, give actionable advice with specific exercises or techniques.
- For medical concerns, recommend consulting a healthcare professional.
- If you don't know something, say so briefly.
- Keep responses under 4 sentences.
- Be encouraging and supportive.
- Never ask for personal information. If a user wants to create an account, tell them to use the app's sign up or register page.`

const planSystemPrompt = `You are a professional fitness coach creating workout programs.

CRITICAL RULES YOU MUST FOLLOW:
1. If user specifies target areas (e.g., "glutes and hamstrings"), include ONLY exercises for those areas
2. DO NOT add exercises for unspecified body parts
3. If user says "bodyweight only", use NO equipment at all
4. Follow equipment restrictions exactly
5. Provide complete workout days as requested

Be precise and follow instructions exactly.`

type AssistantService struct {
	client   *openai.Client
	workouts *WorkoutService
}

func NewAssistantService(db *gorm.DB) (*AssistantService, error) {
	key := os.Getenv("HF_API_KEY")
	if key == "" {
		return nil, errors.New("HF_API_KEY not set")
	}
	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = assistantBaseURL
	return &AssistantService{
		client:   openai.NewClientWithConfig(cfg),
		workouts: NewWorkoutService(db),
	}, nil
}

// DetailedPlanRequest reports whether the message asks for a full workout or
// meal program. Those requests get the stricter coach prompt and a larger
// token limit.
func DetailedPlanRequest(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "create") ||
		strings.Contains(m, "generate") ||
		strings.Contains(m, "program") ||
		(strings.Contains(m, "plan") && strings.Contains(m, "week")) ||
		strings.Contains(m, "days per week") ||
		(strings.Contains(m, "meal") && (strings.Contains(m, "plan") || strings.Contains(m, "day"))) ||
		strings.Contains(m, "calories") ||
		strings.Contains(m, "diet type")
}

// WorkoutContext summarizes recent workouts for the model. An empty slice
// means the user simply has no history yet.
func WorkoutContext(workouts []models.Workout) string {
	if len(workouts) == 0 {
		return "User has no workouts yet."
	}
	lines := make([]string, 0, len(workouts))
	for _, w := range workouts {
		exs := make([]string, 0, len(w.Exercise))
		for _, e := range w.Exercise {
			s := fmt.Sprintf("%s %dx%d", e.Name, e.Sets, e.Reps)
			if e.Weight != nil {
				s += fmt.Sprintf(" @ %glbs", *e.Weight)
			}
			exs = append(exs, s)
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): %s",
			w.Title, w.Date.Format("1/2/2006"), strings.Join(exs, ", ")))
	}
	return "User's recent workouts:\n" + strings.Join(lines, "\n")
}

// Reply forwards the message to the completion provider with the constructed
// system prompt and workout context, and returns the provider's reply
// verbatim. userID 0 means an anonymous caller; they get no workout context.
// Provider failures surface as Upstream errors, never as a silent success.
func (s *AssistantService) Reply(ctx context.Context, userID uint, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperror.Validation("message", "message is required")
	}

	workoutContext := "New visitor - no workout history available."
	if userID != 0 {
		recent, err := s.workouts.RecentWorkouts(userID, 5)
		if err != nil {
			return "", err
		}
		workoutContext = WorkoutContext(recent)
	}

	systemPrompt := chatSystemPrompt
	maxTokens := 300
	if DetailedPlanRequest(message) {
		systemPrompt = planSystemPrompt
		maxTokens = 2000
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: assistantModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleSystem, Content: workoutContext},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.6,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", apperror.Upstream("ai assistant", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return fallbackReply, nil
	}
	return resp.Choices[0].Message.Content, nil
}
