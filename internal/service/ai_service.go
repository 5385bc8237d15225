package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fitmentor_backend/internal/config"
	"fitmentor_backend/internal/model"
	"fitmentor_backend/internal/progress"
	"fitmentor_backend/pkg/logger"

	"go.uber.org/zap"
)

// InsightsUnavailable AI 服务失败时的降级文案，核心逻辑不依赖 AI
const InsightsUnavailable = "insights unavailable"

// AIService 调用 OpenAI 兼容接口生成进度洞察文本
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) chat(system, prompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

// MenteeInsight 学员端的进度洞察，失败时降级不报错
func (s *AIService) MenteeInsight(user *model.User, goal progress.Goal, updates []progress.Update) string {
	system := "你是一名专业的健身减脂教练助理，根据学员的周打卡数据给出简短、具体、鼓励性的进步分析和下周建议。"

	text, err := s.chat(system, buildMenteePrompt(user.Name, goal, updates))
	if err != nil {
		logger.Log.Warn("mentee insight generation failed", zap.Uint("userID", user.ID), zap.Error(err))
		return InsightsUnavailable
	}
	return text
}

// AdminMenteeSummary 后台的学员情况摘要
func (s *AIService) AdminMenteeSummary(mentee *model.User, status progress.MenteeStatus, goal progress.Goal, updates []progress.Update) string {
	system := "你是健身导师的数据助理，为导师总结学员的近期表现、风险点和建议的干预措施，语气专业简洁。"

	var sb strings.Builder
	sb.WriteString(buildMenteePrompt(mentee.Name, goal, updates))
	fmt.Fprintf(&sb, "\n当前区间: %s，距上次打卡 %d 天", status.Zone, status.DaysSinceLastUpdate)
	if status.NeedsAttention {
		fmt.Fprintf(&sb, "，需要关注: %s", strings.Join(status.AttentionReasons, "; "))
	}

	text, err := s.chat(system, sb.String())
	if err != nil {
		logger.Log.Warn("admin mentee summary failed", zap.Uint("menteeID", mentee.ID), zap.Error(err))
		return InsightsUnavailable
	}
	return text
}

func buildMenteePrompt(name string, goal progress.Goal, updates []progress.Update) string {
	var sb strings.Builder

	direction := "减重"
	if goal.Type == progress.MuscleGain {
		direction = "增肌"
	}
	fmt.Fprintf(&sb, "学员 %s，目标%s：初始体重 %.1fkg，目标体重 %.1fkg。\n打卡记录：\n",
		name, direction, goal.InitialWeight, goal.TargetWeight)

	for _, u := range updates {
		fmt.Fprintf(&sb, "第%d周 %.1fkg\n", u.Week, u.Weight)
	}
	if len(updates) == 0 {
		sb.WriteString("（尚无打卡记录）\n")
	}
	return sb.String()
}
