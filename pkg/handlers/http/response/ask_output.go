package response

import (
	"fmt"

	"github.com/NeuralTrust/TutorGate/pkg/app/pipeline"
)

type AskOutput struct {
	Success      bool             `json:"success"`
	SessionID    string           `json:"session_id"`
	Question     string           `json:"question"`
	Answer       string           `json:"answer"`
	ResponseTime string           `json:"response_time"`
	Background   BackgroundOutput `json:"background"`
}

type BackgroundOutput struct {
	Audio string `json:"audio"`
	Video string `json:"video"`
}

func NewAskOutput(res *pipeline.AskResult) *AskOutput {
	return &AskOutput{
		Success:      true,
		SessionID:    res.Session.ID,
		Question:     res.Session.Question,
		Answer:       res.Session.Answer,
		ResponseTime: fmt.Sprintf("%.2fs", res.Elapsed.Seconds()),
		Background: BackgroundOutput{
			Audio: res.AudioStatus,
			Video: res.VideoStatus,
		},
	}
}
