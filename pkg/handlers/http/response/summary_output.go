package response

import "github.com/NeuralTrust/TutorGate/pkg/app/pipeline"

const (
	ServiceName   = "AI Teacher API"
	StatusRunning = "running"
)

type SummaryOutput struct {
	Service    string                `json:"service"`
	Status     string                `json:"status"`
	Sessions   int                   `json:"sessions"`
	Components pipeline.Capabilities `json:"components"`
}
