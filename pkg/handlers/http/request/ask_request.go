package request

import (
	"errors"
	"strings"
)

var ErrQuestionRequired = errors.New("question is required")

type AskRequest struct {
	Question string `json:"question"`
}

func (r *AskRequest) Validate() error {
	r.Question = strings.TrimSpace(r.Question)
	if r.Question == "" {
		return ErrQuestionRequired
	}
	return nil
}
