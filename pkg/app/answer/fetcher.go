package answer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TutorGate/pkg/common"
	"github.com/NeuralTrust/TutorGate/pkg/domain/answer"
	"github.com/NeuralTrust/TutorGate/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const promptTemplate = "Please provide a detailed 5-7 line explanation about: %s\n\nMake it educational and easy to understand:"

const fallbackTemplate = "Detailed explanation about %s:\n\n" +
	"1. This topic involves important concepts worth understanding.\n" +
	"2. Core principles explain how it functions in practice.\n" +
	"3. Real-world applications demonstrate its relevance.\n" +
	"4. Learning this provides valuable insights.\n" +
	"5. Key mechanisms drive its effectiveness.\n" +
	"6. Further study can deepen understanding.\n" +
	"7. This overview serves as a solid foundation.\n\n" +
	"Hope this helps!"

type Fetcher interface {
	// Fetch always yields displayable text; upstream failures degrade to Fallback.
	Fetch(ctx context.Context, question string) string
	Ping(ctx context.Context) error
}

type Options struct {
	Timeout     time.Duration
	PingTimeout time.Duration
	MinLength   int
}

type fetcher struct {
	logger    *logrus.Logger
	generator answer.Generator
	breaker   httpx.CircuitBreaker
	opts      Options
}

func NewFetcher(
	logger *logrus.Logger,
	generator answer.Generator,
	breaker httpx.CircuitBreaker,
	opts Options,
) Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = common.AnswerTimeout
	}
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = common.AnswerPingTimeout
	}
	if opts.MinLength <= 0 {
		opts.MinLength = common.AnswerMinLength
	}
	return &fetcher{
		logger:    logger,
		generator: generator,
		breaker:   breaker,
		opts:      opts,
	}
}

func Prompt(question string) string {
	return fmt.Sprintf(promptTemplate, question)
}

func Fallback(question string) string {
	return fmt.Sprintf(fallbackTemplate, question)
}

func (f *fetcher) Fetch(ctx context.Context, question string) string {
	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	var text string
	call := func() error {
		out, err := f.generator.Generate(ctx, Prompt(question))
		if err != nil {
			return err
		}
		text = strings.TrimSpace(out)
		return nil
	}
	var err error
	if f.breaker != nil {
		err = f.breaker.Execute(call)
	} else {
		err = call()
	}
	if err != nil {
		f.logger.WithError(err).WithField("circuit_open", httpx.IsOpen(err)).
			Warn("completion endpoint unavailable, using fallback answer")
		return Fallback(question)
	}

	if len([]rune(text)) <= f.opts.MinLength {
		f.logger.WithField("length", len(text)).Warn("completion too short, using fallback answer")
		return Fallback(question)
	}
	return text
}

func (f *fetcher) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, f.opts.PingTimeout)
	defer cancel()
	return f.generator.Ping(ctx)
}
