package notifier

import (
	"context"
	"errors"
	"log"
)

// service implements the Service interface by writing notifications to a
// logger. Real delivery channels (SMS, email, push) plug in behind the same
// interface.
type service struct {
	logger *log.Logger
}

// NewService creates a new log-backed notifier service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &service{
		logger: logger,
	}, nil
}

// Emit delivers one notification event
func (s *service) Emit(ctx context.Context, input *EmitInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.Type == "" || input.GameID == "" {
		return errors.New("event type and game ID cannot be empty")
	}

	if input.Recipient.IsZero() {
		return errors.New("recipient cannot be empty")
	}

	if len(input.Payload) > 0 {
		s.logger.Printf("notification %s: game=%s recipient=%s actor=%s payload=%v",
			input.Type, input.GameID, input.Recipient.Key(), input.Actor.Key(), input.Payload)
		return nil
	}

	s.logger.Printf("notification %s: game=%s recipient=%s actor=%s",
		input.Type, input.GameID, input.Recipient.Key(), input.Actor.Key())
	return nil
}
