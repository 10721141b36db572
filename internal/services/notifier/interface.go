package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/Edaad/allin-sub000/internal/services/notifier Service

import "context"

// Service is the interface for delivering admission notifications. Callers
// treat delivery as fire-and-forget: a failed emit is logged, never allowed
// to roll back the state change it describes.
type Service interface {
	// Emit delivers one notification event
	Emit(ctx context.Context, input *EmitInput) error
}
