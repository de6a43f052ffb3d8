package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
)

// Sender доставляет одно уведомление по конкретному каналу.
type Sender interface {
	Send(ctx context.Context, n domain.Notification) error
}
