package usecase

import "context"

// InteractionProducer публикует события взаимодействий во внешний поток аналитики.
type InteractionProducer interface {
	PublishInteraction(ctx context.Context, msg *InteractionMessage) error
}
