package store

import (
	"context"
	"fmt"

	"github.com/obeng/tutorhub/ent"
)

type notificationLogRepo struct {
	client *ent.Client
}

func (r *notificationLogRepo) Append(ctx context.Context, data NotificationEventData) error {
	_, err := r.client.NotificationEvent.Create().
		SetRecipientUID(data.RecipientUID).
		SetTitle(data.Title).
		SetBody(data.Body).
		SetDelivered(data.Delivered).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save notification event: %w", err)
	}
	return nil
}
