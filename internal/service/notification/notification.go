package notification

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"marketplace/internal/entities"
)

var defaultChannels = []entities.NotificationChannel{entities.ChannelInApp, entities.ChannelPush}

type Notification struct {
	directory  Directory
	dispatcher Dispatcher
}

func New(directory Directory, dispatcher Dispatcher) *Notification {
	return &Notification{
		directory:  directory,
		dispatcher: dispatcher,
	}
}

// Notify отправляет уведомление каждому получателю независимо.
// Ошибка одного получателя не мешает остальным, все ошибки возвращаются вместе.
func (s *Notification) Notify(ctx context.Context, n entities.Notification) error {
	if len(n.Recipients) == 0 {
		return ErrNoRecipients
	}

	priority := n.Priority
	if priority == "" {
		priority = entities.PriorityNormal
	}
	channels := n.Channels
	if len(channels) == 0 {
		channels = defaultChannels
	}

	var errs []error
	for _, recipient := range n.Recipients {
		if err := s.notifyOne(ctx, recipient, n, priority, channels); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", recipient.Role, recipient.ProfileID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Notification) notifyOne(
	ctx context.Context,
	recipient entities.Recipient,
	n entities.Notification,
	priority entities.NotificationPriority,
	channels []entities.NotificationChannel,
) error {
	if !recipient.Role.IsValid() || strings.TrimSpace(recipient.ProfileID) == "" {
		return ErrInvalidRecipient
	}

	accountID, err := s.directory.AccountID(ctx, recipient.Role, recipient.ProfileID)
	if err != nil {
		return fmt.Errorf("resolve recipient: %w", err)
	}

	err = s.dispatcher.Dispatch(ctx, entities.NotificationRequest{
		RecipientID:   accountID,
		RecipientRole: recipient.Role,
		Title:         n.Title,
		Message:       n.Message,
		Type:          n.Type,
		Priority:      priority,
		Channels:      slices.Clone(channels),
		RelatedID:     n.RelatedID,
		RelatedModel:  n.RelatedModel,
		Data:          maps.Clone(n.Data),
	})
	if err != nil {
		return fmt.Errorf("dispatch notification: %w", err)
	}
	return nil
}
