package notifications

import "marketplace/internal/entities"

type NotificationMessage struct {
	RecipientID   string         `json:"recipient_id"`
	RecipientRole string         `json:"recipient_role"`
	Title         string         `json:"title"`
	Message       string         `json:"message"`
	Type          string         `json:"type"`
	Priority      string         `json:"priority"`
	Channels      []string       `json:"channels"`
	RelatedID     string         `json:"related_id,omitempty"`
	RelatedModel  string         `json:"related_model,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
}

func fromDomain(r entities.NotificationRequest) NotificationMessage {
	channels := make([]string, len(r.Channels))
	for i, ch := range r.Channels {
		channels[i] = string(ch)
	}

	return NotificationMessage{
		RecipientID:   r.RecipientID,
		RecipientRole: r.RecipientRole.String(),
		Title:         r.Title,
		Message:       r.Message,
		Type:          r.Type,
		Priority:      string(r.Priority),
		Channels:      channels,
		RelatedID:     r.RelatedID,
		RelatedModel:  r.RelatedModel,
		Data:          r.Data,
	}
}
