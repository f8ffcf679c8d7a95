package entities

type RecipientRole string

const (
	RecipientCustomer   RecipientRole = "customer"
	RecipientStoreOwner RecipientRole = "store_owner"
	RecipientCourier    RecipientRole = "courier"
)

func (r RecipientRole) String() string {
	return string(r)
}

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

type NotificationChannel string

const (
	ChannelInApp NotificationChannel = "in_app"
	ChannelPush  NotificationChannel = "push"
	ChannelSMS   NotificationChannel = "sms"
	ChannelEmail NotificationChannel = "email"
)

type NotificationRequest struct {
	RecipientID   string
	RecipientRole RecipientRole
	Title         string
	Message       string
	Type          string
	Priority      NotificationPriority
	Channels      []NotificationChannel
	RelatedID     string
	RelatedModel  string
	Data          map[string]any
}

func (r RecipientRole) IsValid() bool {
	switch r {
	case RecipientCustomer, RecipientStoreOwner, RecipientCourier:
		return true
	default:
		return false
	}
}

// Recipient - получатель, заданный профилем. Аккаунт ищется в справочнике.
type Recipient struct {
	Role      RecipientRole
	ProfileID string
}

// Notification - одно уведомление для нескольких получателей.
type Notification struct {
	Recipients   []Recipient
	Title        string
	Message      string
	Type         string
	Priority     NotificationPriority
	Channels     []NotificationChannel
	RelatedID    string
	RelatedModel string
	Data         map[string]any
}
