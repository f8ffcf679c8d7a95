package entities

type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleStore    ActorRole = "store"
	RoleCourier  ActorRole = "courier"
	RoleAdmin    ActorRole = "admin"
)

func (r ActorRole) String() string {
	return string(r)
}

func (r ActorRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStore, RoleCourier, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor - уже аутентифицированный инициатор операции.
// ID - идентификатор профиля покупателя, магазина или курьера; для админа - id аккаунта.
type Actor struct {
	ID   string
	Role ActorRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// SystemActor используется для изменений, которые инициирует сам сервис.
var SystemActor = Actor{ID: "system", Role: RoleAdmin}
