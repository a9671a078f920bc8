package waitlist

import "gorm.io/gorm"

type WaitlistContainer struct {
	Handler *Handler
	Service Service
}

func NewWaitlistContainer(db *gorm.DB) *WaitlistContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &WaitlistContainer{
		Handler: handler,
		Service: service,
	}
}

func Models() []any {
	return []any{&Entry{}}
}
