package contentset

import "gorm.io/gorm"

type ContentSetContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContentSetContainer(db *gorm.DB) *ContentSetContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ContentSetContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}

// Models lists the tables owned by this package for AutoMigrate.
func Models() []any {
	return []any{&ContentSet{}, &SetFlashcard{}, &SetQuizQuestion{}}
}
