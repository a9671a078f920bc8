package quizsession

type QuizSessionContainer struct {
	Handler *Handler
	Service Service
}

func NewQuizSessionContainer(store Store, loader QuestionLoader) *QuizSessionContainer {
	service := NewService(store, loader)
	handler := NewHandler(service)

	return &QuizSessionContainer{
		Handler: handler,
		Service: service,
	}
}
