package submit_request

// Request модель заявки на подбор преподавателя
type Request struct {
	ClientName  string // Имя клиента
	ClientPhone string // Телефон клиента
	Goal        string // Ключ цели ("travel")
	TimeBudget  string // Ключ свободного времени ("1-2")
}

// Response сохраненная заявка с подписями выбранных вариантов
type Response struct {
	ID          int64
	ClientName  string
	ClientPhone string
	GoalLabel   string
	TimeLabel   string
}
