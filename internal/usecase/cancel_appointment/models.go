package cancel_appointment

// Request модель запроса на отмену записи.
// Дата и время принимаются в гибком формате; если привести их
// к каноничному не удается, поиск идет по введенным строкам как есть.
type Request struct {
	Phone      string
	DoctorName string
	Date       string
	Time       string
}

// Response модель ответа с реквизитами отмененной записи
type Response struct {
	DoctorName string
	Date       string
	Time       string
	Phone      string
}
