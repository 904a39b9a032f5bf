package book_appointment

import "time"

// Request модель запроса на создание записи.
// Дата, время и телефон принимаются в гибком пользовательском формате
// и приводятся к каноничному внутри use case.
type Request struct {
	DoctorName string
	Date       string
	Time       string
	Phone      string
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64
	DoctorName string // полное имя найденного врача
	Date       string // каноничная дата dd-mm-yyyy
	Time       string // каноничное время hh:mm AM/PM
	Phone      string // последние 10 цифр номера
	CreatedAt  time.Time
}
