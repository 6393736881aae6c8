// Package views отрисовывает HTML страницы сайта
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/m04kA/SMC-TutorService/internal/api/forms"
	"github.com/m04kA/SMC-TutorService/internal/domain"
)

//go:embed templates/*.html
var files embed.FS

// Страницы сайта
const (
	PageIndex       = "index"
	PageGoal        = "goal"
	PageProfile     = "profile"
	PageRequest     = "request"
	PageRequestDone = "request_done"
	PageBooking     = "booking"
	PageBookingDone = "booking_done"
	PageError       = "error"
	PageDBEmpty     = "db_empty"
)

var pages = []string{
	PageIndex,
	PageGoal,
	PageProfile,
	PageRequest,
	PageRequestDone,
	PageBooking,
	PageBookingDone,
	PageError,
	PageDBEmpty,
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
}

// IndexData главная страница
type IndexData struct {
	Goals  []domain.Goal
	Tutors []*domain.Tutor
}

// GoalData страница цели
type GoalData struct {
	Goals  []domain.Goal
	Goal   *domain.Goal
	Tutors []*domain.Tutor
}

// ProfileData страница преподавателя
type ProfileData struct {
	Goals    []domain.Goal
	Tutor    *domain.Tutor
	FreeDays []domain.FreeDay
}

// RequestData форма заявки
type RequestData struct {
	CSRFField   template.HTML // скрытое поле с CSRF токеном
	Form        forms.RequestForm
	Errors      forms.Errors
	GoalChoices []domain.Choice
	TimeChoices []domain.Choice
}

// RequestDoneData заявка принята
type RequestDoneData struct {
	ClientName  string
	ClientPhone string
	GoalLabel   string
	TimeLabel   string
}

// BookingData форма бронирования
type BookingData struct {
	CSRFField template.HTML // скрытое поле с CSRF токеном
	Tutor     *domain.Tutor
	Weekday   domain.WeekdaySlot
	Time      domain.TimeSlot
	Form      forms.BookingForm
	Errors    forms.Errors
}

// BookingDoneData бронирование создано
type BookingDoneData struct {
	Tutor       *domain.Tutor
	Weekday     domain.WeekdaySlot
	Time        domain.TimeSlot
	ClientName  string
	ClientPhone string
}

// ErrorData страница с сообщением об ошибке
type ErrorData struct {
	Message string
}

// Renderer набор разобранных шаблонов страниц
type Renderer struct {
	pages map[string]*template.Template
}

// New разбирает встроенные шаблоны
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(files, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render отрисовывает страницу целиком в буфер и только потом пишет в w,
// чтобы ошибка шаблона не оставила в ответе половину страницы
func (r *Renderer) Render(w io.Writer, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("views: unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("views: render %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
