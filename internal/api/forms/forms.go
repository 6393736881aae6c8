// Package forms описывает HTML формы сайта и их проверку
package forms

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TutorService/internal/domain"
)

// Сообщения об ошибках полей
const (
	msgNameRequired  = "Необходимо ввести имя"
	msgPhoneRequired = "Необходимо ввести телефон"
	msgPhoneInvalid  = "Телефон должен содержать от 6 до 11 цифр"
	msgTooLong       = "Слишком длинное значение"
	msgInvalid       = "Некорректное значение"
)

// messages сообщение для пары (поле, тег валидации)
var messages = map[string]map[string]string{
	"clientName": {
		"required": msgNameRequired,
		"max":      msgTooLong,
	},
	"clientPhone": {
		"required": msgPhoneRequired,
		"phone":    msgPhoneInvalid,
		"max":      msgPhoneInvalid,
	},
}

// BookingForm форма бронирования. Преподаватель, день и время берутся из пути запроса.
type BookingForm struct {
	ClientName  string `form:"clientName" validate:"required,max=100"`
	ClientPhone string `form:"clientPhone" validate:"required,max=20,phone"`
}

// RequestForm форма заявки на подбор преподавателя.
// Варианты цели и времени проверяет usecase.
type RequestForm struct {
	ClientName  string `form:"clientName" validate:"required,max=100"`
	ClientPhone string `form:"clientPhone" validate:"required,max=20,phone"`
	ClientGoal  string `form:"clientGoal"`
	ClientTime  string `form:"clientTime"`
}

// NewRequestForm пустая форма заявки с вариантами по умолчанию
func NewRequestForm() RequestForm {
	return RequestForm{
		ClientGoal: domain.DefaultGoalChoice,
		ClientTime: domain.DefaultTimeChoice,
	}
}

// ParseBooking читает форму бронирования из тела POST запроса
func ParseBooking(r *http.Request) BookingForm {
	return BookingForm{
		ClientName:  strings.TrimSpace(r.PostFormValue("clientName")),
		ClientPhone: strings.TrimSpace(r.PostFormValue("clientPhone")),
	}
}

// ParseRequest читает форму заявки из тела POST запроса
func ParseRequest(r *http.Request) RequestForm {
	return RequestForm{
		ClientName:  strings.TrimSpace(r.PostFormValue("clientName")),
		ClientPhone: strings.TrimSpace(r.PostFormValue("clientPhone")),
		ClientGoal:  r.PostFormValue("clientGoal"),
		ClientTime:  r.PostFormValue("clientTime"),
	}
}

// Errors ошибки формы: имя поля -> сообщение
type Errors map[string]string

// Validator проверяет формы по тегам validate
type Validator struct {
	validate *validator.Validate
}

// NewValidator создает валидатор с правилом "phone"
func NewValidator() *Validator {
	v := validator.New()

	// В ошибках используем имена полей HTML формы
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return f.Name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return domain.IsValidPhone(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate проверяет форму. Пустой результат означает, что форма корректна.
func (v *Validator) Validate(form interface{}) Errors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"": msgInvalid}
	}

	result := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		// Для поля показываем только первую ошибку
		if _, ok := result[fe.Field()]; ok {
			continue
		}
		msg, ok := messages[fe.Field()][fe.Tag()]
		if !ok {
			msg = msgInvalid
		}
		result[fe.Field()] = msg
	}

	return result
}
