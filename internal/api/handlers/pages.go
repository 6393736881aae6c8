package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-TutorService/internal/api/views"
	"github.com/m04kA/SMC-TutorService/internal/domain"
	"github.com/m04kA/SMC-TutorService/internal/infra/storage"
)

// Сообщения страниц ошибок
const (
	MsgNotFound          = "Ничего не нашлось!"
	MsgTutorNotFound     = "К сожалению, данного преподавателя в нашей базе данных нет"
	MsgGoalNotFound      = "К сожалению, вы ввели неверную цель"
	MsgTimeNotFound      = "К сожалению, вы ввели неверное время"
	MsgWeekdayNotFound   = "К сожалению, вы ввели неверный день недели"
	MsgInvalidData       = "К сожалению, вы ввели неверные данные"
	MsgScheduleNotFound  = MsgInvalidData
	MsgForbidden         = "Форма устарела. Обновите страницу и отправьте её ещё раз"
	MsgSlotTaken         = "К сожалению, указанное время занято"
	MsgInternalErrorPage = "Что-то не так, но мы все починим:\n"
)

// Renderer отрисовка HTML страниц
type Renderer interface {
	Render(w io.Writer, page string, data interface{}) error
}

// RespondPage отрисовывает страницу с указанным статусом
func RespondPage(w http.ResponseWriter, renderer Renderer, status int, page string, data interface{}) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page, data); err != nil {
		http.Error(w, MsgInternalErrorPage+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RespondErrorPage страница с сообщением об ошибке
func RespondErrorPage(w http.ResponseWriter, renderer Renderer, status int, message string) {
	RespondPage(w, renderer, status, views.PageError, views.ErrorData{Message: message})
}

// RespondDBEmpty страница "база данных пуста" со статусом 200
func RespondDBEmpty(w http.ResponseWriter, renderer Renderer) {
	RespondPage(w, renderer, http.StatusOK, views.PageDBEmpty, nil)
}

// IsStorageUnavailable хранилище недоступно или схема не создана
func IsStorageUnavailable(err error) bool {
	return storage.IsUnavailable(err)
}

// NotFoundMessage текст страницы 404 для ошибки "не найдено"
func NotFoundMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTutorNotFound):
		return MsgTutorNotFound
	case errors.Is(err, domain.ErrGoalNotFound):
		return MsgGoalNotFound
	case errors.Is(err, domain.ErrTimeNotFound):
		return MsgTimeNotFound
	case errors.Is(err, domain.ErrWeekdayNotFound):
		return MsgWeekdayNotFound
	case errors.Is(err, domain.ErrScheduleNotFound):
		return MsgScheduleNotFound
	default:
		return MsgNotFound
	}
}

// RespondPageError общий разбор ошибки для HTML страниц:
// недоступное хранилище, "не найдено" (404), занятое время (200), иначе 500 с текстом ошибки
func RespondPageError(w http.ResponseWriter, renderer Renderer, err error) {
	switch {
	case IsStorageUnavailable(err):
		RespondDBEmpty(w, renderer)
	case errors.Is(err, domain.ErrNotFound):
		RespondErrorPage(w, renderer, http.StatusNotFound, NotFoundMessage(err))
	case errors.Is(err, domain.ErrSlotTaken):
		RespondErrorPage(w, renderer, http.StatusOK, MsgSlotTaken)
	default:
		RespondErrorPage(w, renderer, http.StatusInternalServerError, MsgInternalErrorPage+err.Error())
	}
}
