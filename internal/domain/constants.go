package domain

import "regexp"

// DefaultFeaturedTutors сколько преподавателей показывать на главной
const DefaultFeaturedTutors = 6

// Ограничения длины полей (совпадают со схемой БД)
const (
	MaxNameLength  = 100
	MaxPhoneLength = 20
)

// PhonePattern шаблон телефона: необязательный код 8 или +7,
// необязательный код города в скобках и 7-10 цифр с пробелами или дефисами.
// Общий для бронирования и заявки.
var PhonePattern = regexp.MustCompile(`^((8|\+7)[\- ]?)?(\(?\d{3}\)?[\- ]?)?[\d\- ]{7,10}$`)

// IsValidPhone проверяет телефон по PhonePattern
func IsValidPhone(phone string) bool {
	return phone != "" && PhonePattern.MatchString(phone)
}

// Choice вариант ответа в форме заявки: ключ и подпись
type Choice struct {
	Key   string
	Label string
}

// GoalChoices варианты цели занятий в форме заявки
var GoalChoices = []Choice{
	{Key: "travel", Label: "Для путешествий"},
	{Key: "study", Label: "Для учебы"},
	{Key: "work", Label: "Для работы"},
	{Key: "relocate", Label: "Для переезда"},
	{Key: "coding", Label: "для программирования"},
}

// TimeBudgetChoices варианты свободного времени в форме заявки
var TimeBudgetChoices = []Choice{
	{Key: "1-2", Label: "1-2 часа в неделю"},
	{Key: "3-5", Label: "3-5 часов в неделю"},
	{Key: "5-7", Label: "5-7 часов в неделю"},
	{Key: "7-10", Label: "7-10 часов в неделю"},
}

// Значения формы заявки по умолчанию
const (
	DefaultGoalChoice = "travel"
	DefaultTimeChoice = "1-2"
)

// FindChoice ищет вариант по ключу
func FindChoice(choices []Choice, key string) (Choice, bool) {
	for _, c := range choices {
		if c.Key == key {
			return c, true
		}
	}
	return Choice{}, false
}
