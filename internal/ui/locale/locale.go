// Package locale holds the user-facing text catalogs.
package locale

import (
	"fmt"

	"github.com/testhub/client/internal/core/domain"
)

// Labels is one complete catalog. Every field is displayable as is.
type Labels struct {
	// Navigation.
	CreateAssignment string
	Dashboard        string
	GoToAssignments  string
	Logout           string
	NavTeacher       string
	NavStudent       string

	// Profile panel. The panel names the teacher role differently from the
	// navigation bar.
	ProfileTeacher   string
	ProfileStudent   string
	Loading          string
	AveragePercent   string
	NoCompletedTests string
	Close            string

	// Feedback.
	MissingFields      string
	PasswordMismatch   string
	MissingCredentials string
	RegistrationFailed string
	InvalidLogin       string
	NetworkFailure     string
	Unexpected         string
}

var English = Labels{
	CreateAssignment: "Create assignment",
	Dashboard:        "Dashboard",
	GoToAssignments:  "Go to assignments",
	Logout:           "Log out",
	NavTeacher:       "Teacher",
	NavStudent:       "Student",

	ProfileTeacher:   "Teacher",
	ProfileStudent:   "Student",
	Loading:          "Loading...",
	AveragePercent:   "Average score",
	NoCompletedTests: "No completed tests",
	Close:            "×",

	MissingFields:      "Fill in all fields and choose a role.",
	PasswordMismatch:   "Passwords do not match.",
	MissingCredentials: "Enter your login and password.",
	RegistrationFailed: "Registration failed",
	InvalidLogin:       "Invalid login or password",
	NetworkFailure:     "Network error. Check that the server is running.",
	Unexpected:         "Something went wrong.",
}

var Russian = Labels{
	CreateAssignment: "Создать задание",
	Dashboard:        "Кабинет",
	GoToAssignments:  "Перейти к заданиям",
	Logout:           "Выйти",
	NavTeacher:       "Учитель",
	NavStudent:       "Ученик",

	ProfileTeacher:   "Преподаватель",
	ProfileStudent:   "Ученик",
	Loading:          "Загрузка...",
	AveragePercent:   "Средний процент",
	NoCompletedTests: "Нет пройденных тестов",
	Close:            "×",

	MissingFields:      "Заполните все поля и выберите роль.",
	PasswordMismatch:   "Пароли не совпадают.",
	MissingCredentials: "Введите логин и пароль.",
	RegistrationFailed: "Ошибка регистрации",
	InvalidLogin:       "Неверный логин или пароль",
	NetworkFailure:     "Ошибка сети. Запустите сервер (npm start).",
	Unexpected:         "Что-то пошло не так.",
}

// For returns the catalog for a locale code.
func For(code string) (Labels, error) {
	switch code {
	case "en", "":
		return English, nil
	case "ru":
		return Russian, nil
	default:
		return Labels{}, fmt.Errorf("locale: unsupported locale %q", code)
	}
}

// NavRole labels a role in the navigation bar. Unknown roles are shown verbatim.
func (l Labels) NavRole(role domain.Role) string {
	switch role {
	case domain.RoleTeacher:
		return l.NavTeacher
	case domain.RoleStudent:
		return l.NavStudent
	default:
		return string(role)
	}
}

// ProfileRole labels a role in the profile panel.
func (l Labels) ProfileRole(role domain.Role) string {
	switch role {
	case domain.RoleTeacher:
		return l.ProfileTeacher
	case domain.RoleStudent:
		return l.ProfileStudent
	default:
		return string(role)
	}
}
