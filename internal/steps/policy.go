package steps

import (
	"errors"
	"fmt"
)

// ErrForbiddenTransition возвращается политикой при запрещённом переходе статуса.
var ErrForbiddenTransition = errors.New("forbidden status transition")

// TransitionPolicy решает, допустим ли переход статуса шага.
// Исходная система не запрещала откат из completed обратно в pending;
// намерение авторов неясно, поэтому запрет отката — вопрос конфигурации,
// а не кода: обработчики получают политику, а не константу.
type TransitionPolicy func(from, to string) error

// AllowAll разрешает любой переход между статусами. Политика по умолчанию.
func AllowAll(_, _ string) error { return nil }

// ForbidRegression запрещает покидать статус completed.
func ForbidRegression(from, to string) error {
	if from == "completed" && to != "completed" {
		return fmt.Errorf("%w: step already completed, regression to %q", ErrForbiddenTransition, to)
	}
	return nil
}
