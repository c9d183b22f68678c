// Package secrets изолирует способ хранения секретов доступов (accesses).
// Исходная система хранит пароли сервисов в открытом виде; это осознанная
// слабость, которую нельзя "чинить" молча. Encoder — точка подмены: шифрование
// at-rest добавляется реализацией интерфейса без изменения вызывающего кода.
package secrets

// Encoder кодирует секрет перед записью в хранилище и декодирует при чтении.
type Encoder interface {
	Encode(plaintext string) (string, error)
	Decode(stored string) (string, error)
}

// Noop хранит секрет как есть. Поведение, совместимое с исходной системой.
type Noop struct{}

// Encode возвращает секрет без изменений.
func (Noop) Encode(plaintext string) (string, error) { return plaintext, nil }

// Decode возвращает сохранённое значение без изменений.
func (Noop) Decode(stored string) (string, error) { return stored, nil }
