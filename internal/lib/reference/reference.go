// Package reference генерирует ссылки платежей вида
// prefix_timestamp_suffix. Уникальность вероятностная: временная метка
// плюс случайный суффикс, без проверки по существующим записям.
// Коллизия упирается в UNIQUE-ограничение колонки при вставке.
package reference

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New возвращает новую ссылку платежа с заданным префиксом,
// например "CF_1735689600123_9f3cba01".
func New(prefix string) string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
