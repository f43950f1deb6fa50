// Package reader loads the whole target file into memory before the search
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

func ReadContent(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", model.ErrRead, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w %q: is a directory", model.ErrRead, fileName)
	}

	// читаем целиком
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", model.ErrRead, fileName, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w %q: stream did not contain valid UTF-8", model.ErrRead, fileName)
	}

	return string(raw), nil
}
