package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DatabaseNamePattern определяет допустимый формат имени базы данных
// Только латинские буквы, цифры, дефис и нижнее подчеркивание
// Длина: 1-64 символа
var DatabaseNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ConnectionSchemes допустимые схемы строки подключения
var ConnectionSchemes = []string{"mongodb", "mongodb+srv"}

// ValidateConnectionString проверяет строку подключения до отправки на сервер.
// Формат: mongodb://[user:pass@]host[:port][/...] или mongodb+srv://...
func ValidateConnectionString(conn string) error {
	if strings.TrimSpace(conn) == "" {
		return fmt.Errorf("connection string cannot be empty")
	}

	if strings.ContainsAny(conn, " \t\r\n") {
		return fmt.Errorf("connection string must not contain whitespace")
	}

	u, err := url.Parse(conn)
	if err != nil {
		return fmt.Errorf("malformed connection string: %w", err)
	}

	schemeOK := false
	for _, scheme := range ConnectionSchemes {
		if u.Scheme == scheme {
			schemeOK = true
			break
		}
	}
	if !schemeOK {
		return fmt.Errorf("connection string must start with mongodb:// or mongodb+srv://")
	}

	if u.Host == "" {
		return fmt.Errorf("connection string must contain a host")
	}

	// mongodb+srv не допускает явный порт
	if u.Scheme == "mongodb+srv" && u.Port() != "" {
		return fmt.Errorf("mongodb+srv connection string must not specify a port")
	}

	return nil
}

// ValidateDatabaseName проверяет имя базы данных
func ValidateDatabaseName(name string) error {
	if name == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if !DatabaseNamePattern.MatchString(name) {
		return fmt.Errorf("database name can only contain letters, numbers, '-' and '_' (max 64 characters)")
	}

	return nil
}
