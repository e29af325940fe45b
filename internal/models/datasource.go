package models

import "net/url"

// DataSource переопределение хранилища бэкенда для текущего клиента.
// Передается серверу заголовками, если Enabled = true.
type DataSource struct {
	ConnectionString string `json:"connection_string"` // ConnectionString строка подключения к альтернативной БД
	DatabaseName     string `json:"database_name"`     // DatabaseName имя базы данных
	Enabled          bool   `json:"enabled"`           // Enabled включено ли переопределение
}

// Redacted возвращает строку подключения без пароля для вывода пользователю
func (d *DataSource) Redacted() string {
	return RedactConnectionString(d.ConnectionString)
}

// RedactConnectionString скрывает пароль в строке подключения.
// Строка, которую не удалось разобрать, скрывается целиком.
func RedactConnectionString(conn string) string {
	if conn == "" {
		return ""
	}
	u, err := url.Parse(conn)
	if err != nil {
		return "***"
	}
	return u.Redacted()
}
