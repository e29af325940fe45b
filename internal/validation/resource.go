package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/iudanet/resorg/internal/models"
)

const (
	// MaxNameLen максимальная длина имени ресурса или папки
	MaxNameLen = 128
)

// ValidateName проверяет имя ресурса или папки
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len([]rune(name)) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}

// ValidateResourceValue проверяет значение ресурса с учетом его типа.
// Для ссылок требуется абсолютный http(s) URL.
func ValidateResourceValue(t models.ResourceType, value string) error {
	if !t.Valid() {
		return fmt.Errorf("unknown resource type %q", t)
	}

	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}

	if t != models.ResourceTypeURL {
		return nil
	}

	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must use http or https scheme")
	}
	if u.Host == "" {
		return fmt.Errorf("url must contain a host")
	}

	return nil
}

// ValidateNewResource проверяет данные нового ресурса
func ValidateNewResource(in models.NewResource) error {
	if err := ValidateName(in.Name); err != nil {
		return err
	}
	return ValidateResourceValue(in.Type, in.Value)
}

// ValidatePatch проверяет заданные поля патча.
// Значение проверяется против нового типа, если он задан, иначе против current.
func ValidatePatch(patch models.ResourcePatch, current models.ResourceType) error {
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to update")
	}

	if patch.Name != nil {
		if err := ValidateName(*patch.Name); err != nil {
			return err
		}
	}

	resType := current
	if patch.Type != nil {
		resType = *patch.Type
		if !resType.Valid() {
			return fmt.Errorf("unknown resource type %q", resType)
		}
	}

	if patch.Value == nil {
		return nil
	}

	// тип неизвестен: проверяем только непустое значение
	if resType == "" {
		if strings.TrimSpace(*patch.Value) == "" {
			return fmt.Errorf("value cannot be empty")
		}
		return nil
	}

	return ValidateResourceValue(resType, *patch.Value)
}
