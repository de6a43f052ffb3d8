package api

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validateDigits строка состоит только из цифр ASCII.
func validateDigits(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func registerValidators() error {
	var err error
	registerOnce.Do(func() {
		v, _ := binding.Validator.Engine().(*validator.Validate)
		for tag, fn := range map[string]validator.Func{
			"max_bytes": validateMaxBytes,
			"digits":    validateDigits,
		} {
			if regErr := v.RegisterValidation(tag, fn); regErr != nil {
				err = fmt.Errorf("validator registration: %s", regErr.Error())
				return
			}
		}
	})
	return err
}
