package validate

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go-hangar/app/internal/constants"
	"go-hangar/app/internal/errcode"
)

const TagRole = "astronaut_role"

var (
	v    *validator.Validate
	once sync.Once
)

func roleValidation(fl validator.FieldLevel) bool {
	return constants.Role(fl.Field().String()).Valid()
}

func register(val *validator.Validate) error {
	return val.RegisterValidation(TagRole, roleValidation)
}

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New()
		if err := register(v); err != nil {
			panic(err)
		}
	})
	return v
}

// RegisterValidation 注册自定义验证标签到gin的binding
func RegisterValidation() error {
	if val, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return register(val)
	}
	return nil
}

// Struct 写库前校验模型，失败返回ErrValidation
func Struct(s any) error {
	if err := instance().Struct(s); err != nil {
		return errcode.ErrValidation.Wrap(err)
	}
	return nil
}
