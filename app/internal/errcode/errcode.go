package errcode

import (
	"errors"

	"github.com/zeebo/errs"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errs.Class("not found")
	ErrValidation = errs.Class("validation")
	ErrRequest    = errs.Class("request")
)

// NotFound 记录不存在时返回的错误，msg即返回给调用方的信息
func NotFound(msg string) error {
	return ErrNotFound.Wrap(&notFound{msg: msg})
}

type notFound struct {
	msg string
}

func (e *notFound) Error() string { return e.msg }

// Message 取出NotFound的原始信息
func Message(err error) (string, bool) {
	var nf *notFound
	if errors.As(err, &nf) {
		return nf.msg, true
	}
	return "", false
}

// IsNotFound gorm的ErrRecordNotFound也视为不存在
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := Message(err); ok {
		return true
	}
	return ErrNotFound.Has(err) || errors.Is(err, gorm.ErrRecordNotFound)
}
