package errorx

import (
	"errors"
	"fmt"

	"binning/infra/errorx/errCode"
)

// Errorx 带错误码的error, 供调用方按码分支处理
type Errorx struct {
	Code errCode.Code
	Msg  string
}

func (e *Errorx) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

func New(code errCode.Code, msg string) error {
	return &Errorx{Code: code, Msg: msg}
}

// CodeOf 提取错误码; 非Errorx返回UNKNOWN, nil返回OK
func CodeOf(err error) errCode.Code {
	if err == nil {
		return errCode.OK
	}
	var e *Errorx
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.UNKNOWN
}
