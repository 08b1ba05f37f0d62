package errCode

type Code uint

const (
	OK            Code = iota // 无错误
	INVALID_VALUE             // 参数非法
	EMPTY_VALUE               // 输入为空
	UNKNOWN                   // 未知错误
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	default:
		return "UNKNOWN"
	}
}
