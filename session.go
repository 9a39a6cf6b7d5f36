package tinysoft

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// Session 天软会话接口
// 具体实现由宿主平台注入（如 pyTSL 同源的 CGO 绑定），本模块只依赖
// 登录与批量执行两个操作
type Session interface {
	// Login 执行登录，返回服务端状态码，1 表示成功
	Login() int

	// Exec 执行一条 TSL 查询命令，返回结果集
	Exec(cmd string) Result
}

// Result TSL 命令执行结果
type Result interface {
	// Error 服务端是否报告了错误
	Error() bool

	// Value 返回结果行，行序即服务端返回顺序
	Value() []Row
}

// DialFunc 会话建立函数，由调用方通过 DatafeedConfig.Dial 注入
type DialFunc func(username, password, host string, port int) (Session, error)

// Row 结果集中的一行，按天软固定字段名取值
type Row map[string]any

// Float 按字段名取数值，缺失或类型不支持时返回 0
func (r Row) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// String 按字段名取字符串
// 天软返回的中文文本（如 StockName）是 GBK 编码的字节串，这里统一转为 UTF-8
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(v)
		if err != nil {
			return string(v)
		}
		return string(decoded)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// 天软日期采用 Delphi 双精度格式：整数部分为 1899-12-30 起的天数，
// 小数部分为当日时间比例
var doubleDatetimeEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DoubleToDatetime 解码天软的双精度日期，精确到毫秒
// 返回值不带时区含义，由调用方决定如何本地化
func DoubleToDatetime(value float64) time.Time {
	days := math.Floor(value)
	millis := int64(math.Round((value - days) * 24 * 60 * 60 * 1000))
	return doubleDatetimeEpoch.AddDate(0, 0, int(days)).Add(time.Duration(millis) * time.Millisecond)
}
