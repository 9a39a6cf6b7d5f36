package tinysoft

import (
	"fmt"
	"strings"
	"time"
)

// ExtractVTSymbol 拆分带交易所后缀的合约标识，如 "600000.SSE" -> ("600000", SSE)
func ExtractVTSymbol(vtSymbol string) (string, Exchange, error) {
	idx := strings.LastIndex(vtSymbol, ".")
	if idx <= 0 || idx == len(vtSymbol)-1 {
		return "", "", NewErrorWithCode("ExtractVTSymbol", vtSymbol, ErrInvalidSymbol)
	}
	return vtSymbol[:idx], Exchange(vtSymbol[idx+1:]), nil
}

// VTSymbol 生成带交易所后缀的合约标识
func VTSymbol(symbol string, exchange Exchange) string {
	return fmt.Sprintf("%s.%s", symbol, exchange)
}

// formatDateKey 生成天软 datekey 语法使用的 8 位日期
func formatDateKey(t time.Time) string {
	return t.Format("20060102")
}

// localizeChina 把解码得到的本地钟面时间标注为交易所时区
func localizeChina(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), ChinaTZ)
}
