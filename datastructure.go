package tinysoft

import (
	"time"
)

// Exchange 交易所代码
type Exchange string

const (
	ExchangeSSE  Exchange = "SSE"  // 上海证券交易所
	ExchangeSZSE Exchange = "SZSE" // 深圳证券交易所

	ExchangeSHFE  Exchange = "SHFE"  // 上海期货交易所
	ExchangeDCE   Exchange = "DCE"   // 大连商品交易所
	ExchangeCZCE  Exchange = "CZCE"  // 郑州商品交易所
	ExchangeCFFEX Exchange = "CFFEX" // 中国金融期货交易所
	ExchangeINE   Exchange = "INE"   // 上海国际能源交易中心
	ExchangeGFEX  Exchange = "GFEX"  // 广州期货交易所
)

// Interval K线周期
type Interval string

const (
	IntervalMinute Interval = "1m" // 1分钟
	IntervalHour   Interval = "1h" // 1小时
	IntervalDaily  Interval = "d"  // 日线
)

// HistoryRequest 历史数据查询请求
type HistoryRequest struct {
	Symbol   string    `json:"symbol"`   // 合约代码
	Exchange Exchange  `json:"exchange"` // 交易所
	Interval Interval  `json:"interval"` // K线周期，Tick 查询不使用
	Start    time.Time `json:"start"`    // 起始日期
	End      time.Time `json:"end"`      // 结束日期
}

// BarData K线数据
type BarData struct {
	Symbol   string   `json:"symbol"`   // 合约代码
	Exchange Exchange `json:"exchange"` // 交易所
	Interval Interval `json:"interval"` // K线周期

	Datetime time.Time `json:"datetime"` // K线起点时间（交易所时区）

	OpenPrice  float64 `json:"open_price"`  // 开盘价
	HighPrice  float64 `json:"high_price"`  // 最高价
	LowPrice   float64 `json:"low_price"`   // 最低价
	ClosePrice float64 `json:"close_price"` // 收盘价

	Volume       float64 `json:"volume"`        // 成交量
	Turnover     float64 `json:"turnover"`      // 成交额
	OpenInterest float64 `json:"open_interest"` // 持仓量，仅期货合约

	GatewayName string `json:"gateway_name"` // 数据来源
}

// TickData Tick数据（盘口快照）
type TickData struct {
	Symbol   string   `json:"symbol"`   // 合约代码
	Exchange Exchange `json:"exchange"` // 交易所
	Name     string   `json:"name"`     // 合约名称

	Datetime time.Time `json:"datetime"` // 行情时间（交易所时区）

	OpenPrice float64 `json:"open_price"` // 当日开盘价
	HighPrice float64 `json:"high_price"` // 当日最高价
	LowPrice  float64 `json:"low_price"`  // 当日最低价
	LastPrice float64 `json:"last_price"` // 最新价

	Volume       float64 `json:"volume"`        // 当日累计成交量
	Turnover     float64 `json:"turnover"`      // 当日累计成交额
	OpenInterest float64 `json:"open_interest"` // 持仓量，仅期货合约

	BidPrice1 float64 `json:"bid_price1"` // 买一价
	BidPrice2 float64 `json:"bid_price2"` // 买二价
	BidPrice3 float64 `json:"bid_price3"` // 买三价
	BidPrice4 float64 `json:"bid_price4"` // 买四价
	BidPrice5 float64 `json:"bid_price5"` // 买五价

	AskPrice1 float64 `json:"ask_price1"` // 卖一价
	AskPrice2 float64 `json:"ask_price2"` // 卖二价
	AskPrice3 float64 `json:"ask_price3"` // 卖三价
	AskPrice4 float64 `json:"ask_price4"` // 卖四价
	AskPrice5 float64 `json:"ask_price5"` // 卖五价

	BidVolume1 float64 `json:"bid_volume1"` // 买一量
	BidVolume2 float64 `json:"bid_volume2"` // 买二量
	BidVolume3 float64 `json:"bid_volume3"` // 买三量
	BidVolume4 float64 `json:"bid_volume4"` // 买四量
	BidVolume5 float64 `json:"bid_volume5"` // 买五量

	AskVolume1 float64 `json:"ask_volume1"` // 卖一量
	AskVolume2 float64 `json:"ask_volume2"` // 卖二量
	AskVolume3 float64 `json:"ask_volume3"` // 卖三量
	AskVolume4 float64 `json:"ask_volume4"` // 卖四量
	AskVolume5 float64 `json:"ask_volume5"` // 卖五量

	LocalTime time.Time `json:"local_time"` // 本地接收时间，等于行情时间

	GatewayName string `json:"gateway_name"` // 数据来源
}

// ExchangeCode 交易所到天软代码前缀的映射结果
// 未映射的交易所（期货）没有代码前缀，查询时直接使用原始合约代码
type ExchangeCode struct {
	prefix string
	mapped bool
}

// Mapped 是否存在天软代码前缀
func (c ExchangeCode) Mapped() bool {
	return c.mapped
}

// Prefix 返回天软代码前缀，未映射时为空串
func (c ExchangeCode) Prefix() string {
	if !c.mapped {
		return ""
	}
	return c.prefix
}

var exchangeCodes = map[Exchange]string{
	ExchangeSSE:  "SH",
	ExchangeSZSE: "SZ",
}

// LookupExchangeCode 查询交易所对应的天软代码前缀
// 对任意交易所都有定义：沪深两市返回映射前缀，其余返回未映射结果
func LookupExchangeCode(exchange Exchange) ExchangeCode {
	if prefix, ok := exchangeCodes[exchange]; ok {
		return ExchangeCode{prefix: prefix, mapped: true}
	}
	return ExchangeCode{}
}
