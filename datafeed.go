package tinysoft

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 天软登录成功状态码
const loginSuccessCode = 1

// GatewayName 输出记录的数据来源标识
const GatewayName = "TSL"

// ChinaTZ 交易所时区，所有输出记录的时间都标注为该时区
var ChinaTZ = loadChinaTZ()

func loadChinaTZ() *time.Location {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}

// 周期对应的天软 cycle 参数，仅支持分钟、小时与日线
var intervalCycles = map[Interval]string{
	IntervalMinute: "cy_1m",
	IntervalHour:   "cy_60m",
	IntervalDaily:  "cy_day",
}

// 天软 K线时间戳为周期结束时间，回移一个周期得到起始时间；日线不回移
var intervalShifts = map[Interval]time.Duration{
	IntervalMinute: time.Minute,
	IntervalHour:   time.Hour,
}

// Datafeed 天软历史数据服务适配器
// 持有认证信息，首次查询时惰性建立会话并复用，之后的查询均走同一会话。
// 不做内部同步，并发使用时需由调用方串行化
type Datafeed struct {
	config DatafeedConfig
	logger *zap.Logger

	session Session
	inited  bool
}

// NewDatafeed 创建数据服务适配器，不会触发登录
func NewDatafeed(config DatafeedConfig, opts ...DatafeedOption) *Datafeed {
	for _, opt := range opts {
		opt(&config)
	}

	logger, err := NewLogger(config.LogConfig)
	if err != nil {
		logger = NewDefaultLogger()
	}

	return &Datafeed{
		config: config,
		logger: logger,
	}
}

// Init 建立会话并登录，幂等：已初始化时直接返回成功
// 登录状态码非 1 视为失败，适配器保持未初始化状态
func (d *Datafeed) Init() error {
	if d.inited {
		return nil
	}

	if d.config.Dial == nil {
		return NewError("Init", ErrNoDialer)
	}

	session, err := d.config.Dial(d.config.Username, d.config.Password, d.config.Host, d.config.Port)
	if err != nil {
		d.logger.Error("dial session failed",
			zap.String("host", d.config.Host),
			zap.Int("port", d.config.Port),
			zap.Error(err))
		return NewError("Init", err)
	}

	if code := session.Login(); code != loginSuccessCode {
		d.logger.Error("login rejected",
			zap.String("username", d.config.Username),
			zap.Int("code", code))
		return NewErrorWithCode("Init", strconv.Itoa(code), ErrLoginFailed)
	}

	d.session = session
	d.inited = true
	d.logger.Info("datafeed initialized",
		zap.String("host", d.config.Host),
		zap.Int("port", d.config.Port))
	return nil
}

// ensureInited 查询前尝试初始化，失败不阻断查询，后续命令执行会自行降级
func (d *Datafeed) ensureInited() {
	if d.inited {
		return
	}
	if err := d.Init(); err != nil {
		d.logger.Warn("datafeed init failed", zap.Error(err))
	}
}

// QueryBarHistory 查询K线数据
// 不支持的周期返回错误；服务端查询失败时返回空序列并记录日志
func (d *Datafeed) QueryBarHistory(req HistoryRequest) ([]BarData, error) {
	d.ensureInited()

	code := LookupExchangeCode(req.Exchange)
	cycle, ok := intervalCycles[req.Interval]
	if !ok {
		return nil, NewErrorWithCode("QueryBarHistory", string(req.Interval), ErrInvalidInterval)
	}

	cmd := buildBarCommand(cycle, code.Prefix()+req.Symbol, req.Start, req.End)
	rows := d.exec(cmd)

	shift := intervalShifts[req.Interval]
	bars := make([]BarData, 0, len(rows))
	for _, row := range rows {
		dt := localizeChina(DoubleToDatetime(row.Float("date"))).Add(-shift)

		bar := BarData{
			Symbol:      req.Symbol,
			Exchange:    req.Exchange,
			Interval:    req.Interval,
			Datetime:    dt,
			OpenPrice:   row.Float("open"),
			HighPrice:   row.Float("high"),
			LowPrice:    row.Float("low"),
			ClosePrice:  row.Float("close"),
			Volume:      row.Float("vol"),
			Turnover:    row.Float("amount"),
			GatewayName: GatewayName,
		}

		// 期货则获取持仓量字段
		if !code.Mapped() {
			bar.OpenInterest = row.Float("sectional_cjbs")
		}

		bars = append(bars, bar)
	}

	return bars, nil
}

// QueryTickHistory 查询Tick数据
// 按自然日逐日查询，单日失败跳过该日继续；同一次调用内时间戳重复的记录
// 将亚秒部分固定为 500 毫秒以作区分
func (d *Datafeed) QueryTickHistory(req HistoryRequest) ([]TickData, error) {
	d.ensureInited()

	code := LookupExchangeCode(req.Exchange)

	ticks := make([]TickData, 0)
	seen := make(map[int64]struct{})

	for day := req.Start; !day.After(req.End); day = day.AddDate(0, 0, 1) {
		cmd := buildTickCommand(code.Prefix()+req.Symbol, day)
		rows := d.exec(cmd)

		for _, row := range rows {
			dt := localizeChina(DoubleToDatetime(row.Float("date")))

			// 期货 Tick 缺失毫秒时间戳，重复时间戳统一落到 500ms
			if _, dup := seen[dt.UnixNano()]; dup {
				dt = dt.Truncate(time.Second).Add(500 * time.Millisecond)
			}
			seen[dt.UnixNano()] = struct{}{}

			tick := TickData{
				Symbol:      req.Symbol,
				Exchange:    req.Exchange,
				Name:        row.String("StockName"),
				Datetime:    dt,
				OpenPrice:   row.Float("sectional_open"),
				HighPrice:   row.Float("sectional_high"),
				LowPrice:    row.Float("sectional_low"),
				LastPrice:   row.Float("price"),
				Volume:      row.Float("sectional_vol"),
				Turnover:    row.Float("sectional_amount"),
				BidPrice1:   row.Float("buy1"),
				BidPrice2:   row.Float("buy2"),
				BidPrice3:   row.Float("buy3"),
				BidPrice4:   row.Float("buy4"),
				BidPrice5:   row.Float("buy5"),
				AskPrice1:   row.Float("sale1"),
				AskPrice2:   row.Float("sale2"),
				AskPrice3:   row.Float("sale3"),
				AskPrice4:   row.Float("sale4"),
				AskPrice5:   row.Float("sale5"),
				BidVolume1:  row.Float("bc1"),
				BidVolume2:  row.Float("bc2"),
				BidVolume3:  row.Float("bc3"),
				BidVolume4:  row.Float("bc4"),
				BidVolume5:  row.Float("bc5"),
				AskVolume1:  row.Float("sc1"),
				AskVolume2:  row.Float("sc2"),
				AskVolume3:  row.Float("sc3"),
				AskVolume4:  row.Float("sc4"),
				AskVolume5:  row.Float("sc5"),
				LocalTime:   dt,
				GatewayName: GatewayName,
			}

			// 期货则获取持仓量字段
			if !code.Mapped() {
				tick.OpenInterest = row.Float("sectional_cjbs")
			}

			ticks = append(ticks, tick)
		}
	}

	return ticks, nil
}

// exec 执行一条查询命令，失败时返回空结果，错误细节只记录日志不上抛
func (d *Datafeed) exec(cmd string) []Row {
	queryID := uuid.New().String()

	if d.session == nil {
		d.logger.Warn("exec skipped: session not initialized",
			zap.String("query_id", queryID))
		return nil
	}

	d.logger.Debug("exec command",
		zap.String("query_id", queryID),
		zap.String("cmd", cmd))

	result := d.session.Exec(cmd)
	if result == nil || result.Error() {
		d.logger.Warn("vendor reported query error",
			zap.String("query_id", queryID),
			zap.String("cmd", cmd))
		return nil
	}

	rows := result.Value()
	d.logger.Debug("exec done",
		zap.String("query_id", queryID),
		zap.Int("rows", len(rows)))
	return rows
}

// buildBarCommand 生成K线查询命令：设置查询周期后按 datekey 区间取行情表
func buildBarCommand(cycle, tslSymbol string, start, end time.Time) string {
	return fmt.Sprintf(
		"setsysparam(pn_cycle(),%s());return select * from markettable datekey %sT to %sT of '%s' end;",
		cycle, formatDateKey(start), formatDateKey(end), tslSymbol)
}

// buildTickCommand 生成单日Tick查询命令，窗口为当日零点起 16 小时
func buildTickCommand(tslSymbol string, day time.Time) string {
	dateStr := formatDateKey(day)
	return fmt.Sprintf(
		"return select * from tradetable datekey %sT to %sT+16/24 of '%s' end;",
		dateStr, dateStr, tslSymbol)
}
