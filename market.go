package dceapi

import (
	"context"
	"encoding/json"
)

const (
	pathDayQuotes         = "/dceapi/forward/publicweb/dailystat/dayQuotes"
	pathNightQuotes       = "/dceapi/forward/publicweb/dailystat/tiNightQuotes"
	pathWeekQuotes        = "/dceapi/forward/publicweb/dailystat/weekQuotes"
	pathMonthQuotes       = "/dceapi/forward/publicweb/dailystat/monthQuotes"
	pathContractMonthMax  = "/dceapi/forward/publicweb/phasestat/contractMonthMax"
	pathRiseFallEvent     = "/dceapi/forward/publicweb/phasestat/riseFallEvent"
	pathDivisionPriceInfo = "/dceapi/forward/publicweb/dailystat/divisionPriceInfo"
	pathWarehouseReceipt  = "/dceapi/forward/publicweb/dailystat/wbillWeeklyQuotes"
)

// Contract statistics selected by ContractMonthMaxRequest.StatContent.
const (
	statContentVolume       = "0"
	statContentTurnover     = "1"
	statContentOpenInterest = "2"
	statContentPrice        = "3"
)

// Quote is one contract's session summary. Price fields arrive as strings;
// the exchange sends empty strings for sessions without trades. The volume
// field is spelled "volumn" on the wire.
type Quote struct {
	Variety      string `json:"variety"`
	ContractID   string `json:"contractId"`
	DelivMonth   string `json:"delivMonth"`
	Open         string `json:"open"`
	High         string `json:"high"`
	Low          string `json:"low"`
	Close        string `json:"close"`
	LastClear    string `json:"lastClear"`
	LastPrice    string `json:"lastPrice"`
	ClearPrice   string `json:"clearPrice"`
	Diff         string `json:"diff"`
	Diff1        string `json:"diff1"`
	Volume       int64  `json:"volumn"`
	OpenInterest int64  `json:"openInterest"`
	DiffI        int64  `json:"diffI"`
	Turnover     string `json:"turnover"`
}

// QuotesRequest selects quotes by variety and date. VarietyID addresses day
// and periodic quotes; night quotes use Variety instead. StatisticsType
// applies to options only: 0 contract, 1 series, 2 variety.
type QuotesRequest struct {
	VarietyID      string `json:"varietyId,omitempty"`
	Variety        string `json:"variety,omitempty"`
	TradeDate      string `json:"tradeDate"`
	TradeType      string `json:"tradeType"`
	Lang           string `json:"lang,omitempty"`
	StatisticsType *int   `json:"statisticsType,omitempty"`
}

// ContractMonthMaxRequest selects the per-contract monthly extremes. The
// statistic itself is chosen by the method called.
type ContractMonthMaxRequest struct {
	VarietyID   string `json:"varietyId"`
	StartMonth  string `json:"startMonth"`
	EndMonth    string `json:"endMonth"`
	TradeType   string `json:"tradeType"`
	Lang        string `json:"lang,omitempty"`
	statContent string
}

// MarshalJSON includes the statContent selector set by the calling method.
func (r ContractMonthMaxRequest) MarshalJSON() ([]byte, error) {
	type wire struct {
		VarietyID   string `json:"varietyId"`
		StartMonth  string `json:"startMonth"`
		EndMonth    string `json:"endMonth"`
		TradeType   string `json:"tradeType"`
		Lang        string `json:"lang,omitempty"`
		StatContent string `json:"statContent"`
	}
	return json.Marshal(wire{
		VarietyID:   r.VarietyID,
		StartMonth:  r.StartMonth,
		EndMonth:    r.EndMonth,
		TradeType:   r.TradeType,
		Lang:        r.Lang,
		StatContent: r.statContent,
	})
}

// ContractMonthMaxVolume is a contract's maximum daily volume in a month.
type ContractMonthMaxVolume struct {
	Variety    string `json:"variety"`
	ContractID string `json:"contractId"`
	TradeMonth string `json:"tradeMonth"`
	MaxQty     int64  `json:"maxQty"`
	MaxQtyDate string `json:"maxQtyDate"`
}

// ContractMonthMaxTurnover is a contract's maximum daily turnover in a
// month.
type ContractMonthMaxTurnover struct {
	Variety    string `json:"variety"`
	ContractID string `json:"contractId"`
	TradeMonth string `json:"tradeMonth"`
	MaxAmt     string `json:"maxAmt"`
	MaxAmtDate string `json:"maxAmtDate"`
}

// ContractMonthMaxOpenInterest is a contract's maximum open interest in a
// month.
type ContractMonthMaxOpenInterest struct {
	Variety      string `json:"variety"`
	ContractID   string `json:"contractId"`
	TradeMonth   string `json:"tradeMonth"`
	MaxOpeni     int64  `json:"maxOpeni"`
	MaxOpeniDate string `json:"maxOpeniDate"`
}

// ContractMonthMaxPrice is a contract's price extremes in a month.
type ContractMonthMaxPrice struct {
	Variety      string `json:"variety"`
	ContractID   string `json:"contractId"`
	TradeMonth   string `json:"tradeMonth"`
	MaxPrice     string `json:"maxPrice"`
	MaxPriceDate string `json:"maxPriceDate"`
	MinPrice     string `json:"minPrice"`
	MinPriceDate string `json:"minPriceDate"`
}

// RiseFallEventRequest selects price-limit events in a date range.
type RiseFallEventRequest struct {
	VarietyID string `json:"varietyId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TradeType string `json:"tradeType"`
	Lang      string `json:"lang,omitempty"`
}

// RiseFallEvent records a contract hitting its daily price limit.
type RiseFallEvent struct {
	Variety    string `json:"variety"`
	ContractID string `json:"contractId"`
	TradeDate  string `json:"tradeDate"`
	EventType  string `json:"eventType"`
	ClosePrice string `json:"closePrice"`
	LimitPrice string `json:"limitPrice"`
}

// DivisionPriceInfoRequest selects the time-division reference prices for a
// variety and date.
type DivisionPriceInfoRequest struct {
	VarietyID string `json:"varietyId"`
	TradeDate string `json:"tradeDate"`
	TradeType string `json:"tradeType"`
	Lang      string `json:"lang,omitempty"`
}

// DivisionPriceInfo is a contract's average price within one settlement
// time division.
type DivisionPriceInfo struct {
	ContractID string `json:"contractId"`
	Division   string `json:"division"`
	AvgPrice   string `json:"avgPrice"`
	Volume     int64  `json:"volume"`
}

// WarehouseReceiptRequest selects the registered warehouse receipt report.
type WarehouseReceiptRequest struct {
	VarietyCode string `json:"varietyCode"`
	TradeDate   string `json:"tradeDate"`
}

// WarehouseReceipt is one warehouse's registered receipt quantity.
type WarehouseReceipt struct {
	VarietyCode   string `json:"varietyCode"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int64  `json:"quantity"`
	TradeDate     string `json:"tradeDate"`
}

// MarketService provides quotes and market statistics.
type MarketService service

// DayQuotes returns the day-session quotes for a variety and date.
func (s *MarketService) DayQuotes(ctx context.Context, req *QuotesRequest, opts *RequestOptions) ([]Quote, error) {
	return s.quotes(ctx, pathDayQuotes, req, opts)
}

// NightQuotes returns the night-session quotes for a variety and date.
func (s *MarketService) NightQuotes(ctx context.Context, req *QuotesRequest, opts *RequestOptions) ([]Quote, error) {
	return s.quotes(ctx, pathNightQuotes, req, opts)
}

// WeekQuotes returns the weekly aggregate quotes.
func (s *MarketService) WeekQuotes(ctx context.Context, req *QuotesRequest, opts *RequestOptions) ([]Quote, error) {
	return s.quotes(ctx, pathWeekQuotes, req, opts)
}

// MonthQuotes returns the monthly aggregate quotes.
func (s *MarketService) MonthQuotes(ctx context.Context, req *QuotesRequest, opts *RequestOptions) ([]Quote, error) {
	return s.quotes(ctx, pathMonthQuotes, req, opts)
}

func (s *MarketService) quotes(ctx context.Context, path string, req *QuotesRequest, opts *RequestOptions) ([]Quote, error) {
	if req == nil || req.TradeDate == "" {
		return nil, &ValidationError{Field: "TradeDate", Reason: "trade date is required"}
	}

	var out []Quote
	if err := s.client.post(ctx, path, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractMonthMaxVolume returns each contract's maximum daily volume per
// month in the requested range.
func (s *MarketService) ContractMonthMaxVolume(ctx context.Context, req *ContractMonthMaxRequest, opts *RequestOptions) ([]ContractMonthMaxVolume, error) {
	var out []ContractMonthMaxVolume
	if err := s.contractMonthMax(ctx, req, statContentVolume, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractMonthMaxTurnover returns each contract's maximum daily turnover
// per month in the requested range.
func (s *MarketService) ContractMonthMaxTurnover(ctx context.Context, req *ContractMonthMaxRequest, opts *RequestOptions) ([]ContractMonthMaxTurnover, error) {
	var out []ContractMonthMaxTurnover
	if err := s.contractMonthMax(ctx, req, statContentTurnover, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractMonthMaxOpenInterest returns each contract's maximum open
// interest per month in the requested range.
func (s *MarketService) ContractMonthMaxOpenInterest(ctx context.Context, req *ContractMonthMaxRequest, opts *RequestOptions) ([]ContractMonthMaxOpenInterest, error) {
	var out []ContractMonthMaxOpenInterest
	if err := s.contractMonthMax(ctx, req, statContentOpenInterest, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractMonthMaxPrice returns each contract's price extremes per month in
// the requested range.
func (s *MarketService) ContractMonthMaxPrice(ctx context.Context, req *ContractMonthMaxRequest, opts *RequestOptions) ([]ContractMonthMaxPrice, error) {
	var out []ContractMonthMaxPrice
	if err := s.contractMonthMax(ctx, req, statContentPrice, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MarketService) contractMonthMax(ctx context.Context, req *ContractMonthMaxRequest, statContent string, opts *RequestOptions, v any) error {
	if req == nil || req.StartMonth == "" || req.EndMonth == "" {
		return &ValidationError{Field: "StartMonth", Reason: "start and end month are required"}
	}

	body := *req
	body.statContent = statContent
	return s.client.post(ctx, pathContractMonthMax, body, opts, v)
}

// RiseFallEvent returns the price-limit events in the requested date range.
func (s *MarketService) RiseFallEvent(ctx context.Context, req *RiseFallEventRequest, opts *RequestOptions) ([]RiseFallEvent, error) {
	if req == nil || req.StartDate == "" || req.EndDate == "" {
		return nil, &ValidationError{Field: "StartDate", Reason: "start and end date are required"}
	}

	var out []RiseFallEvent
	if err := s.client.post(ctx, pathRiseFallEvent, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DivisionPriceInfo returns the settlement reference prices by time
// division.
func (s *MarketService) DivisionPriceInfo(ctx context.Context, req *DivisionPriceInfoRequest, opts *RequestOptions) ([]DivisionPriceInfo, error) {
	if req == nil || req.TradeDate == "" {
		return nil, &ValidationError{Field: "TradeDate", Reason: "trade date is required"}
	}

	var out []DivisionPriceInfo
	if err := s.client.post(ctx, pathDivisionPriceInfo, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WarehouseReceiptReport returns the registered warehouse receipts for a
// variety and date.
func (s *MarketService) WarehouseReceiptReport(ctx context.Context, req *WarehouseReceiptRequest, opts *RequestOptions) ([]WarehouseReceipt, error) {
	if req == nil || req.VarietyCode == "" {
		return nil, &ValidationError{Field: "VarietyCode", Reason: "variety code is required"}
	}

	var out []WarehouseReceipt
	if err := s.client.post(ctx, pathWarehouseReceipt, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}
