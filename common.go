package dceapi

import (
	"context"
	"fmt"
)

const (
	pathMaxTradeDate        = "/dceapi/forward/publicweb/maxTradeDate"
	pathVariety             = "/dceapi/forward/publicweb/variety"
	pathVarietyMonthYearSta = "/dceapi/forward/publicweb/phasestat/varietyMonthYearStat"
)

// TradeDate is the exchange's current (latest) trading date.
type TradeDate struct {
	Date string `json:"tradeDate"`
}

// Variety is a listed commodity.
type Variety struct {
	Code        string `json:"varietyId"`
	Name        string `json:"varietyName"`
	EnglishName string `json:"varietyEnglishName"`
	Pic         string `json:"pic"`
	VarietyType string `json:"varietyType"`
}

// VarietyMonthYearStatRequest selects the month for the per-variety
// aggregate statistics.
type VarietyMonthYearStatRequest struct {
	// TradeMonth in YYYYMM format.
	TradeMonth string `json:"tradeMonth"`
	TradeType  string `json:"tradeType"`
	Lang       string `json:"lang"`
}

// VarietyMonthYearStat aggregates a variety's turnover for a month and the
// year to date, with year-over-year comparisons.
type VarietyMonthYearStat struct {
	Variety     string  `json:"variety"`
	VarietyName string  `json:"varietyName"`
	MonthQty    float64 `json:"monthQty"`
	MonthQtyYoy float64 `json:"monthQtyYoy"`
	MonthAmt    float64 `json:"monthAmt"`
	MonthAmtYoy float64 `json:"monthAmtYoy"`
	YearQty     float64 `json:"yearQty"`
	YearQtyYoy  float64 `json:"yearQtyYoy"`
	YearAmt     float64 `json:"yearAmt"`
	YearAmtYoy  float64 `json:"yearAmtYoy"`
}

// CommonService provides trade dates and variety information.
type CommonService service

// MaxTradeDate returns the current trading date. Served from the reference
// cache when one is configured.
func (s *CommonService) MaxTradeDate(ctx context.Context, opts *RequestOptions) (*TradeDate, error) {
	if cached, ok := s.cached(pathMaxTradeDate, opts); ok {
		return cached.(*TradeDate), nil
	}

	var out TradeDate
	if err := s.client.get(ctx, pathMaxTradeDate, nil, opts, &out); err != nil {
		return nil, err
	}

	s.cache(pathMaxTradeDate, opts, &out)
	return &out, nil
}

// VarietyList returns the listed varieties, filtered to futures or options
// by the trade type. Served from the reference cache when one is
// configured.
func (s *CommonService) VarietyList(ctx context.Context, opts *RequestOptions) ([]Variety, error) {
	if cached, ok := s.cached(pathVariety, opts); ok {
		return cached.([]Variety), nil
	}

	var out []Variety
	if err := s.client.get(ctx, pathVariety, nil, opts, &out); err != nil {
		return nil, err
	}

	s.cache(pathVariety, opts, out)
	return out, nil
}

// VarietyMonthYearStat returns monthly and yearly turnover statistics per
// variety.
func (s *CommonService) VarietyMonthYearStat(ctx context.Context, req *VarietyMonthYearStatRequest, opts *RequestOptions) ([]VarietyMonthYearStat, error) {
	if req == nil || req.TradeMonth == "" {
		return nil, &ValidationError{Field: "TradeMonth", Reason: "trade month is required"}
	}

	var out []VarietyMonthYearStat
	if err := s.client.post(ctx, pathVarietyMonthYearSta, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// cacheKey distinguishes entries by endpoint, language and trade type so a
// per-request override never observes another configuration's data.
func (s *CommonService) cacheKey(path string, opts *RequestOptions) string {
	r := request{opts: opts}
	return fmt.Sprintf("%s|%s|%d", path, r.lang(s.client.cfg), r.tradeType(s.client.cfg))
}

func (s *CommonService) cached(path string, opts *RequestOptions) (any, bool) {
	if s.client.refCache == nil {
		return nil, false
	}
	return s.client.refCache.get(s.cacheKey(path, opts))
}

func (s *CommonService) cache(path string, opts *RequestOptions, value any) {
	if s.client.refCache == nil {
		return
	}
	s.client.refCache.set(s.cacheKey(path, opts), value)
}
