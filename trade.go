package dceapi

import (
	"context"
	"encoding/json"
)

const (
	pathDayTradeParam     = "/dceapi/forward/publicweb/tradepara/dayTradPara"
	pathMonthTradeParam   = "/dceapi/forward/publicweb/tradepara/monthTradPara"
	pathContractInfo      = "/dceapi/forward/publicweb/tradepara/contractInfo"
	pathArbitrageContract = "/dceapi/forward/publicweb/tradepara/arbitrageContract"
	pathTradingParam      = "/dceapi/forward/publicweb/tradepara/tradingParam"
	pathMarginArbiPerf    = "/dceapi/forward/publicweb/tradepara/marginArbiPerfPara"
	pathNewContractInfo   = "/dceapi/forward/publicweb/tradepara/newContractInfo"
	pathMainSeriesInfo    = "/dceapi/forward/publicweb/tradepara/mainSeriesInfo"
)

// TradeParam is a contract's daily margin and price-limit parameters.
type TradeParam struct {
	ContractID    string  `json:"contractId"`
	SpecBuyRate   float64 `json:"specBuyRate"`
	SpecBuy       float64 `json:"specBuy"`
	HedgeBuyRate  float64 `json:"hedgeBuyRate"`
	HedgeBuy      float64 `json:"hedgeBuy"`
	RiseLimitRate float64 `json:"riseLimitRate"`
	RiseLimit     float64 `json:"riseLimit"`
	FallLimit     float64 `json:"fallLimit"`
	TradeDate     string  `json:"tradeDate"`
}

// DayTradeParamRequest selects a variety's daily trading parameters.
type DayTradeParamRequest struct {
	VarietyID string `json:"varietyId"`
	TradeType string `json:"tradeType"`
	Lang      string `json:"lang"`
}

// ContractInfo describes a listed contract.
type ContractInfo struct {
	ContractID      string `json:"contractId"`
	Variety         string `json:"variety"`
	VarietyOrder    string `json:"varietyOrder"`
	Unit            int    `json:"unit"`
	Tick            string `json:"tick"`
	StartTradeDate  string `json:"startTradeDate"`
	EndTradeDate    string `json:"endTradeDate"`
	EndDeliveryDate string `json:"endDeliveryDate"`
	TradeType       string `json:"tradeType"`
}

// ContractInfoRequest selects a variety's listed contracts.
type ContractInfoRequest struct {
	VarietyID string `json:"varietyId"`
	TradeType string `json:"tradeType"`
	Lang      string `json:"lang"`
}

// ArbitrageContract is a spread contract available for arbitrage trading.
type ArbitrageContract struct {
	ArbiName       string  `json:"arbiName"`
	VarietyName    string  `json:"varietyName"`
	ArbiContractID string  `json:"arbiContractId"`
	MaxHand        int     `json:"maxHand"`
	Tick           float64 `json:"tick"`
}

// TradingParam is a variety's standing trading parameters: margins, fees
// and limits.
type TradingParam struct {
	Variety       string `json:"variety"`
	VarietyName   string `json:"varietyName"`
	Unit          int    `json:"unit"`
	Tick          string `json:"tick"`
	SpecBuyRate   string `json:"specBuyRate"`
	SpecSellRate  string `json:"specSellRate"`
	HedgeBuyRate  string `json:"hedgeBuyRate"`
	HedgeSellRate string `json:"hedgeSellRate"`
	RiseLimitRate string `json:"riseLimitRate"`
	FallLimitRate string `json:"fallLimitRate"`
	OpenFee       string `json:"openFee"`
	OffsetFee     string `json:"offsetFee"`
}

// MarginArbiPerfParaRequest selects margin parameters for arbitrage
// strategies on a variety.
type MarginArbiPerfParaRequest struct {
	VarietyID string `json:"varietyId"`
}

// MarginArbiPerfPara is the margin requirement for one arbitrage strategy.
type MarginArbiPerfPara struct {
	ArbiName    string `json:"arbiName"`
	VarietyName string `json:"varietyName"`
	MarginRate  string `json:"marginRate"`
	Fee         string `json:"fee"`
}

// NewContractInfoRequest selects recently listed contracts.
type NewContractInfoRequest struct {
	VarietyID     string `json:"varietyId"`
	TradeType     string `json:"tradeType"`
	ContractMonth string `json:"contractMonth"`
}

// NewContractInfo describes a newly listed contract.
type NewContractInfo struct {
	ContractID string `json:"contractId"`
	Variety    string `json:"variety"`
	ListDate   string `json:"listDate"`
	BasePrice  string `json:"basePrice"`
	Unit       int    `json:"unit"`
}

// MainSeriesInfoRequest selects the market-maker continuous quote series.
type MainSeriesInfoRequest struct {
	VarietyID string `json:"varietyId"`
	TradeType string `json:"tradeType"`
}

// MainSeriesInfo is a contract designated for market-maker continuous
// quoting.
type MainSeriesInfo struct {
	Variety    string `json:"variety"`
	SeriesID   string `json:"seriesId"`
	ContractID string `json:"contractId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// TradeService provides trading parameters and contract information.
type TradeService service

// DayTradeParam returns the daily trading parameters for a variety.
func (s *TradeService) DayTradeParam(ctx context.Context, req *DayTradeParamRequest, opts *RequestOptions) ([]TradeParam, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []TradeParam
	if err := s.client.post(ctx, pathDayTradeParam, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthTradeParam returns the monthly trading parameter report. The report
// layout varies by month, so the payload is returned as raw JSON fields.
func (s *TradeService) MonthTradeParam(ctx context.Context, opts *RequestOptions) (map[string]json.RawMessage, error) {
	var out map[string]json.RawMessage
	if err := s.client.post(ctx, pathMonthTradeParam, struct{}{}, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractInfo returns the listed contracts for a variety.
func (s *TradeService) ContractInfo(ctx context.Context, req *ContractInfoRequest, opts *RequestOptions) ([]ContractInfo, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []ContractInfo
	if err := s.client.post(ctx, pathContractInfo, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ArbitrageContract returns the spread contracts available for arbitrage
// trading. An empty lang falls back to the configured language.
func (s *TradeService) ArbitrageContract(ctx context.Context, lang string, opts *RequestOptions) ([]ArbitrageContract, error) {
	if lang == "" {
		lang = s.client.cfg.Lang
	}

	body := struct {
		Lang string `json:"lang"`
	}{Lang: lang}

	var out []ArbitrageContract
	if err := s.client.post(ctx, pathArbitrageContract, &body, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TradingParam returns the standing trading parameters for all varieties.
// An empty lang falls back to the configured language.
func (s *TradeService) TradingParam(ctx context.Context, lang string, opts *RequestOptions) ([]TradingParam, error) {
	if lang == "" {
		lang = s.client.cfg.Lang
	}

	body := struct {
		Lang string `json:"lang"`
	}{Lang: lang}

	var out []TradingParam
	if err := s.client.post(ctx, pathTradingParam, &body, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarginArbiPerfPara returns the margin requirements for arbitrage
// strategies on a variety.
func (s *TradeService) MarginArbiPerfPara(ctx context.Context, req *MarginArbiPerfParaRequest, opts *RequestOptions) ([]MarginArbiPerfPara, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []MarginArbiPerfPara
	if err := s.client.post(ctx, pathMarginArbiPerf, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewContractInfo returns recently listed contracts.
func (s *TradeService) NewContractInfo(ctx context.Context, req *NewContractInfoRequest, opts *RequestOptions) ([]NewContractInfo, error) {
	if req == nil {
		req = &NewContractInfoRequest{}
	}

	var out []NewContractInfo
	if err := s.client.post(ctx, pathNewContractInfo, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MainSeriesInfo returns the contracts designated for market-maker
// continuous quoting.
func (s *TradeService) MainSeriesInfo(ctx context.Context, req *MainSeriesInfoRequest, opts *RequestOptions) ([]MainSeriesInfo, error) {
	if req == nil {
		req = &MainSeriesInfoRequest{}
	}

	var out []MainSeriesInfo
	if err := s.client.post(ctx, pathMainSeriesInfo, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}
