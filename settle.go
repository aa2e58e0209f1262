package dceapi

import (
	"context"
)

const pathSettleParam = "/dceapi/forward/publicweb/tradepara/futAndOptSettle"

// SettleParam is a contract's settlement parameters: settlement price,
// fees and margin rates. Rates arrive as strings, formatted by the
// exchange.
type SettleParam struct {
	Variety        string `json:"variety"`
	VarietyOrder   string `json:"varietyOrder"`
	ContractID     string `json:"contractId"`
	ClearPrice     string `json:"clearPrice"`
	OpenFee        string `json:"openFee"`
	OffsetFee      string `json:"offsetFee"`
	ShortOpenFee   string `json:"shortOpenFee"`
	ShortOffsetFee string `json:"shortOffsetFee"`
	Style          string `json:"style"`
	SpecBuyRate    string `json:"specBuyRate"`
	SpecSellRate   string `json:"specSellRate"`
	HedgeBuyRate   string `json:"hedgeBuyRate"`
	HedgeSellRate  string `json:"hedgeSellRate"`
}

// SettleParamRequest selects settlement parameters by variety and date.
type SettleParamRequest struct {
	VarietyID string `json:"varietyId"`
	TradeDate string `json:"tradeDate"`
	TradeType string `json:"tradeType"`
	Lang      string `json:"lang"`
}

// SettleService provides settlement parameters.
type SettleService service

// SettleParam returns the settlement prices, fees and margin rates for the
// selected variety and date.
func (s *SettleService) SettleParam(ctx context.Context, req *SettleParamRequest, opts *RequestOptions) ([]SettleParam, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []SettleParam
	if err := s.client.post(ctx, pathSettleParam, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}
