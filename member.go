package dceapi

import (
	"context"
)

const (
	pathDailyRanking = "/dceapi/forward/publicweb/dailystat/memberDealPosi"
	pathPhaseRanking = "/dceapi/forward/publicweb/phasestat/memberDealCh"
)

// Ranking is one member's entry in a daily ranking list. A single entry
// only populates the columns of the list it belongs to (volume, buy
// position or sell position).
type Ranking struct {
	Rank         string `json:"rank"`
	QtyAbbr      string `json:"qtyAbbr"`
	TodayQty     int64  `json:"todayQty"`
	QtySub       int64  `json:"qtySub"`
	BuyAbbr      string `json:"buyAbbr"`
	TodayBuyQty  int64  `json:"todayBuyQty"`
	BuySub       int64  `json:"buySub"`
	SellAbbr     string `json:"sellAbbr"`
	TodaySellQty int64  `json:"todaySellQty"`
	SellSub      int64  `json:"sellSub"`
}

// DailyRankingRequest selects a contract's member rankings for one day.
type DailyRankingRequest struct {
	VarietyID  string `json:"varietyId"`
	ContractID string `json:"contractId"`
	TradeDate  string `json:"tradeDate"`
	TradeType  string `json:"tradeType"`
}

// DailyRankingResponse carries the three ranking lists (volume, buy
// position, sell position) plus the contract totals.
type DailyRankingResponse struct {
	ContractID    string    `json:"contractId"`
	TodayQty      int64     `json:"todayQty"`
	QtySub        int64     `json:"qtySub"`
	TodayBuyQty   int64     `json:"todayBuyQty"`
	BuySub        int64     `json:"buySub"`
	TodaySellQty  int64     `json:"todaySellQty"`
	SellSub       int64     `json:"sellSub"`
	QtyFutureList []Ranking `json:"qtyFutureList"`
	BuyFutureList []Ranking `json:"buyFutureList"`
	SellFutureList []Ranking `json:"sellFutureList"`
}

// PhaseRankingRequest selects member rankings over a month range.
type PhaseRankingRequest struct {
	Variety    string `json:"variety"`
	StartMonth string `json:"startMonth"`
	EndMonth   string `json:"endMonth"`
	TradeType  string `json:"tradeType"`
}

// PhaseRanking is one member's aggregate ranking over the selected period.
type PhaseRanking struct {
	Seq        string  `json:"seq"`
	MemberID   string  `json:"memberId"`
	MemberName string  `json:"memberName"`
	MonthQty   float64 `json:"monthQty"`
	QtyRatio   float64 `json:"qtyRatio"`
	MonthAmt   float64 `json:"monthAmt"`
	AmtRatio   float64 `json:"amtRatio"`
}

// MemberService provides member trading rankings.
type MemberService service

// DailyRanking returns a contract's volume and position rankings for one
// trading day.
func (s *MemberService) DailyRanking(ctx context.Context, req *DailyRankingRequest, opts *RequestOptions) (*DailyRankingResponse, error) {
	if req == nil || req.ContractID == "" {
		return nil, &ValidationError{Field: "ContractID", Reason: "contract ID is required"}
	}

	var out DailyRankingResponse
	if err := s.client.post(ctx, pathDailyRanking, req, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PhaseRanking returns member rankings aggregated over a month range.
func (s *MemberService) PhaseRanking(ctx context.Context, req *PhaseRankingRequest, opts *RequestOptions) ([]PhaseRanking, error) {
	if req == nil || req.StartMonth == "" || req.EndMonth == "" {
		return nil, &ValidationError{Field: "StartMonth", Reason: "start and end month are required"}
	}

	var out []PhaseRanking
	if err := s.client.post(ctx, pathPhaseRanking, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}
