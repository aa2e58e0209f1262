package dceapi

import (
	"context"
)

const (
	pathDeliveryData        = "/dceapi/forward/publicweb/deliverystat/delivery"
	pathDeliveryMatch       = "/dceapi/forward/publicweb/deliverystat/deliveryMatch"
	pathDeliveryCost        = "/dceapi/forward/publicweb/deliverypara/deliveryCosts"
	pathWarehousePremium    = "/dceapi/forward/publicweb/deliverypara/floatingAgio"
	pathTcCongregateDeliv   = "/dceapi/forward/publicweb/DeliveryStatistics/tcCongregateDeliveryQuotes"
	pathRollDeliveryIntent  = "/dceapi/forward/publicweb/DeliveryStatistics/rollDeliverySellerIntention"
	pathBondedDelivery      = "/dceapi/forward/publicweb/quotesdata/bondedDelivery"
	pathTdBondedDelivery    = "/dceapi/forward/publicweb/quotesdata/tdBondedDelivery"
	pathFactorySpotAgio     = "/dceapi/forward/publicweb/quotesdata/queryFactorySpotAgioQuotes"
	pathPlywoodDelivComm    = "/dceapi/forward/publicweb/deliverystat/queryPlywoodDeliveryCommodity"
)

// Delivery cost variety types.
const (
	VarietyTypePhysical     = "0"
	VarietyTypeAveragePrice = "1"
)

// DeliveryData is one month's delivered volume for a variety.
type DeliveryData struct {
	VarietyCode    string  `json:"varietyCode"`
	DeliveryMonth  string  `json:"deliveryMonth"`
	DeliveryVolume int64   `json:"deliveryVolume"`
	DeliveryAmount float64 `json:"deliveryAmount"`
}

// DeliveryDataRequest selects delivery volumes by variety and date.
type DeliveryDataRequest struct {
	VarietyCode string `json:"varietyCode"`
	TradeDate   string `json:"tradeDate"`
}

// DeliveryMatch pairs a buyer and seller in a completed delivery.
type DeliveryMatch struct {
	VarietyCode string `json:"varietyCode"`
	BuyMember   string `json:"buyMember"`
	SellMember  string `json:"sellMember"`
	Volume      int64  `json:"volume"`
}

// DeliveryMatchRequest selects delivery matches by variety and date.
type DeliveryMatchRequest struct {
	VarietyCode string `json:"varietyCode"`
	TradeDate   string `json:"tradeDate"`
}

// DeliveryCost is a variety's standing delivery fee schedule.
type DeliveryCost struct {
	VarietyCode   string  `json:"varietyCode"`
	DeliveryFee   float64 `json:"deliveryFee"`
	InspectionFee float64 `json:"inspectionFee"`
	StorageFee    float64 `json:"storageFee"`
}

// WarehousePremium is one warehouse's delivery premium or discount.
type WarehousePremium struct {
	VarietyCode   string  `json:"varietyCode"`
	WarehouseName string  `json:"warehouseName"`
	Premium       float64 `json:"premium"`
}

// WarehousePremiumResponse lists warehouse premiums for a date.
type WarehousePremiumResponse struct {
	TradeDate  string             `json:"tradeDate"`
	ResultList []WarehousePremium `json:"resultList"`
}

// TcCongregateDelivery is an aggregated delivery record for a variety
// supporting two-way (congregate) delivery.
type TcCongregateDelivery struct {
	Variety      string `json:"variety"`
	ContractID   string `json:"contractId"`
	DeliveryDate string `json:"deliveryDate"`
	Price        string `json:"price"`
	Quantity     int64  `json:"quantity"`
}

// TcCongregateDeliveryRequest selects congregate delivery statistics.
type TcCongregateDeliveryRequest struct {
	VarietyID string `json:"varietyId"`
	TradeDate string `json:"tradeDate"`
}

// RollDeliverySellerIntention is a seller's declared intention in rolling
// delivery.
type RollDeliverySellerIntention struct {
	Variety       string `json:"variety"`
	ContractID    string `json:"contractId"`
	IntentionDate string `json:"intentionDate"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int64  `json:"quantity"`
}

// RollDeliverySellerIntentionRequest selects rolling delivery intentions.
type RollDeliverySellerIntentionRequest struct {
	VarietyID string `json:"varietyId"`
	TradeDate string `json:"tradeDate"`
}

// BondedDelivery is a bonded-warehouse delivery settlement record.
type BondedDelivery struct {
	Variety           string `json:"variety"`
	ContractID        string `json:"contractId"`
	DeliveryMonth     string `json:"deliveryMonth"`
	BondedSettlePrice string `json:"bondedSettlePrice"`
}

// BondedDeliveryRequest selects bonded delivery settlement prices.
type BondedDeliveryRequest struct {
	VarietyID string `json:"varietyId"`
	TradeDate string `json:"tradeDate"`
}

// TdBondedDelivery is a two-day bonded delivery settlement record.
type TdBondedDelivery struct {
	Variety           string `json:"variety"`
	ContractID        string `json:"contractId"`
	DeliveryMonth     string `json:"deliveryMonth"`
	BondedSettlePrice string `json:"bondedSettlePrice"`
}

// TdBondedDeliveryRequest selects two-day bonded delivery prices.
type TdBondedDeliveryRequest struct {
	VarietyID string `json:"varietyId"`
	TradeDate string `json:"tradeDate"`
}

// FactorySpotAgio is the spread between a factory's spot price and the
// futures price.
type FactorySpotAgio struct {
	Variety      string `json:"variety"`
	FactoryName  string `json:"factoryName"`
	SpotPrice    string `json:"spotPrice"`
	FuturesPrice string `json:"futuresPrice"`
	Agio         string `json:"agio"`
	QuoteDate    string `json:"quoteDate"`
}

// FactorySpotAgioRequest selects factory spot premiums for a variety.
type FactorySpotAgioRequest struct {
	VarietyID string `json:"varietyId"`
}

// PlywoodDeliveryCommodity is a plywood product registered for delivery.
type PlywoodDeliveryCommodity struct {
	CommodityName string `json:"commodityName"`
	Brand         string `json:"brand"`
	Spec          string `json:"spec"`
	Premium       string `json:"premium"`
	Producer      string `json:"producer"`
}

// PlywoodDeliveryCommodityRequest selects plywood delivery commodities.
type PlywoodDeliveryCommodityRequest struct {
	VarietyID string `json:"varietyId"`
}

// DeliveryService provides delivery data, costs and warehouse information.
type DeliveryService service

// DeliveryData returns the delivered volumes for a variety and date.
func (s *DeliveryService) DeliveryData(ctx context.Context, req *DeliveryDataRequest, opts *RequestOptions) ([]DeliveryData, error) {
	if req == nil || req.VarietyCode == "" {
		return nil, &ValidationError{Field: "VarietyCode", Reason: "variety code is required"}
	}

	var out []DeliveryData
	if err := s.client.post(ctx, pathDeliveryData, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeliveryMatch returns the buyer/seller delivery pairings for a variety
// and date.
func (s *DeliveryService) DeliveryMatch(ctx context.Context, req *DeliveryMatchRequest, opts *RequestOptions) ([]DeliveryMatch, error) {
	if req == nil || req.VarietyCode == "" {
		return nil, &ValidationError{Field: "VarietyCode", Reason: "variety code is required"}
	}

	var out []DeliveryMatch
	if err := s.client.post(ctx, pathDeliveryMatch, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeliveryCost returns the delivery fee schedule for a variety. Pass "all"
// to cover every variety; varietyType is one of the VarietyType* constants.
func (s *DeliveryService) DeliveryCost(ctx context.Context, varietyID, varietyType string, opts *RequestOptions) ([]DeliveryCost, error) {
	if varietyID == "" {
		return nil, &ValidationError{Field: "varietyID", Reason: "variety ID is required"}
	}

	body := struct {
		VarietyID   string `json:"varietyId"`
		VarietyType string `json:"varietyType"`
		Lang        string `json:"lang"`
	}{
		VarietyID:   varietyID,
		VarietyType: varietyType,
		Lang:        s.client.cfg.Lang,
	}

	var out []DeliveryCost
	if err := s.client.post(ctx, pathDeliveryCost, &body, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WarehousePremiumReport returns the per-warehouse premiums for a variety
// and date.
func (s *DeliveryService) WarehousePremiumReport(ctx context.Context, varietyID, tradeDate string, opts *RequestOptions) (*WarehousePremiumResponse, error) {
	if varietyID == "" {
		return nil, &ValidationError{Field: "varietyID", Reason: "variety ID is required"}
	}

	body := struct {
		VarietyID string `json:"varietyId"`
		TradeDate string `json:"tradeDate"`
	}{
		VarietyID: varietyID,
		TradeDate: tradeDate,
	}

	var out WarehousePremiumResponse
	if err := s.client.post(ctx, pathWarehousePremium, &body, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TcCongregateDelivery returns aggregated delivery statistics for two-way
// delivery varieties.
func (s *DeliveryService) TcCongregateDelivery(ctx context.Context, req *TcCongregateDeliveryRequest, opts *RequestOptions) ([]TcCongregateDelivery, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []TcCongregateDelivery
	if err := s.client.post(ctx, pathTcCongregateDeliv, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RollDeliverySellerIntention returns sellers' declared intentions for
// rolling delivery contracts.
func (s *DeliveryService) RollDeliverySellerIntention(ctx context.Context, req *RollDeliverySellerIntentionRequest, opts *RequestOptions) ([]RollDeliverySellerIntention, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []RollDeliverySellerIntention
	if err := s.client.post(ctx, pathRollDeliveryIntent, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BondedDelivery returns bonded-warehouse delivery settlement prices.
func (s *DeliveryService) BondedDelivery(ctx context.Context, req *BondedDeliveryRequest, opts *RequestOptions) ([]BondedDelivery, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []BondedDelivery
	if err := s.client.post(ctx, pathBondedDelivery, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TdBondedDelivery returns two-day bonded delivery settlement prices.
func (s *DeliveryService) TdBondedDelivery(ctx context.Context, req *TdBondedDeliveryRequest, opts *RequestOptions) ([]TdBondedDelivery, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []TdBondedDelivery
	if err := s.client.post(ctx, pathTdBondedDelivery, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FactorySpotAgio returns the factory spot versus futures price spreads for
// a variety.
func (s *DeliveryService) FactorySpotAgio(ctx context.Context, req *FactorySpotAgioRequest, opts *RequestOptions) ([]FactorySpotAgio, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []FactorySpotAgio
	if err := s.client.post(ctx, pathFactorySpotAgio, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlywoodDeliveryCommodity returns the delivery specifications for plywood
// contracts.
func (s *DeliveryService) PlywoodDeliveryCommodity(ctx context.Context, req *PlywoodDeliveryCommodityRequest, opts *RequestOptions) ([]PlywoodDeliveryCommodity, error) {
	if req == nil || req.VarietyID == "" {
		return nil, &ValidationError{Field: "VarietyID", Reason: "variety ID is required"}
	}

	var out []PlywoodDeliveryCommodity
	if err := s.client.post(ctx, pathPlywoodDelivComm, req, opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}
